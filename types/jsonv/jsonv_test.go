package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmdhs/datafixer/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.ObjectType
	}{
		{name: "object", text: `{"a":1}`, want: types.ObjectTypeMap},
		{name: "array", text: `[1,2]`, want: types.ObjectTypeList},
		{name: "string", text: `"x"`, want: types.ObjectTypeString},
		{name: "long", text: `12`, want: types.ObjectTypeLong},
		{name: "double", text: `1.5`, want: types.ObjectTypeDouble},
		{name: "bool", text: `true`, want: types.ObjectTypeBool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typeOf(v))
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{``, `{"a":}`, `{} x`, `null`, `[1,`} {
		_, err := Parse(text)
		var pe *ParseError
		assert.ErrorAs(t, err, &pe, "input %q", text)
	}

	_, err := ParseMap(`[1]`)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestObjectAccessors(t *testing.T) {
	o, err := ParseMap(`{"text":"hi","n":3,"f":0.5,"b":false,"arr":[1,2,3],"skip":null,"o":{"k":"v"}}`)
	require.NoError(t, err)

	assert.False(t, o.HasKey("skip"))

	n, ok := o.GetInt("n")
	assert.True(t, ok)
	assert.Equal(t, int32(3), n)

	f, ok := o.GetDouble("f")
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	b, ok := o.GetBool("b")
	assert.True(t, ok)
	assert.False(t, b)

	ints, ok := o.GetIntArray("arr")
	assert.True(t, ok)
	assert.Equal(t, []int32{1, 2, 3}, ints)

	_, ok = o.GetIntArray("o")
	assert.False(t, ok)

	inner, ok := o.GetMap("o")
	require.True(t, ok)
	v, _ := inner.GetString("k")
	assert.Equal(t, "v", v)

	o.SetIntArray("uuid", []int32{1, 2})
	assert.Equal(t, types.ObjectTypeList, o.TypeOf("uuid"))
}

func TestMarshal(t *testing.T) {
	o := NewObject()
	o.SetString("text", "a<b")
	o.SetInt("n", 1)
	a := NewArray()
	a.AddString("x")
	a.AddDouble(1.5)
	o.SetList("extra", a)

	s, err := Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"extra":["x",1.5],"n":1,"text":"a<b"}`, s)
}
