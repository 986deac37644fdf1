package lenient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		typ  Type
	}{
		{name: "unquoted", in: `{foo: bar}`, want: `{"foo": "bar"}`, typ: TypeObject},
		{name: "implicit null", in: `[1,,2]`, want: `[1,null,2]`, typ: TypeArray},
		{name: "trailing null", in: `[1,]`, want: `[1,null]`, typ: TypeArray},
		{name: "leading null", in: `[,1]`, want: `[null,1]`, typ: TypeArray},
		{name: "prefix", in: ")]}'\n{}", want: `{}`, typ: TypeObject},
		{name: "bare word", in: `hello`, want: `"hello"`, typ: TypeString},
		{name: "single quotes", in: `{'a': 'it\'s "x"'}`, want: `{"a": "it's \"x\""}`, typ: TypeObject},
		{name: "separators", in: `{a=1;b=>2}`, want: `{"a":1,"b":2}`, typ: TypeObject},
		{name: "semicolon in array", in: `[1;2]`, want: `[1,2]`, typ: TypeArray},
		{name: "comments", in: "{a:1 # one\n,b:2 // two\n/* three */}", want: "{\"a\":1 \n,\"b\":2 \n}", typ: TypeObject},
		{name: "keywords", in: `[TRUE, False, NULL]`, want: `[true, false, null]`, typ: TypeArray},
		{name: "number", in: `-1.5e3`, want: `-1.5e3`, typ: TypeNumber},
		{name: "leading zero is text", in: `[01]`, want: `["01"]`, typ: TypeArray},
		{name: "keyword name", in: `{true: 1}`, want: `{"true": 1}`, typ: TypeObject},
		{name: "strict passes through", in: `{"text":"a\nb","x":[1,2]}`, want: `{"text":"a\nb","x":[1,2]}`, typ: TypeObject},
		{name: "surrounding space", in: "  \"a\"  ", want: `"a"`, typ: TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fix(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.typ, got.Type)
			assert.True(t, json.Valid([]byte(got.Text)), got.Text)
		})
	}
}

func TestFixErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pos  int
	}{
		{name: "empty", in: "", pos: 0},
		{name: "trailing comma in object", in: `{a:1,}`, pos: 5},
		{name: "trailing content", in: `{} x`, pos: 3},
		{name: "unterminated string", in: `"abc`, pos: 0},
		{name: "unterminated comment", in: `/* x`, pos: 0},
		{name: "missing colon", in: `{a 1}`, pos: 3},
		{name: "unclosed array", in: `[1,2`, pos: 4},
		{name: "bad escape", in: `"\q"`, pos: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fix(tt.in)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.pos, pe.Pos)
			assert.NotEmpty(t, pe.Reason)
		})
	}
}
