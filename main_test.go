package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/versions"
)

func TestConvertDocument(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		text     string
		from, to datafix.DataVersion
		want     string
		wantErr  bool
	}{
		{
			name:     "entity",
			typeName: "entity",
			text:     `{"id":"Pig","CustomName":"Bob"}`,
			from:     datafix.V(99),
			to:       datafix.V(1458),
			want:     `{"CustomName":"{\"text\":\"Bob\"}","id":"minecraft:pig"}`,
		},
		{
			name:     "item name",
			typeName: "item_name",
			text:     `"minecraft:stone"`,
			from:     datafix.V(99),
			to:       datafix.V(1458),
			want:     `"minecraft:stone"`,
		},
		{
			name:     "unknown type",
			typeName: "nope",
			text:     `{}`,
			wantErr:  true,
		},
		{
			name:     "bad json",
			typeName: "entity",
			text:     `{"id":`,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertDocument(versions.Default(), tt.typeName, tt.text, tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestParseBlockPos(t *testing.T) {
	tests := []struct {
		in      string
		x, z    int
		wantErr bool
	}{
		{in: "53,495", x: 53, z: 495},
		{in: "-3242, 1111", x: -3242, z: 1111},
		{in: "12", wantErr: true},
		{in: "a,1", wantErr: true},
		{in: "1,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x, z, err := parseBlockPos(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadBlockPos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [2]int{tt.x, tt.z}, [2]int{x, z})
		})
	}
}
