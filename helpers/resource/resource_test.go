package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Location
		wantErr bool
	}{
		{in: "stone", want: Location{"minecraft", "stone"}},
		{in: "x:y", want: Location{"x", "y"}},
		{in: ":y", want: Location{"minecraft", "y"}},
		{in: "mod:block/sub.path", want: Location{"mod", "block/sub.path"}},
		{in: "Stone", wantErr: true},
		{in: "a/b:c", wantErr: true},
		{in: "a:b:c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, ':')
			if tt.wantErr {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorrectNamespace(t *testing.T) {
	assert.Equal(t, "minecraft:kebab", CorrectNamespace("kebab"))
	assert.Equal(t, "mod:x", CorrectNamespace("mod:x"))
	assert.Equal(t, "Bad Name", CorrectNamespace("Bad Name"))
	assert.Equal(t, "minecraft:stone", MustParse("stone").String())
}
