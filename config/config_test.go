package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/log"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, `
world: saves/test
dirs: [region]
target: "2842"
default_source: "1343.2"
workers: 8
log_level: debug
dry_run: true
skip_stamp_only: true
`)
	c, err := Load(p, datafix.V(3807))
	require.NoError(t, err)
	assert.Equal(t, "saves/test", c.World)
	assert.Equal(t, []string{"region"}, c.Dirs)
	assert.Equal(t, datafix.V(2842), c.Target)
	assert.Equal(t, datafix.VS(1343, 2), c.DefaultSource)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, log.LevelDebug, c.LogLevel)
	assert.True(t, c.DryRun)
	assert.True(t, c.SkipStampOnly)
}

func TestLoadDefaults(t *testing.T) {
	p := writeFile(t, "world: w\n")
	c, err := Load(p, datafix.V(3807))
	require.NoError(t, err)
	assert.Equal(t, datafix.V(3807), c.Target)
	assert.Equal(t, datafix.V(99), c.DefaultSource)
	assert.Equal(t, []string{"region", "entities", "poi"}, c.Dirs)
	assert.Equal(t, log.LevelInfo, c.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad version", content: "target: abc\n"},
		{name: "bad level", content: "log_level: loud\n"},
		{name: "no workers", content: "workers: 0\n"},
		{name: "target before source", content: "target: \"100\"\ndefault_source: \"200\"\n"},
		{name: "empty dirs", content: "dirs: []\n"},
		{name: "stepped target", content: "target: \"1451.3\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content), datafix.V(3807))
			assert.Error(t, err)
		})
	}

	c := Default(datafix.VS(1451, 3))
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), datafix.V(3807))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
