package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xmdhs/datafixer/config"
	"github.com/xmdhs/datafixer/log"
	"github.com/xmdhs/datafixer/versions"
)

func TestInitializeMigrator(t *testing.T) {
	cfg := config.Default(versions.Latest)
	cfg.LogLevel = log.LevelError
	mg := InitializeMigrator(cfg)
	assert.NotNil(t, mg)
	assert.Same(t, versions.Default().Chunk, mg.TypeForDir("region"))
}
