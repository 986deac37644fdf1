//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/xmdhs/datafixer/chunk"
	"github.com/xmdhs/datafixer/config"
)

func InitializeMigrator(cfg config.Config) *chunk.Migrator {
	wire.Build(ProviderSet)
	return nil
}
