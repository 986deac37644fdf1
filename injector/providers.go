package injector

import (
	"github.com/google/wire"

	"github.com/xmdhs/datafixer/chunk"
	"github.com/xmdhs/datafixer/config"
	"github.com/xmdhs/datafixer/log"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/versions"
)

var ProviderSet = wire.NewSet(ProvideLogger, ProvideRegistry, chunk.NewMigrator)

func ProvideLogger(cfg config.Config) log.Log {
	return log.New(cfg.LogLevel)
}

// ProvideRegistry returns the shared registry with every version rule.
func ProvideRegistry(l log.Log) *registry.Registry {
	r := versions.Default()
	converters, walkers := r.Counts()
	l.Debug("registry ready",
		log.Int("types", len(r.Names())),
		log.Int("converters", converters),
		log.Int("walkers", walkers),
		log.String("latest", versions.Latest.String()),
	)
	return r
}
