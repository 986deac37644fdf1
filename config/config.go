// Package config reads the YAML settings of a migration run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/log"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// World is the save directory holding the region folders.
	World string `yaml:"world"`
	// Dirs are the region folders under World, e.g. region, entities, poi.
	Dirs []string `yaml:"dirs"`
	// Target is the version chunks are migrated to.
	Target datafix.DataVersion `yaml:"target"`
	// DefaultSource is used for chunks without a DataVersion tag.
	DefaultSource datafix.DataVersion `yaml:"default_source"`
	Workers       int                 `yaml:"workers"`
	LogLevel      log.Level           `yaml:"log_level"`
	DryRun        bool                `yaml:"dry_run"`
	// SkipStampOnly leaves chunks alone when no rule changed them, instead
	// of writing them back with the new DataVersion.
	SkipStampOnly bool `yaml:"skip_stamp_only"`
}

// Default returns the settings used for keys a file leaves out.
func Default(target datafix.DataVersion) Config {
	return Config{
		World:         ".",
		Dirs:          []string{"region", "entities", "poi"},
		Target:        target,
		DefaultSource: datafix.V(99),
		Workers:       4,
		LogLevel:      log.LevelInfo,
	}
}

// Load reads path over Default(target) and validates the result.
func Load(path string, target datafix.DataVersion) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	c := Default(target)
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.World == "" {
		return fmt.Errorf("Validate: %w: world is empty", ErrInvalid)
	}
	if len(c.Dirs) == 0 {
		return fmt.Errorf("Validate: %w: no dirs", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("Validate: %w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	// Saves store DataVersion as a plain int, a step would be lost on write.
	if c.Target.Step != 0 {
		return fmt.Errorf("Validate: %w: target %s has a step", ErrInvalid, c.Target)
	}
	if c.Target.Less(c.DefaultSource) {
		return fmt.Errorf("Validate: %w: target %s is older than default_source %s", ErrInvalid, c.Target, c.DefaultSource)
	}
	return nil
}
