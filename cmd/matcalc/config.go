package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML layout; all keys are optional.
type fileConfig struct {
	Seed int64 `toml:"seed"`
	Min  int   `toml:"min"`
	Max  int   `toml:"max"`
}

// genConfig carries generator defaults plus per-key presence, so unset keys
// never clobber flag defaults.
type genConfig struct {
	seed    int64
	seedSet bool
	min     int
	minSet  bool
	max     int
	maxSet  bool
}

// loadGenConfig decodes the TOML file at path. Presence is tracked via
// toml metadata: only keys actually defined in the file are overlaid.
func loadGenConfig(path string) (genConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return genConfig{}, fmt.Errorf("load config %q: %w", path, err)
	}

	var cfg genConfig
	if meta.IsDefined("seed") {
		cfg.seed = raw.Seed
		cfg.seedSet = true
	}
	if meta.IsDefined("min") {
		cfg.min = raw.Min
		cfg.minSet = true
	}
	if meta.IsDefined("max") {
		cfg.max = raw.Max
		cfg.maxSet = true
	}

	return cfg, nil
}
