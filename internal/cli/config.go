// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of the file given with --config. Zero values keep
// the defaults of the library.
type Config struct {
	// Supports is the minimal number of supports of the manager. We always
	// allocate at least the number needed by the circuit.
	Supports  int `yaml:"supports"`
	Buckets   int `yaml:"buckets"`
	Cachesize int `yaml:"cachesize"`
}

// DefaultConfig returns the configuration used without a --config flag.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads a Config from a YAML file. Unknown fields are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Supports < 0 || cfg.Buckets < 0 || cfg.Cachesize < 0 {
		return cfg, fmt.Errorf("parse config %s: negative size", path)
	}
	return cfg, nil
}
