package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

type Config struct {
	Buckets  int    `toml:"buckets"`
	Hash     string `toml:"hash"`
	Encoding string `toml:"encoding"`
	Top      int    `toml:"top"`
	MinCount int    `toml:"min_count"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Buckets:  64,
		Hash:     "fnv",
		Encoding: "utf-8",
		Top:      20,
		MinCount: 1,
		LogLevel: "warn",
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (cfg Config, err error) {
	cfg = defaultConfig()

	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &cfg)

	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return
}

// applyFlags overrides config values with the flags set on the command line.
func (cfg *Config) applyFlags(flags *pflag.FlagSet) (err error) {
	if flags.Changed("buckets") {
		if cfg.Buckets, err = flags.GetInt("buckets"); err != nil {
			return
		}
	}

	if flags.Changed("hash") {
		if cfg.Hash, err = flags.GetString("hash"); err != nil {
			return
		}
	}

	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return
		}
	}

	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return
		}
	}

	if flags.Changed("top") {
		if cfg.Top, err = flags.GetInt("top"); err != nil {
			return
		}
	}

	if flags.Changed("min") {
		if cfg.MinCount, err = flags.GetInt("min"); err != nil {
			return
		}
	}

	return cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.Buckets <= 0 {
		return fmt.Errorf("buckets must be positive, got %d", cfg.Buckets)
	}

	if cfg.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", cfg.Top)
	}

	if cfg.MinCount < 1 {
		return fmt.Errorf("min count must be at least 1, got %d", cfg.MinCount)
	}

	return nil
}
