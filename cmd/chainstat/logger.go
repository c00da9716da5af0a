package main

import (
	"fmt"

	"go.uber.org/zap"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)

	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	conf := zap.NewProductionConfig()
	conf.Level = lvl
	conf.Encoding = "console"
	conf.DisableStacktrace = true
	conf.Sampling = nil

	return conf.Build()
}
