package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// config is the contents of the --config file.
// Interner is passed to interner.FromConfig, e.g.:
//
//	log_level: debug
//	interner:
//	  type: lru
//	  size: 1024
//	  nested:
//	    type: shards
type config struct {
	LogLevel string                 `yaml:"log_level"`
	Interner map[string]interface{} `yaml:"interner"`
}

func loadConfig(filename string) (config, error) {
	var conf config
	if filename == "" {
		return conf, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, errors.Wrapf(err, "reading config file %s", filename)
	}
	err = yaml.Unmarshal(data, &conf)
	return conf, errors.Wrapf(err, "decoding config file %s", filename)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		if err := lvl.Set(level); err != nil {
			return nil, errors.Wrapf(err, "parsing log level %q", level)
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
