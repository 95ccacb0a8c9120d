package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	PoolConfig *PoolConfig `yaml:"pool"`
	LogConfig  *LogConfig  `yaml:"log"`
}

func New() *AppConfig {
	return &AppConfig{
		PoolConfig: NewPoolConfig(),
		LogConfig:  NewLogConfig(),
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(fileName string) (*AppConfig, error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := New()
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", fileName)
	}

	if err := cfg.PoolConfig.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pool config")
	}
	if err := cfg.LogConfig.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid log config")
	}
	return cfg, nil
}
