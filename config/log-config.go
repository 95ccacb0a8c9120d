package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Level string `yaml:"level"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: logrus.InfoLevel.String(),
	}
}

func (c *LogConfig) Validate() error {
	_, err := logrus.ParseLevel(c.Level)
	return errors.Wrapf(err, "log level %q", c.Level)
}

// Apply sets the level of l.
func (c *LogConfig) Apply(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", c.Level)
	}
	l.SetLevel(level)
	return nil
}
