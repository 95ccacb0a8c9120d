package config

import (
	"go-poollist/pkg/customerrors"
	"go-poollist/pkg/list"
	"go-poollist/pkg/pool"

	"github.com/pkg/errors"
)

type PoolConfig struct {
	HeaderCapacity int `yaml:"headerCapacity"`
	NodeCapacity   int `yaml:"nodeCapacity"`
}

func NewPoolConfig() *PoolConfig {
	return &PoolConfig{
		HeaderCapacity: list.DefaultHeaderCapacity,
		NodeCapacity:   list.DefaultNodeCapacity,
	}
}

func (c *PoolConfig) Validate() error {
	if c.HeaderCapacity <= 0 || uint64(c.HeaderCapacity) > pool.MaxCapacity {
		return errors.Wrapf(customerrors.ErrInvalidCapacity, "header capacity %d", c.HeaderCapacity)
	}
	if c.NodeCapacity <= 0 || uint64(c.NodeCapacity) > pool.MaxCapacity {
		return errors.Wrapf(customerrors.ErrInvalidCapacity, "node capacity %d", c.NodeCapacity)
	}
	return nil
}

func (c *PoolConfig) ListOptions() *list.Options {
	return &list.Options{
		HeaderCapacity: c.HeaderCapacity,
		NodeCapacity:   c.NodeCapacity,
	}
}
