package list

import (
	"go-poollist/pkg/pool"

	"github.com/sirupsen/logrus"
)

const (
	DefaultHeaderCapacity = 10
	DefaultNodeCapacity   = 100
)

type Options struct {
	HeaderCapacity int
	NodeCapacity   int
	Logger         logrus.FieldLogger
	HeaderMetrics  pool.Metrics
	NodeMetrics    pool.Metrics
}

func DefaultOptions() *Options {
	return &Options{
		HeaderCapacity: DefaultHeaderCapacity,
		NodeCapacity:   DefaultNodeCapacity,
	}
}
