package pool

import "github.com/sirupsen/logrus"

type Options struct {
	// Name is used as the log prefix and the metrics label.
	Name     string
	Capacity int
	Logger   logrus.FieldLogger
	Metrics  Metrics
}
