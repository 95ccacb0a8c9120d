package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemPool = "pool"

// PoolCollector exports the occupancy of one slot pool. It implements
// pool.Metrics.
type PoolCollector struct {
	capacity prometheus.Gauge
	inUse    prometheus.Gauge

	countAcquire   prometheus.Counter
	countRelease   prometheus.Counter
	countExhausted prometheus.Counter
}

func NewPoolCollector(namespace string, poolName string, registrar prometheus.Registerer) *PoolCollector {
	c := &PoolCollector{
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemPool,
			Name:      poolName + "_" + "capacity",
			Help:      "total number of slots in the pool",
		}),
		inUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemPool,
			Name:      poolName + "_" + "in_use",
			Help:      "number of slots currently handed out",
		}),
		countAcquire: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemPool,
			Name:      poolName + "_" + "acquire_total",
			Help:      "total number of successful slot acquisitions",
		}),
		countRelease: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemPool,
			Name:      poolName + "_" + "release_total",
			Help:      "total number of slots returned to the pool",
		}),
		countExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemPool,
			Name:      poolName + "_" + "exhausted_total",
			Help:      "total number of acquisitions refused because the pool was full",
		}),
	}

	registrar.MustRegister(
		c.capacity,
		c.inUse,
		c.countAcquire,
		c.countRelease,
		c.countExhausted,
	)

	return c
}

func (c *PoolCollector) OnInit(capacity int) {
	c.capacity.Set(float64(capacity))
	c.inUse.Set(0)
}

func (c *PoolCollector) OnAcquire(inUse int) {
	c.countAcquire.Inc()
	c.inUse.Set(float64(inUse))
}

func (c *PoolCollector) OnRelease(inUse int) {
	c.countRelease.Inc()
	c.inUse.Set(float64(inUse))
}

func (c *PoolCollector) OnExhausted() {
	c.countExhausted.Inc()
}
