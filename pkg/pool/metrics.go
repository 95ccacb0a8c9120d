package pool

// Metrics receives pool events. Implementations must be cheap, they are
// invoked on every acquire and release.
type Metrics interface {
	OnInit(capacity int)
	OnAcquire(inUse int)
	OnRelease(inUse int)
	OnExhausted()
}

type noopMetrics struct{}

func (noopMetrics) OnInit(int)    {}
func (noopMetrics) OnAcquire(int) {}
func (noopMetrics) OnRelease(int) {}
func (noopMetrics) OnExhausted()  {}
