package metrics

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) OnInit(int)    {}
func (nc *NoopCollector) OnAcquire(int) {}
func (nc *NoopCollector) OnRelease(int) {}
func (nc *NoopCollector) OnExhausted()  {}
