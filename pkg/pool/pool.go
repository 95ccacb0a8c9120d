// Package pool implements a fixed-capacity slot allocator. Free slots form an
// intrusive stack threaded through the slots themselves, so acquire and
// release are O(1) and never allocate.
package pool

import (
	"math"

	"go-poollist/pkg/customerrors"
	"go-poollist/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Handle addresses a slot. Handles are 1-based so that the zero value of any
// payload holding handles reads as "no link".
type Handle uint32

// Nil is the absent handle.
const Nil Handle = 0

// MaxCapacity is the largest capacity addressable by a Handle.
const MaxCapacity = math.MaxUint32 - 1

type slot[T any] struct {
	val  T
	free bool
	// next free slot, valid only while free
	next Handle
	gen  uint32
}

type Pool[T any] struct {
	slots       []slot[T]
	top         Handle
	available   int
	initialized bool
	log         logrus.FieldLogger
	metrics     Metrics
}

// New creates a pool with opts.Capacity slots. The free stack is built on
// the first Acquire.
func New[T any](opts *Options) *Pool[T] {
	if err := checkCapacity(opts.Capacity); err != nil {
		panic(errors.Wrapf(err, "pool %q", opts.Name))
	}

	name := opts.Name
	if name == "" {
		name = "pool"
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Pool[T]{
		slots:   make([]slot[T], opts.Capacity),
		log:     logger.WithPrefix(opts.Logger, name),
		metrics: metrics,
	}
}

func checkCapacity(capacity int) error {
	if capacity <= 0 || uint64(capacity) > MaxCapacity {
		return errors.Wrapf(customerrors.ErrInvalidCapacity, "capacity %d", capacity)
	}
	return nil
}

// Acquire pops a free slot and returns its handle with a zeroed payload.
// The boolean is false when the pool is exhausted.
func (p *Pool[T]) Acquire() (Handle, bool) {
	if !p.initialized {
		p.init()
	}

	h := p.top
	if h == Nil {
		p.log.WithField("capacity", len(p.slots)).Debug("pool exhausted")
		p.metrics.OnExhausted()
		return Nil, false
	}

	s := &p.slots[index(h)]
	p.top = s.next
	p.available--

	var zero T
	s.val = zero
	s.free = false
	s.next = Nil

	p.metrics.OnAcquire(p.InUse())
	return h, true
}

// Release returns the slot to the pool. Releasing a free slot does nothing
// and reports false, so a slot can never sit in the free stack twice.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.initialized || !p.contains(h) {
		return false
	}

	s := &p.slots[index(h)]
	if s.free {
		return false
	}

	var zero T
	s.val = zero
	s.free = true
	s.gen++
	s.next = p.top
	p.top = h
	p.available++

	p.metrics.OnRelease(p.InUse())
	return true
}

// Get returns the payload of an occupied slot.
func (p *Pool[T]) Get(h Handle) *T {
	if p.IsFree(h) {
		panic(errors.Wrapf(customerrors.ErrInvalidHandle, "handle %d is not in use", h))
	}
	return &p.slots[index(h)].val
}

// IsFree reports whether h is not currently issued. Handles outside of the
// pool's range are reported free.
func (p *Pool[T]) IsFree(h Handle) bool {
	if !p.initialized || !p.contains(h) {
		return true
	}
	return p.slots[index(h)].free
}

// Generation is bumped every time the slot is released.
func (p *Pool[T]) Generation(h Handle) uint32 {
	if !p.contains(h) {
		return 0
	}
	return p.slots[index(h)].gen
}

func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

func (p *Pool[T]) Available() int {
	if !p.initialized {
		return len(p.slots)
	}
	return p.available
}

func (p *Pool[T]) InUse() int {
	return p.Cap() - p.Available()
}

// Reset drops every issued handle. Handles obtained before the reset must not
// be used afterwards.
func (p *Pool[T]) Reset() {
	for i := range p.slots {
		p.slots[i] = slot[T]{gen: p.slots[i].gen + 1}
	}
	p.top = Nil
	p.available = 0
	p.initialized = false
	p.log.Debug("pool reset")
}

// init links every slot into the free stack in index order, lowest index on
// top.
func (p *Pool[T]) init() {
	for i := range p.slots {
		s := &p.slots[i]
		s.free = true
		s.next = handle(i + 1)
	}
	p.slots[len(p.slots)-1].next = Nil

	p.top = handle(0)
	p.available = len(p.slots)
	p.initialized = true

	p.log.WithField("capacity", len(p.slots)).Debug("pool initialized")
	p.metrics.OnInit(len(p.slots))
}

func (p *Pool[T]) contains(h Handle) bool {
	return h != Nil && int(h) <= len(p.slots)
}

func index(h Handle) int {
	return int(h) - 1
}

func handle[I constraints.Integer](i I) Handle {
	return Handle(i) + 1
}
