// Package list implements a doubly linked list with a "current item" cursor.
// List headers and nodes live in two fixed-capacity pools owned by an Engine;
// every list created by an Engine shares its capacity.
//
// An Engine and its lists are not safe for concurrent use.
package list

import (
	"go-poollist/pkg/pool"
	"go-poollist/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type header struct {
	head   pool.Handle
	tail   pool.Handle
	cur    cursor
	length int
}

type node[T any] struct {
	data T
	prev pool.Handle
	next pool.Handle
}

type Engine[T any] struct {
	headers *pool.Pool[header]
	nodes   *pool.Pool[node[T]]
	log     logrus.FieldLogger
}

// PoolStats describes the occupancy of one pool.
type PoolStats struct {
	Capacity int
	InUse    int
}

type Stats struct {
	Headers PoolStats
	Nodes   PoolStats
}

func New[T any](opts *Options) *Engine[T] {
	if opts == nil {
		opts = DefaultOptions()
	}

	log := logger.WithPrefix(opts.Logger, "list")
	e := &Engine[T]{
		headers: pool.New[header](&pool.Options{
			Name:     "headers",
			Capacity: opts.HeaderCapacity,
			Logger:   log,
			Metrics:  opts.HeaderMetrics,
		}),
		nodes: pool.New[node[T]](&pool.Options{
			Name:     "nodes",
			Capacity: opts.NodeCapacity,
			Logger:   log,
			Metrics:  opts.NodeMetrics,
		}),
		log: log,
	}

	log.WithFields(logrus.Fields{
		"headers": opts.HeaderCapacity,
		"nodes":   opts.NodeCapacity,
	}).Debug("engine created")
	return e
}

// Create returns a new empty list with its cursor before the head.
func (e *Engine[T]) Create() (List[T], error) {
	h, ok := e.headers.Acquire()
	if !ok {
		return List[T]{}, errors.WithStack(ErrHeaderPoolExhausted)
	}
	return List[T]{e: e, h: h, gen: e.headers.Generation(h)}, nil
}

// Reset releases every list and node at once. Lists created before the
// reset become invalid.
func (e *Engine[T]) Reset() {
	e.headers.Reset()
	e.nodes.Reset()
	e.log.Debug("engine reset")
}

func (e *Engine[T]) Stats() Stats {
	return Stats{
		Headers: PoolStats{Capacity: e.headers.Cap(), InUse: e.headers.InUse()},
		Nodes:   PoolStats{Capacity: e.nodes.Cap(), InUse: e.nodes.InUse()},
	}
}

func (e *Engine[T]) node(h pool.Handle) *node[T] {
	return e.nodes.Get(h)
}

func (e *Engine[T]) newNode(item T) (pool.Handle, error) {
	h, ok := e.nodes.Acquire()
	if !ok {
		return pool.Nil, errors.WithStack(ErrNodePoolExhausted)
	}
	e.node(h).data = item
	return h, nil
}
