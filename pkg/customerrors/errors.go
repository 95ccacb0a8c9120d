// Package customerrors defines errors shared by the pool and list packages.
package customerrors

import (
	"github.com/pkg/errors"
)

var (
	// ErrPoolExhausted is returned when a pool has no free slot left.
	ErrPoolExhausted = errors.New("pool exhausted")

	// ErrInvalidHandle is the panic value for access to a slot that is free
	// or out of the pool's range.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrInvalidList is the panic value for operations on a list that was
	// never created, was freed, or was consumed by a concat.
	ErrInvalidList = errors.New("invalid list")

	// ErrInvalidCapacity is returned for pool capacities that can't be
	// addressed by a handle.
	ErrInvalidCapacity = errors.New("invalid capacity")

	ErrNilDestructor = errors.New("nil destructor")
)
