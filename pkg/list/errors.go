package list

import (
	"go-poollist/pkg/customerrors"

	"github.com/pkg/errors"
)

var (
	ErrHeaderPoolExhausted = errors.Wrap(customerrors.ErrPoolExhausted, "header pool")
	ErrNodePoolExhausted   = errors.Wrap(customerrors.ErrPoolExhausted, "node pool")

	// ErrCorrupted is returned by Validate when the linkage of a list does
	// not hold.
	ErrCorrupted = errors.New("list corrupted")
)
