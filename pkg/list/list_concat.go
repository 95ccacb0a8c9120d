package list

import (
	"go-poollist/pkg/customerrors"
	"go-poollist/pkg/pool"

	"github.com/pkg/errors"
)

// Concat moves all items of src to the end of l and releases src's header.
// The cursor of l is not moved. src must not be used afterwards.
func (l List[T]) Concat(src List[T]) {
	dst := l.header()
	s := src.header()
	if l.e != src.e {
		panic(errors.Wrap(customerrors.ErrInvalidList, "concat of lists from different engines"))
	}
	if l.h == src.h {
		panic(errors.Wrapf(customerrors.ErrInvalidList, "concat of list %d with itself", l.h))
	}

	if s.head != pool.Nil {
		if dst.tail != pool.Nil {
			l.e.node(dst.tail).next = s.head
			l.e.node(s.head).prev = dst.tail
		} else {
			dst.head = s.head
		}
		dst.tail = s.tail
	}
	dst.length += s.length

	l.e.headers.Release(src.h)
}
