package list

import (
	"go-poollist/pkg/customerrors"
	"go-poollist/pkg/pool"

	"github.com/pkg/errors"
)

// List is a handle to a list header owned by an Engine. It is a small value
// and can be copied freely; all copies refer to the same list. A List must
// not be used after Free, or after it was passed as the source of Concat.
type List[T any] struct {
	e   *Engine[T]
	h   pool.Handle
	gen uint32
}

// Valid reports whether l still refers to a live header.
func (l List[T]) Valid() bool {
	return l.e != nil &&
		!l.e.headers.IsFree(l.h) &&
		l.e.headers.Generation(l.h) == l.gen
}

func (l List[T]) header() *header {
	if !l.Valid() {
		panic(errors.Wrapf(customerrors.ErrInvalidList, "list %d", l.h))
	}
	return l.e.headers.Get(l.h)
}

func (l List[T]) Count() int {
	return l.header().length
}

func (l List[T]) Position() Position {
	return l.header().cur.pos
}

// First moves the cursor to the first item and returns it. On an empty list
// the cursor goes before the head.
func (l List[T]) First() (T, bool) {
	hd := l.header()
	if hd.head == pool.Nil {
		hd.cur.beforeHead()
	} else {
		hd.cur.on(hd.head)
	}
	return l.current(hd)
}

// Last moves the cursor to the last item and returns it. On an empty list
// the cursor goes after the tail.
func (l List[T]) Last() (T, bool) {
	hd := l.header()
	if hd.tail == pool.Nil {
		hd.cur.afterTail()
	} else {
		hd.cur.on(hd.tail)
	}
	return l.current(hd)
}

// Next advances the cursor by one item. Advancing past the last item leaves
// the cursor after the tail, where it stays.
func (l List[T]) Next() (T, bool) {
	hd := l.header()
	l.next(hd)
	return l.current(hd)
}

// Prev backs the cursor up by one item. Backing up past the first item
// leaves the cursor before the head, where it stays.
func (l List[T]) Prev() (T, bool) {
	hd := l.header()
	switch hd.cur.pos {
	case OnItem:
		if hd.cur.node == hd.head {
			hd.cur.beforeHead()
		} else {
			hd.cur.on(l.e.node(hd.cur.node).prev)
		}
	case AfterTail:
		if hd.tail != pool.Nil {
			hd.cur.on(hd.tail)
		}
	}
	return l.current(hd)
}

func (l List[T]) Current() (T, bool) {
	return l.current(l.header())
}

// Items returns the items from head to tail. The cursor is not moved.
func (l List[T]) Items() []T {
	hd := l.header()
	items := make([]T, 0, hd.length)
	for h := hd.head; h != pool.Nil; {
		n := l.e.node(h)
		items = append(items, n.data)
		h = n.next
	}
	return items
}

func (l List[T]) next(hd *header) {
	switch hd.cur.pos {
	case OnItem:
		if next := l.e.node(hd.cur.node).next; next != pool.Nil {
			hd.cur.on(next)
		} else {
			hd.cur.afterTail()
		}
	case BeforeHead:
		// an empty list keeps the cursor before the head
		if hd.head != pool.Nil {
			hd.cur.on(hd.head)
		}
	}
}

func (l List[T]) current(hd *header) (item T, ok bool) {
	if hd.cur.pos != OnItem {
		return item, false
	}
	return l.e.node(hd.cur.node).data, true
}
