package list

import (
	"go-poollist/pkg/customerrors"
	"go-poollist/pkg/pool"

	"github.com/pkg/errors"
)

// Remove takes the current item out of the list and returns it. The item
// after it becomes current, or the cursor goes after the tail if it was the
// last one. Nothing happens when the cursor is off the list.
func (l List[T]) Remove() (T, bool) {
	return l.remove(l.header())
}

// Trim removes the last item and returns it. The new last item becomes
// current. Nothing happens on an empty list.
func (l List[T]) Trim() (item T, ok bool) {
	hd := l.header()
	if hd.tail == pool.Nil {
		return item, false
	}

	hd.cur.on(hd.tail)
	item, ok = l.remove(hd)
	if hd.tail != pool.Nil {
		hd.cur.on(hd.tail)
	}
	return item, ok
}

// Free removes every item from head to tail, calling destructor on each one,
// and releases the list. l must not be used afterwards.
func (l List[T]) Free(destructor func(item T)) {
	hd := l.header()
	if destructor == nil {
		panic(errors.WithStack(customerrors.ErrNilDestructor))
	}

	for hd.length > 0 {
		hd.cur.on(hd.head)
		destructor(l.e.node(hd.head).data)
		l.remove(hd)
	}
	l.e.headers.Release(l.h)
}

func (l List[T]) remove(hd *header) (item T, ok bool) {
	if hd.cur.pos != OnItem {
		return item, false
	}

	h := hd.cur.node
	n := l.e.node(h)
	item = n.data

	if n.next != pool.Nil {
		l.e.node(n.next).prev = n.prev
	} else {
		hd.tail = n.prev
	}
	if n.prev != pool.Nil {
		l.e.node(n.prev).next = n.next
	} else {
		hd.head = n.next
	}

	if n.next != pool.Nil {
		hd.cur.on(n.next)
	} else {
		hd.cur.afterTail()
	}

	l.e.nodes.Release(h)
	hd.length--
	return item, true
}
