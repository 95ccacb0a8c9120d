package list

import (
	"go-poollist/pkg/pool"

	"github.com/pkg/errors"
)

// Validate walks the list and checks its linkage: head, tail and length
// agree, every back link mirrors its forward link, and the cursor is either
// off the list or on one of its nodes.
func (l List[T]) Validate() error {
	hd := l.header()

	if (hd.head == pool.Nil) != (hd.tail == pool.Nil) || (hd.head == pool.Nil) != (hd.length == 0) {
		return errors.Wrapf(ErrCorrupted, "head %d, tail %d, length %d", hd.head, hd.tail, hd.length)
	}

	count := 0
	cursorSeen := false
	prev := pool.Nil
	for h := hd.head; h != pool.Nil; count++ {
		if count >= hd.length {
			return errors.Wrapf(ErrCorrupted, "more than %d nodes reachable from head", hd.length)
		}
		if l.e.nodes.IsFree(h) {
			return errors.Wrapf(ErrCorrupted, "node %d is not in use", h)
		}

		n := l.e.node(h)
		if n.prev != prev {
			return errors.Wrapf(ErrCorrupted, "node %d links back to %d, expected %d", h, n.prev, prev)
		}
		if h == hd.cur.node {
			cursorSeen = true
		}

		prev = h
		h = n.next
	}

	if count != hd.length {
		return errors.Wrapf(ErrCorrupted, "%d nodes reachable, length %d", count, hd.length)
	}
	if prev != hd.tail {
		return errors.Wrapf(ErrCorrupted, "last reachable node %d, tail %d", prev, hd.tail)
	}
	if hd.cur.pos == OnItem && !cursorSeen {
		return errors.Wrapf(ErrCorrupted, "cursor on node %d outside of the list", hd.cur.node)
	}
	return nil
}
