package list

import "go-poollist/pkg/pool"

// Add inserts item directly after the current item and makes it current.
// With the cursor before the head the item becomes the new head; after the
// tail it becomes the new tail. The list is left unchanged if the node pool
// is exhausted.
func (l List[T]) Add(item T) error {
	hd := l.header()
	h, err := l.e.newNode(item)
	if err != nil {
		return err
	}

	l.linkAfterCursor(hd, h)
	return nil
}

// Insert inserts item directly before the current item and makes it current.
// Off-list cursors behave as in Add.
func (l List[T]) Insert(item T) error {
	hd := l.header()
	h, err := l.e.newNode(item)
	if err != nil {
		return err
	}

	l.linkBeforeCursor(hd, h)
	return nil
}

// Append adds item after the tail and makes it current.
func (l List[T]) Append(item T) error {
	hd := l.header()
	h, err := l.e.newNode(item)
	if err != nil {
		return err
	}

	if hd.tail != pool.Nil {
		hd.cur.on(hd.tail)
	}
	l.linkAfterCursor(hd, h)
	return nil
}

// Prepend adds item before the head and makes it current.
func (l List[T]) Prepend(item T) error {
	hd := l.header()
	h, err := l.e.newNode(item)
	if err != nil {
		return err
	}

	if hd.head != pool.Nil {
		hd.cur.on(hd.head)
	}
	l.linkBeforeCursor(hd, h)
	return nil
}

func (l List[T]) linkAfterCursor(hd *header, h pool.Handle) {
	if hd.cur.pos != OnItem {
		l.linkBoundary(hd, h)
	} else {
		cur := l.e.node(hd.cur.node)
		n := l.e.node(h)
		n.prev = hd.cur.node
		n.next = cur.next
		if cur.next != pool.Nil {
			l.e.node(cur.next).prev = h
		} else {
			hd.tail = h
		}
		cur.next = h
	}

	hd.cur.on(h)
	hd.length++
}

func (l List[T]) linkBeforeCursor(hd *header, h pool.Handle) {
	if hd.cur.pos != OnItem {
		l.linkBoundary(hd, h)
	} else {
		cur := l.e.node(hd.cur.node)
		n := l.e.node(h)
		n.next = hd.cur.node
		n.prev = cur.prev
		if cur.prev != pool.Nil {
			l.e.node(cur.prev).next = h
		} else {
			hd.head = h
		}
		cur.prev = h
	}

	hd.cur.on(h)
	hd.length++
}

// linkBoundary links h at the end the off-list cursor points at. Add and
// Insert share it: a cursor with no item has no side to tell apart.
func (l List[T]) linkBoundary(hd *header, h pool.Handle) {
	n := l.e.node(h)
	if hd.cur.pos == BeforeHead {
		n.prev = pool.Nil
		n.next = hd.head
		if hd.head != pool.Nil {
			l.e.node(hd.head).prev = h
		} else {
			hd.tail = h
		}
		hd.head = h
		return
	}

	n.next = pool.Nil
	n.prev = hd.tail
	if hd.tail != pool.Nil {
		l.e.node(hd.tail).next = h
	} else {
		hd.head = h
	}
	hd.tail = h
}
