package list

// Comparator reports whether item matches arg. It must not modify the list
// being searched.
type Comparator[T, A any] func(item T, arg A) bool

// Find walks the list from the current item (or from the head when the
// cursor is before it) and stops at the first item matching the predicate,
// leaving the cursor on it. Without a match the cursor ends after the tail.
func (l List[T]) Find(match func(item T) bool) (item T, ok bool) {
	hd := l.header()
	if hd.cur.pos == BeforeHead {
		l.next(hd)
	}

	for hd.cur.pos == OnItem {
		if data := l.e.node(hd.cur.node).data; match(data) {
			return data, true
		}
		l.next(hd)
	}

	hd.cur.afterTail()
	return item, false
}

// Search is Find with a comparator and a comparison argument.
func Search[T, A any](l List[T], cmp Comparator[T, A], arg A) (T, bool) {
	return l.Find(func(item T) bool {
		return cmp(item, arg)
	})
}
