package list

import "go-poollist/pkg/pool"

// Position is the state of a list cursor. A cursor without an item is either
// before the first item or after the last one; the two behave differently
// for Next, Prev and the insertion operations.
type Position uint8

const (
	BeforeHead Position = iota
	OnItem
	AfterTail
)

func (p Position) String() string {
	switch p {
	case BeforeHead:
		return "before-head"
	case OnItem:
		return "on-item"
	case AfterTail:
		return "after-tail"
	}
	return "unknown"
}

// cursor is valid only while pos == OnItem.
type cursor struct {
	pos  Position
	node pool.Handle
}

func (c *cursor) on(h pool.Handle) {
	c.pos = OnItem
	c.node = h
}

func (c *cursor) beforeHead() {
	c.pos = BeforeHead
	c.node = pool.Nil
}

func (c *cursor) afterTail() {
	c.pos = AfterTail
	c.node = pool.Nil
}
