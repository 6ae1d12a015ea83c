package iterator

import (
	"go.lepak.sg/splaytree/splay"
)

var _ Iterator = (*InOrder)(nil)

// InOrder is an in-order iterator over a splay tree. It walks the current
// structure through the tree's neighbor accessors, so for a well-formed
// tree it yields 1, 2, ..., n regardless of shape.
// The result of splaying while iterating is undefined.
type InOrder struct {
	t  *splay.Tree
	at int // current key, 0 before the first Next
}

// NewInOrder returns a new InOrder iterator over t.
func NewInOrder(t *splay.Tree) *InOrder {
	return &InOrder{t: t}
}

// Next returns true if there is a next key to yield with Item.
// Next must always be called before Item. Once Next has returned false
// it keeps returning false.
func (i *InOrder) Next() bool {
	if i.at == 0 {
		root, ok := i.t.Root()
		if !ok {
			return false
		}

		i.at = i.leftmost(root)
		return true
	}

	if r, ok := i.t.Right(i.at); ok {
		i.at = i.leftmost(r)
		return true
	}

	// climb until we come up a left edge; may not succeed
	at := i.at
	for {
		p, ok := i.t.Parent(at)
		if !ok {
			return false
		}

		if l, _ := i.t.Left(p); l == at {
			i.at = p
			return true
		}

		at = p
	}
}

// Item returns the current key of the iterator.
func (i *InOrder) Item() int {
	return i.at
}

func (i *InOrder) leftmost(k int) int {
	for {
		l, ok := i.t.Left(k)
		if !ok {
			return k
		}
		k = l
	}
}
