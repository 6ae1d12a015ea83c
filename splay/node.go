package splay

import "fmt"

// none marks an absent parent or child link.
const none = -1

// node is one record in the tree's arena. Links are arena indices rather
// than pointers: the arena is the sole owner of every node, and a link is
// just a relation to another slot, so there is no ownership cycle to manage.
//
// Key k always lives at index k-1. The key is implied by the slot and never
// stored or moved; only the three links mutate.
type node struct {
	parent, left, right int
}

// index converts a 1-based key to its arena index.
// The key set is fixed at construction, so anything outside [1, Len()]
// is a caller error.
func (t *Tree) index(key int) int {
	if key < 1 || key > len(t.nodes) {
		panic(fmt.Sprintf("key %d out of range [1, %d]", key, len(t.nodes)))
	}
	return key - 1
}

// keyOf converts an arena index back to its key.
// ok is false for the absent link.
func (t *Tree) keyOf(i int) (key int, ok bool) {
	if i == none {
		return 0, false
	}
	return i + 1, true
}

// setLeft makes child the left child of parent and fixes child's parent
// link. child may be none.
func (t *Tree) setLeft(parent, child int) {
	t.nodes[parent].left = child
	if child != none {
		t.nodes[child].parent = parent
	}
}

// setRight makes child the right child of parent and fixes child's parent
// link. child may be none.
func (t *Tree) setRight(parent, child int) {
	t.nodes[parent].right = child
	if child != none {
		t.nodes[child].parent = parent
	}
}

// replaceChild swaps parent's child slot currently holding old for new.
// old and new must both be present.
func (t *Tree) replaceChild(parent, old, new int) {
	switch {
	case t.nodes[parent].left == old:
		t.nodes[parent].left = new
	case t.nodes[parent].right == old:
		t.nodes[parent].right = new
	default:
		panic("tree is malformed: old node is not a child of its parent")
	}

	t.nodes[new].parent = parent
}

// setRoot makes x the root and clears its parent link.
func (t *Tree) setRoot(x int) {
	t.root = x
	t.nodes[x].parent = none
}
