// Package splay implements a self-adjusting binary search tree over the
// fixed key set 1..n. Splaying a key moves its node to the root through a
// sequence of local rotations; repeated splays give amortized logarithmic
// access time without any explicit balance bookkeeping.
//
// The key set is fixed at construction and keys are looked up by position
// in an arena, never by value comparison, so there is no Insert or Delete.
package splay

// Tree is a splay tree over the keys 1..n. It is not safe for concurrent
// use; the caller must serialize access.
//
// Invariants:
//   - In-order traversal always yields 1, 2, ..., n. Rotations rearrange
//     structure within a subtree's key span and never reorder keys.
//   - If a node is the left or right child of another, its parent link
//     points back at that node.
//   - Exactly one node, the root, has no parent, and every node is
//     reachable from it.
type Tree struct {
	root  int
	nodes []node
}

// New creates a Tree with keys 1..n arranged in a chain rooted at n:
//
//	    n
//	   /
//	 ...
//	 /
//	1
//
// The key set is fixed for the lifetime of the tree. New(0) returns an
// empty tree, on which Splay must not be called. New panics if n is
// negative.
func New(n int) *Tree {
	if n < 0 {
		panic("cannot create a tree with negative size")
	}

	t := &Tree{root: none}
	if n == 0 {
		return t
	}

	t.nodes = make([]node, n)
	for i := range t.nodes {
		// i-1 is none for the first slot
		t.nodes[i] = node{parent: i + 1, left: i - 1, right: none}
	}
	t.nodes[n-1].parent = none
	t.root = n - 1

	return t
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the key currently at the root.
// ok is false if the tree is empty.
func (t *Tree) Root() (key int, ok bool) {
	return t.keyOf(t.root)
}

// Parent returns the key of key's parent. ok is false if key is the root.
// Parent panics if key is outside [1, Len()].
func (t *Tree) Parent(key int) (int, bool) {
	return t.keyOf(t.nodes[t.index(key)].parent)
}

// Left returns the key of key's left child. ok is false if there is none.
// Left panics if key is outside [1, Len()].
func (t *Tree) Left(key int) (int, bool) {
	return t.keyOf(t.nodes[t.index(key)].left)
}

// Right returns the key of key's right child. ok is false if there is none.
// Right panics if key is outside [1, Len()].
func (t *Tree) Right(key int) (int, bool) {
	return t.keyOf(t.nodes[t.index(key)].right)
}

// Depth returns the number of edges between key's node and the root.
// Depth panics if key is outside [1, Len()].
func (t *Tree) Depth(key int) int {
	d := 0
	for i := t.nodes[t.index(key)].parent; i != none; i = t.nodes[i].parent {
		d++
	}
	return d
}

// Splay moves the node with the given key to the root. Each step lifts the
// node by one or two levels, so a splay from depth d takes at most d steps.
// A single splay can cost up to n-1 steps (splaying 1 on a fresh chain
// does), but over a sequence of splays the amortized cost is O(log n).
// Splaying the key already at the root does nothing.
//
// Splay panics if key is outside [1, Len()]. On an empty tree no key is in
// range, so every call panics.
func (t *Tree) Splay(key int) {
	x := t.index(key)
	for t.root != x {
		t.splayStep(x)
	}
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
// A well-formed tree always yields 1, 2, ..., n.
func (t *Tree) InOrder(f func(k int) bool) {
	if t.root == none {
		return
	}
	t.visitInOrder(t.root, f)
}

func (t *Tree) visitInOrder(i int, f func(k int) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	n := t.nodes[i]

	if n.left != none {
		if !t.visitInOrder(n.left, f) {
			return false
		}
	}

	if !f(i + 1) {
		return false
	}

	if n.right != none {
		return t.visitInOrder(n.right, f)
	}

	return true
}
