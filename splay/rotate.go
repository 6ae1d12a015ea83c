package splay

// rotateRight rotates the edge between y and its left child x.
// For example, this is the result of t.rotateRight(y):
//
//	     z              z
//	     |              |
//	  -> y              x
//	    / \            / \
//	   x   C    ->    A   y
//	  / \                / \
//	 A   B              B   C
//
// If y was the root, x becomes the new root; otherwise z's child slot that
// held y now holds x. The in-order sequence A x B y C is preserved, and the
// subtree that was rooted at y is now rooted at x with the same key span.
func (t *Tree) rotateRight(y int) {
	if y == none {
		panic("cannot rotateRight on an absent node")
	}

	x := t.nodes[y].left
	if x == none {
		panic("cannot rotateRight with no left child")
	}

	z := t.nodes[y].parent
	a, b, c := t.nodes[x].left, t.nodes[x].right, t.nodes[y].right

	t.setLeft(x, a)
	t.setRight(x, y)
	t.setLeft(y, b)
	t.setRight(y, c)

	if z == none {
		t.setRoot(x)
	} else {
		t.replaceChild(z, y, x)
	}
}

// rotateLeft rotates the edge between x and its right child y.
// It is the mirror of rotateRight, and its exact inverse:
//
//	   z                  z
//	   |                  |
//	-> x                  y
//	  / \                / \
//	 A   y      ->      x   C
//	    / \            / \
//	   B   C          A   B
//
// If x was the root, y becomes the new root. The in-order sequence
// A x B y C is preserved.
func (t *Tree) rotateLeft(x int) {
	if x == none {
		panic("cannot rotateLeft on an absent node")
	}

	y := t.nodes[x].right
	if y == none {
		panic("cannot rotateLeft with no right child")
	}

	z := t.nodes[x].parent
	a, b, c := t.nodes[x].left, t.nodes[y].left, t.nodes[y].right

	t.setRight(y, c)
	t.setLeft(y, x)
	t.setRight(x, b)
	t.setLeft(x, a)

	if z == none {
		t.setRoot(y)
	} else {
		t.replaceChild(z, x, y)
	}
}
