package splay

// stepCase classifies the local topology around a node about to be splayed
// one step. Writing x for the node, y for its parent and z for its
// grandparent, exactly one case applies to any non-root x in a well-formed
// tree.
type stepCase int

const (
	// zigLeft: y is the root and x is its left child.
	zigLeft stepCase = iota
	// zigRight: y is the root and x is its right child.
	zigRight
	// zigZagLeft: x is y's right child, y is z's left child.
	zigZagLeft
	// zigZagRight: x is y's left child, y is z's right child.
	zigZagRight
	// zigZigLeft: x and y are both left children.
	zigZigLeft
	// zigZigRight: x and y are both right children.
	zigZigRight
)

func (c stepCase) String() string {
	switch c {
	case zigLeft:
		return "zig-left"
	case zigRight:
		return "zig-right"
	case zigZagLeft:
		return "zig-zag-left"
	case zigZagRight:
		return "zig-zag-right"
	case zigZigLeft:
		return "zig-zig-left"
	case zigZigRight:
		return "zig-zig-right"
	default:
		return "<invalid stepCase>"
	}
}

// classify determines which splay step applies to x.
// x must not be the root. Reaching the fallthrough panic means some earlier
// mutation broke the parent/child mirror invariant; that is fatal, not
// recoverable.
func (t *Tree) classify(x int) stepCase {
	y := t.nodes[x].parent
	if y == none {
		panic("cannot classify the root")
	}

	xLeft := t.nodes[y].left == x
	xRight := t.nodes[y].right == x

	z := t.nodes[y].parent
	if z == none {
		switch {
		case xLeft:
			return zigLeft
		case xRight:
			return zigRight
		}
	} else {
		yLeft := t.nodes[z].left == y
		yRight := t.nodes[z].right == y

		switch {
		case xRight && yLeft:
			return zigZagLeft
		case xLeft && yRight:
			return zigZagRight
		case xLeft && yLeft:
			return zigZigLeft
		case xRight && yRight:
			return zigZigRight
		}
	}

	panic("tree is malformed: node is not a child of its parent")
}

// splayStep moves x one level toward the root in the zig cases and two
// levels in the zig-zag and zig-zig cases.
//
//	zig:      y          x      zig-zag:    z         x      zig-zig:      z        x
//	         /    ->      \                /         / \                  /          \
//	        x              y              y    ->   y   z                y    ->      y
//	                                       \                            /              \
//	                                        x                          x                z
//
// The zig-zig order matters: the grandparent edge rotates first, which is
// what separates splaying from naive move-to-root rotation.
func (t *Tree) splayStep(x int) {
	y := t.nodes[x].parent
	if y == none {
		panic("cannot splayStep on the root")
	}
	z := t.nodes[y].parent

	switch c := t.classify(x); c {
	case zigLeft:
		t.rotateRight(y)
	case zigRight:
		t.rotateLeft(y)
	case zigZagLeft:
		t.rotateLeft(y)
		t.rotateRight(z)
	case zigZagRight:
		t.rotateRight(y)
		t.rotateLeft(z)
	case zigZigLeft:
		t.rotateRight(z)
		t.rotateRight(y)
	case zigZigRight:
		t.rotateLeft(z)
		t.rotateLeft(y)
	default:
		panic("unreachable")
	}
}
