package splay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplayStep(t *testing.T) {
	tests := []struct {
		name     string
		create   func() *Tree
		x        int // key to step
		want     stepCase
		wantDrop int // depth decrease from one step
		wantRoot int // root key after one step
	}{
		{
			name:     "zig left",
			create:   func() *Tree { return New(2) },
			x:        1,
			want:     zigLeft,
			wantDrop: 1,
			wantRoot: 1,
		},
		{
			name: "zig right",
			create: func() *Tree {
				// 1
				// └─R─2
				t := &Tree{root: 0, nodes: make([]node, 2)}
				t.nodes[0] = node{parent: none, left: none, right: 1}
				t.nodes[1] = node{parent: 0, left: none, right: none}
				return t
			},
			x:        2,
			want:     zigRight,
			wantDrop: 1,
			wantRoot: 2,
		},
		{
			name: "zig-zag inner left",
			create: func() *Tree {
				// 3
				// └─L─1
				//     └─R─2
				t := &Tree{root: 2, nodes: make([]node, 3)}
				t.nodes[2] = node{parent: none, left: 0, right: none}
				t.nodes[0] = node{parent: 2, left: none, right: 1}
				t.nodes[1] = node{parent: 0, left: none, right: none}
				return t
			},
			x:        2,
			want:     zigZagLeft,
			wantDrop: 2,
			wantRoot: 2,
		},
		{
			name: "zig-zag inner right",
			create: func() *Tree {
				// 1
				// └─R─3
				//     └─L─2
				t := &Tree{root: 0, nodes: make([]node, 3)}
				t.nodes[0] = node{parent: none, left: none, right: 2}
				t.nodes[2] = node{parent: 0, left: 1, right: none}
				t.nodes[1] = node{parent: 2, left: none, right: none}
				return t
			},
			x:        2,
			want:     zigZagRight,
			wantDrop: 2,
			wantRoot: 2,
		},
		{
			name:     "zig-zig outer left",
			create:   func() *Tree { return New(3) },
			x:        1,
			want:     zigZigLeft,
			wantDrop: 2,
			wantRoot: 1,
		},
		{
			name: "zig-zig outer right",
			create: func() *Tree {
				// 1
				// └─R─2
				//     └─R─3
				t := &Tree{root: 0, nodes: make([]node, 3)}
				t.nodes[0] = node{parent: none, left: none, right: 1}
				t.nodes[1] = node{parent: 0, left: none, right: 2}
				t.nodes[2] = node{parent: 1, left: none, right: none}
				return t
			},
			x:        3,
			want:     zigZigRight,
			wantDrop: 2,
			wantRoot: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.create()
			x := tr.index(tt.x)

			require.Equal(t, tt.want, tr.classify(x))

			before := tr.Depth(tt.x)
			tr.splayStep(x)

			assert.Equal(t, tt.wantDrop, before-tr.Depth(tt.x))

			root, ok := tr.Root()
			require.True(t, ok)
			assert.Equal(t, tt.wantRoot, root)

			checkWellFormed(t, tr)
		})
	}
}

func TestSplayStep_OnRoot(t *testing.T) {
	tr := New(3)

	assert.PanicsWithValue(t, "cannot splayStep on the root", func() {
		tr.splayStep(tr.root)
	})
	assert.PanicsWithValue(t, "cannot classify the root", func() {
		tr.classify(tr.root)
	})
}

func TestClassify_Malformed(t *testing.T) {
	// key 2 claims key 1 as its parent, but key 1 has no children.
	// classify must refuse rather than rotate a corrupted tree.
	tr := &Tree{root: 2, nodes: make([]node, 3)}
	tr.nodes[2] = node{parent: none, left: 0, right: none}
	tr.nodes[0] = node{parent: 2, left: none, right: none}
	tr.nodes[1] = node{parent: 0, left: none, right: none}

	assert.PanicsWithValue(t,
		"tree is malformed: node is not a child of its parent", func() {
			tr.classify(1)
		})

	// same corruption with the claimed parent at the root
	tr2 := &Tree{root: 0, nodes: make([]node, 2)}
	tr2.nodes[0] = node{parent: none, left: none, right: none}
	tr2.nodes[1] = node{parent: 0, left: none, right: none}

	assert.PanicsWithValue(t,
		"tree is malformed: node is not a child of its parent", func() {
			tr2.classify(1)
		})
}

func TestStepCase_String(t *testing.T) {
	assert.Equal(t, "zig-left", zigLeft.String())
	assert.Equal(t, "zig-zag-right", zigZagRight.String())
	assert.Equal(t, "zig-zig-right", zigZigRight.String())
	assert.Equal(t, "<invalid stepCase>", stepCase(99).String())
}
