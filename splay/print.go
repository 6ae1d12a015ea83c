package splay

import (
	"strconv"
	"strings"
)

// String returns a string representation of the tree.
// New(3) after Splay(2) would look like this:
//
//	2
//	├─L─1
//	└─R─3
//
// An empty tree renders as the empty string.
func (t *Tree) String() string {
	if t.root == none {
		return ""
	}

	var sb strings.Builder
	t.printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func (t *Tree) printvisit(sb *strings.Builder, i int, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(strconv.Itoa(i + 1))
	sb.WriteRune('\n')

	n := t.nodes[i]

	if n.left != none {
		t.printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != none)
	}

	if n.right != none {
		t.printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
