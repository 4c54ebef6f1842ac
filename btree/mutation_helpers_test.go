package btree

import (
	"slices"
	"testing"
)

func leaf(keys ...int) *node[int] {
	return &node[int]{keys: keys}
}

func inner(keys []int, children ...*node[int]) *node[int] {
	return &node[int]{keys: keys, children: children}
}

// adopt installs root as the root of tree, deriving height and length.
func adopt(t *testing.T, tree *Tree[int], root *node[int]) {
	t.Helper()
	tree.root = root
	tree.height = 0
	for n := root; n != nil; {
		tree.height++
		if n.isLeaf() {
			break
		}
		n = n.children[0]
	}
	tree.count = len(collectKeys(tree))
	if err := tree.Check(); err != nil {
		t.Fatalf("hand-built tree is invalid: %v", err)
	}
}

func assertKeys(t *testing.T, what string, got []int, want ...int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("%s: keys = %v, want %v", what, got, want)
	}
}

func TestSplitLeaf(t *testing.T) {
	tree := makeIntTree(t, 2)
	n := tree.makeNode([]int{1, 2, 3, 4}, nil)
	hoist, sibling := tree.splitNode(n)
	if hoist != 2 {
		t.Fatalf("expected hoisted key 2, got %d", hoist)
	}
	assertKeys(t, "left", n.keys, 1)
	assertKeys(t, "right", sibling.keys, 3, 4)
	if !sibling.isLeaf() {
		t.Fatalf("sibling of a leaf must be a leaf")
	}
	if tree.Stats().Splits != 1 {
		t.Fatalf("split not counted")
	}
}

func TestSplitInternal(t *testing.T) {
	tree := makeIntTree(t, 2)
	kids := []*node[int]{leaf(5), leaf(15), leaf(25), leaf(35), leaf(45)}
	n := tree.makeNode([]int{10, 20, 30, 40}, kids)
	hoist, sibling := tree.splitNode(n)
	if hoist != 20 {
		t.Fatalf("expected hoisted key 20, got %d", hoist)
	}
	assertKeys(t, "left", n.keys, 10)
	assertKeys(t, "right", sibling.keys, 30, 40)
	if len(n.children) != 2 || len(sibling.children) != 3 {
		t.Fatalf("unexpected child split %d / %d", len(n.children), len(sibling.children))
	}
	if n.children[1] != kids[1] || sibling.children[0] != kids[2] {
		t.Fatalf("children not moved with their keys")
	}
}

func TestRotateRightMovesKeyThroughParent(t *testing.T) {
	tree := makeIntTree(t, 2)
	parent := inner([]int{10}, leaf(1, 5), leaf())
	tree.rotateRight(parent, 0)
	assertKeys(t, "parent", parent.keys, 5)
	assertKeys(t, "left", parent.children[0].keys, 1)
	assertKeys(t, "right", parent.children[1].keys, 10)
}

func TestRotateLeftMovesKeyThroughParent(t *testing.T) {
	tree := makeIntTree(t, 2)
	parent := inner([]int{10}, leaf(), leaf(20, 30))
	tree.rotateLeft(parent, 0)
	assertKeys(t, "parent", parent.keys, 20)
	assertKeys(t, "left", parent.children[0].keys, 10)
	assertKeys(t, "right", parent.children[1].keys, 30)
}

func TestRotateCarriesChildLinks(t *testing.T) {
	tree := makeIntTree(t, 2)
	a, b, c, d, e := leaf(1), leaf(3), leaf(5), leaf(7), leaf(9)
	left := inner([]int{2, 4}, a, b, c)
	right := inner([]int{}, d)
	parent := inner([]int{6}, left, right)
	tree.rotateRight(parent, 0)
	assertKeys(t, "parent", parent.keys, 4)
	assertKeys(t, "right", right.keys, 6)
	if len(left.children) != 2 || len(right.children) != 2 || right.children[0] != c {
		t.Fatalf("child link did not travel with rotated key")
	}
	right.children = append(right.children, e)
	right.keys = append(right.keys, 8)
	tree.rotateLeft(parent, 0)
	assertKeys(t, "parent", parent.keys, 6)
	assertKeys(t, "left", left.keys, 2, 4)
	if left.children[2] != c {
		t.Fatalf("child link did not travel back")
	}
}

func TestRotateFromMinimalSiblingPanics(t *testing.T) {
	tree := makeIntTree(t, 3)
	parent := inner([]int{10}, leaf(1, 2), leaf(11))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when borrowing from a sibling at minimum occupancy")
		}
	}()
	tree.rotateRight(parent, 0)
}

func TestMergeChildrenPullsSeparatorDown(t *testing.T) {
	tree := makeIntTree(t, 2)
	parent := inner([]int{5, 20}, leaf(1), leaf(), leaf(30))
	tree.mergeChildren(parent, 0)
	assertKeys(t, "parent", parent.keys, 20)
	assertKeys(t, "merged", parent.children[0].keys, 1, 5)
	if len(parent.children) != 2 {
		t.Fatalf("expected 2 children after merge, have %d", len(parent.children))
	}
	if tree.Stats().Merges != 1 {
		t.Fatalf("merge not counted")
	}
}

func TestRebalanceLastChildLeansLeft(t *testing.T) {
	tree := makeIntTree(t, 2)
	parent := inner([]int{10, 20}, leaf(1), leaf(11, 12), leaf())
	tree.rebalanceChild(parent, 2)
	assertKeys(t, "parent", parent.keys, 10, 12)
	assertKeys(t, "last", parent.children[2].keys, 20)

	parent = inner([]int{10, 20}, leaf(1), leaf(11), leaf())
	tree.rebalanceChild(parent, 2)
	assertKeys(t, "parent", parent.keys, 10)
	assertKeys(t, "merged", parent.children[1].keys, 11, 20)
}

func TestRebalanceOtherChildLeansRight(t *testing.T) {
	tree := makeIntTree(t, 2)
	// left sibling could lend, but only the last child borrows from the left
	parent := inner([]int{10, 20}, leaf(1, 2, 3), leaf(), leaf(21, 22))
	tree.rebalanceChild(parent, 1)
	assertKeys(t, "parent", parent.keys, 10, 21)
	assertKeys(t, "middle", parent.children[1].keys, 20)

	parent = inner([]int{10, 20}, leaf(1, 2, 3), leaf(), leaf(21))
	tree.rebalanceChild(parent, 1)
	assertKeys(t, "parent", parent.keys, 10)
	assertKeys(t, "merged", parent.children[1].keys, 20, 21)
	assertKeys(t, "first", parent.children[0].keys, 1, 2, 3)
}

func TestTakeLastAndFirstRepairPath(t *testing.T) {
	tree := makeIntTree(t, 2)
	root := inner([]int{10}, inner([]int{4}, leaf(2), leaf(6)), inner([]int{14}, leaf(12), leaf(16)))
	adopt(t, tree, root)
	k, state := tree.takeLast(root.children[1])
	if k != 16 {
		t.Fatalf("takeLast = %d, want 16", k)
	}
	if state != deficient {
		t.Fatalf("expected deficient subtree after merging its leaves")
	}
	assertKeys(t, "right subtree", root.children[1].children[0].keys, 12, 14)

	tree = makeIntTree(t, 2)
	root = inner([]int{10}, inner([]int{4}, leaf(2), leaf(6, 8)), inner([]int{14}, leaf(12), leaf(16)))
	adopt(t, tree, root)
	k, state = tree.takeFirst(root.children[0])
	if k != 2 || state != removed {
		t.Fatalf("takeFirst = %d (%d), want 2 (removed)", k, state)
	}
	assertKeys(t, "left subtree", root.children[0].keys, 6)
	assertKeys(t, "left leaf", root.children[0].children[0].keys, 4)
}

func TestRemoveSeparatorCases(t *testing.T) {
	// predecessor from the left child
	tree := makeIntTree(t, 2)
	adopt(t, tree, inner([]int{10}, leaf(5, 7), leaf(12)))
	if k, err := tree.Remove(10); err != nil || k != 10 {
		t.Fatalf("remove 10 = %d, %v", k, err)
	}
	assertKeys(t, "root", tree.root.keys, 7)

	// successor from the right child
	tree = makeIntTree(t, 2)
	adopt(t, tree, inner([]int{10}, leaf(5), leaf(12, 14)))
	if k, err := tree.Remove(10); err != nil || k != 10 {
		t.Fatalf("remove 10 = %d, %v", k, err)
	}
	assertKeys(t, "root", tree.root.keys, 12)

	// neither child can spare: merge, then collapse the root
	tree = makeIntTree(t, 2)
	adopt(t, tree, inner([]int{10}, leaf(5), leaf(12)))
	if k, err := tree.Remove(10); err != nil || k != 10 {
		t.Fatalf("remove 10 = %d, %v", k, err)
	}
	if tree.Height() != 1 || !tree.root.isLeaf() {
		t.Fatalf("expected collapsed leaf root, height=%d", tree.Height())
	}
	assertKeys(t, "root", tree.root.keys, 5, 12)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRemoveSeparatorMergingIntermediateChildren(t *testing.T) {
	tree := makeIntTree(t, 2)
	root := inner([]int{10},
		inner([]int{4}, leaf(2), leaf(6)),
		inner([]int{14}, leaf(12), leaf(16)))
	adopt(t, tree, root)
	if k, err := tree.Remove(10); err != nil || k != 10 {
		t.Fatalf("remove 10 = %d, %v", k, err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after removing merged separator: %v", err)
	}
	assertKeys(t, "in-order", collectKeys(tree), 2, 4, 6, 12, 14, 16)
	if tree.Height() != 2 {
		t.Fatalf("expected height 2 after root collapse, have %d", tree.Height())
	}
}
