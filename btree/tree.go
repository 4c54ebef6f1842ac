package btree

import (
	"cmp"
	"fmt"
)

// Tree is an in-memory B-tree holding an ordered set of unique keys.
//
// K is the key type; its order is defined by Config.Compare. The zero Tree is
// not usable, create trees with New or NewOrdered.
type Tree[K any] struct {
	cfg    Config[K]
	root   *node[K]
	height int // 0 means empty tree
	count  int
	stats  Stats
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree of minimum degree degree for a key type
// with a natural order. A degree of 0 selects DefaultDegree.
func NewOrdered[K cmp.Ordered](degree int) (*Tree[K], error) {
	return New(Config[K]{
		Degree:  degree,
		Compare: cmp.Compare[K],
	})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// MinDegree returns the minimum degree B of the tree.
func (t *Tree[K]) MinDegree() int {
	return t.cfg.Degree
}

// MaxKeys returns the maximum number of keys per node, 2B-1.
func (t *Tree[K]) MaxKeys() int {
	return t.maxKeys()
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Insert adds key to the tree. If key is already present, Insert returns an
// error matching btreeset.ErrKeyAlreadyExists and leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		t.root = t.makeNode([]K{key}, nil)
		t.height = 1
		t.count = 1
		return nil
	}
	result, hoist, sibling := t.insertRecursive(t.root, key)
	switch result {
	case alreadyExists:
		return keyExists(key)
	case split:
		t.root = t.makeNode([]K{hoist}, []*node[K]{t.root, sibling})
		t.height++
		t.stats.RootSplits++
		tracer().Debugf("btree: root split, height is now %d", t.height)
	}
	t.count++
	return nil
}

// Remove deletes key from the tree and returns the key as it was stored. If
// key is not present, Remove returns an error matching btreeset.ErrKeyNotFound
// and leaves the tree unchanged.
func (t *Tree[K]) Remove(key K) (K, error) {
	var zero K
	if t == nil || t.root == nil {
		return zero, keyNotFound(key)
	}
	removedKey, state := t.deleteRecursive(t.root, key)
	if state == notFound {
		return zero, keyNotFound(key)
	}
	t.count--
	t.collapseRoot()
	return removedKey, nil
}

// collapseRoot canonicalizes the root after a removal.
//
// An intermediate root without keys has exactly one child, which becomes the
// new root. A leaf root without keys leaves the tree empty.
func (t *Tree[K]) collapseRoot() {
	if len(t.root.keys) > 0 {
		return
	}
	if t.root.isLeaf() {
		t.root = nil
		t.height = 0
		return
	}
	assert(len(t.root.children) == 1, "collapseRoot: empty root must have exactly one child")
	t.root = t.root.children[0]
	t.height--
	t.stats.RootCollapses++
	tracer().Debugf("btree: root collapsed, height is now %d", t.height)
}

// insertion is the result of inserting into a subtree.
type insertion uint8

const (
	inserted insertion = iota
	alreadyExists
	split // the subtree root split; hoisted key and new sibling go to the parent
)

// insertRecursive inserts key into the subtree rooted at n and propagates
// split results.
//
// The returned hoisted key and sibling are valid only for result split; the
// sibling then belongs immediately right of n in n's parent.
func (t *Tree[K]) insertRecursive(n *node[K], key K) (result insertion, hoist K, sibling *node[K]) {
	assert(n != nil, "insertRecursive called with nil node")
	idx, found := t.find(n, key)
	if found {
		return alreadyExists, hoist, nil
	}
	if n.isLeaf() {
		n.keys = insertAt(n.keys, idx, key)
	} else {
		childResult, childHoist, childSibling := t.insertRecursive(n.children[idx], key)
		if childResult != split {
			return childResult, hoist, nil
		}
		n.keys = insertAt(n.keys, idx, childHoist)
		n.children = insertAt(n.children, idx+1, childSibling)
	}
	if !t.overflow(n) {
		return inserted, hoist, nil
	}
	hoist, sibling = t.splitNode(n)
	return split, hoist, sibling
}

// removal is the result of removing from a subtree.
type removal uint8

const (
	notFound  removal = iota
	removed           // subtree root is within occupancy bounds
	deficient         // subtree root fell below B-1 keys; the parent has to repair it
)

func (t *Tree[K]) removalState(n *node[K]) removal {
	if t.underflow(n) {
		return deficient
	}
	return removed
}

// deleteRecursive removes key from the subtree rooted at n.
//
// Nothing is mutated on a path that reports notFound: nodes are changed only
// after the key has been removed further down.
func (t *Tree[K]) deleteRecursive(n *node[K], key K) (K, removal) {
	assert(n != nil, "deleteRecursive called with nil node")
	var zero K
	idx, found := t.find(n, key)
	switch {
	case n.isLeaf() && !found:
		return zero, notFound
	case n.isLeaf():
		var k K
		n.keys, k = removeAt(n.keys, idx)
		return k, t.removalState(n)
	case found:
		return t.removeSeparator(n, idx), t.removalState(n)
	}
	k, state := t.deleteRecursive(n.children[idx], key)
	if state != deficient {
		return k, state
	}
	t.rebalanceChild(n, idx)
	return k, t.removalState(n)
}
