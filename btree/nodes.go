package btree

// node is the one node shape for leaves and intermediate nodes.
//
// A node without children is a leaf. An intermediate node holds exactly
// len(keys)+1 children, and all keys in children[i] sort before keys[i],
// all keys in children[i+1] sort after it.
type node[K any] struct {
	// keys is strictly increasing. It has capacity for one key of transient
	// overflow before a split.
	keys []K
	// children is exclusively owned by the node; nil for leaves.
	children []*node[K]
}

func (n *node[K]) isLeaf() bool { return len(n.children) == 0 }

func (t *Tree[K]) maxKeys() int {
	return 2*t.cfg.Degree - 1
}

func (t *Tree[K]) minKeys() int {
	return t.cfg.Degree - 1
}

// canLend reports whether n may give away a key without becoming deficient.
func (t *Tree[K]) canLend(n *node[K]) bool {
	return len(n.keys) > t.minKeys()
}

func (t *Tree[K]) overflow(n *node[K]) bool {
	return len(n.keys) > t.maxKeys()
}

func (t *Tree[K]) underflow(n *node[K]) bool {
	return len(n.keys) < t.minKeys()
}
