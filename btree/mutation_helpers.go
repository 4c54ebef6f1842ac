package btree

// splitNode splits an overflowing node of 2B keys at index B.
//
// The node keeps keys[:B-1] and children[:B], keys[B-1] is hoisted, and the
// new right sibling receives keys[B:] and children[B:]. Both halves end up
// within occupancy bounds: B-1 keys on the left, B keys on the right.
func (t *Tree[K]) splitNode(n *node[K]) (hoist K, sibling *node[K]) {
	assert(n != nil, "splitNode called with nil node")
	assert(t.overflow(n), "splitNode called on node without overflow")
	b := t.cfg.Degree
	var tail []*node[K]
	if !n.isLeaf() {
		tail = n.children[b:]
	}
	sibling = t.makeNode(n.keys[b:], tail)
	hoist = n.keys[b-1]
	n.keys = truncate(n.keys, b-1)
	if !n.isLeaf() {
		n.children = truncate(n.children, b)
	}
	t.stats.Splits++
	tracer().Debugf("btree: split node, hoisting %v, left=%d right=%d keys",
		hoist, len(n.keys), len(sibling.keys))
	return hoist, sibling
}

// rebalanceChild repairs a deficient child at slot of parent.
//
// The last child leans on its left sibling, every other child on its right
// sibling. Borrowing a key by rotation is preferred; if the sibling is at
// minimum occupancy, the two siblings are merged instead, consuming their
// separator in parent.
func (t *Tree[K]) rebalanceChild(parent *node[K], slot int) {
	assert(parent != nil && !parent.isLeaf(), "rebalanceChild called with leaf parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChild slot out of range")
	assert(len(parent.children) > 1, "rebalanceChild: deficient child has no sibling")
	if slot == len(parent.children)-1 {
		if t.canLend(parent.children[slot-1]) {
			t.rotateRight(parent, slot-1)
			return
		}
		t.mergeChildren(parent, slot-1)
		return
	}
	if t.canLend(parent.children[slot+1]) {
		t.rotateLeft(parent, slot)
		return
	}
	t.mergeChildren(parent, slot)
}

// rotateRight moves the largest key of children[sep] up into parent.keys[sep],
// and the old separator down to the front of children[sep+1]. For
// intermediate nodes the outermost child link travels along.
func (t *Tree[K]) rotateRight(parent *node[K], sep int) {
	left, right := parent.children[sep], parent.children[sep+1]
	assert(t.canLend(left), "rotateRight: left sibling cannot spare a key")
	var up K
	left.keys, up = removeAt(left.keys, len(left.keys)-1)
	right.keys = insertAt(right.keys, 0, parent.keys[sep])
	parent.keys[sep] = up
	if !left.isLeaf() {
		var child *node[K]
		left.children, child = removeAt(left.children, len(left.children)-1)
		right.children = insertAt(right.children, 0, child)
	}
	t.stats.Rotations++
	tracer().Debugf("btree: rotate right, new separator %v", up)
}

// rotateLeft is the mirror image of rotateRight: the smallest key of
// children[sep+1] replaces the separator, which moves to the end of
// children[sep].
func (t *Tree[K]) rotateLeft(parent *node[K], sep int) {
	left, right := parent.children[sep], parent.children[sep+1]
	assert(t.canLend(right), "rotateLeft: right sibling cannot spare a key")
	var up K
	right.keys, up = removeAt(right.keys, 0)
	left.keys = append(left.keys, parent.keys[sep])
	parent.keys[sep] = up
	if !right.isLeaf() {
		var child *node[K]
		right.children, child = removeAt(right.children, 0)
		left.children = append(left.children, child)
	}
	t.stats.Rotations++
	tracer().Debugf("btree: rotate left, new separator %v", up)
}

// mergeChildren merges children[sep+1] into children[sep]. The separator
// between them moves down into the merged node, and the right slot is removed
// from parent.
func (t *Tree[K]) mergeChildren(parent *node[K], sep int) {
	left, right := parent.children[sep], parent.children[sep+1]
	assert(left.isLeaf() == right.isLeaf(), "mergeChildren: siblings of different shape")
	var down K
	parent.keys, down = removeAt(parent.keys, sep)
	parent.children, _ = removeAt(parent.children, sep+1)
	left.keys = append(left.keys, down)
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
	assert(len(left.keys) <= t.maxKeys(), "mergeChildren: merged node overflows")
	t.stats.Merges++
	tracer().Debugf("btree: merge siblings around %v into %d keys", down, len(left.keys))
}

// takeLast removes the largest key of the subtree rooted at n, repairing
// deficient nodes along the rightmost path.
func (t *Tree[K]) takeLast(n *node[K]) (K, removal) {
	var key K
	if n.isLeaf() {
		n.keys, key = removeAt(n.keys, len(n.keys)-1)
		return key, t.removalState(n)
	}
	last := len(n.children) - 1
	key, state := t.takeLast(n.children[last])
	if state == deficient {
		t.rebalanceChild(n, last)
	}
	return key, t.removalState(n)
}

// takeFirst removes the smallest key of the subtree rooted at n, repairing
// deficient nodes along the leftmost path.
func (t *Tree[K]) takeFirst(n *node[K]) (K, removal) {
	var key K
	if n.isLeaf() {
		n.keys, key = removeAt(n.keys, 0)
		return key, t.removalState(n)
	}
	key, state := t.takeFirst(n.children[0])
	if state == deficient {
		t.rebalanceChild(n, 0)
	}
	return key, t.removalState(n)
}

// removeSeparator deletes keys[i] from intermediate node n and returns it.
//
// A separator is not data of either child, so it is replaced by its
// predecessor if the left child can spare a key, else by its successor if the
// right child can spare one. Otherwise both children are at minimum occupancy
// and are merged; the separator then sits in the merged node and is removed
// from there.
func (t *Tree[K]) removeSeparator(n *node[K], i int) K {
	sep := n.keys[i]
	left, right := n.children[i], n.children[i+1]
	switch {
	case t.canLend(left):
		pred, state := t.takeLast(left)
		n.keys[i] = pred
		if state == deficient {
			t.rebalanceChild(n, i)
		}
	case t.canLend(right):
		succ, state := t.takeFirst(right)
		n.keys[i] = succ
		if state == deficient {
			t.rebalanceChild(n, i+1)
		}
	default:
		t.mergeChildren(n, i)
		_, state := t.deleteRecursive(left, sep)
		// left held 2B-1 keys after the merge
		assert(state == removed, "removeSeparator: separator lost in merged node")
	}
	return sep
}
