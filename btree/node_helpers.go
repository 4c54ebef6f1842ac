package btree

import "slices"

// makeNode materializes a new node owning copies of keys and children.
// Storage is sized for the transient overflow before a split.
func (t *Tree[K]) makeNode(keys []K, children []*node[K]) *node[K] {
	assert(len(children) == 0 || len(children) == len(keys)+1,
		"makeNode requires child count = key count + 1")
	n := &node[K]{keys: make([]K, len(keys), t.maxKeys()+1)}
	copy(n.keys, keys)
	if len(children) > 0 {
		n.children = make([]*node[K], len(children), t.maxKeys()+2)
		copy(n.children, children)
	}
	return n
}

// find locates key in n by binary search. If key is not present, the returned
// index is the insertion position, which coincides with the slot of the child
// to descend into.
func (t *Tree[K]) find(n *node[K], key K) (int, bool) {
	return slices.BinarySearchFunc(n.keys, key, t.cfg.Compare)
}

// insertAt inserts values into a slice at idx.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	return slices.Insert(src, idx, values...)
}

// removeAt removes the element at idx from a slice and returns it. The vacated
// tail slot is zeroed so the backing array does not pin removed nodes.
func removeAt[T any](src []T, idx int) ([]T, T) {
	assert(idx >= 0 && idx < len(src), "removeAt index out of range")
	v := src[idx]
	return slices.Delete(src, idx, idx+1), v
}

// truncate cuts a slice to length n, zeroing the cut-off elements.
func truncate[T any](src []T, n int) []T {
	assert(n >= 0 && n <= len(src), "truncate bounds invalid")
	clear(src[n:])
	return src[:n]
}
