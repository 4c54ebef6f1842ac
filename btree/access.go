package btree

// Search returns the stored key equal to key. If key is not present, Search
// returns an error matching btreeset.ErrKeyNotFound.
func (t *Tree[K]) Search(key K) (K, error) {
	var zero K
	if t == nil {
		return zero, keyNotFound(key)
	}
	for n := t.root; n != nil; {
		idx, found := t.find(n, key)
		if found {
			return n.keys[idx], nil
		}
		if n.isLeaf() {
			break
		}
		n = n.children[idx]
	}
	return zero, keyNotFound(key)
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, err := t.Search(key)
	return err == nil
}
