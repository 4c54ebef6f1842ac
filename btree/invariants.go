package btree

import "fmt"

// Check validates structural tree invariants:
//
//   - keys are strictly increasing within nodes and respect every separator
//     on the path from the root,
//   - every leaf sits at the same depth,
//   - every non-root node holds between B-1 and 2B-1 keys, the root at most 2B-1,
//   - every intermediate node holds one child more than it has keys.
//
// Check is intended for tests and debugging; a violation indicates a bug in
// the tree algorithms, not in client input.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0 (%d, %d)",
				ErrBrokenInvariant, t.height, t.count)
		}
		return nil
	}
	if len(t.root.keys) == 0 {
		return fmt.Errorf("%w: root has no keys", ErrBrokenInvariant)
	}
	count, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		tracer().Errorf("btree: invariant check failed: %v", err)
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrBrokenInvariant, height, t.height)
	}
	if count != t.count {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrBrokenInvariant, count, t.count)
	}
	return nil
}

// checkNode validates the subtree rooted at n. All keys of the subtree have
// to lie strictly between lo and hi, where nil means unbounded.
func (t *Tree[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrBrokenInvariant)
	}
	if len(n.keys) > t.maxKeys() {
		return 0, 0, fmt.Errorf("%w: key count %d exceeds %d", ErrBrokenInvariant, len(n.keys), t.maxKeys())
	}
	if !isRoot && len(n.keys) < t.minKeys() {
		return 0, 0, fmt.Errorf("%w: key count %d below %d", ErrBrokenInvariant, len(n.keys), t.minKeys())
	}
	for i, key := range n.keys {
		if i > 0 && t.cfg.Compare(n.keys[i-1], key) >= 0 {
			return 0, 0, fmt.Errorf("%w: keys out of order at %v", ErrBrokenInvariant, key)
		}
		if lo != nil && t.cfg.Compare(*lo, key) >= 0 {
			return 0, 0, fmt.Errorf("%w: key %v not above separator %v", ErrBrokenInvariant, key, *lo)
		}
		if hi != nil && t.cfg.Compare(key, *hi) >= 0 {
			return 0, 0, fmt.Errorf("%w: key %v not below separator %v", ErrBrokenInvariant, key, *hi)
		}
	}
	if n.isLeaf() {
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: %d children for %d keys", ErrBrokenInvariant, len(n.children), len(n.keys))
	}
	total := len(n.keys)
	var childHeight int
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrBrokenInvariant)
		}
	}
	return total, childHeight + 1, nil
}
