package btree

// eachNode visits nodes in pre-order, together with their depth (the root
// has depth 0). An error returned by fn stops the walk.
func (t *Tree[K]) eachNode(fn func(n *node[K], depth int) error) error {
	if t == nil || t.root == nil {
		return nil
	}
	return t.eachNodeRec(t.root, 0, fn)
}

func (t *Tree[K]) eachNodeRec(n *node[K], depth int, fn func(n *node[K], depth int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := t.eachNodeRec(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
