package btree

import "fmt"

// Stats counts the structural edits a tree has performed since its creation.
type Stats struct {
	Splits        int // node splits, root splits included
	RootSplits    int // splits which grew the tree by one level
	Rotations     int // keys borrowed from a sibling through the parent
	Merges        int // sibling pairs merged into one node
	RootCollapses int // emptied roots replaced by their only child
}

func (s Stats) String() string {
	return fmt.Sprintf("splits=%d (root %d) rotations=%d merges=%d collapses=%d",
		s.Splits, s.RootSplits, s.Rotations, s.Merges, s.RootCollapses)
}

// Stats returns the structural edit counters of the tree.
func (t *Tree[K]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}
