/*
Package btree provides an in-memory B-tree holding an ordered set of unique keys.

The package is intentionally not a map: keys carry no values, and the only
operations are point operations (search, insert, remove). The tree is
parameterized by its minimum degree B, fixed at construction time.

Shape:
  - every node holds an ordered run of keys; a node without children is a leaf,
  - an intermediate node holds exactly one child more than it has keys,
  - every non-root node holds between B-1 and 2B-1 keys,
  - every leaf sits at the same depth.

Mutation works in place, on a strictly hierarchical node structure: a parent
exclusively owns its children and there are no back-pointers. Insertion
descends to a leaf and propagates splits upwards; a split of the root is the
only way the tree grows in height. Deletion descends to the key, removes it (by
predecessor/successor substitution or by merging if the key is a separator)
and repairs deficient nodes on the way back up, by rotation through the parent
or by merging with a sibling. Collapsing an emptied root is the only way the
tree shrinks in height.

A Tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btreeset'
func tracer() tracing.Trace {
	return tracing.Select("btreeset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
