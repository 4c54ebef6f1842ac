/*
Package reference provides a trusted ordered set, used as a test oracle for
package btree.

Set is backed by github.com/google/btree and carries no structural invariants
of its own beyond being a correct ordered set. It exposes the same operation
surface and reports the same errors as a btree.Tree, so both can be driven by
identical operation streams and their results compared.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package reference

import (
	"cmp"
	"fmt"

	gbtree "github.com/google/btree"
	"github.com/npillmayer/btreeset"
)

// Degree is the minimum degree reported by MaxKeys, matching the default
// degree of package btree.
const Degree = 6

// Set is an ordered set implementing btreeset.Set.
type Set[K any] struct {
	tree *gbtree.BTreeG[K]
}

var _ btreeset.Set[int] = (*Set[int])(nil)

// New creates an empty set for a key type with a natural order.
func New[K cmp.Ordered]() *Set[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc creates an empty set ordered by compare.
func NewFunc[K any](compare func(a, b K) int) *Set[K] {
	less := func(a, b K) bool { return compare(a, b) < 0 }
	return &Set[K]{tree: gbtree.NewG[K](Degree, less)}
}

// Search returns the stored key equal to key.
func (s *Set[K]) Search(key K) (K, error) {
	if k, ok := s.tree.Get(key); ok {
		return k, nil
	}
	var zero K
	return zero, fmt.Errorf("%w: %v", btreeset.ErrKeyNotFound, key)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Has(key)
}

// Insert adds key to the set; an existing key is neither replaced nor
// duplicated.
func (s *Set[K]) Insert(key K) error {
	if s.tree.Has(key) {
		return fmt.Errorf("%w: %v", btreeset.ErrKeyAlreadyExists, key)
	}
	s.tree.ReplaceOrInsert(key)
	return nil
}

// Remove deletes key from the set and returns the removed key.
func (s *Set[K]) Remove(key K) (K, error) {
	if k, ok := s.tree.Delete(key); ok {
		return k, nil
	}
	var zero K
	return zero, fmt.Errorf("%w: %v", btreeset.ErrKeyNotFound, key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// MaxKeys returns 2*Degree-1.
func (s *Set[K]) MaxKeys() int {
	return 2*Degree - 1
}

// Keys returns all keys in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.tree.Len())
	s.tree.Ascend(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
