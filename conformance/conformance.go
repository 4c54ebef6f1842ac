/*
Package conformance holds a black-box test harness for implementations of
btreeset.Set.

Run exercises a fixed catalogue of scenarios against the public operation
surface only: construction, emptiness, insertion with zero, one and many node
splits, duplicate rejection, search, removal and mixed operation sequences.
Workload sizes are derived from MaxKeys, so that the same scenarios force
splits for every minimum degree.

Replay drives two sets with an identical operation stream and requires
identical results, which is how package btree is validated against the
oracle in package reference.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package conformance

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/btreeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory creates a new, empty set.
type Factory func() btreeset.Set[int]

// Run runs all conformance scenarios as subtests of t.
func Run(t *testing.T, newSet Factory) {
	t.Helper()
	scenarios := []struct {
		name string
		fn   func(*testing.T, Factory)
	}{
		{"NewReturnsInstance", testNewReturnsInstance},
		{"EmptySetContainsNothing", testEmptySetContainsNothing},
		{"InsertWithoutSplits", testInsertWithoutSplits},
		{"InsertWithSplit", testInsertWithSplit},
		{"InsertWithManySplits", testInsertWithManySplits},
		{"DuplicateWithoutSplits", testDuplicateWithoutSplits},
		{"DuplicateWithSplit", testDuplicateWithSplit},
		{"DuplicateWithManySplits", testDuplicateWithManySplits},
		{"SearchExistingKey", testSearchExistingKey},
		{"SearchMissingKey", testSearchMissingKey},
		{"RemoveExistingKey", testRemoveExistingKey},
		{"RemoveMissingKey", testRemoveMissingKey},
		{"MixedInsertionsAndRemovals", testMixedInsertionsAndRemovals},
		{"StabilityAfterManyOperations", testStabilityAfterManyOperations},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			sc.fn(t, newSet)
		})
	}
}

func testNewReturnsInstance(t *testing.T, newSet Factory) {
	set := newSet()
	require.NotNil(t, set)
	assert.Equal(t, 0, set.Len())
	assert.GreaterOrEqual(t, set.MaxKeys(), 3, "MaxKeys must be at least 2B-1 for B=2")
}

func testEmptySetContainsNothing(t *testing.T, newSet Factory) {
	set := newSet()
	for _, k := range []int{0, 420, math.MaxInt32, math.MinInt32} {
		assert.False(t, set.Contains(k), "empty set contains %d", k)
	}
}

// insertAscending inserts 0..n-1, checking membership before and after each
// insert.
func insertAscending(t *testing.T, set btreeset.Set[int], n int) {
	t.Helper()
	for i := range n {
		require.False(t, set.Contains(i), "key %d present before insert", i)
		require.NoError(t, set.Insert(i))
		require.True(t, set.Contains(i), "key %d missing after insert", i)
	}
	require.Equal(t, n, set.Len())
}

// insertAscendingTwice inserts 0..n-1, re-inserting every key right away.
func insertAscendingTwice(t *testing.T, set btreeset.Set[int], n int) {
	t.Helper()
	for i := range n {
		require.NoError(t, set.Insert(i))
		require.True(t, set.Contains(i))
		err := set.Insert(i)
		require.Error(t, err, "duplicate insert of %d accepted", i)
		require.True(t, errors.Is(err, btreeset.ErrKeyAlreadyExists), "unexpected error %v", err)
	}
	require.Equal(t, n, set.Len())
}

func testInsertWithoutSplits(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscending(t, set, set.MaxKeys())
}

func testInsertWithSplit(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscending(t, set, set.MaxKeys()+1)
}

func testInsertWithManySplits(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscending(t, set, pow4(set.MaxKeys()))
}

func testDuplicateWithoutSplits(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscendingTwice(t, set, set.MaxKeys())
}

func testDuplicateWithSplit(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscendingTwice(t, set, set.MaxKeys()+1)
}

func testDuplicateWithManySplits(t *testing.T, newSet Factory) {
	set := newSet()
	insertAscendingTwice(t, set, pow4(set.MaxKeys()))
}

func testSearchExistingKey(t *testing.T, newSet Factory) {
	set := newSet()
	require.NoError(t, set.Insert(50))
	k, err := set.Search(50)
	require.NoError(t, err)
	assert.Equal(t, 50, k)
}

func testSearchMissingKey(t *testing.T, newSet Factory) {
	set := newSet()
	_, err := set.Search(75)
	require.Error(t, err)
	assert.True(t, errors.Is(err, btreeset.ErrKeyNotFound), "unexpected error %v", err)
	require.NoError(t, set.Insert(50))
	_, err = set.Search(75)
	assert.True(t, errors.Is(err, btreeset.ErrKeyNotFound), "unexpected error %v", err)
}

func testRemoveExistingKey(t *testing.T, newSet Factory) {
	set := newSet()
	require.NoError(t, set.Insert(20))
	require.True(t, set.Contains(20))
	k, err := set.Remove(20)
	require.NoError(t, err)
	assert.Equal(t, 20, k)
	assert.False(t, set.Contains(20))
	assert.Equal(t, 0, set.Len())
}

func testRemoveMissingKey(t *testing.T, newSet Factory) {
	set := newSet()
	_, err := set.Remove(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, btreeset.ErrKeyNotFound), "unexpected error %v", err)
}

func testMixedInsertionsAndRemovals(t *testing.T, newSet Factory) {
	set := newSet()
	items := []int{10, 5, 15, 2, 7, 12, 18}
	for _, k := range items {
		require.NoError(t, set.Insert(k))
	}
	for _, k := range items {
		require.True(t, set.Contains(k), "key %d missing", k)
	}
	k, err := set.Remove(7)
	require.NoError(t, err)
	assert.Equal(t, 7, k)
	assert.False(t, set.Contains(7))
	k, err = set.Remove(18)
	require.NoError(t, err)
	assert.Equal(t, 18, k)
	assert.False(t, set.Contains(18))
	for _, k := range []int{10, 5, 15, 2, 12} {
		assert.True(t, set.Contains(k), "key %d lost", k)
	}
	_, err = set.Remove(7)
	assert.True(t, errors.Is(err, btreeset.ErrKeyNotFound), "unexpected error %v", err)
}

func testStabilityAfterManyOperations(t *testing.T, newSet Factory) {
	set := newSet()
	for i := range 1000 {
		require.NoError(t, set.Insert(i))
	}
	for i := range 1000 {
		require.True(t, set.Contains(i), "key %d missing", i)
	}
	for i := 0; i < 1000; i += 2 {
		k, err := set.Remove(i)
		require.NoError(t, err, "remove %d", i)
		require.Equal(t, i, k)
	}
	for i := range 1000 {
		if i%2 == 0 {
			assert.False(t, set.Contains(i), "removed key %d still present", i)
		} else {
			assert.True(t, set.Contains(i), "key %d lost", i)
		}
	}
	assert.Equal(t, 500, set.Len())
}

func pow4(n int) int {
	return n * n * n * n
}
