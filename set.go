package btreeset

// Set is an ordered set of unique keys with point operations.
//
// Implementations report a missing key with an error matching ErrKeyNotFound
// and a duplicate insert with an error matching ErrKeyAlreadyExists
// (use errors.Is). Neither error alters the set.
type Set[K any] interface {
	// Search returns the stored key equal to key.
	Search(key K) (K, error)
	// Contains reports whether key is in the set.
	Contains(key K) bool
	// Insert adds key to the set.
	Insert(key K) error
	// Remove deletes key from the set and returns the removed key.
	Remove(key K) (K, error)
	// Len returns the number of keys in the set.
	Len() int
	// MaxKeys is the maximum number of keys a single node may hold, 2B-1.
	// Tests use it to size workloads which force zero, one or many splits.
	MaxKeys() int
}
