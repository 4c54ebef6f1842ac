package btree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/btreeset"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrBrokenInvariant is reported by Check for a tree violating its structural invariants.
	ErrBrokenInvariant = errors.New("btree: broken invariant")
)

func keyNotFound[K any](key K) error {
	return fmt.Errorf("%w: %v", btreeset.ErrKeyNotFound, key)
}

func keyExists[K any](key K) error {
	return fmt.Errorf("%w: %v", btreeset.ErrKeyAlreadyExists, key)
}
