package btree

import "fmt"

const (
	// DefaultDegree is the minimum degree B used when a configuration leaves it unset.
	DefaultDegree = 6
	// MinDegree is the smallest minimum degree which yields a valid B-tree.
	MinDegree = 2
)

// Config configures a B-tree.
type Config[K any] struct {
	// Degree is the minimum degree B. Every node except the root holds between
	// B-1 and 2B-1 keys. Zero selects DefaultDegree.
	Degree int
	// Compare defines the total order of keys. It returns a negative number
	// for a < b, zero for a == b and a positive number for a > b.
	Compare func(a, b K) int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree %d is less than %d", ErrInvalidConfig, cfg.Degree, MinDegree)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
