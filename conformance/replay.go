package conformance

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/btreeset"
	"github.com/stretchr/testify/require"
)

// OpKind selects a set operation.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpRemove
	OpSearch
	OpContains
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSearch:
		return "search"
	case OpContains:
		return "contains"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Op is one step of an operation stream.
type Op[K any] struct {
	Kind OpKind
	Key  K
}

func (op Op[K]) String() string {
	return fmt.Sprintf("%s(%v)", op.Kind, op.Key)
}

// Workload describes a pseudo-random operation stream over integer keys.
type Workload struct {
	Steps    int    // number of operations
	KeySpace int    // keys are drawn from [0, KeySpace)
	Seed     uint64 // identical seeds yield identical streams
	// InsertBias is the percentage of insert operations; the rest is split
	// between remove, search and contains. Zero selects 50.
	InsertBias int
}

// RandomOps generates the operation stream described by w.
func RandomOps(w Workload) []Op[int] {
	bias := w.InsertBias
	if bias == 0 {
		bias = 50
	}
	r := rand.New(rand.NewPCG(w.Seed, w.Seed^0x9e3779b97f4a7c15))
	ops := make([]Op[int], w.Steps)
	for i := range ops {
		key := r.IntN(w.KeySpace)
		switch p := r.IntN(100); {
		case p < bias:
			ops[i] = Op[int]{Kind: OpInsert, Key: key}
		case p < bias+(100-bias)/2:
			ops[i] = Op[int]{Kind: OpRemove, Key: key}
		case p%2 == 0:
			ops[i] = Op[int]{Kind: OpSearch, Key: key}
		default:
			ops[i] = Op[int]{Kind: OpContains, Key: key}
		}
	}
	return ops
}

// Replay applies ops to subject and oracle in lockstep and requires identical
// results. If check is non-nil, it is called after every mutating operation,
// typically to validate structural invariants of subject.
func Replay[K comparable](t *testing.T, subject, oracle btreeset.Set[K], ops []Op[K], check func() error) {
	t.Helper()
	for step, op := range ops {
		switch op.Kind {
		case OpInsert:
			errS, errO := subject.Insert(op.Key), oracle.Insert(op.Key)
			require.Equal(t, errorClass(errO), errorClass(errS), "step %d: %s", step, op)
		case OpRemove:
			kS, errS := subject.Remove(op.Key)
			kO, errO := oracle.Remove(op.Key)
			require.Equal(t, errorClass(errO), errorClass(errS), "step %d: %s", step, op)
			require.Equal(t, kO, kS, "step %d: %s", step, op)
		case OpSearch:
			kS, errS := subject.Search(op.Key)
			kO, errO := oracle.Search(op.Key)
			require.Equal(t, errorClass(errO), errorClass(errS), "step %d: %s", step, op)
			require.Equal(t, kO, kS, "step %d: %s", step, op)
		case OpContains:
			require.Equal(t, oracle.Contains(op.Key), subject.Contains(op.Key), "step %d: %s", step, op)
		}
		require.Equal(t, oracle.Len(), subject.Len(), "step %d: %s", step, op)
		if check != nil && (op.Kind == OpInsert || op.Kind == OpRemove) {
			require.NoError(t, check(), "step %d: %s", step, op)
		}
	}
}

// errorClass maps an operation error to the error kinds of the Set contract.
func errorClass(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, btreeset.ErrKeyNotFound):
		return "not found"
	case errors.Is(err, btreeset.ErrKeyAlreadyExists):
		return "already exists"
	}
	return "unexpected: " + err.Error()
}
