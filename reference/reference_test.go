package reference

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/btreeset"
	"github.com/npillmayer/btreeset/conformance"
)

func TestConformance(t *testing.T) {
	conformance.Run(t, func() btreeset.Set[int] {
		return New[int]()
	})
}

func TestInsertDoesNotReplace(t *testing.T) {
	type entry struct {
		key  int
		name string
	}
	set := NewFunc(func(a, b entry) int { return a.key - b.key })
	if err := set.Insert(entry{1, "first"}); err != nil {
		t.Fatal(err)
	}
	err := set.Insert(entry{1, "second"})
	if !errors.Is(err, btreeset.ErrKeyAlreadyExists) {
		t.Fatalf("expected ErrKeyAlreadyExists, got %v", err)
	}
	got, err := set.Search(entry{key: 1})
	if err != nil || got.name != "first" {
		t.Fatalf("stored key was replaced: %+v, %v", got, err)
	}
}

func TestKeysAscending(t *testing.T) {
	set := New[string]()
	for _, w := range []string{"kiwi", "apple", "fig", "banana"} {
		if err := set.Insert(w); err != nil {
			t.Fatal(err)
		}
	}
	if got := set.Keys(); !slices.Equal(got, []string{"apple", "banana", "fig", "kiwi"}) {
		t.Fatalf("Keys() = %v", got)
	}
}
