package dsarray

import (
	"strings"
	"testing"
)

func TestIndexContainsRemove(t *testing.T) {
	a := Of("x", "y", "z", "y")
	if i := Index(a, "y"); i != 1 {
		t.Fatalf("Index(y) = %d, want 1", i)
	}
	if Index(a, "w") != -1 || Contains(a, "w") {
		t.Fatalf("found non-existing element")
	}
	if !Remove(a, "y") || a.String() != "[x z y]" {
		t.Fatalf("Remove removed the wrong element: %s", a.String())
	}
	if Remove(a, "w") {
		t.Fatalf("Remove reported removal of a non-existing element")
	}
}

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := New[int]()
	b.Append(1, 2, 3)
	if !Equal(a, b) {
		t.Fatalf("arrays with equal sequences must be equal")
	}
	b.Append(4)
	if Equal(a, b) {
		t.Fatalf("arrays of different length must not be equal")
	}
	c := Of(1, 2, 4)
	if Equal(a, c) {
		t.Fatalf("arrays with different elements must not be equal")
	}
	var empty Array[int]
	if !Equal(&empty, New[int]()) {
		t.Fatalf("empty arrays must be equal")
	}
	fold := func(x, y string) bool { return strings.EqualFold(x, y) }
	if !EqualFunc(Of("A", "b"), Of("a", "B"), fold) {
		t.Fatalf("EqualFunc must use the supplied comparison")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := Of(10, 20, 30, 40)
	b := New[int]()
	for _, v := range []int{40, 30, 20, 10} {
		if err := b.Insert(0, v); err != nil {
			t.Fatal(err)
		}
	}
	if !Equal(a, b) {
		t.Fatalf("arrays should be equal")
	}
	if Hash(a) != Hash(b) {
		t.Fatalf("equal arrays must hash equal")
	}
	// only the middle differs, which a first/last/count hash would miss
	c := Of(10, 25, 30, 40)
	if Hash(a) == Hash(c) {
		t.Errorf("hash ignores inner elements")
	}
	if Hash(New[int]()) != Hash(&Array[int]{}) {
		t.Errorf("empty arrays must hash equal")
	}
	lower := func(s string) uint64 { return uint64(len(strings.ToLower(s))) }
	if HashFunc(Of("A"), lower) != HashFunc(Of("a"), lower) {
		t.Errorf("HashFunc must use the supplied element hash")
	}
}
