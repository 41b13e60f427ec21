package dsarray

import (
	"testing"
)

func TestBuilderStaging(t *testing.T) {
	b := NewBuilder[int]()
	if err := b.Append(3, 4); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.Prepend(1, 2); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if err := b.Append(5); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.Prepend(0); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if b.Len() != 6 {
		t.Fatalf("expected 6 staged elements, got %d", b.Len())
	}
	a := b.Array()
	if a.String() != "[0 1 2 3 4 5]" {
		t.Fatalf("unexpected array: %s", a.String())
	}
	if a.Stats().Rotations != 0 {
		t.Fatalf("builder should not rotate, got %d rotations", a.Stats().Rotations)
	}
	if b.Array() != a {
		t.Fatalf("repeated calls to Array should return the same array")
	}
}

func TestBuilderCompleted(t *testing.T) {
	b := NewBuilder[string]()
	_ = b.Append("x")
	_ = b.Array()
	if err := b.Append("y"); err != ErrArrayCompleted {
		t.Fatalf("expected ErrArrayCompleted, got %v", err)
	}
	if err := b.Prepend("y"); err != ErrArrayCompleted {
		t.Fatalf("expected ErrArrayCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append("z"); err != nil {
		t.Fatalf("Append after Reset failed: %v", err)
	}
	if a := b.Array(); a.String() != "[z]" {
		t.Fatalf("unexpected array after Reset: %s", a.String())
	}
}

func TestEmptyBuilder(t *testing.T) {
	var b Builder[int]
	a := b.Array()
	if a == nil || !a.IsEmpty() {
		t.Fatalf("expected empty array from empty builder")
	}
	var nb *Builder[int]
	if err := nb.Append(1); err != ErrIllegalArguments {
		t.Fatalf("expected ErrIllegalArguments for nil builder, got %v", err)
	}
}
