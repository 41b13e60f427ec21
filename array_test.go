package dsarray

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroArrayIsUsable(t *testing.T) {
	var a Array[int]
	if a.Len() != 0 || !a.IsEmpty() {
		t.Fatalf("expected zero array to be empty")
	}
	if a.String() != "[]" {
		t.Errorf("expected empty string representation, got %q", a.String())
	}
	a.Append(1, 2, 3)
	if a.String() != "[1 2 3]" {
		t.Fatalf("unexpected array after Append: %s", a.String())
	}
}

func TestArrayEditing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsarray")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a := Of("b", "d")
	if err := a.Insert(0, "a"); err != nil {
		t.Fatalf("Insert at front failed: %v", err)
	}
	if err := a.Insert(2, "c"); err != nil {
		t.Fatalf("Insert in the middle failed: %v", err)
	}
	if err := a.Insert(a.Len(), "e"); err != nil {
		t.Fatalf("Insert at end failed: %v", err)
	}
	if got := a.ToSlice(); !slices.Equal(got, []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("unexpected sequence: %v", got)
	}
	v, err := a.RemoveAt(1)
	if err != nil || v != "b" {
		t.Fatalf("RemoveAt(1) = %q, %v", v, err)
	}
	if err := a.Set(0, "A"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := a.Set(a.Len(), "f"); err != nil {
		t.Fatalf("Set at Len should append, got %v", err)
	}
	if a.String() != "[A c d e f]" {
		t.Fatalf("unexpected array: %s", a.String())
	}
	if err := a.Check(); err != nil {
		t.Fatalf("array corrupted: %v", err)
	}
	a.Clear()
	if a.Len() != 0 || len(slices.Collect(a.All())) != 0 {
		t.Fatalf("expected empty array after Clear")
	}
}

func TestArrayIndexErrors(t *testing.T) {
	a := Of(1, 2, 3)
	if _, err := a.At(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := a.Set(4, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for Set beyond Len, got %v", err)
	}
	if err := a.Insert(-1, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for negative Insert, got %v", err)
	}
	if _, err := a.RemoveAt(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for RemoveAt, got %v", err)
	}
	if a.String() != "[1 2 3]" {
		t.Errorf("failed operations changed the array: %s", a.String())
	}
}

func TestCollectAndIterate(t *testing.T) {
	a := Collect(slices.Values([]int{5, 6, 7}))
	if got := slices.Collect(a.Backward()); !slices.Equal(got, []int{7, 6, 5}) {
		t.Fatalf("unexpected backward iteration: %v", got)
	}
	for i, v := range a.Enumerate() {
		if v != 5+i {
			t.Fatalf("unexpected element %d at index %d", v, i)
		}
	}
	dst := make([]int, 4)
	if err := a.CopyTo(dst, 1); err != nil {
		t.Fatalf("CopyTo failed: %v", err)
	}
	if !slices.Equal(dst, []int{0, 5, 6, 7}) {
		t.Fatalf("unexpected CopyTo result: %v", dst)
	}
}

func TestFuncHelpers(t *testing.T) {
	a := Of(1, 4, 9, 16, 25)
	even := func(v int) bool { return v%2 == 0 }
	if i := a.IndexFunc(even); i != 1 {
		t.Fatalf("IndexFunc = %d, want 1", i)
	}
	if !a.RemoveFunc(even) || a.String() != "[1 9 16 25]" {
		t.Fatalf("RemoveFunc removed the wrong element: %s", a.String())
	}
	if a.ContainsFunc(func(v int) bool { return v > 100 }) {
		t.Fatalf("ContainsFunc found a non-existing element")
	}
	if a.RemoveFunc(func(v int) bool { return v < 0 }) {
		t.Fatalf("RemoveFunc reported removal of a non-existing element")
	}
}

func TestLargeArrayStaysBalanced(t *testing.T) {
	a := New[int]()
	for i := range 2000 {
		if err := a.Insert(a.Len()/3, i); err != nil {
			t.Fatal(err)
		}
	}
	for a.Len() > 500 {
		if _, err := a.RemoveAt(a.Len() / 2); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Check(); err != nil {
		t.Fatalf("array corrupted: %v", err)
	}
	if s := a.Stats(); s.Len != 500 || s.Height > 20 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestNilArray(t *testing.T) {
	var a *Array[int]
	if a.Len() != 0 || !a.IsEmpty() || a.String() != "[]" {
		t.Fatalf("expected nil array to read as empty")
	}
	if _, err := a.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for At on nil array, got %v", err)
	}
	if _, err := a.RemoveAt(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for RemoveAt on nil array, got %v", err)
	}
	if len(slices.Collect(a.All())) != 0 || len(a.ToSlice()) != 0 || a.IndexFunc(func(int) bool { return true }) != -1 {
		t.Errorf("expected no elements in nil array")
	}
	if err := a.Check(); err != nil {
		t.Errorf("nil array should check as empty, got %v", err)
	}
	a.Clear()
	if err := a.Set(0, 1); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for Set on nil array, got %v", err)
	}
	if err := a.Insert(0, 1); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for Insert on nil array, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected Append to nil array to panic")
		}
	}()
	a.Append(1)
}
