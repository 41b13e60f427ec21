package dsarray

import (
	"encoding/binary"
	"hash/maphash"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Index returns the index of the first element equal to v, or -1 if v is not
// present. This is an O(n) operation.
func Index[T comparable](a *Array[T], v T) int {
	return a.IndexFunc(func(e T) bool { return e == v })
}

// Contains reports whether v is an element of a. This is an O(n) operation.
func Contains[T comparable](a *Array[T], v T) bool {
	return Index(a, v) >= 0
}

// Remove removes the first element equal to v and reports whether one has
// been found. This is an O(n) operation.
func Remove[T comparable](a *Array[T], v T) bool {
	return a.RemoveFunc(func(e T) bool { return e == v })
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements at the same index. Nil arrays are equal to empty ones.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		assert(ok, "EqualFunc: arrays of equal length ran out of elements")
		if !eq(x, y) {
			return false
		}
	}
	return true
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the sequence in a. Arrays for which Equal holds have
// the same hash. Hash values are only stable within one process.
func Hash[T comparable](a *Array[T]) uint64 {
	return HashFunc(a, func(v T) uint64 {
		return maphash.Comparable(hashSeed, v)
	})
}

// HashFunc returns a hash of the sequence in a, using h to hash single
// elements. The element hashes and the length of the sequence are mixed with
// xxhash. To be consistent with EqualFunc, h has to return equal hashes for
// elements considered equal.
func HashFunc[T any](a *Array[T], h func(T) uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(a.Len()))
	_, _ = d.Write(buf[:])
	if a.Len() == 0 {
		return d.Sum64()
	}
	for v := range a.All() {
		binary.LittleEndian.PutUint64(buf[:], h(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
