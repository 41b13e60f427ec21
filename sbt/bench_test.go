package sbt

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkAppend(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		tree.Append(i)
	}
}

func BenchmarkInsertAtRandom(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 5))
	tree := FromSlice(seq(1 << 16))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.InsertAt(rng.IntN(tree.Len()+1), i)
	}
}

func BenchmarkAt(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 5))
	tree := FromSlice(seq(1 << 16))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.At(rng.IntN(tree.Len()))
	}
}

func BenchmarkFromSlice(b *testing.B) {
	values := seq(1 << 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FromSlice(values)
	}
}
