/*
Package sbt implements a size-balanced tree (SBT) holding a mutable, indexable
sequence.

The package is intentionally not a key-ordered map or set. Elements are addressed
by rank (their 0-based position in the sequence), which makes the key of a node
implicit: it is the size of everything to the left of it. Every mutation is
therefore a positional descent guided by subtree sizes.

Balance is maintained by subtree size, not by height. For every node n

	size(n.left)  >= size(n.right.left),  size(n.left)  >= size(n.right.right)
	size(n.right) >= size(n.left.left),   size(n.right) >= size(n.left.right)

which bounds the height of a tree to O(log n). The invariant is restored after
every structural change by a cascade of rotations (see maintainLeft and
maintainRight).

Operations:
  - random access `At` / `Set` in O(log n),
  - positional `InsertAt`, `Append` and `RemoveAt` in amortized O(log n),
  - bulk construction `FromSlice` in O(n) without any rotation,
  - lazy forward and backward in-order traversal (`All`, `Backward`),
  - invariant checking (`Check`) and a few diagnostic helpers.

Trees are not safe for concurrent use. Mutating a tree while a traversal is
suspended is undefined.

Build with tag `sbt_debug` to have every mutating operation re-validate all
tree invariants and panic on the first violation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sbt

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dsarray'
func tracer() tracing.Trace {
	return tracing.Select("dsarray")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
