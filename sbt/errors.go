package sbt

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("sbt: index out of bounds")
	// ErrCorrupted signals a violated structural invariant. It indicates a bug
	// in the rebalancing code, never bad input.
	ErrCorrupted = errors.New("sbt: tree invariant violated")
	// ErrIllegalArguments signals invalid function parameters other than indices.
	ErrIllegalArguments = errors.New("sbt: illegal arguments")
)
