//go:build sbt_debug

package sbt

// debugCheck re-validates the whole tree after a mutation and panics if an
// invariant has been violated.
func (t *Tree[T]) debugCheck(op string) {
	if err := t.Check(); err != nil {
		tracer().Errorf("sbt: %s corrupted the tree: %v", op, err)
		panic(err)
	}
}
