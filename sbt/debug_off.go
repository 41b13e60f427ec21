//go:build !sbt_debug

package sbt

func (t *Tree[T]) debugCheck(string) {}
