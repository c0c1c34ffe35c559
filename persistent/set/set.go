/*
Package set implements a persistent set on top of an unbalanced binary search tree.

A set is a finite map where every element is its own key and value. Inserting an
element returns a new set, leaving the original unchanged. Inserting an element
which is already a member returns the original set, sharing all of its nodes.

Elements must be totally ordered; see package finmap for details.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/okasaki/persistent/finmap"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'fp.set'.
func tracer() tracing.Trace {
	return tracing.Select("fp.set")
}

// Set is a persistent set of elements of type T.
// An empty instance is usable as an empty set:
//
//     s := set.Set[int]{}.Insert(1)
//
type Set[T constraints.Ordered] struct {
	m finmap.Map[finmap.SelfKeyed[T], T, T]
}

// Empty returns an empty set.
func Empty[T constraints.Ordered]() Set[T] {
	return Set[T]{m: finmap.Empty(finmap.SelfKeyedOf[T])}
}

// Member is true if x is an element of s.
func (s Set[T]) Member(x T) bool {
	_, found := s.m.Lookup(x)
	return found
}

// Insert returns a set containing the elements of s and x.
// If x is already a member of s, s itself is returned.
func (s Set[T]) Insert(x T) Set[T] {
	m, err := s.m.Insert(finmap.Self(x))
	if err != nil { // already present
		tracer().Debugf("set insert: %v is already a member", x)
		return s
	}
	return Set[T]{m: m}
}

// Len returns the number of elements of s. Len is O(n).
func (s Set[T]) Len() int {
	return s.m.Len()
}

// IsEmpty is true if s has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Same is true if s and other share their complete tree of elements.
func (s Set[T]) Same(other Set[T]) bool {
	return s.m.Same(other.m)
}
