package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
Nodes are immutable once constructed. There are no setters, and no function in this
module ever writes to a node which is reachable from a client. New trees are
created by allocating new nodes which point to existing (shared) subtrees.

A nil node is a legal tree, the empty one.
*/

// Tree is an immutable binary tree carrying a payload of type E at every node.
type Tree[E any] struct {
	left  *Tree[E]
	value E
	right *Tree[E]
}

// Empty returns the empty tree, which is nil.
func Empty[E any]() *Tree[E] {
	return nil
}

// Leaf returns a new tree consisting of a single node with payload x.
func Leaf[E any](x E) *Tree[E] {
	return &Tree[E]{value: x}
}

// Node returns a new tree with payload x at its root and children left and right.
// The children are linked, not copied: they will be shared between the new tree
// and every other tree referencing them.
func Node[E any](left *Tree[E], x E, right *Tree[E]) *Tree[E] {
	return &Tree[E]{left: left, value: x, right: right}
}

func (t *Tree[E]) String() string {
	if t == nil {
		return "( )"
	}
	return fmt.Sprintf("(%v)", t.value)
}

// IsEmpty is true for the empty tree.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil
}

// Value returns the payload of the root node of t. If t is empty,
// the zero value of E is returned, together with false.
func (t *Tree[E]) Value() (E, bool) {
	if t == nil {
		var none E
		return none, false
	}
	return t.value, true
}

// Left returns the left subtree of t. For an empty tree, the empty tree is returned.
func (t *Tree[E]) Left() *Tree[E] {
	if t == nil {
		return nil
	}
	return t.left
}

// Right returns the right subtree of t. For an empty tree, the empty tree is returned.
func (t *Tree[E]) Right() *Tree[E] {
	if t == nil {
		return nil
	}
	return t.right
}

// Same is true if t and other are the very same tree, i.e. share their root node.
// Two empty trees are the same.
func (t *Tree[E]) Same(other *Tree[E]) bool {
	return t == other
}

// Count returns the number of nodes of t. Shared subtrees are counted for every
// path they are reachable on. Count is O(n).
func (t *Tree[E]) Count() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Count() + t.right.Count()
}

// Depth returns the height of t. The empty tree has depth 0, a leaf has depth 1.
func (t *Tree[E]) Depth() int {
	if t == nil {
		return 0
	}
	return 1 + max(t.left.Depth(), t.right.Depth())
}

// InOrder calls visit for every payload of t, in left-root-right order.
// If visit returns false, the walk stops.
//
// InOrder is intended for checking invariants of structures built on top
// of Tree; it is not meant as an iteration facility for clients of these structures.
func (t *Tree[E]) InOrder(visit func(E) bool) bool {
	if t == nil {
		return true
	}
	return t.left.InOrder(visit) && visit(t.value) && t.right.InOrder(visit)
}
