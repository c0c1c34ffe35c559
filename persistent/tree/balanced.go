package tree

import (
	"github.com/npillmayer/okasaki"
)

// Complete creates a complete binary tree of height depth, every node carrying
// payload x. Left and right subtree of every node are one and the same tree,
// thus Complete needs only depth allocations for a tree of 2^depth − 1 nodes.
//
// For depth ≤ 0 the empty tree is returned.
func Complete[E any](depth int, x E) *Tree[E] {
	if depth <= 0 {
		return nil
	}
	doubling := okasaki.Iterate(Empty[E](), func(t *Tree[E]) *Tree[E] {
		return Node(t, x, t)
	})
	t, _ := okasaki.Nth(doubling, depth)
	tracer().Debugf("complete tree of depth %d created", depth)
	return t
}

// Of creates a tree with exactly size nodes, every node carrying payload x.
// The tree is balanced: sizes of sibling subtrees differ by at most one.
// Subtrees of equal size are shared, which makes construction O(log size).
//
// For size ≤ 0 the empty tree is returned.
func Of[E any](size int, x E) *Tree[E] {
	if size <= 0 {
		return nil
	}
	t, _ := balancedPair(size, x)
	return t
}

// balancedPair returns balanced trees of m and of m+1 nodes.
//
// With k = ⌊(m−1)/2⌋ and (a, b) = balancedPair(k):
//
//     m odd  (m = 2k+1):  (a x a), (a x b)
//     m even (m = 2k+2):  (a x b), (b x b)
//
func balancedPair[E any](m int, x E) (*Tree[E], *Tree[E]) {
	assertThat(m >= 0, "cannot build tree with negative number of nodes: %d", m)
	if m == 0 {
		return nil, Leaf(x)
	}
	k := (m - 1) / 2
	a, b := balancedPair(k, x)
	tracer().Debugf("balanced pair for size %d: subtrees of size %d and %d", m, k, k+1)
	if m%2 == 1 {
		return Node(a, x, a), Node(a, x, b)
	}
	return Node(a, x, b), Node(b, x, b)
}
