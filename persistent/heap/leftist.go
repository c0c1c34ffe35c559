package heap

import (
	"github.com/npillmayer/okasaki/maybe"
	"github.com/npillmayer/okasaki/persistent/tree"
	"golang.org/x/exp/constraints"
)

// ranked is the payload of a heap node: an item together with the rank of its node.
type ranked[T any] struct {
	rank int
	item T
}

// LeftistHeap is a persistent min-heap of items of type T.
// An empty instance is usable as an empty heap.
type LeftistHeap[T constraints.Ordered] struct {
	root *tree.Tree[ranked[T]]
}

// Empty returns an empty heap.
func Empty[T constraints.Ordered]() LeftistHeap[T] {
	return LeftistHeap[T]{}
}

// FromSlice creates a heap containing all the items of xs.
//
// Singleton heaps are merged pairwise, round after round, until one heap
// is left. This is O(n), compared to O(n log n) for n insertions.
func FromSlice[T constraints.Ordered](xs []T) LeftistHeap[T] {
	if len(xs) == 0 {
		return LeftistHeap[T]{}
	}
	heaps := make([]*tree.Tree[ranked[T]], len(xs))
	for i, x := range xs {
		heaps[i] = singleton(x)
	}
	for len(heaps) > 1 {
		n := 0
		for i := 0; i+1 < len(heaps); i += 2 {
			heaps[n] = merge(heaps[i], heaps[i+1])
			n++
		}
		if len(heaps)%2 == 1 {
			heaps[n] = heaps[len(heaps)-1]
			n++
		}
		heaps = heaps[:n]
	}
	return LeftistHeap[T]{root: heaps[0]}
}

// IsEmpty is true if h contains no items.
func (h LeftistHeap[T]) IsEmpty() bool {
	return h.root.IsEmpty()
}

// Len returns the number of items in h. Len is O(n).
func (h LeftistHeap[T]) Len() int {
	return h.root.Count()
}

// FindMin returns the smallest item of h, or nothing if h is empty. FindMin is O(1).
func (h LeftistHeap[T]) FindMin() maybe.Maybe[T] {
	r, ok := h.root.Value()
	if !ok {
		return maybe.Nothing[T]()
	}
	return maybe.Just(r.item)
}

// Insert returns a heap containing the items of h and x.
func (h LeftistHeap[T]) Insert(x T) LeftistHeap[T] {
	return LeftistHeap[T]{root: merge(h.root, singleton(x))}
}

// Merge returns a heap containing the items of h and other. Merge is O(log n).
// If one of the heaps is empty, the other one is returned.
func (h LeftistHeap[T]) Merge(other LeftistHeap[T]) LeftistHeap[T] {
	return LeftistHeap[T]{root: merge(h.root, other.root)}
}

// DeleteMin returns a heap without the smallest item of h. DeleteMin is O(log n).
// For an empty heap, DeleteMin returns an empty heap.
func (h LeftistHeap[T]) DeleteMin() LeftistHeap[T] {
	if h.root.IsEmpty() {
		return h
	}
	return LeftistHeap[T]{root: merge(h.root.Left(), h.root.Right())}
}

// Same is true if h and other share their root node.
func (h LeftistHeap[T]) Same(other LeftistHeap[T]) bool {
	return h.root.Same(other.root)
}

// --- Internals -------------------------------------------------------------

func singleton[T any](x T) *tree.Tree[ranked[T]] {
	return tree.Leaf(ranked[T]{rank: 1, item: x})
}

func rank[T any](h *tree.Tree[ranked[T]]) int {
	if r, ok := h.Value(); ok {
		return r.rank
	}
	return 0
}

// makeT creates a node with item x and children a and b. The child with the
// higher rank becomes the left child.
func makeT[T any](x T, a, b *tree.Tree[ranked[T]]) *tree.Tree[ranked[T]] {
	if rank(a) >= rank(b) {
		return tree.Node(a, ranked[T]{rank: rank(b) + 1, item: x}, b)
	}
	return tree.Node(b, ranked[T]{rank: rank(a) + 1, item: x}, a)
}

// merge walks down the right spines of h1 and h2. Of the two roots, the smaller one
// keeps its left child, and its right spine is merged with the other heap.
// For equal roots, h1's root wins.
func merge[T constraints.Ordered](h1, h2 *tree.Tree[ranked[T]]) *tree.Tree[ranked[T]] {
	if h1.IsEmpty() {
		return h2
	}
	if h2.IsEmpty() {
		return h1
	}
	x, _ := h1.Value()
	y, _ := h2.Value()
	if x.item <= y.item {
		tracer().Debugf("merge: %v ≤ %v, merging into right spine of %v", x.item, y.item, x.item)
		return makeT(x.item, h1.Left(), merge(h1.Right(), h2))
	}
	tracer().Debugf("merge: %v > %v, merging into right spine of %v", x.item, y.item, y.item)
	return makeT(y.item, h2.Left(), merge(h1, h2.Right()))
}
