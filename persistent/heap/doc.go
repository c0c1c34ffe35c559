/*
Package heap implements a persistent priority queue as a leftist heap.

A leftist heap is a heap-ordered binary tree where every node carries a rank: the
length of its right spine, i.e. the number of nodes on the path following right
children only. For every node the rank of the left child is at least the rank of
the right child. Therefore the right spine of a heap with n nodes has at most
⌊log(n+1)⌋ nodes, and merging two heaps along their right spines is O(log n).
Insert and DeleteMin are expressed as merges.

Heaps are min-heaps: FindMin returns the smallest item. Items must be totally
ordered (NaN float values are not allowed).

    h := heap.Empty[int]().Insert(5).Insert(7)
    min := h.FindMin().WithDefault(-1)   // 5
    h = h.DeleteMin()                    // h.FindMin() is 7 now

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.heap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.heap")
}
