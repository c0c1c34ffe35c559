/*
Package tree implements an immutable binary tree.

Trees are built bottom-up from existing trees and are never modified afterwards.
A node references its children; it does not own them exclusively. Any number of
trees may share a subtree, and a subtree stays alive as long as any tree reaching
it is alive. This is the foundation of structural sharing for the finite maps,
sets and heaps of the sibling packages.

The nil *Tree is the empty tree, and all methods are safe to call on it:

    var t *tree.Tree[int]              // empty
    t = tree.Node(tree.Leaf(1), 2, t)  // t = (1) 2 ()
    n := t.Count()                     // n = 2

Besides the primitive constructors, the package offers two constructors for
balanced trees, Complete and Of. Both build their result in a logarithmic number
of steps by re-using subtrees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.tree: "+msg, msgargs...)
		panic(msg)
	}
}
