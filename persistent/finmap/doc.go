/*
Package finmap implements a persistent finite map on top of an unbalanced binary search tree.

A map binds keys to values. The map stores entries, where an entry is anything able
to tell its key and its value (see interface Entry). Two kinds of entries are
provided:

■ Pair entries carry a key and a distinct value. Maps of pairs are the common case,
and New creates them.

■ SelfKeyed entries are their own key and value. A map of self-keyed entries
is a set (see package persistent/set).

Every insertion returns a new map, leaving the original one unchanged. Only nodes
along the search path are copied; all other subtrees are shared between the old and
the new map. The tree is not re-balanced, therefore the depth of a map depends on
the order of insertions and is O(n) in the worst case.

Attention: Bind never overwrites an existing binding. Binding an already bound
key returns the original map. Clients wanting to detect this case use Insert,
which reports ErrAlreadyPresent.

Keys must be totally ordered. For keys of a floating point type, NaN is not
comparable to any key, and maps containing NaN keys are undefined.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package finmap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.finmap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.finmap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("finmap: "+msg, msgargs...)
		panic(msg)
	}
}
