/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package offers a selection of data structures with similar properties, following
Chris Okasaki's "Purely Functional Data Structures":

■ tree: an immutable binary tree, the node shape all other structures are built of,

■ finmap: a finite map on top of an unbalanced binary search tree,

■ set: an unbalanced set, implemented as a degenerate finite map,

■ heap: a leftist heap, i.e. a mergeable priority queue.

Every “modification” of one of these structures returns a new incarnation of it.
Previous incarnations stay valid and unchanged. Old and new incarnations share all
the nodes which are not on the path of the modification (path copying), which
makes holding on to older versions cheap in terms of space- and time-complexity.
Immutable structures may be read concurrently without any locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
