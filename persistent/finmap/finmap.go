package finmap

import (
	"errors"

	"github.com/npillmayer/okasaki/persistent/tree"
	"golang.org/x/exp/constraints"
)

// ErrAlreadyPresent is returned by Insert if the map already contains an entry
// for the key of the entry to insert.
var ErrAlreadyPresent = errors.New("key already present in map")

// Map is a persistent finite map of entries of type E, which bind keys of type K
// to values of type V.
//
// Map is a value type, and an empty instance is usable as an empty map of pairs
// or of self-keyed entries, i.e. this is legal:
//
//     m := finmap.Map[finmap.Pair[int, string], int, string]{}.Bind(1, "one")
//
// For other entry types create maps with Empty.
type Map[E Entry[K, V], K constraints.Ordered, V any] struct {
	root  *tree.Tree[E]
	entry func(K, V) E // entry constructor, used by Bind
}

// Empty creates an empty map. Bind will use mk to construct entries.
//
// Use it like this:
//
//     m := finmap.Empty(finmap.P[string, int])
//     m = m.Bind("Galaxy", 42)
//     value, found := m.Lookup("Galaxy")   // returns 42
//
func Empty[E Entry[K, V], K constraints.Ordered, V any](mk func(K, V) E) Map[E, K, V] {
	return Map[E, K, V]{entry: mk}
}

// New creates an empty map of pair entries.
func New[K constraints.Ordered, V any]() Map[Pair[K, V], K, V] {
	return Empty(P[K, V])
}

// --- API -------------------------------------------------------------------

// Lookup locates key in m and returns the value bound to it.
// If key is not bound, the zero value for V is returned, together with found=false.
//
// Lookup is O(depth) of m.
func (m Map[E, K, V]) Lookup(key K) (value V, found bool) {
	node := m.root // walking nodes, start search at the top
	for !node.IsEmpty() {
		e, _ := node.Value()
		switch k := e.Key(); {
		case key < k:
			node = node.Left()
		case key > k:
			node = node.Right()
		default:
			return e.Value(), true
		}
	}
	return
}

// Insert returns a copy of m with entry added. Nodes on the search path for entry's
// key are copied, all other nodes are shared between m and the new map.
//
// If m already contains an entry with the same key, Insert returns m itself together
// with ErrAlreadyPresent. Detecting a duplicate does not allocate.
func (m Map[E, K, V]) Insert(entry E) (Map[E, K, V], error) {
	var none K
	root, err := m.insert(m.root, entry, none, false)
	if err != nil {
		return m, err
	}
	tracer().Debugf("insert: new root for key %v = %v", entry.Key(), root)
	m.root = root
	return m, nil
}

// insert descends to the empty slot for entry, then rebuilds the path on the way up.
//
// Only two-way comparisons are performed on the way down. candidate is the key of
// the last node where the search branched right, i.e. the greatest key ≤ entry.Key()
// on the search path. If entry's key is present in the tree, it must be candidate.
func (m Map[E, K, V]) insert(node *tree.Tree[E], entry E, candidate K, seen bool) (*tree.Tree[E], error) {
	if node.IsEmpty() {
		if seen && candidate == entry.Key() {
			tracer().Debugf("insert: key %v already present", candidate)
			return nil, ErrAlreadyPresent
		}
		return tree.Leaf(entry), nil
	}
	e, _ := node.Value()
	if entry.Key() < e.Key() {
		left, err := m.insert(node.Left(), entry, candidate, seen)
		if err != nil {
			return nil, err
		}
		return tree.Node(left, e, node.Right()), nil // share right subtree
	}
	right, err := m.insert(node.Right(), entry, e.Key(), true)
	if err != nil {
		return nil, err
	}
	return tree.Node(node.Left(), e, right), nil // share left subtree
}

// Bind returns a copy of m with key bound to value.
//
// Bind does not replace existing bindings: if key is already bound in m,
// m itself is returned and value is dropped.
func (m Map[E, K, V]) Bind(key K, value V) Map[E, K, V] {
	mk := m.entry
	if mk == nil {
		mk = defaultEntry[E, K, V]
	}
	mm, err := m.Insert(mk(key, value))
	if err != nil {
		assertThat(errors.Is(err, ErrAlreadyPresent), "unexpected error on insert: %v", err)
		return m
	}
	return mm
}

// defaultEntry is the entry constructor for maps created without Empty or New.
func defaultEntry[E Entry[K, V], K constraints.Ordered, V any](key K, value V) E {
	if e, ok := any(P(key, value)).(E); ok {
		return e
	}
	e, ok := any(Self(key)).(E)
	assertThat(ok, "cannot construct entries of type %T; create map with finmap.Empty", e)
	return e
}

// Len returns the number of bindings in m. Len is O(n).
func (m Map[E, K, V]) Len() int {
	return m.root.Count()
}

// IsEmpty is true if m contains no bindings.
func (m Map[E, K, V]) IsEmpty() bool {
	return m.root.IsEmpty()
}

// Depth returns the depth of the search tree of m.
func (m Map[E, K, V]) Depth() int {
	return m.root.Depth()
}

// Same is true if m and other share their complete search tree.
func (m Map[E, K, V]) Same(other Map[E, K, V]) bool {
	return m.root.Same(other.root)
}
