package finmap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Entry is a key/value binding which can be stored in a Map.
type Entry[K constraints.Ordered, V any] interface {
	Key() K
	Value() V
}

// --- Self-keyed entries ----------------------------------------------------

// SelfKeyed is an entry which is its own key and value.
type SelfKeyed[T constraints.Ordered] struct {
	x T
}

// Self wraps x as a self-keyed entry.
func Self[T constraints.Ordered](x T) SelfKeyed[T] {
	return SelfKeyed[T]{x: x}
}

func (e SelfKeyed[T]) Key() T   { return e.x }
func (e SelfKeyed[T]) Value() T { return e.x }

func (e SelfKeyed[T]) String() string {
	return fmt.Sprintf("%v", e.x)
}

// SelfKeyedOf is the entry constructor for maps of self-keyed entries.
// As key and value are identical, the value argument is ignored.
func SelfKeyedOf[T constraints.Ordered](key, _ T) SelfKeyed[T] {
	return Self(key)
}

var _ Entry[int, int] = SelfKeyed[int]{}

// --- Pairs -----------------------------------------------------------------

// Pair is an entry with distinct key and value.
type Pair[K constraints.Ordered, V any] struct {
	key   K
	value V
}

// P creates a pair entry ⟨key, value⟩.
func P[K constraints.Ordered, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, value: value}
}

func (p Pair[K, V]) Key() K   { return p.key }
func (p Pair[K, V]) Value() V { return p.value }

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v↦%v", p.key, p.value)
}

var _ Entry[string, int] = Pair[string, int]{}
