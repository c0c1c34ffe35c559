package finmap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/okasaki/persistent/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestMapEmpty(t *testing.T) {
	m := New[int, string]()
	if !m.IsEmpty() || m.Len() != 0 {
		t.Errorf("expected new map to be empty, has %d entries", m.Len())
	}
	if v, found := m.Lookup(7); found || v != "" {
		t.Errorf("did not expect to find 7 in empty map, found %q", v)
	}
}

func TestMapZeroValueIsUsable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.finmap")
	defer teardown()
	//
	m := Map[Pair[int, string], int, string]{}.Bind(1, "one")
	if v, found := m.Lookup(1); !found || v != "one" {
		t.Errorf("expected zero-valued map to accept binding, found %q", v)
	}
	s := Map[SelfKeyed[string], string, string]{}.Bind("a", "ignored")
	if v, found := s.Lookup("a"); !found || v != "a" {
		t.Errorf("expected zero-valued map of self-keyed entries to bind a, found %q", v)
	}
}

func TestMapBindAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.finmap")
	defer teardown()
	//
	m := New[string, int]()
	m = m.Bind("m", 13).Bind("c", 3).Bind("x", 24).Bind("a", 1).Bind("d", 4)
	for _, k := range []string{"m", "c", "x", "a", "d"} {
		v, found := m.Lookup(k)
		if !found {
			t.Logf("map =\n%s", printMap(m))
			t.Errorf("expected to find %q in map, didn't", k)
		} else if v != int(k[0]-'a')+1 {
			t.Errorf("expected %q to be bound to %d, is %d", k, int(k[0]-'a')+1, v)
		}
	}
	if _, found := m.Lookup("b"); found {
		t.Error("did not expect to find \"b\" in map")
	}
	if m.Len() != 5 {
		t.Errorf("expected map to have 5 entries, has %d", m.Len())
	}
	if m.Depth() != 3 {
		t.Logf("map =\n%s", printMap(m))
		t.Errorf("expected map to have depth 3, has %d", m.Depth())
	}
}

func TestMapInsertDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.finmap")
	defer teardown()
	//
	m := New[int, string]().Bind(5, "five").Bind(3, "three").Bind(8, "eight")
	for _, k := range []int{5, 3, 8} {
		mm, err := m.Insert(P(k, "other"))
		if !errors.Is(err, ErrAlreadyPresent) {
			t.Errorf("expected insert of duplicate key %d to fail, error is %v", k, err)
		}
		if !mm.Same(m) {
			t.Errorf("expected failed insert of %d to return original map", k)
		}
	}
	mm, err := m.Insert(P(4, "four"))
	if err != nil {
		t.Fatalf("expected insert of new key to succeed, error is %v", err)
	}
	if mm.Same(m) {
		t.Error("expected insert of new key to produce a new map")
	}
}

func TestMapDoubleBindKeepsFirstValue(t *testing.T) {
	m := New[string, int]().Bind("k", 1)
	mm := m.Bind("k", 2)
	if !mm.Same(m) {
		t.Error("expected second bind of same key to return the identical map")
	}
	if v, _ := mm.Lookup("k"); v != 1 {
		t.Errorf("expected bind not to overwrite existing binding, value is %d", v)
	}
}

func TestMapInsertSharesUntouchedSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.finmap")
	defer teardown()
	//
	m2 := New[int, string]().Bind(2, "two").Bind(1, "one")
	m3 := m2.Bind(3, "three")
	if !m3.root.Left().Same(m2.root.Left()) {
		t.Logf("before =\n%s", printMap(m2))
		t.Logf("after =\n%s", printMap(m3))
		t.Error("expected left subtree to be shared between old and new map")
	}
	if m3.root.Same(m2.root) {
		t.Error("expected root to be copied")
	}
	if _, found := m2.Lookup(3); found {
		t.Error("old map must not see binding of new map")
	}
}

func TestMapInsertAllocatesSearchPathOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.finmap")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := New[int, int]()
	for _, k := range []int{50, 25, 75, 12, 37, 62, 87, 6, 18, 31, 43} {
		m = m.Bind(k, k)
	}
	old := nodesOf(m.root)
	for _, k := range []int{40, 1, 99, 63} {
		mm := m.Bind(k, k)
		fresh := 0
		for n := range nodesOf(mm.root) {
			if !old[n] {
				fresh++
			}
		}
		path := searchPathLength(m, k) + 1 // plus new leaf
		if fresh != path {
			t.Logf("map =\n%s", printMap(mm))
			t.Errorf("expected insert of %d to allocate %d nodes, allocated %d", k, path, fresh)
		}
		if len(nodesOf(mm.root)) != len(old)+1 {
			t.Errorf("expected new map to have exactly one node more")
		}
	}
}

func TestMapKeysAreInOrder(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13, 3, 8} {
		m = m.Bind(k, k*k)
	}
	if !ordered(m) {
		t.Logf("map =\n%s", printMap(m))
		t.Error("expected keys of map to be in strictly increasing order")
	}
	if m.Len() != 9 {
		t.Errorf("expected 9 distinct keys, have %d", m.Len())
	}
}

func TestMapOfSelfKeyedEntries(t *testing.T) {
	m := Empty(SelfKeyedOf[float64])
	m = m.Bind(2.5, 0).Bind(-1, 0)
	if v, found := m.Lookup(2.5); !found || v != 2.5 {
		t.Errorf("expected self-keyed entry 2.5 to map to itself, is %v", v)
	}
	if _, err := m.Insert(Self(-1.0)); !errors.Is(err, ErrAlreadyPresent) {
		t.Errorf("expected -1 to be present already, error is %v", err)
	}
}

func TestMapEntryStrings(t *testing.T) {
	if s := P("a", 1).String(); s != "a↦1" {
		t.Errorf("unexpected string for pair: %s", s)
	}
	if s := Self(7).String(); s != "7" {
		t.Errorf("unexpected string for self-keyed entry: %s", s)
	}
}

// ---------------------------------------------------------------------------

func ordered[E Entry[K, V], K interface{ ~int | ~string }, V any](m Map[E, K, V]) bool {
	var prev K
	first, ok := true, true
	m.root.InOrder(func(e E) bool {
		if !first && e.Key() <= prev {
			ok = false
		}
		first, prev = false, e.Key()
		return ok
	})
	return ok
}

func nodesOf[E any](t *tree.Tree[E]) map[*tree.Tree[E]]bool {
	nodes := make(map[*tree.Tree[E]]bool)
	var collect func(*tree.Tree[E])
	collect = func(t *tree.Tree[E]) {
		if t.IsEmpty() {
			return
		}
		nodes[t] = true
		collect(t.Left())
		collect(t.Right())
	}
	collect(t)
	return nodes
}

func searchPathLength(m Map[Pair[int, int], int, int], key int) int {
	n := 0
	for node := m.root; !node.IsEmpty(); n++ {
		e, _ := node.Value()
		if key < e.Key() {
			node = node.Left()
		} else {
			node = node.Right()
		}
	}
	return n
}

func printMap[E Entry[K, V], K interface{ ~int | ~string }, V any](m Map[E, K, V]) string {
	header := fmt.Sprintf("\nMap(depth=%d #=%d)\n", m.Depth(), m.Len())
	p := tp.New()
	ppt(p, m.root)
	return header + p.String() + "\n"
}

func ppt[E any](p tp.Tree, node *tree.Tree[E]) {
	if node.IsEmpty() {
		p.AddNode("( )")
		return
	}
	if node.Left().IsEmpty() && node.Right().IsEmpty() {
		p.AddNode(node.String())
		return
	}
	branch := p.AddBranch(node.String())
	ppt(branch, node.Left())
	ppt(branch, node.Right())
}
