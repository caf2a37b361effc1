package hashmaptest

import (
	"github.com/google/btree"
	"github.com/scottcagno/hashtable/pkg/hashmap"
)

// Model is a reference map the tables are checked against. It keeps its
// entries ordered by key so snapshots compare without sorting.
type Model[V any] struct {
	tree *btree.BTreeG[hashmap.Entry[V]]
}

func NewModel[V any]() *Model[V] {
	return &Model[V]{
		tree: btree.NewG[hashmap.Entry[V]](8, func(a, b hashmap.Entry[V]) bool {
			return a.Key < b.Key
		}),
	}
}

func (m *Model[V]) Put(key string, value V) {
	m.tree.ReplaceOrInsert(hashmap.Entry[V]{Key: key, Value: value})
}

func (m *Model[V]) Get(key string) (V, bool) {
	e, ok := m.tree.Get(hashmap.Entry[V]{Key: key})
	return e.Value, ok
}

func (m *Model[V]) Remove(key string) bool {
	_, ok := m.tree.Delete(hashmap.Entry[V]{Key: key})
	return ok
}

func (m *Model[V]) Len() int {
	return m.tree.Len()
}

func (m *Model[V]) Clear() {
	m.tree.Clear(false)
}

// Entries returns every entry in ascending key order
func (m *Model[V]) Entries() []hashmap.Entry[V] {
	entries := make([]hashmap.Entry[V], 0, m.tree.Len())
	m.tree.Ascend(func(e hashmap.Entry[V]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
