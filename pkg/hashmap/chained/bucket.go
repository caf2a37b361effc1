package chained

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// entryNode is a key value pair living in a bucket's list
type entryNode[V any] struct {
	key string
	val V
}

// bucket represents a single slot in the HashMap table. Each bucket owns its
// own singly linked list of nodes; keys are unique within a bucket.
type bucket[V any] struct {
	list *singlylinkedlist.List
}

func newBucket[V any]() *bucket[V] {
	return &bucket[V]{
		list: singlylinkedlist.New(),
	}
}

// matchKey returns a predicate selecting the node for key
func matchKey[V any](key string) func(int, interface{}) bool {
	return func(_ int, v interface{}) bool {
		return v.(*entryNode[V]).key == key
	}
}

// insert puts a new node at the head of the list. It does not look for an
// existing node with the same key; callers search first.
func (b *bucket[V]) insert(key string, val V) {
	b.list.Prepend(&entryNode[V]{key: key, val: val})
}

// search returns the node holding key, or false if there is none
func (b *bucket[V]) search(key string) (*entryNode[V], bool) {
	_, v := b.list.Find(matchKey[V](key))
	if v == nil {
		return nil, false
	}
	return v.(*entryNode[V]), true
}

// delete unlinks the node holding key wherever it sits in the list and
// reports whether one was found
func (b *bucket[V]) delete(key string) bool {
	i, _ := b.list.Find(matchKey[V](key))
	if i < 0 {
		return false
	}
	b.list.Remove(i)
	return true
}

// scan walks the list from the head for as long as fn returns true
func (b *bucket[V]) scan(fn func(n *entryNode[V]) bool) {
	it := b.list.Iterator()
	for it.Next() {
		if !fn(it.Value().(*entryNode[V])) {
			return
		}
	}
}

func (b *bucket[V]) len() int {
	return b.list.Size()
}

func (b *bucket[V]) String() string {
	var sb strings.Builder
	b.scan(func(n *entryNode[V]) bool {
		if sb.Len() > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "(%s: %v)", n.key, n.val)
		return true
	})
	return sb.String()
}
