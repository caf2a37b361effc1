package chained

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/logger"
	"github.com/scottcagno/hashtable/pkg/prime"
)

const (
	MaxLoadFactor = 1.0 // on average less than one node per bucket
)

// HashMap represents a separate chaining hashtable implementation
type HashMap[V any] struct {
	hash    hashmap.HashFunc
	log     *logger.Logger
	keys    int
	buckets []*bucket[V]
}

// NewHashMap returns a new HashMap whose capacity is the next prime at or
// above capacity. A nil hash falls back to hashmap.DefaultHashFunc.
func NewHashMap[V any](capacity int, hash hashmap.HashFunc) *HashMap[V] {
	return newHashMap[V](capacity, hash, nil)
}

// NewHashMapWithConfig returns a new HashMap built from conf. Missing
// options are filled in by hashmap.CheckConfig.
func NewHashMapWithConfig[V any](conf *hashmap.Config) *HashMap[V] {
	conf = hashmap.CheckConfig(conf)
	return newHashMap[V](conf.Capacity, conf.HashFunc, conf.Logger)
}

func newHashMap[V any](capacity int, hash hashmap.HashFunc, log *logger.Logger) *HashMap[V] {
	if hash == nil {
		hash = hashmap.DefaultHashFunc
	}
	return &HashMap[V]{
		hash:    hash,
		log:     log,
		buckets: makeBuckets[V](prime.NextPrime(capacity)),
	}
}

func makeBuckets[V any](n int) []*bucket[V] {
	buckets := make([]*bucket[V], n)
	for i := range buckets {
		buckets[i] = newBucket[V]()
	}
	return buckets
}

// index returns the bucket key belongs in
func (m *HashMap[V]) index(key string) *bucket[V] {
	return m.buckets[m.hash(key)%uint64(len(m.buckets))]
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	n, ok := m.index(key).search(key)
	if !ok {
		return *new(V), false
	}
	return n.val, true
}

// Contains reports whether key is in the HashMap
func (m *HashMap[V]) Contains(key string) bool {
	_, ok := m.index(key).search(key)
	return ok
}

// Put inserts a key value entry, overwriting the value of an existing key.
// Put keeps the load factor below MaxLoadFactor once it returns.
func (m *HashMap[V]) Put(key string, value V) {
	// check and see if we need to resize
	if m.PercentFull() >= MaxLoadFactor {
		// if we do, then double the map size
		m.Resize(2 * len(m.buckets))
	}
	b := m.index(key)
	if n, ok := b.search(key); ok {
		n.val = value
		return
	}
	b.insert(key, value)
	m.keys++
	if m.PercentFull() >= MaxLoadFactor {
		m.Resize(2 * len(m.buckets))
	}
}

// Remove deletes the entry for key and reports whether there was one
func (m *HashMap[V]) Remove(key string) bool {
	if !m.index(key).delete(key) {
		return false
	}
	m.keys--
	return true
}

// Resize rebuilds the table with the prime capacity at or above newCapacity
// and puts every entry back. It returns false, doing nothing, when
// newCapacity is below one. There is no lower bound tied to the entry count;
// the entries going back in regrow the table as needed.
func (m *HashMap[V]) Resize(newCapacity int) bool {
	if newCapacity < 1 {
		return false
	}
	newCapacity = prime.Promote(newCapacity)
	existing := m.Entries()
	oldCapacity := len(m.buckets)
	m.buckets = makeBuckets[V](newCapacity)
	m.keys = 0
	for _, e := range existing {
		m.Put(e.Key, e.Value)
	}
	if m.log != nil {
		m.log.Debugf("chained: resized from %d to %d buckets (%d entries)",
			oldCapacity, len(m.buckets), m.keys)
	}
	return true
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// EmptyBuckets returns the number of buckets with an empty list
func (m *HashMap[V]) EmptyBuckets() int {
	var empty int
	for _, b := range m.buckets {
		if b.len() == 0 {
			empty++
		}
	}
	return empty
}

// Entries returns a copy of every key value pair, bucket by bucket and in
// list order within a bucket
func (m *HashMap[V]) Entries() []hashmap.Entry[V] {
	entries := make([]hashmap.Entry[V], 0, m.keys)
	for _, b := range m.buckets {
		b.scan(func(n *entryNode[V]) bool {
			entries = append(entries, hashmap.Entry[V]{Key: n.key, Value: n.val})
			return true
		})
	}
	return entries
}

// Clear gives every bucket a fresh empty list. The capacity is left unchanged.
func (m *HashMap[V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = newBucket[V]()
	}
	m.keys = 0
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[V]) Len() int {
	return m.keys
}

// Cap returns the number of buckets
func (m *HashMap[V]) Cap() int {
	return len(m.buckets)
}

// Iterator is an iterator function type
type Iterator[V any] func(key string, value V) bool

// Range takes an Iterator and ranges the HashMap as long as long
// as the iterator function continues to be true. Range is not
// safe to perform an insert or remove operation while ranging!
func (m *HashMap[V]) Range(it Iterator[V]) {
	stop := false
	for i := 0; i < len(m.buckets) && !stop; i++ {
		m.buckets[i].scan(func(n *entryNode[V]) bool {
			stop = !it(n.key, n.val)
			return !stop
		})
	}
}

// String renders every bucket on its own line. The format is meant for
// debugging and may change.
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i, b := range m.buckets {
		fmt.Fprintf(&sb, "%d: %s\n", i, b.String())
	}
	return sb.String()
}
