package openaddr

import (
	"fmt"
	"strings"

	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/logger"
	"github.com/scottcagno/hashtable/pkg/prime"
)

// slotState tags what a bucket currently holds
type slotState uint8

const (
	slotEmpty slotState = iota // never used since the last resize or clear
	slotLive                   // holds a live entry
	slotDead                   // holds a removed entry (tombstone)
)

// entry is a key value pair that is found in each bucket
type entry[V any] struct {
	key string
	val V
}

// bucket represents a single slot in the HashMap table
type bucket[V any] struct {
	state slotState
	entry[V]
}

// checkKey checks if this bucket holds an entry, live or dead, for key
func (b *bucket[V]) checkKey(key string) bool {
	return b.state != slotEmpty && b.entry.key == key
}

func (b *bucket[V]) String() string {
	switch b.state {
	case slotLive:
		return fmt.Sprintf("K: %s V: %v TS: false", b.key, b.val)
	case slotDead:
		return fmt.Sprintf("K: %s V: %v TS: true", b.key, b.val)
	}
	return "None"
}

// HashMap represents a closed hashing hashtable implementation
type HashMap[V any] struct {
	hash    hashmap.HashFunc
	log     *logger.Logger
	keys    int
	buckets []bucket[V]
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
		buckets: make([]bucket[V], prime.NextPrime(capacity)),
	}
}

// home returns the initial index for key
func (m *HashMap[V]) home(key string) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// probe returns the j'th index of the probe sequence starting at home
func (m *HashMap[V]) probe(home, j int) int {
	return (home + j*j) % len(m.buckets)
}

// findLive returns the index of the first live bucket holding key. The
// search stops at the first empty bucket.
func (m *HashMap[V]) findLive(key string) (int, bool) {
	h := m.home(key)
	for j := 0; j < len(m.buckets); j++ {
		i := m.probe(h, j)
		switch {
		case m.buckets[i].state == slotEmpty:
			return i, false
		case m.buckets[i].state == slotLive && m.buckets[i].key == key:
			return i, true
		}
	}
	return -1, false
}

// findAny returns the index of the first bucket holding key, whether it is
// live or a tombstone. The search stops at the first empty bucket.
func (m *HashMap[V]) findAny(key string) (int, bool) {
	h := m.home(key)
	for j := 0; j < len(m.buckets); j++ {
		i := m.probe(h, j)
		if m.buckets[i].state == slotEmpty {
			return i, false
		}
		if m.buckets[i].checkKey(key) {
			return i, true
		}
	}
	return -1, false
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key string) (V, bool) {
	i, ok := m.findLive(key)
	if !ok {
		return *new(V), false
	}
	return m.buckets[i].val, true
}

// Contains reports whether a live entry exists for key
func (m *HashMap[V]) Contains(key string) bool {
	_, ok := m.findLive(key)
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
	for !m.insert(key, value) {
		// every probed slot held some other live key
		m.Resize(2 * len(m.buckets))
	}
	if m.PercentFull() >= MaxLoadFactor {
		m.Resize(2 * len(m.buckets))
	}
}

// insert walks the probe sequence for key and stores the entry in the first
// bucket that is empty, a tombstone, or already holds key. It returns false
// if the sequence was exhausted without finding one.
func (m *HashMap[V]) insert(key string, value V) bool {
	h := m.home(key)
	for j := 0; j < len(m.buckets); j++ {
		b := &m.buckets[m.probe(h, j)]
		switch {
		case b.state == slotEmpty:
			*b = bucket[V]{state: slotLive, entry: entry[V]{key: key, val: value}}
			m.keys++
			return true
		case b.entry.key == key:
			// same key, overwrite in place and revive if it was removed
			if b.state == slotDead {
				m.keys++
			}
			b.state, b.val = slotLive, value
			return true
		case b.state == slotDead:
			// a tombstone for some other key, take it over
			*b = bucket[V]{state: slotLive, entry: entry[V]{key: key, val: value}}
			m.keys++
			return true
		}
	}
	return false
}

// Remove marks the entry for key as a tombstone. It returns false when the
// key is absent or already removed.
func (m *HashMap[V]) Remove(key string) bool {
	i, ok := m.findAny(key)
	if !ok || m.buckets[i].state == slotDead {
		return false
	}
	m.buckets[i].state = slotDead
	m.keys--
	return true
}

// Resize rebuilds the table with the prime capacity at or above newCapacity
// and puts every live entry back. It refuses, returning false, to go below
// the number of live entries.
func (m *HashMap[V]) Resize(newCapacity int) bool {
	if newCapacity < m.keys {
		return false
	}
	newCapacity = prime.Promote(newCapacity)
	existing := m.Entries()
	oldCapacity := len(m.buckets)
	m.buckets = make([]bucket[V], newCapacity)
	m.keys = 0
	for _, e := range existing {
		m.Put(e.Key, e.Value)
	}
	if m.log != nil {
		m.log.Debugf("openaddr: resized from %d to %d buckets (%d entries)",
			oldCapacity, len(m.buckets), m.keys)
	}
	return true
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// EmptyBuckets returns the number of buckets that have never held an entry.
// Tombstones are not counted as empty.
func (m *HashMap[V]) EmptyBuckets() int {
	var empty int
	for i := range m.buckets {
		if m.buckets[i].state == slotEmpty {
			empty++
		}
	}
	return empty
}

// Entries returns a copy of every live key value pair in bucket order
func (m *HashMap[V]) Entries() []hashmap.Entry[V] {
	entries := make([]hashmap.Entry[V], 0, m.keys)
	it := m.Cursor()
	for it.Next() {
		s := it.Slot()
		if s.Tombstone {
			continue
		}
		entries = append(entries, hashmap.Entry[V]{Key: s.Key, Value: s.Value})
	}
	return entries
}

// Clear empties every bucket. The capacity is left unchanged.
func (m *HashMap[V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = bucket[V]{}
	}
	m.keys = 0
}

// Len returns the number of live entries currently in the HashMap
func (m *HashMap[V]) Len() int {
	return m.keys
}

// Cap returns the number of buckets
func (m *HashMap[V]) Cap() int {
	return len(m.buckets)
}

// Iterator is an iterator function type
type Iterator[V any] func(key string, value V) bool

// Range takes an Iterator and ranges the live entries of the HashMap as
// long as the iterator function continues to be true. Range is not safe
// to perform an insert or remove operation while ranging!
func (m *HashMap[V]) Range(it Iterator[V]) {
	for i := 0; i < len(m.buckets); i++ {
		if m.buckets[i].state != slotLive {
			continue
		}
		if !it(m.buckets[i].key, m.buckets[i].val) {
			return
		}
	}
}

// String renders every bucket on its own line. The format is meant for
// debugging and may change.
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := range m.buckets {
		fmt.Fprintf(&sb, "%d: %s\n", i, m.buckets[i].String())
	}
	return sb.String()
}
