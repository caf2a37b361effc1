package hashtable

import "github.com/scottcagno/hashtable/pkg/hashmap"

// Map is the contract shared by the open addressing and the chained hash
// maps. Keys are strings. Lookups of absent keys and rejected resizes are
// reported through booleans rather than errors.
type Map[V any] interface {
	Put(key string, value V)
	Get(key string) (V, bool)
	Contains(key string) bool
	Remove(key string) bool
	Resize(newCapacity int) bool
	PercentFull() float64
	EmptyBuckets() int
	Entries() []hashmap.Entry[V]
	Clear()
	Len() int
	Cap() int
	String() string
}
