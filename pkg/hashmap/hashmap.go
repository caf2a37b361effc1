package hashmap

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a non-negative integer. Tables reduce the result
// modulo their capacity, so it does not need to be bounded.
type HashFunc func(key string) uint64

// Entry is a key value pair as handed back by a table snapshot. Changing an
// Entry never affects the table it came from.
type Entry[V any] struct {
	Key   string
	Value V
}

// DefaultHashFunc is used whenever a table is built without a hash function
func DefaultHashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}

// SumOfCodes adds up the code points of the key. Anagrams collide, which
// makes it handy for exercising collision handling.
func SumOfCodes(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// PositionalSum weights every code point by its one based position
func PositionalSum(key string) uint64 {
	var hash, i uint64
	for _, r := range key {
		i++
		hash += i * uint64(r)
	}
	return hash
}
