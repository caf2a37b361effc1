// Package mode finds the most frequent tokens in a sequence using the
// separate chaining HashMap as its counter.
package mode

import (
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/hashmap/chained"
)

// Find returns the tokens that occur most often along with how often they
// occur. Ties are listed in the order each token first reached the leading
// frequency. An empty sequence yields no modes and a frequency of zero.
func Find(tokens []string) ([]string, int) {
	return FindWithConfig(tokens, nil)
}

// FindWithConfig is Find with control over the capacity, hash function and
// logger of the counting table
func FindWithConfig(tokens []string, conf *hashmap.Config) ([]string, int) {
	counts := chained.NewHashMapWithConfig[int](conf)
	var modes []string
	var best int
	for _, tok := range tokens {
		n, _ := counts.Get(tok)
		n++
		counts.Put(tok, n)
		switch {
		case n > best:
			// a new leader drops every earlier mode
			best = n
			modes = append(modes[:0], tok)
		case n == best:
			modes = append(modes, tok)
		}
	}
	return modes, best
}
