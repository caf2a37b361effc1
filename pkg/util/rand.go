package util

import (
	"math/rand"
	"strings"
)

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// RandKeys returns count random keys of length n built from a source seeded
// with seed, so a failing run can be replayed.
func RandKeys(seed int64, count, n int) []string {
	s := rand.NewSource(seed)
	keys := make([]string, count)
	for i := range keys {
		keys[i] = randString(s, n)
	}
	return keys
}

func randString(s rand.Source, n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	// A s.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, s.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = s.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			sb.WriteByte(letterBytes[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}
