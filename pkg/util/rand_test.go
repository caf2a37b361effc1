package util

import "testing"

func TestRandKeys(t *testing.T) {
	a := RandKeys(42, 100, 8)
	b := RandKeys(42, 100, 8)
	AssertExpected(t, a, b)
	AssertLen(t, 100, len(a))
	for _, k := range a {
		AssertLen(t, 8, len(k))
		for i := 0; i < len(k); i++ {
			c := k[i]
			AssertTrue(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'))
		}
	}
	c := RandKeys(43, 100, 8)
	AssertFalse(t, a[0] == c[0] && a[1] == c[1] && a[2] == c[2])
}
