package prime

import (
	"testing"

	"github.com/scottcagno/hashtable/pkg/util"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 23, 31, 53, 97, 101, 7919}
	for _, p := range primes {
		util.AssertExpected(t, true, IsPrime(p))
	}
	composites := []int{-7, -1, 0, 1, 4, 9, 15, 21, 25, 49, 91, 7917}
	for _, c := range composites {
		util.AssertExpected(t, false, IsPrime(c))
	}
}

func TestNextPrime(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-10, 3},
		{0, 3},
		{1, 3},
		{2, 3},
		{3, 3},
		{11, 11},
		{20, 23},
		{21, 23},
		{30, 31},
		{53, 53},
		{106, 107},
		{114, 127},
	}
	for _, c := range cases {
		util.AssertExpected(t, c.want, NextPrime(c.in))
	}
}

func TestNextPrime_NeverEven(t *testing.T) {
	for n := -5; n < 1000; n++ {
		p := NextPrime(n)
		if p%2 == 0 {
			t.Fatalf("NextPrime(%d) returned even value %d", n, p)
		}
		if p < n || !IsPrime(p) {
			t.Fatalf("NextPrime(%d) returned %d", n, p)
		}
	}
}

func TestPromote(t *testing.T) {
	util.AssertExpected(t, 2, Promote(2))
	util.AssertExpected(t, 31, Promote(30))
	util.AssertExpected(t, 31, Promote(31))
	util.AssertExpected(t, 3, Promote(1))
}
