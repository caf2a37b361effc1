package prime

// minPrime is the smallest capacity NextPrime will hand out. Even inputs are
// bumped to odd before the search begins, so 2 is never returned.
const minPrime = 3

// IsPrime reports whether n is prime using trial division by odd factors
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest odd prime greater than or equal to n. If n
// is even it is incremented to odd before searching, so NextPrime(2) is 3.
// Anything below 3 is normalized to 3.
func NextPrime(n int) int {
	if n < minPrime {
		return minPrime
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}

// Promote returns n when n is already prime, and NextPrime(n) otherwise. It
// is what the tables use when resizing, which means a resize to 2 keeps 2.
func Promote(n int) int {
	if IsPrime(n) {
		return n
	}
	return NextPrime(n)
}
