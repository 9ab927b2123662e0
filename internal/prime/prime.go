// Package prime holds the primality predicate shared by every counting
// strategy. It keeps no state and is safe for concurrent use.
package prime

// IsPrime reports whether n is prime using 6k±1 trial division.
//
// 1 is reported as prime: it passes both divisibility checks and the
// trial loop never runs. Counts over ranges starting at 0 or 1 include it.
func IsPrime(n int64) bool {
	if n < 0 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	i, w := int64(5), int64(2)
	for i*i <= n {
		if n%i == 0 {
			return false
		}
		i += w
		w = 6 - w
	}
	return true
}

// CountRange counts the values in the closed range [lo, hi] for which
// IsPrime holds. An empty range (hi < lo) counts zero.
func CountRange(lo, hi int64) int64 {
	var n int64
	for v := lo; v <= hi; v++ {
		if IsPrime(v) {
			n++
		}
	}
	return n
}
