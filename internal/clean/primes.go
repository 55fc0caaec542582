package clean

import (
	"golang.org/x/exp/constraints"
)

// IsPrime reports whether n is prime using trial division up to √n.
// Values below 2 are never prime.
func IsPrime[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	for d := T(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
