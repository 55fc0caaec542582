package clean

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Quantile returns the p-quantile of values using linear interpolation
// between the closest ranks: rank = p*(n-1). values need not be sorted and
// is not modified. It returns NaN when values is empty.
func Quantile[T constraints.Float](values []T, p float64) T {
	if len(values) == 0 {
		return T(math.NaN())
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return quantileSorted(sorted, p)
}

func quantileSorted[T constraints.Float](sorted []T, p float64) T {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return lerp(sorted[lo], sorted[hi], T(pos-float64(lo)))
}

// lerp interpolates from a to b by w. Weights of one half or more are
// measured back from b, matching numpy's linear method bit for bit.
func lerp[T constraints.Float](a, b, w T) T {
	diff := b - a
	if w >= 0.5 {
		return b - diff*(1-w)
	}
	return a + diff*w
}
