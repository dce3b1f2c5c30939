package driver

import "math"

// luby computes the Luby restart sequence's i-th term, base raised to
// the sequence's exponent: the classic doubling-with-resets index
// sequence 0,0,1,0,0,1,2,0,0,1,0,0,1,2,3,... fed through base**seq.
func luby(base float64, i int) float64 {
	size, seq := 1, 0
	for size < i+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != i {
		size = (size - 1) / 2
		seq--
		i = i % size
	}
	return math.Pow(base, float64(seq))
}
