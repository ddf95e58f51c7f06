package geometry

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to [lo, hi]. If hi < lo, hi wins.
func Clamp[T number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Lerp returns the value a fraction t of the way from a to b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Steps returns n values evenly spaced from a to b inclusive. n below 2
// yields just a.
func Steps[T constraints.Float](a, b T, n int) []T {
	if n < 2 {
		return []T{a}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = Lerp(a, b, T(i)/T(n-1))
	}
	out[n-1] = b
	return out
}
