package state

import (
	"slices"
)

type Pair[Ty1, Ty2 any] struct {
	V1 Ty1
	V2 Ty2
}

// MakeSortedPairFunc orders a and b by compare, smallest first.
func MakeSortedPairFunc[T any](a, b T, compare func(T, T) int) Pair[T, T] {
	if compare(b, a) < 0 {
		return Pair[T, T]{b, a}
	}
	return Pair[T, T]{a, b}
}

// SortPairsFunc sorts pairs by V1, then V2.
func SortPairsFunc[T1, T2 any](pairs []Pair[T1, T2], cmp1 func(T1, T1) int, cmp2 func(T2, T2) int) {
	slices.SortFunc(pairs, func(a, b Pair[T1, T2]) int {
		if c := cmp1(a.V1, b.V1); c != 0 {
			return c
		}
		return cmp2(a.V2, b.V2)
	})
}
