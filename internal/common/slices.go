package common

import (
	"cmp"
	"slices"
)

// IsSingle reports whether s holds exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// SortedUnique returns a sorted copy of s without duplicates.
// The input is not modified.
func SortedUnique[S ~[]E, E cmp.Ordered](s S) S {
	out := slices.Clone(s)
	slices.Sort(out)

	return slices.Compact(out)
}

// MapUnique applies fn to every element and returns the sorted, de-duplicated results.
func MapUnique[S ~[]E, E cmp.Ordered](s S, fn func(E) E) S {
	out := make(S, 0, len(s))
	for _, e := range s {
		out = append(out, fn(e))
	}

	return SortedUnique(out)
}
