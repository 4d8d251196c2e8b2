// Package core provides the matching primitives and search pipeline for
// reporter-ion extraction: tolerance windows, closest-value search over
// sorted m/z sequences, the reference ion list, and the reporter searcher.
package core

import (
	"errors"
	"sort"
)

// ErrEmptySequence is returned when a closest-match search is invoked on an
// empty sequence. This is a contract violation by the caller, not a routine
// "no match" outcome.
var ErrEmptySequence = errors.New("closest search on empty sequence")

// IndexOfClosestFunc returns the index of the element in a whose key is
// closest to x. a must be sorted ascending under key. On an exact tie
// between two neighbors the lower index wins.
func IndexOfClosestFunc[T any](x float64, a []T, key func(T) float64) (int, error) {
	if len(a) == 0 {
		return 0, ErrEmptySequence
	}

	// Rightmost insertion point: key(a[i]) <= x for all i < p.
	p := sort.Search(len(a), func(i int) bool {
		return key(a[i]) > x
	})

	switch p {
	case 0:
		return 0, nil
	case len(a):
		return len(a) - 1, nil
	}

	if x-key(a[p-1]) <= key(a[p])-x {
		return p - 1, nil
	}
	return p, nil
}

// IndexOfClosest returns the index of the value in a closest to x.
// a must be sorted ascending.
func IndexOfClosest(x float64, a []float64) (int, error) {
	return IndexOfClosestFunc(x, a, func(v float64) float64 { return v })
}

// ValueOfClosestFunc returns the element in a whose key is closest to x.
// a must be sorted ascending under key.
func ValueOfClosestFunc[T any](x float64, a []T, key func(T) float64) (T, error) {
	i, err := IndexOfClosestFunc(x, a, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return a[i], nil
}
