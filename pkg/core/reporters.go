package core

import "sort"

// TMT10Reporters lists the reporter ion m/z values of the TMT 10-plex
// labeling chemistry, ascending. These are constants of the reagent kit;
// do not modify.
var TMT10Reporters = []float64{
	126.127726,
	127.124761,
	127.131081,
	128.128116,
	128.134436,
	129.131471,
	129.137790,
	130.134825,
	130.141145,
	131.138180,
}

// minSpacing returns the smallest gap between consecutive values of a after
// sorting, taking every consecutive pair into account. Callers pass at
// least two values.
func minSpacing(a []float64) float64 {
	sorted := make([]float64, len(a))
	copy(sorted, a)
	sort.Float64s(sorted)

	smallest := 0.0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1]
		if i == 1 || gap < smallest {
			smallest = gap
		}
	}
	return smallest
}
