package core

import "sort"

// Ion is a reference precursor ion: an m/z value and a charge state.
type Ion struct {
	MZ     float64
	Charge int
}

// IonList is a read-only collection of reference ions kept sorted
// ascending by m/z. Construct with NewIonList; lookups never mutate it.
type IonList struct {
	ions []Ion
}

// NewIonList builds an IonList from ions. The input slice is copied and the
// copy sorted by m/z; the caller's slice is never modified. Duplicate m/z
// values are legal and all retained.
func NewIonList(ions []Ion) *IonList {
	data := make([]Ion, len(ions))
	copy(data, ions)
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].MZ < data[j].MZ
	})
	return &IonList{ions: data}
}

// Find returns the reference ion closest to mz, provided it lies within the
// tolerance window and carries the same charge. The second return value is
// false when no ion qualifies; that is a routine miss, not an error. An
// empty list never matches.
func (l *IonList) Find(mz float64, tol Tolerance, charge int) (Ion, bool) {
	candidate, err := ValueOfClosestFunc(mz, l.ions, func(ion Ion) float64 {
		return ion.MZ
	})
	if err != nil {
		return Ion{}, false
	}

	w := tol.Window(mz)
	diff := candidate.MZ - mz
	if diff < 0 {
		diff = -diff
	}
	if diff <= w && candidate.Charge == charge {
		return candidate, true
	}
	return Ion{}, false
}

// Len returns the number of reference ions.
func (l *IonList) Len() int {
	return len(l.ions)
}

// MZRange returns the smallest and largest reference m/z. The second return
// value is false for an empty list.
func (l *IonList) MZRange() (lo, hi float64, ok bool) {
	if len(l.ions) == 0 {
		return 0, 0, false
	}
	return l.ions[0].MZ, l.ions[len(l.ions)-1].MZ, true
}
