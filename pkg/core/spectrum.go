package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Spectrum represents a single acquired spectrum: its scan number, the
// precursor selected for fragmentation, and the fragment peak list as two
// index-aligned arrays.
type Spectrum struct {
	Scan            int     // Scan number, unique within a run
	PrecursorMZ     float64 // Observed precursor m/z
	PrecursorCharge int     // Precursor charge state

	// Parallel arrays: FragmentMZ[i] pairs with FragmentIntensity[i].
	// FragmentMZ must be non-decreasing for IntensityNear to be correct;
	// readers are responsible for establishing that invariant.
	FragmentMZ        []float64
	FragmentIntensity []float64
}

// IntensityNear returns the intensity of the fragment peak closest to mz,
// provided it lies strictly inside the tolerance window. If no peak
// qualifies (including the no-peaks case) it returns 0; absence is a
// defined outcome, never an error.
func (s *Spectrum) IntensityNear(mz float64, tol Tolerance) float64 {
	i, err := IndexOfClosest(mz, s.FragmentMZ)
	if err != nil {
		return 0
	}

	w := tol.Window(mz)
	diff := s.FragmentMZ[i] - mz
	if diff < 0 {
		diff = -diff
	}
	if diff < w {
		return s.FragmentIntensity[i]
	}
	return 0
}

// ValidationError represents an error found during spectrum validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Validate checks that a spectrum meets all requirements for processing.
func (s *Spectrum) Validate() error {
	var errs []string

	if s.Scan <= 0 {
		errs = append(errs, "scan number must be positive")
	}
	if s.PrecursorMZ <= 0 {
		errs = append(errs, "precursor m/z must be positive")
	}
	if s.PrecursorCharge <= 0 {
		errs = append(errs, "precursor charge must be positive")
	}
	if len(s.FragmentMZ) == 0 {
		errs = append(errs, "at least one fragment peak is required")
	}
	if len(s.FragmentMZ) != len(s.FragmentIntensity) {
		errs = append(errs, fmt.Sprintf("fragment arrays must align: %d m/z values, %d intensities",
			len(s.FragmentMZ), len(s.FragmentIntensity)))
	} else {
		for i := range s.FragmentMZ {
			if math.IsNaN(s.FragmentMZ[i]) || math.IsInf(s.FragmentMZ[i], 0) {
				errs = append(errs, fmt.Sprintf("peak %d has invalid m/z", i))
			}
			if math.IsNaN(s.FragmentIntensity[i]) || math.IsInf(s.FragmentIntensity[i], 0) {
				errs = append(errs, fmt.Sprintf("peak %d has invalid intensity", i))
			}
			if s.FragmentMZ[i] <= 0 {
				errs = append(errs, fmt.Sprintf("peak %d m/z must be positive", i))
			}
			if s.FragmentIntensity[i] < 0 {
				errs = append(errs, fmt.Sprintf("peak %d intensity must be non-negative", i))
			}
		}
	}

	if !s.FragmentsSorted() {
		errs = append(errs, "fragment peaks must be sorted by m/z")
	}

	if len(errs) > 0 {
		return &ValidationError{
			Field:   "Spectrum",
			Message: strings.Join(errs, "; "),
		}
	}

	return nil
}

// FragmentsSorted checks if fragment peaks are sorted by m/z in ascending order.
func (s *Spectrum) FragmentsSorted() bool {
	for i := 1; i < len(s.FragmentMZ); i++ {
		if s.FragmentMZ[i] < s.FragmentMZ[i-1] {
			return false
		}
	}
	return true
}

// SortFragments sorts the fragment peaks by m/z in ascending order, keeping
// the intensity array aligned.
func (s *Spectrum) SortFragments() {
	idx := make([]int, len(s.FragmentMZ))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return s.FragmentMZ[idx[i]] < s.FragmentMZ[idx[j]]
	})

	mz := make([]float64, len(idx))
	intensity := make([]float64, len(idx))
	for i, j := range idx {
		mz[i] = s.FragmentMZ[j]
		intensity[i] = s.FragmentIntensity[j]
	}
	s.FragmentMZ = mz
	s.FragmentIntensity = intensity
}

// Name returns a short identifier for the spectrum, used in diagnostics.
func (s *Spectrum) Name() string {
	return fmt.Sprintf("scan %d (%.4f/%d)", s.Scan, s.PrecursorMZ, s.PrecursorCharge)
}
