package core

import "fmt"

// Tolerance is an m/z matching window, either absolute or relative (ppm).
// A Tolerance is immutable; the zero value is an absolute window of 0.
type Tolerance struct {
	value    float64
	relative bool
}

// Abs returns an absolute tolerance of v m/z units.
func Abs(v float64) Tolerance {
	return Tolerance{value: v}
}

// PPM returns a relative tolerance of p parts per million.
func PPM(p float64) Tolerance {
	return Tolerance{value: p, relative: true}
}

// Window resolves the tolerance to an absolute m/z window at the given
// reference value. An absolute tolerance ignores ref.
func (t Tolerance) Window(ref float64) float64 {
	if t.relative {
		return t.value * ref / 1e6
	}
	return t.value
}

func (t Tolerance) String() string {
	if t.relative {
		return fmt.Sprintf("%g ppm", t.value)
	}
	return fmt.Sprintf("%g m/z", t.value)
}
