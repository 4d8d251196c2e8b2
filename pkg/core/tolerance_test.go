package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToleranceWindow(t *testing.T) {
	tests := []struct {
		name     string
		tol      Tolerance
		ref      float64
		expected float64
	}{
		{"ppm scales with reference", PPM(10), 1000, 0.01},
		{"ppm at reporter mass", PPM(20), 131.138180, 20 * 131.138180 / 1e6},
		{"absolute ignores reference", Abs(0.5), 1000, 0.5},
		{"absolute at other reference", Abs(0.5), 10, 0.5},
		{"zero value", Tolerance{}, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.tol.Window(tt.ref), 1e-12)
		})
	}
}

func TestToleranceString(t *testing.T) {
	assert.Equal(t, "20 ppm", PPM(20).String())
	assert.Equal(t, "0.5 m/z", Abs(0.5).String())
}
