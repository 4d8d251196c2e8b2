package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfClosest(t *testing.T) {
	a := []float64{1, 2, 3, 7, 8}

	tests := []struct {
		name     string
		x        float64
		expected int
	}{
		{"between, closer left", 4, 2},
		{"below range", 0, 0},
		{"above range", 10, 4},
		{"exact match", 3, 2},
		{"midpoint tie prefers lower index", 1.5, 0},
		{"just past midpoint", 1.6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IndexOfClosest(tt.x, a)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIndexOfClosestEmpty(t *testing.T) {
	_, err := IndexOfClosest(5, nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = IndexOfClosestFunc(5, []Ion{}, func(ion Ion) float64 { return ion.MZ })
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestIndexOfClosestFuncKeyed(t *testing.T) {
	ions := []Ion{
		{MZ: 1, Charge: 1},
		{MZ: 2, Charge: 1},
		{MZ: 5, Charge: 1},
	}

	i, err := IndexOfClosestFunc(4, ions, func(ion Ion) float64 { return ion.MZ })
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestValueOfClosestFunc(t *testing.T) {
	ions := []Ion{
		{MZ: 100, Charge: 2},
		{MZ: 200, Charge: 3},
	}

	got, err := ValueOfClosestFunc(190, ions, func(ion Ion) float64 { return ion.MZ })
	require.NoError(t, err)
	assert.Equal(t, Ion{MZ: 200, Charge: 3}, got)

	_, err = ValueOfClosestFunc(190, []Ion(nil), func(ion Ion) float64 { return ion.MZ })
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestIndexOfClosestSingleElement(t *testing.T) {
	for _, x := range []float64{-100, 50, 100} {
		i, err := IndexOfClosest(x, []float64{50})
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	}
}
