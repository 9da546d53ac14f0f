package mechanics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMises(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		expected   float64
	}{
		{
			name:       "zero stress",
			components: []float64{0, 0, 0, 0, 0, 0},
			expected:   0,
		},
		{
			name:       "uniaxial stress equals its magnitude",
			components: []float64{250, 0, 0, 0, 0, 0},
			expected:   250,
		},
		{
			name:       "hydrostatic stress has no deviatoric part",
			components: []float64{100, 100, 100, 0, 0, 0},
			expected:   0,
		},
		{
			name:       "pure shear",
			components: []float64{0, 0, 0, 50, 0, 0},
			expected:   50 * math.Sqrt(3),
		},
		{
			name:       "sign independent",
			components: []float64{-250, 0, 0, 0, 0, 0},
			expected:   250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mises(tt.components), 1e-9)
		})
	}
}

func TestEffectiveStrain(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		expected   float64
	}{
		{
			name:       "zero strain",
			components: []float64{0, 0, 0, 0, 0, 0},
			expected:   0,
		},
		{
			name:       "uniaxial strain scaled by two thirds",
			components: []float64{3.0e-3, 0, 0, 0, 0, 0},
			expected:   2.0e-3,
		},
		{
			name:       "volumetric strain has no deviatoric part",
			components: []float64{1e-3, 1e-3, 1e-3, 0, 0, 0},
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EffectiveStrain(tt.components), 1e-12)
		})
	}
}
