package pondlayout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

func TestInferSmallLelePlot(t *testing.T) {
	got, err := Infer(56.56, models.SpeciesLele)
	require.NoError(t, err)

	assert.Equal(t, 2, got.PondCount)
	assert.Equal(t, models.PondDimensions{Length: 5, Width: 5}, got.Dimensions)
	assert.Equal(t, 25.0, got.PondArea)
	assert.Equal(t, 50.0, got.TotalPondArea)
	assert.Equal(t, "0.8-1.2 m", got.DepthRange)
	assert.Equal(t, 1.0, got.AverageDepth)
	assert.InDelta(t, 88.4, got.AreaUtilization, 0.01)
	assert.GreaterOrEqual(t, got.AreaUtilization, 70.0)
	assert.LessOrEqual(t, got.AreaUtilization, 95.0)
	assert.Contains(t, got.Rationale, "2 kolam lele berukuran 5 x 5 m")
	assert.Contains(t, got.Rationale, "siklus panen sekitar 3 bulan")
}

func TestInferPondCount(t *testing.T) {
	tests := []struct {
		name      string
		land      float64
		species   models.Species
		wantCount int
		wantDims  models.PondDimensions
		wantUtil  float64
	}{
		{name: "tiny plot single pond", land: 10, species: models.SpeciesLele, wantCount: 1, wantDims: models.PondDimensions{Length: 3, Width: 3}, wantUtil: 90},
		{name: "three ponds from 75 m²", land: 80, species: models.SpeciesPatin, wantCount: 3, wantDims: models.PondDimensions{Length: 5, Width: 5}, wantUtil: 93.75},
		{name: "large plot clamps to five", land: 200, species: models.SpeciesLele, wantCount: 5, wantDims: models.PondDimensions{Length: 6, Width: 6}, wantUtil: 90},
		{name: "very large lele plot keeps utilization", land: 1000, species: models.SpeciesLele, wantCount: 5, wantDims: models.PondDimensions{Length: 13, Width: 13}, wantUtil: 84.5},
		{name: "large plot from optimal size", land: 120, species: models.SpeciesNila, wantCount: 2, wantDims: models.PondDimensions{Length: 7, Width: 7}, wantUtil: 81.67},
		{name: "gurame prefers a pair", land: 60, species: models.SpeciesGurame, wantCount: 2, wantDims: models.PondDimensions{Length: 6, Width: 5}, wantUtil: 100},
		{name: "gurame below pair threshold", land: 55, species: models.SpeciesGurame, wantCount: 2, wantDims: models.PondDimensions{Length: 5, Width: 5}, wantUtil: 90.91},
		{name: "gurame on a big plot stays at two", land: 1000, species: models.SpeciesGurame, wantCount: 2, wantDims: models.PondDimensions{Length: 20, Width: 20}, wantUtil: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.land, tt.species)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.PondCount)
			assert.Equal(t, tt.wantDims, got.Dimensions)
			assert.InDelta(t, tt.wantUtil, got.AreaUtilization, 0.01)
			assert.GreaterOrEqual(t, got.Dimensions.Length, got.Dimensions.Width)
			assert.LessOrEqual(t, got.TotalPondArea, tt.land)
		})
	}
}

func TestInferRationaleRemarks(t *testing.T) {
	high, err := Infer(20, models.SpeciesLele)
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.AreaUtilization)
	assert.Contains(t, high.Rationale, "Pemanfaatan lahan tinggi")

	spare, err := Infer(3, models.SpeciesLele)
	require.NoError(t, err)
	assert.Equal(t, models.PondDimensions{Length: 2, Width: 1}, spare.Dimensions)
	assert.Contains(t, spare.Rationale, "Sisa lahan 1 m²")
	assert.Contains(t, spare.Rationale, "di bawah ukuran minimum lele")

	big, err := Infer(1000, models.SpeciesGurame)
	require.NoError(t, err)
	assert.Equal(t, 800.0, big.TotalPondArea)
	assert.Contains(t, big.Rationale, "20 x 20 m (400 m² per kolam)")
	assert.NotContains(t, big.Rationale, "Sisa lahan")
	assert.NotContains(t, big.Rationale, "Pemanfaatan lahan tinggi")
}

func TestInferLargePlotsFollowUtilizationFactor(t *testing.T) {
	for _, s := range models.AllSpecies {
		for _, land := range []float64{150, 500, 1000, 5000} {
			got, err := Infer(land, s)
			require.NoError(t, err)
			// whole-metre sides move utilization a few points off the 80% share
			assert.InDelta(t, 80, got.AreaUtilization, 8, "%s on %.0f m²", s, land)
			assert.LessOrEqual(t, got.TotalPondArea, land)
		}
	}
}

func TestInferTinyPlotGetsOnePond(t *testing.T) {
	got, err := Infer(1.5, models.SpeciesLele)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PondCount)
	assert.Equal(t, models.PondDimensions{Length: 1, Width: 1}, got.Dimensions)
	assert.InDelta(t, 66.67, got.AreaUtilization, 0.01)
	assert.Contains(t, got.Rationale, "di bawah ukuran minimum lele")
}

func TestInferErrors(t *testing.T) {
	for _, land := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := Infer(land, models.SpeciesLele)
		assert.ErrorIs(t, err, ErrInvalidInput, "land %v", land)
	}

	_, err := Infer(100, models.Species("bandeng"))
	assert.ErrorIs(t, err, ErrUnknownSpecies)
}

func TestInferAllSpeciesHaveProfiles(t *testing.T) {
	for _, s := range models.AllSpecies {
		_, err := Infer(150, s)
		assert.NoError(t, err, s)
	}
}
