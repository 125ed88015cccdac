// Package pondlayout infers how a plot of land is partitioned into ponds for
// a given species.
package pondlayout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

var (
	// ErrInvalidInput is returned for non-positive or non-finite land areas.
	ErrInvalidInput = errors.New("invalid pond layout input")
	// ErrUnknownSpecies is returned for species without a pond profile.
	ErrUnknownSpecies = errors.New("unknown species")
)

const (
	largePlotM2  = 100.0
	mediumPlotM2 = 50.0
	threePondM2  = 75.0
	guramePairM2 = 60.0

	largePlotUtilization = 0.80
	smallPlotUtilization = 0.85

	highUtilization  = 90.0
	spareUtilization = 70.0
)

type profile struct {
	minPond     float64
	optimalPond float64
	depthMin    float64
	depthMax    float64
	prefersPair bool
	note        string
}

var profiles = map[models.Species]profile{
	models.SpeciesLele: {
		minPond: 4, optimalPond: 20, depthMin: 0.8, depthMax: 1.2,
		note: "Lele toleran padat tebar tinggi dengan siklus panen sekitar 3 bulan.",
	},
	models.SpeciesNila: {
		minPond: 20, optimalPond: 50, depthMin: 1.0, depthMax: 1.5,
		note: "Nila butuh ruang gerak lebih luas dan sirkulasi air yang baik, siklus sekitar 4 bulan.",
	},
	models.SpeciesGurame: {
		minPond: 20, optimalPond: 40, depthMin: 1.0, depthMax: 1.5, prefersPair: true,
		note: "Gurame tumbuh lambat (siklus sekitar 6 bulan), dua kolam memudahkan pemisahan ukuran.",
	},
	models.SpeciesPatin: {
		minPond: 30, optimalPond: 60, depthMin: 1.5, depthMax: 2.0,
		note: "Patin butuh kolam dalam dan luas, siklus sekitar 5 bulan.",
	},
}

// Infer partitions landAreaM2 into ponds sized for the species.
func Infer(landAreaM2 float64, species models.Species) (models.PondLayout, error) {
	if math.IsNaN(landAreaM2) || math.IsInf(landAreaM2, 0) || landAreaM2 <= 0 {
		return models.PondLayout{}, fmt.Errorf("%w: luas lahan harus lebih dari 0", ErrInvalidInput)
	}
	p, ok := profiles[species]
	if !ok {
		return models.PondLayout{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, species)
	}

	count, factor := pondCount(landAreaM2, species, p)

	design := landAreaM2 * factor / float64(count)

	length, width := dimensions(design, landAreaM2, count)
	pondArea := length * width
	total := pondArea * float64(count)
	utilization := round2(total / landAreaM2 * 100)

	layout := models.PondLayout{
		Species:         species,
		LandArea:        landAreaM2,
		PondCount:       count,
		Dimensions:      models.PondDimensions{Length: length, Width: width},
		PondArea:        pondArea,
		DepthRange:      fmt.Sprintf("%.1f-%.1f m", p.depthMin, p.depthMax),
		AverageDepth:    round2((p.depthMin + p.depthMax) / 2),
		TotalPondArea:   total,
		AreaUtilization: utilization,
	}
	layout.Rationale = rationale(layout, design, p)

	return layout, nil
}

// pondCount returns the number of ponds and the share of land given to them.
func pondCount(land float64, species models.Species, p profile) (int, float64) {
	factor := smallPlotUtilization
	if land >= largePlotM2 {
		factor = largePlotUtilization
	}

	switch {
	case p.prefersPair && land >= guramePairM2:
		return 2, factor
	case land >= largePlotM2:
		n := int(math.Round(land * factor / p.optimalPond))
		return clampInt(n, 2, 5), factor
	case land >= mediumPlotM2:
		if land >= threePondM2 {
			return 3, factor
		}
		return 2, factor
	default:
		return 1, factor
	}
}

// dimensions finds near-square whole-metre sides for a pond of area a,
// longest side first, shrinking when the ponds would not fit on the land.
// Plots too small for any whole-metre pond get a 1 x 1 m pond.
func dimensions(a, land float64, count int) (float64, float64) {
	fits := func(l, w float64) bool {
		return l >= 1 && w >= 1 && l*w*float64(count) <= land
	}

	side := math.Ceil(math.Sqrt(a))
	other := math.Ceil(a / side)
	if !fits(side, other) {
		other = math.Floor(a / side)
	}
	if !fits(side, other) {
		side = math.Max(1, math.Floor(math.Sqrt(a)))
		other = math.Max(1, math.Floor(a/side))
	}

	return math.Max(side, other), math.Min(side, other)
}

func rationale(l models.PondLayout, design float64, p profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lahan %.2f m² dibagi menjadi %d kolam %s berukuran %.0f x %.0f m (%.0f m² per kolam) dengan kedalaman %s.",
		l.LandArea, l.PondCount, l.Species, l.Dimensions.Length, l.Dimensions.Width, l.PondArea, l.DepthRange)
	b.WriteString(" " + p.note)

	if design < p.minPond {
		fmt.Fprintf(&b, " Luas per kolam di bawah ukuran minimum %s (%.0f m²), pertimbangkan kolam terpal bundar.", l.Species, p.minPond)
	}

	switch {
	case l.AreaUtilization > highUtilization:
		fmt.Fprintf(&b, " Pemanfaatan lahan tinggi (%.0f%%), sisakan jalur kerja di pematang.", l.AreaUtilization)
	case l.AreaUtilization < spareUtilization:
		fmt.Fprintf(&b, " Sisa lahan %.0f m² dapat dipakai untuk kolam tambahan atau tandon air.", l.LandArea-l.TotalPondArea)
	}

	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
