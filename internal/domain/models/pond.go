package models

import "strings"

// Species is a cultivated fish species.
type Species string

const (
	SpeciesLele   Species = "lele"
	SpeciesNila   Species = "nila"
	SpeciesGurame Species = "gurame"
	SpeciesPatin  Species = "patin"
)

// AllSpecies lists the supported species in display order.
var AllSpecies = []Species{SpeciesLele, SpeciesNila, SpeciesGurame, SpeciesPatin}

// ParseSpecies normalizes a species name; ok is false for unsupported values.
func ParseSpecies(value string) (Species, bool) {
	s := Species(strings.TrimSpace(strings.ToLower(value)))
	for _, known := range AllSpecies {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// PondDimensions are the length and width of one pond in metres, longest first.
type PondDimensions struct {
	Length float64 `json:"panjang" bson:"length"`
	Width  float64 `json:"lebar" bson:"width"`
}

// PondLayout is the inferred pond partition of a plot.
type PondLayout struct {
	Species         Species        `json:"jenis_ikan" bson:"species"`
	LandArea        float64        `json:"luas_lahan" bson:"land_area"`
	PondCount       int            `json:"jumlah_kolam" bson:"pond_count"`
	Dimensions      PondDimensions `json:"dimensi" bson:"dimensions"`
	PondArea        float64        `json:"luas_per_kolam" bson:"pond_area"`
	DepthRange      string         `json:"kedalaman" bson:"depth_range"`
	AverageDepth    float64        `json:"kedalaman_rata" bson:"average_depth"`
	TotalPondArea   float64        `json:"total_luas_kolam" bson:"total_pond_area"`
	AreaUtilization float64        `json:"areaUtilization" bson:"area_utilization"`
	Rationale       string         `json:"alasan" bson:"rationale"`
}
