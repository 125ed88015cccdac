// Package geo provides great-circle helpers for supplier and market distances.
package geo

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// LatLng is a WGS84 coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// DistanceKm returns the Haversine distance between a and b in kilometres.
// NaN coordinates yield NaN.
func DistanceKm(a, b LatLng) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ParseLatLng parses coordinates delivered as strings by the supplier feed.
// The boolean is false when either value is empty, not a number, or outside
// the valid latitude/longitude range.
func ParseLatLng(lat, lng string) (LatLng, bool) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return LatLng{}, false
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return LatLng{}, false
	}

	p := LatLng{Lat: la, Lng: ln}
	if !p.Valid() {
		return LatLng{}, false
	}
	return p, true
}

// Valid reports whether the coordinate is finite and within range.
func (p LatLng) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
