// Package recommender ranks catalog suppliers for a buyer location.
package recommender

import (
	"fmt"
	"math"
	"sort"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/service/scoring"
	"github.com/mamadbah2/kolamku/pkg/geo"
)

const (
	// DefaultTopN is used when the caller does not ask for a result size.
	DefaultTopN = 3

	distancePenaltyWeight = 0.10
	distanceNormKm        = 100.0
	p90Factor             = 1.8

	nearbyKm = 20.0
	farKm    = 50.0
)

// Recommend scores, ranks and truncates the supplier list.
//
// The distance adjustment subtracts 0.10 × max(0, 1 − d/100) from the base
// score, so the adjustment is largest for suppliers right next to the buyer
// and vanishes from 100 km on. Suppliers without a usable location get no
// adjustment and no distance reasons.
func Recommend(suppliers []models.SupplierRecord, userLocation geo.LatLng, category models.SupplierCategory, topN int) []models.SupplierRecommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}

	recs := make([]models.SupplierRecommendation, 0, len(suppliers))
	for _, s := range suppliers {
		if !matchesCategory(s, category) {
			continue
		}
		recs = append(recs, evaluate(s, userLocation))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score.TotalScore > recs[j].Score.TotalScore
	})

	for i := range recs {
		recs[i].Rank = i + 1
	}

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

func matchesCategory(s models.SupplierRecord, category models.SupplierCategory) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return s.Category == category
}

func evaluate(s models.SupplierRecord, userLocation geo.LatLng) models.SupplierRecommendation {
	score := scoring.Score(s)

	var distance *float64
	if s.Location != nil && s.Location.Valid() && userLocation.Valid() {
		d := geo.DistanceKm(userLocation, *s.Location)
		distance = &d

		normalized := math.Max(0, 1-d/distanceNormKm)
		score.TotalScore -= distancePenaltyWeight * normalized
	}

	p50 := s.SLA.AverageDeliveryTime
	return models.SupplierRecommendation{
		Supplier:   s,
		Score:      score,
		DistanceKm: distance,
		ETA:        models.ETA{P50: p50, P90: p50 * p90Factor},
		Reasons:    reasons(s, distance),
	}
}

func reasons(s models.SupplierRecord, distance *float64) []string {
	out := make([]string, 0, 6)

	if s.HasCertification {
		if s.CertificationType != "" {
			out = append(out, fmt.Sprintf("Sertifikasi resmi (%s)", s.CertificationType))
		} else {
			out = append(out, "Sertifikasi resmi")
		}
	}
	if s.SLA.OnTimePercentage >= 0.95 {
		out = append(out, fmt.Sprintf("Tepat waktu %.0f%%", s.SLA.OnTimePercentage*100))
	}
	if s.ReturnRate < 0.03 {
		out = append(out, "Tingkat retur rendah")
	}
	if s.PriceStability >= 0.85 {
		out = append(out, "Harga stabil")
	}
	if s.Rating >= 4.5 {
		out = append(out, fmt.Sprintf("Rating tinggi (%.1f)", s.Rating))
	}
	if distance != nil {
		switch {
		case *distance < nearbyKm:
			out = append(out, fmt.Sprintf("Lokasi dekat (%.1f km)", *distance))
		case *distance > farKm:
			out = append(out, fmt.Sprintf("Lokasi jauh (%.1f km), ongkir lebih tinggi", *distance))
		}
	}

	return out
}
