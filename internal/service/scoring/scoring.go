// Package scoring rates suppliers on certification, delivery, returns, price
// stability and customer rating.
package scoring

import "github.com/mamadbah2/kolamku/internal/domain/models"

// Component weights; they sum to 1.0.
const (
	WeightCertification  = 0.20
	WeightSLA            = 0.25
	WeightReturnRate     = 0.15
	WeightPriceStability = 0.20
	WeightRating         = 0.20

	maxRating = 5.0
)

// Score computes the weighted quality score of a supplier. Inputs are not
// clamped, so a rating above 5 can lift the total above 1.
func Score(s models.SupplierRecord) models.SupplierScore {
	b := models.ScoreBreakdown{
		SLA:            s.SLA.OnTimePercentage,
		ReturnRate:     1 - s.ReturnRate,
		PriceStability: s.PriceStability,
		Rating:         s.Rating / maxRating,
	}
	if s.HasCertification {
		b.Certification = 1
	}

	total := b.Certification*WeightCertification +
		b.SLA*WeightSLA +
		b.ReturnRate*WeightReturnRate +
		b.PriceStability*WeightPriceStability +
		b.Rating*WeightRating

	return models.SupplierScore{TotalScore: total, Breakdown: b}
}
