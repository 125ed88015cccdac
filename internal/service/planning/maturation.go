package planning

import (
	"math"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

// MaturationEstimator predicts the number of days until fish reach harvest weight.
type MaturationEstimator interface {
	EstimateDays(species models.Species, params models.SpeciesParameters) int
}

// GrowthRateEstimator divides the target weight by a constant daily growth.
// It falls back to the typical cycle length when no growth rate is known.
type GrowthRateEstimator struct{}

// EstimateDays implements MaturationEstimator.
func (GrowthRateEstimator) EstimateDays(_ models.Species, params models.SpeciesParameters) int {
	if params.DailyGrowthGrams <= 0 || params.TargetWeightKg <= 0 {
		return params.CycleDays
	}
	return int(math.Ceil(params.TargetWeightKg * 1000 / params.DailyGrowthGrams))
}
