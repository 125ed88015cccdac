package planning

import "github.com/mamadbah2/kolamku/internal/domain/models"

// speciesDefaults are the per-cycle biological and economic assumptions used
// when the farmer does not provide their own figures. Prices are in IDR.
var speciesDefaults = map[models.Species]models.SpeciesParameters{
	models.SpeciesLele: {
		FCR: 1.0, SurvivalRate: 0.85,
		FeedPricePerKg: 12_000, SellPricePerKg: 22_000, SeedPrice: 250,
		TargetWeightKg: 0.125, Overhead: 1_500_000, FreightPerKg: 500,
		Density: 100, MaxDensity: 150,
		CycleDays: 90, DailyGrowthGrams: 1.4,
	},
	models.SpeciesNila: {
		FCR: 1.4, SurvivalRate: 0.80,
		FeedPricePerKg: 11_000, SellPricePerKg: 30_000, SeedPrice: 300,
		TargetWeightKg: 0.25, Overhead: 1_200_000, FreightPerKg: 600,
		Density: 30, MaxDensity: 40,
		CycleDays: 120, DailyGrowthGrams: 2.1,
	},
	models.SpeciesGurame: {
		FCR: 1.8, SurvivalRate: 0.75,
		FeedPricePerKg: 10_000, SellPricePerKg: 45_000, SeedPrice: 1_500,
		TargetWeightKg: 0.5, Overhead: 1_000_000, FreightPerKg: 800,
		Density: 15, MaxDensity: 20,
		CycleDays: 180, DailyGrowthGrams: 2.8,
	},
	models.SpeciesPatin: {
		FCR: 1.5, SurvivalRate: 0.80,
		FeedPricePerKg: 10_500, SellPricePerKg: 20_000, SeedPrice: 350,
		TargetWeightKg: 0.8, Overhead: 1_500_000, FreightPerKg: 700,
		Density: 40, MaxDensity: 50,
		CycleDays: 150, DailyGrowthGrams: 5.4,
	},
}

// DefaultParameters returns the default assumptions for a species.
func DefaultParameters(species models.Species) (models.SpeciesParameters, bool) {
	p, ok := speciesDefaults[species]
	return p, ok
}
