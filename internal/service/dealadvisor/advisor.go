// Package dealadvisor suggests a purchase pricing model (spot, fixed or
// indexed) from contract horizon, price volatility, volume and risk appetite.
package dealadvisor

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

// DefaultVolatility is returned when the price history is too short to measure.
const DefaultVolatility = 0.10

// decision is the outcome of the first matching rule.
type decision struct {
	model      models.PriceModel
	confidence float64
	reasons    []string
}

// rule returns ok=false when it does not apply to the input.
type rule func(in models.PriceModelInput) (decision, bool)

// rules are evaluated in order; the first match wins.
var rules = []rule{
	shortCalmRule,
	mediumModerateRule,
	longOrVolatileRule,
}

// Recommend picks a pricing model and lists the applicable alternatives.
func Recommend(in models.PriceModelInput) models.PriceModelRecommendation {
	d, matched := decision{}, false
	for _, r := range rules {
		if d, matched = r(in); matched {
			break
		}
	}
	if !matched {
		d = appetiteFallback(in)
	}

	if in.Volume > 1000 && d.model != models.PriceModelIndexed {
		d.reasons = append(d.reasons, "Volume besar, pertimbangkan diskon tier volume")
	}

	return models.PriceModelRecommendation{
		Recommendation: d.model,
		Confidence:     d.confidence,
		Reasons:        d.reasons,
		Alternatives:   alternatives(in, d.model),
	}
}

func shortCalmRule(in models.PriceModelInput) (decision, bool) {
	if !(in.HorizonWeeks <= 1 && in.Volatility30d < 0.10) {
		return decision{}, false
	}
	return decision{
		model:      models.PriceModelSpot,
		confidence: 0.90,
		reasons:    []string{"Horizon pendek (≤1 minggu)", "Volatilitas rendah (<10%)"},
	}, true
}

func mediumModerateRule(in models.PriceModelInput) (decision, bool) {
	if !(in.HorizonWeeks <= 4 && in.Volatility30d < 0.15) {
		return decision{}, false
	}
	d := decision{
		model:      models.PriceModelFixed,
		confidence: 0.85,
		reasons:    []string{"Horizon menengah (≤4 minggu)", "Volatilitas moderat (<15%)"},
	}
	if in.Volume > 500 {
		d.reasons = append(d.reasons, "Volume cukup besar untuk negosiasi harga tetap dengan diskon")
	}
	return d, true
}

func longOrVolatileRule(in models.PriceModelInput) (decision, bool) {
	if !(in.HorizonWeeks > 4 || in.Volatility30d >= 0.15) {
		return decision{}, false
	}
	d := decision{model: models.PriceModelIndexed, confidence: 0.80}
	if in.Volatility30d >= 0.20 {
		d.confidence = 0.95
	}
	if in.HorizonWeeks > 4 {
		d.reasons = append(d.reasons, "Horizon panjang (>4 minggu)")
	}
	if in.Volatility30d >= 0.15 {
		d.reasons = append(d.reasons, "Volatilitas tinggi (≥15%), harga mengikuti indeks pasar")
	}
	return d, true
}

// appetiteFallback only runs for inputs none of the rules cover, such as NaN
// horizon or volatility.
func appetiteFallback(in models.PriceModelInput) decision {
	switch in.RiskAppetite {
	case models.AppetiteLow:
		return decision{models.PriceModelFixed, 0.75, []string{"Toleransi risiko rendah, kunci harga"}}
	case models.AppetiteHigh:
		return decision{models.PriceModelIndexed, 0.70, []string{"Toleransi risiko tinggi, ikuti harga pasar"}}
	default:
		return decision{models.PriceModelFixed, 0.70, []string{"Toleransi risiko sedang, harga tetap lebih aman"}}
	}
}

func alternatives(in models.PriceModelInput, primary models.PriceModel) []models.PriceModelAlternative {
	out := make([]models.PriceModelAlternative, 0, 2)
	if primary != models.PriceModelFixed && in.HorizonWeeks <= 4 {
		out = append(out, models.PriceModelAlternative{Model: models.PriceModelFixed, Reason: "Kunci harga untuk kontrak hingga 4 minggu"})
	}
	if primary != models.PriceModelIndexed && in.Volatility30d >= 0.10 {
		out = append(out, models.PriceModelAlternative{Model: models.PriceModelIndexed, Reason: "Lindungi dari fluktuasi harga dengan indeks"})
	}
	if primary != models.PriceModelSpot && in.HorizonWeeks <= 1 {
		out = append(out, models.PriceModelAlternative{Model: models.PriceModelSpot, Reason: "Beli putus untuk kebutuhan jangka sangat pendek"})
	}
	return out
}

// EstimateVolatility returns ten times the mean absolute period-over-period
// change of the series, clamped to 1. Pairs with a non-positive base price
// are skipped.
func EstimateVolatility(history []float64) float64 {
	if len(history) < 2 {
		return DefaultVolatility
	}

	changes := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		prev := history[i-1]
		if prev <= 0 {
			continue
		}
		changes = append(changes, math.Abs(history[i]-prev)/prev)
	}
	if len(changes) == 0 {
		return DefaultVolatility
	}

	return math.Min(1, stat.Mean(changes, nil)*10)
}
