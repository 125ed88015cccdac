// Package risk turns the economic drivers of a cultivation plan into a 0-100
// risk score with a label and the most important reasons behind it.
package risk

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

const (
	maxReasons = 3

	lowThreshold    = 34
	mediumThreshold = 67

	freightOverrideThreshold = 2000.0
	freightOverrideFloor     = 12
)

// component is one scored driver with its optional explanation.
type component struct {
	score  int
	reason string
}

// Assess scores the plan drivers. Each sub-score is independent and bounded;
// the total is clamped to [0,100].
func Assess(in models.RiskInput) models.RiskAssessment {
	cash := cashflow(in)
	feed := feedCost(in)
	density := stockingDensity(in)
	market := marketAccess(in)
	supplier := supplierQuality(in)

	total := cash.score + feed.score + density.score + market.score + supplier.score
	total = clamp(total, 0, 100)

	return models.RiskAssessment{
		Score:   total,
		Label:   Label(total),
		Reasons: reasons(total, []component{cash, feed, density, market, supplier}),
		Components: models.RiskComponents{
			Cashflow:        cash.score,
			FeedCost:        feed.score,
			StockingDensity: density.score,
			MarketAccess:    market.score,
			SupplierQuality: supplier.score,
		},
	}
}

// Label maps a total score to its band.
func Label(score int) models.RiskLabel {
	switch {
	case score < lowThreshold:
		return models.RiskLow
	case score < mediumThreshold:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// cashflow: 0..30, driven by total cost over available capital.
func cashflow(in models.RiskInput) component {
	if in.Capital <= 0 || in.TotalCost > in.Capital {
		shortfall := in.TotalCost - in.Capital
		return component{30, fmt.Sprintf("Modal tidak cukup, kurang Rp %s", rupiah(shortfall))}
	}

	ratio := in.TotalCost / in.Capital
	switch {
	case ratio > 0.9:
		return component{25, fmt.Sprintf("Biaya operasional %.0f%% dari modal, hampir tanpa cadangan", ratio*100)}
	case ratio > 0.8:
		return component{18, fmt.Sprintf("Biaya operasional %.0f%% dari modal", ratio*100)}
	case ratio > 0.7:
		return component{score: 10}
	default:
		return component{score: 5}
	}
}

// feedCost: 0..25, feed share of the budget plus an FCR surcharge.
func feedCost(in models.RiskInput) component {
	var feedRatio float64
	if in.TotalCost > 0 {
		feedRatio = in.FeedCost / in.TotalCost
	}

	var fcrRisk int
	switch {
	case in.FCR > 1.8:
		fcrRisk = 10
	case in.FCR > 1.5:
		fcrRisk = 6
	case in.FCR > 1.3:
		fcrRisk = 3
	}

	score := int(math.Round(feedRatio*15)) + fcrRisk
	if score > 25 {
		score = 25
	}

	c := component{score: score}
	if score >= 12 {
		c.reason = fmt.Sprintf("Biaya pakan %.0f%% dari total biaya dengan FCR %.2f", feedRatio*100, in.FCR)
	}
	return c
}

// stockingDensity: 0..15, both overstocking and understocking are penalized.
func stockingDensity(in models.RiskInput) component {
	if in.RecommendedMaxDensity <= 0 {
		return component{score: 2}
	}

	ratio := in.Density / in.RecommendedMaxDensity
	switch {
	case ratio > 1.2:
		return component{15, fmt.Sprintf("Padat tebar %.0f%% dari batas rekomendasi, risiko kematian tinggi", ratio*100)}
	case ratio > 1.0:
		return component{10, "Padat tebar melebihi batas rekomendasi"}
	case ratio < 0.7:
		return component{5, "Padat tebar rendah, kapasitas kolam belum termanfaatkan"}
	default:
		return component{score: 2}
	}
}

// marketAccess: 0..15, distance to market, raised when freight is expensive.
func marketAccess(in models.RiskInput) component {
	var c component
	switch d := in.MarketDistanceKm; {
	case d > 50:
		c = component{15, fmt.Sprintf("Pasar jauh (%.0f km)", d)}
	case d > 30:
		c = component{10, fmt.Sprintf("Jarak ke pasar cukup jauh (%.0f km)", d)}
	case d > 15:
		c = component{score: 6}
	default:
		c = component{score: 2}
	}

	if in.FreightCostPerKg > freightOverrideThreshold && c.score < freightOverrideFloor {
		c = component{freightOverrideFloor, fmt.Sprintf("Ongkos kirim tinggi (Rp %s/kg)", rupiah(in.FreightCostPerKg))}
	}
	return c
}

// supplierQuality: 0..15, inverse of the supplier score.
func supplierQuality(in models.RiskInput) component {
	score := int(math.Round((1 - in.SupplierScore) * 15))
	score = clamp(score, 0, 15)

	c := component{score: score}
	if score >= 8 {
		c.reason = fmt.Sprintf("Kualitas supplier rendah (skor %.2f)", in.SupplierScore)
	}
	return c
}

// reasons picks up to three explanations, highest component first, and pads
// with generic monitoring advice depending on the total.
func reasons(total int, components []component) []string {
	ranked := make([]component, 0, len(components))
	for _, c := range components {
		if c.reason != "" {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, maxReasons)
	for _, c := range ranked {
		if len(out) == maxReasons {
			break
		}
		out = append(out, c.reason)
	}

	if len(out) < maxReasons && total > 20 {
		out = append(out, "Pantau arus kas secara mingguan")
	}
	if len(out) < maxReasons && total > 50 {
		out = append(out, "Siapkan dana cadangan minimal 10% dari modal")
	}
	if len(out) < maxReasons && total > 40 {
		out = append(out, "Monitor FCR dan konsumsi pakan harian")
	}
	return out
}

func rupiah(v float64) string {
	return humanize.FormatFloat("#.###,", v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
