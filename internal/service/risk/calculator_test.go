package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

func healthyInput() models.RiskInput {
	return models.RiskInput{
		TotalCost:             50_000_000,
		Capital:               100_000_000,
		FeedCost:              20_000_000,
		FCR:                   1.0,
		Density:               150,
		RecommendedMaxDensity: 200,
		MarketDistanceKm:      10,
		FreightCostPerKg:      500,
		SupplierScore:         0.8,
	}
}

func TestAssessHealthyPlan(t *testing.T) {
	got := Assess(healthyInput())

	// cashflow 5, feed round(0.4*15)=6, density 0.75 -> 2, market 2, supplier round(0.2*15)=3
	assert.Equal(t, models.RiskComponents{
		Cashflow:        5,
		FeedCost:        6,
		StockingDensity: 2,
		MarketAccess:    2,
		SupplierQuality: 3,
	}, got.Components)
	assert.Equal(t, 18, got.Score)
	assert.Equal(t, models.RiskLow, got.Label)
	assert.Empty(t, got.Reasons)
}

func TestAssessCapitalShortfall(t *testing.T) {
	in := healthyInput()
	in.TotalCost = 101_500_000
	in.FeedCost = 70_000_000
	in.FCR = 1.9
	in.Density = 260
	in.MarketDistanceKm = 60
	in.SupplierScore = 0.3

	got := Assess(in)

	assert.Equal(t, 30, got.Components.Cashflow)
	assert.Equal(t, 20, got.Components.FeedCost) // round(0.6897*15)=10 + 10
	assert.Equal(t, 15, got.Components.StockingDensity)
	assert.Equal(t, 15, got.Components.MarketAccess)
	assert.Equal(t, 11, got.Components.SupplierQuality)
	assert.Equal(t, 91, got.Score)
	assert.Equal(t, models.RiskHigh, got.Label)

	assert.Equal(t, []string{
		"Modal tidak cukup, kurang Rp 1.500.000",
		"Biaya pakan 69% dari total biaya dengan FCR 1.90",
		"Padat tebar 130% dari batas rekomendasi, risiko kematian tinggi",
	}, got.Reasons)
}

func TestAssessFreightOverride(t *testing.T) {
	in := healthyInput()
	in.FreightCostPerKg = 2500

	got := Assess(in)
	assert.Equal(t, 12, got.Components.MarketAccess)
	assert.Contains(t, got.Reasons, "Ongkos kirim tinggi (Rp 2.500/kg)")

	in.MarketDistanceKm = 70
	got = Assess(in)
	assert.Equal(t, 15, got.Components.MarketAccess, "override only raises the score")
}

func TestAssessFillerReasons(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *models.RiskInput)
		want   []string
	}{
		{
			name: "total above 20 gets cashflow monitoring",
			modify: func(in *models.RiskInput) {
				in.TotalCost = 75_000_000 // cashflow 10
				in.FeedCost = 30_000_000  // feed round(0.4*15)=6
			},
			// 10 + 6 + 2 + 2 + 3 = 23
			want: []string{"Pantau arus kas secara mingguan"},
		},
		{
			name: "three natural reasons suppress fillers",
			modify: func(in *models.RiskInput) {
				in.TotalCost = 95_000_000 // 25, reason
				in.FeedCost = 0
				in.MarketDistanceKm = 20 // 6
				in.SupplierScore = 0.4   // round(9)=9, reason
				in.Density = 100         // 0.5 -> 5, reason
			},
			// 25 + 0 + 5 + 6 + 9 = 45
			want: []string{
				"Biaya operasional 95% dari modal, hampir tanpa cadangan",
				"Kualitas supplier rendah (skor 0.40)",
				"Padat tebar rendah, kapasitas kolam belum termanfaatkan",
			},
		},
		{
			name: "total above 50 pads with reserve advice",
			modify: func(in *models.RiskInput) {
				in.TotalCost = 120_000_000 // 30, reason
				in.FeedCost = 60_000_000   // round(7.5)=8
				in.FCR = 1.4               // +3
				in.MarketDistanceKm = 20   // 6
				in.SupplierScore = 0.55    // round(6.75)=7
			},
			// 30 + 11 + 2 + 6 + 7 = 56
			want: []string{
				"Modal tidak cukup, kurang Rp 20.000.000",
				"Pantau arus kas secara mingguan",
				"Siapkan dana cadangan minimal 10% dari modal",
			},
		},
		{
			name: "two natural reasons and filler",
			modify: func(in *models.RiskInput) {
				in.TotalCost = 95_000_000 // 25
				in.FeedCost = 0
				in.MarketDistanceKm = 40 // 10, reason
			},
			// 25 + 0 + 2 + 10 + 3 = 40
			want: []string{
				"Biaya operasional 95% dari modal, hampir tanpa cadangan",
				"Jarak ke pasar cukup jauh (40 km)",
				"Pantau arus kas secara mingguan",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := healthyInput()
			tt.modify(&in)
			assert.Equal(t, tt.want, Assess(in).Reasons)
		})
	}
}

func TestAssessReasonTiesKeepComponentOrder(t *testing.T) {
	in := healthyInput()
	in.MarketDistanceKm = 55   // 15, reason
	in.Density = 250           // 1.25 -> 15, reason
	in.TotalCost = 100_000_000 // ratio 1.0 -> 25
	in.FeedCost = 0

	got := Assess(in)
	assert.Equal(t, []string{
		"Biaya operasional 100% dari modal, hampir tanpa cadangan",
		"Padat tebar 125% dari batas rekomendasi, risiko kematian tinggi",
		"Pasar jauh (55 km)",
	}, got.Reasons)
}

func TestAssessCashflowIsMonotonic(t *testing.T) {
	in := healthyInput()
	prev := -1
	for cost := 0.0; cost <= 150_000_000; cost += 2_500_000 {
		in.TotalCost = cost
		got := Assess(in).Components.Cashflow
		assert.GreaterOrEqual(t, got, prev, "cost %.0f", cost)
		prev = got
	}
	assert.Equal(t, 30, prev)
}

func TestAssessZeroCapital(t *testing.T) {
	in := healthyInput()
	in.Capital = 0
	assert.Equal(t, 30, Assess(in).Components.Cashflow)
}

func TestAssessClampsTotal(t *testing.T) {
	in := models.RiskInput{
		TotalCost:             10,
		Capital:               1,
		FeedCost:              10,
		FCR:                   3,
		Density:               10,
		RecommendedMaxDensity: 1,
		MarketDistanceKm:      500,
		SupplierScore:         -5,
	}
	got := Assess(in)
	assert.LessOrEqual(t, got.Score, 100)
	assert.Equal(t, 15, got.Components.SupplierQuality)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, models.RiskLow, Label(0))
	assert.Equal(t, models.RiskLow, Label(33))
	assert.Equal(t, models.RiskMedium, Label(34))
	assert.Equal(t, models.RiskMedium, Label(66))
	assert.Equal(t, models.RiskHigh, Label(67))
	assert.Equal(t, models.RiskHigh, Label(100))
}
