package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func contractSpec() models.QCSpec {
	return models.QCSpec{
		MortalityMax:    5,
		ExpectedSize:    5,
		SizeTolerance:   10,
		ExpectedWeight:  50,
		WeightTolerance: 2,
		Penalties: models.PenaltyRates{
			MortalityExcess: 1,
			SizeMismatch:    0.5,
			WeightShortage:  2,
		},
	}
}

func TestCalculatePenalty(t *testing.T) {
	tests := []struct {
		name        string
		record      models.QCRecord
		modifySpec  func(s *models.QCSpec)
		orderValue  float64
		wantPct     float64
		wantAmount  float64
		wantReasons []string
	}{
		{
			name: "bibit mortality and size",
			record: models.QCRecord{
				ItemType:     models.QCBibit,
				SampleSize:   20,
				Mortality:    intPtr(3),
				MeasuredSize: floatPtr(4),
			},
			orderValue: 10_000_000,
			wantPct:    15, // (15-5)*1 + (20-10)*0.5
			wantAmount: 1_500_000,
			wantReasons: []string{
				"Mortalitas 15.0% melebihi batas 5.0%",
				"Ukuran menyimpang 20.0% dari spesifikasi (toleransi 10.0%)",
			},
		},
		{
			name: "pakan weight shortage and packaging",
			record: models.QCRecord{
				ItemType:       models.QCPakan,
				SampleSize:     5,
				MeasuredWeight: floatPtr(47),
				PackagingIssue: true,
			},
			orderValue: 2_000_000,
			wantPct:    10, // (6-2)*2 + 2
			wantAmount: 200_000,
			wantReasons: []string{
				"Berat kurang 6.0% (toleransi 2.0%)",
				"Kemasan rusak atau tidak sesuai",
			},
		},
		{
			name:        "expiry uses the weight shortage rate",
			record:      models.QCRecord{ItemType: models.QCObat, ExpiryIssue: true},
			orderValue:  1_000_000,
			wantPct:     2,
			wantAmount:  20_000,
			wantReasons: []string{"Masalah tanggal kedaluwarsa"},
		},
		{
			name:        "expiry default rate",
			record:      models.QCRecord{ItemType: models.QCObat, ExpiryIssue: true},
			modifySpec:  func(s *models.QCSpec) { s.Penalties.WeightShortage = 0 },
			orderValue:  1_000_000,
			wantPct:     5,
			wantAmount:  50_000,
			wantReasons: []string{"Masalah tanggal kedaluwarsa"},
		},
		{
			name: "mortality is ignored for feed",
			record: models.QCRecord{
				ItemType:   models.QCPakan,
				SampleSize: 5,
				Mortality:  intPtr(5),
			},
			orderValue:  1_000_000,
			wantReasons: []string{},
		},
		{
			name: "within specification",
			record: models.QCRecord{
				ItemType:     models.QCBibit,
				SampleSize:   50,
				Mortality:    intPtr(1),
				MeasuredSize: floatPtr(5.2),
			},
			orderValue:  5_000_000,
			wantReasons: []string{},
		},
		{
			name: "heavier than expected is not a shortage",
			record: models.QCRecord{
				ItemType:       models.QCLogistik,
				MeasuredWeight: floatPtr(55),
			},
			orderValue:  5_000_000,
			wantReasons: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := contractSpec()
			if tt.modifySpec != nil {
				tt.modifySpec(&spec)
			}

			got, err := CalculatePenalty(tt.record, spec, tt.orderValue)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPct, got.PenaltyPercentage, 1e-9)
			assert.InDelta(t, tt.wantAmount, got.PenaltyAmount, 1e-6)
			assert.Equal(t, tt.wantPct > 0, got.HasPenalty)
			assert.Equal(t, tt.wantReasons, got.Reasons)
		})
	}
}

func TestCalculatePenaltyIsCapped(t *testing.T) {
	record := models.QCRecord{
		ItemType:       models.QCBibit,
		SampleSize:     20,
		Mortality:      intPtr(20),
		MeasuredSize:   floatPtr(1),
		ExpiryIssue:    true,
		PackagingIssue: true,
	}

	got, err := CalculatePenalty(record, contractSpec(), 8_000_000)
	require.NoError(t, err)
	assert.True(t, got.HasPenalty)
	assert.Equal(t, MaxPenaltyPct, got.PenaltyPercentage)
	assert.Equal(t, 4_000_000.0, got.PenaltyAmount)
	assert.Len(t, got.Reasons, 4)
}

func TestCalculatePenaltyInvalidInput(t *testing.T) {
	_, err := CalculatePenalty(models.QCRecord{ItemType: models.QCBibit, Mortality: intPtr(2)}, contractSpec(), 1000)
	assert.ErrorIs(t, err, ErrInvalidInput)

	spec := contractSpec()
	spec.ExpectedSize = 0
	_, err = CalculatePenalty(models.QCRecord{ItemType: models.QCBibit, SampleSize: 10, MeasuredSize: floatPtr(3)}, spec, 1000)
	assert.ErrorIs(t, err, ErrInvalidInput)

	spec = contractSpec()
	spec.ExpectedWeight = 0
	_, err = CalculatePenalty(models.QCRecord{ItemType: models.QCPakan, MeasuredWeight: floatPtr(3)}, spec, 1000)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
