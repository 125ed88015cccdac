package qc

import (
	"fmt"
	"math"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

const (
	// MaxPenaltyPct caps the total penalty percentage of an order.
	MaxPenaltyPct = 50.0

	defaultExpiryPenaltyPct = 5.0
	packagingPenaltyPct     = 2.0
)

// CalculatePenalty applies each quality check relevant to the item type and
// sums the resulting percentage points. Checks whose measurements are absent
// are skipped.
func CalculatePenalty(record models.QCRecord, spec models.QCSpec, orderValue float64) (models.PenaltyResult, error) {
	var pct float64
	reasons := make([]string, 0, 5)

	isBibit := record.ItemType == models.QCBibit
	isWeighed := record.ItemType == models.QCPakan || record.ItemType == models.QCLogistik

	if isBibit && record.Mortality != nil {
		if record.SampleSize <= 0 {
			return models.PenaltyResult{}, fmt.Errorf("%w: sample size must be positive to rate mortality", ErrInvalidInput)
		}
		rate := float64(*record.Mortality) / float64(record.SampleSize) * 100
		if excess := rate - spec.MortalityMax; excess > 0 {
			pct += excess * spec.Penalties.MortalityExcess
			reasons = append(reasons, fmt.Sprintf("Mortalitas %.1f%% melebihi batas %.1f%%", rate, spec.MortalityMax))
		}
	}

	if isBibit && record.MeasuredSize != nil {
		if spec.ExpectedSize <= 0 {
			return models.PenaltyResult{}, fmt.Errorf("%w: expected size must be positive", ErrInvalidInput)
		}
		deviation := math.Abs(*record.MeasuredSize-spec.ExpectedSize) / spec.ExpectedSize * 100
		if excess := deviation - spec.SizeTolerance; excess > 0 {
			pct += excess * spec.Penalties.SizeMismatch
			reasons = append(reasons, fmt.Sprintf("Ukuran menyimpang %.1f%% dari spesifikasi (toleransi %.1f%%)", deviation, spec.SizeTolerance))
		}
	}

	if isWeighed && record.MeasuredWeight != nil {
		if spec.ExpectedWeight <= 0 {
			return models.PenaltyResult{}, fmt.Errorf("%w: expected weight must be positive", ErrInvalidInput)
		}
		shortfall := (spec.ExpectedWeight - *record.MeasuredWeight) / spec.ExpectedWeight * 100
		if excess := shortfall - spec.WeightTolerance; excess > 0 {
			pct += excess * spec.Penalties.WeightShortage
			reasons = append(reasons, fmt.Sprintf("Berat kurang %.1f%% (toleransi %.1f%%)", shortfall, spec.WeightTolerance))
		}
	}

	if record.ExpiryIssue {
		expiry := spec.Penalties.WeightShortage
		if expiry <= 0 {
			expiry = defaultExpiryPenaltyPct
		}
		pct += expiry
		reasons = append(reasons, "Masalah tanggal kedaluwarsa")
	}

	if record.PackagingIssue {
		pct += packagingPenaltyPct
		reasons = append(reasons, "Kemasan rusak atau tidak sesuai")
	}

	capped := math.Min(pct, MaxPenaltyPct)
	return models.PenaltyResult{
		HasPenalty:        capped > 0,
		PenaltyPercentage: capped,
		PenaltyAmount:     orderValue * capped / 100,
		Reasons:           reasons,
	}, nil
}
