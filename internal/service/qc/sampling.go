// Package qc sizes inspection samples for received lots and converts
// inspection findings into contractual penalties.
package qc

import (
	"errors"
	"fmt"
	"math"

	"github.com/mamadbah2/kolamku/internal/domain/models"
)

var (
	// ErrInvalidInput is returned for inputs that would otherwise divide by zero.
	ErrInvalidInput = errors.New("invalid qc input")
	// ErrUnknownItemType is returned for item types without a sampling rule.
	ErrUnknownItemType = errors.New("unknown qc item type")
)

type samplingRule struct {
	fraction  float64
	minSample int
}

var samplingRules = map[models.QCItemType]samplingRule{
	models.QCBibit:    {fraction: 0.02, minSample: 20},
	models.QCPakan:    {fraction: 0.01, minSample: 5},
	models.QCObat:     {fraction: 0.01, minSample: 3},
	models.QCLogistik: {fraction: 0.005, minSample: 2},
}

const (
	recommendedMinPct = 1.0
	recommendedMaxPct = 2.0
)

// SamplingPlan returns the number of units to inspect from a lot.
func SamplingPlan(itemType models.QCItemType, quantity int) (models.QCSamplingPlan, error) {
	rule, ok := samplingRules[itemType]
	if !ok {
		return models.QCSamplingPlan{}, fmt.Errorf("%w: %q", ErrUnknownItemType, itemType)
	}
	if quantity <= 0 {
		return models.QCSamplingPlan{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	size := int(math.Ceil(float64(quantity) * rule.fraction))
	if size < rule.minSample {
		size = rule.minSample
	}

	pct := math.Round(float64(size)/float64(quantity)*100*100) / 100

	return models.QCSamplingPlan{
		ItemType:    itemType,
		Quantity:    quantity,
		SampleSize:  size,
		Percentage:  pct,
		MinSample:   rule.minSample,
		Recommended: size >= rule.minSample && pct >= recommendedMinPct && pct <= recommendedMaxPct,
	}, nil
}
