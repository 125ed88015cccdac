package planning

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	repo "github.com/mamadbah2/kolamku/internal/repository/sheets"
)

// PriceHistoryProvider supplies recent market prices for an item, oldest first.
type PriceHistoryProvider interface {
	PriceHistory(ctx context.Context, item string) ([]float64, error)
}

// StaticPriceHistory serves fixed series, mainly for deterministic callers.
type StaticPriceHistory map[string][]float64

// PriceHistory implements PriceHistoryProvider.
func (s StaticPriceHistory) PriceHistory(_ context.Context, item string) ([]float64, error) {
	series := s[item]
	out := make([]float64, len(series))
	copy(out, series)
	return out, nil
}

// RandomWalkPriceHistory fabricates a mock price series around a base price.
// Output differs between calls unless the source is seeded identically.
type RandomWalkPriceHistory struct {
	mu     sync.Mutex
	rng    *rand.Rand
	base   map[string]float64
	points int
	swing  float64
}

// NewRandomWalkPriceHistory builds a mock provider. swing is the maximum
// relative move per period, e.g. 0.03 for ±3%.
func NewRandomWalkPriceHistory(seed int64, base map[string]float64, points int, swing float64) *RandomWalkPriceHistory {
	return &RandomWalkPriceHistory{
		rng:    rand.New(rand.NewSource(seed)),
		base:   base,
		points: points,
		swing:  swing,
	}
}

// PriceHistory implements PriceHistoryProvider.
func (r *RandomWalkPriceHistory) PriceHistory(_ context.Context, item string) ([]float64, error) {
	price, ok := r.base[item]
	if !ok {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, 0, r.points)
	for i := 0; i < r.points; i++ {
		out = append(out, price)
		price *= 1 + (r.rng.Float64()*2-1)*r.swing
	}
	return out, nil
}

const (
	dateLayout      = "2006-01-02"
	priceSheetRange = "Harga!A:C"
)

// SheetsPriceHistory reads and records market prices in a spreadsheet with
// rows of date, item, price.
type SheetsPriceHistory struct {
	repo       repo.Repository
	sheetRange string
	logger     *zap.Logger
}

// NewSheetsPriceHistory wires a spreadsheet backed provider. An empty range
// defaults to Harga!A:C.
func NewSheetsPriceHistory(repository repo.Repository, sheetRange string, logger *zap.Logger) *SheetsPriceHistory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sheetRange == "" {
		sheetRange = priceSheetRange
	}
	return &SheetsPriceHistory{repo: repository, sheetRange: sheetRange, logger: logger}
}

// PriceHistory implements PriceHistoryProvider. Rows with an unreadable price
// are skipped.
func (s *SheetsPriceHistory) PriceHistory(ctx context.Context, item string) ([]float64, error) {
	rows, err := s.repo.ReadRange(ctx, s.sheetRange)
	if err != nil {
		return nil, fmt.Errorf("load price range: %w", err)
	}

	var prices []float64
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(fmt.Sprint(row[1])), item) {
			continue
		}

		price, err := parseFloat(row[2])
		if err != nil || price <= 0 {
			s.logger.Debug("skip price row with invalid value", zap.Any("value", row[2]), zap.Error(err))
			continue
		}
		prices = append(prices, price)
	}

	return prices, nil
}

// RecordPrice appends a price observation.
func (s *SheetsPriceHistory) RecordPrice(ctx context.Context, date time.Time, item string, price float64) error {
	if item == "" || price <= 0 {
		return fmt.Errorf("%w: item and positive price are required", ErrInvalidInput)
	}
	values := []interface{}{date.Format(dateLayout), item, price}
	return s.repo.WriteRow(ctx, s.sheetRange, values)
}

func parseFloat(value interface{}) (float64, error) {
	str := strings.TrimSpace(fmt.Sprint(value))
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}
