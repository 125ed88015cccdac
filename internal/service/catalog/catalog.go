// Package catalog keeps the supplier reference data used by recommendations
// and plan generation.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/pkg/clients/suppliers"
	"github.com/mamadbah2/kolamku/pkg/geo"
)

// ErrRefreshDisabled is returned by Refresh when no upstream client is configured.
var ErrRefreshDisabled = errors.New("supplier refresh disabled")

// Neutral values for upstream rows, which carry no delivery statistics.
const (
	defaultDeliveryHours  = 24
	defaultOnTime         = 0.9
	defaultReturnRate     = 0.05
	defaultPriceStability = 0.8
)

// Options configure which upstream searches a refresh runs.
type Options struct {
	ProductTypes []string
	JenisIkan    string
	Kota         string
}

// Catalog is a concurrency-safe in-memory supplier list.
type Catalog struct {
	mu          sync.RWMutex
	records     []models.SupplierRecord
	refreshedAt time.Time

	client suppliers.Client
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// New builds a catalog seeded with the given records. client may be nil, in
// which case the seed is served as is.
func New(seed []models.SupplierRecord, client suppliers.Client, opts Options, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	records := make([]models.SupplierRecord, len(seed))
	copy(records, seed)

	return &Catalog{
		records: records,
		client:  client,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

// Suppliers returns a copy of the current records.
func (c *Catalog) Suppliers(_ context.Context) ([]models.SupplierRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.SupplierRecord, len(c.records))
	copy(out, c.records)
	return out, nil
}

// RefreshedAt reports when upstream data last replaced the catalog. Zero means never.
func (c *Catalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

// Refresh queries every configured product type concurrently and swaps in the
// combined result. The current records stay in place when any search fails or
// when upstream returns no rows at all.
func (c *Catalog) Refresh(ctx context.Context) (int, error) {
	if c.client == nil {
		return 0, ErrRefreshDisabled
	}

	results := make([][]models.SupplierRecord, len(c.opts.ProductTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, productType := range c.opts.ProductTypes {
		i, productType := i, productType // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			resp, err := c.client.FetchSuppliers(gctx, suppliers.SearchQuery{
				TipeProduk: productType,
				JenisIkan:  c.opts.JenisIkan,
				Kota:       c.opts.Kota,
			})
			if err != nil {
				return fmt.Errorf("fetch %s suppliers: %w", productType, err)
			}
			results[i] = convert(resp.Data, models.SupplierCategory(strings.ToLower(productType)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Error("supplier refresh failed", zap.Error(err))
		return 0, err
	}

	var merged []models.SupplierRecord
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	if len(merged) == 0 {
		c.logger.Warn("upstream returned no suppliers, keeping current catalog")
		return 0, nil
	}

	c.mu.Lock()
	c.records = merged
	c.refreshedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("supplier catalog refreshed", zap.Int("suppliers", len(merged)))
	return len(merged), nil
}

func convert(rows []models.UpstreamSupplier, category models.SupplierCategory) []models.SupplierRecord {
	out := make([]models.SupplierRecord, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			id = uuid.NewString()
		}

		record := models.SupplierRecord{
			ID:       id,
			Name:     strings.TrimSpace(row.NamaToko),
			Category: category,
			Address:  strings.TrimSpace(row.Alamat),
			Phone:    row.NoHP,
			SLA: models.SLA{
				AverageDeliveryTime: defaultDeliveryHours,
				OnTimePercentage:    defaultOnTime,
			},
			ReturnRate:     defaultReturnRate,
			PriceStability: defaultPriceStability,
		}
		if loc, ok := geo.ParseLatLng(row.Lat, row.Lang); ok {
			record.Location = &loc
		}
		if row.Rating != nil {
			record.Rating = *row.Rating
		}
		out = append(out, record)
	}
	return out
}
