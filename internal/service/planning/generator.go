// Package planning composes pond layout, supplier ranking, risk scoring and
// price-model advice into three cultivation scenarios.
package planning

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/service/dealadvisor"
	"github.com/mamadbah2/kolamku/internal/service/pondlayout"
	"github.com/mamadbah2/kolamku/internal/service/recommender"
	"github.com/mamadbah2/kolamku/internal/service/risk"
	"github.com/mamadbah2/kolamku/internal/service/scoring"
)

var (
	// ErrInvalidInput indicates a missing or out-of-range plan request field.
	ErrInvalidInput = errors.New("invalid plan input")
	// ErrUpstream wraps failures of the supplier catalog or the price history source.
	ErrUpstream = errors.New("upstream data unavailable")
)

const (
	feedItem        = "pakan"
	topSuppliers    = 3
	neutralSupplier = 0.5
	maxSurvivalRate = 0.99
	daysPerWeek     = 7.0
)

// SupplierSource provides the supplier catalog.
type SupplierSource interface {
	Suppliers(ctx context.Context) ([]models.SupplierRecord, error)
}

type variantSpec struct {
	variant        models.PlanVariant
	densityFactor  float64
	survivalFactor float64
	fcrFactor      float64
	priceFactor    float64
	appetite       models.RiskAppetite
}

var variants = []variantSpec{
	{models.VariantUtama, 1.00, 1.00, 1.00, 1.00, models.AppetiteMedium},
	{models.VariantAman, 0.85, 1.05, 0.95, 0.95, models.AppetiteLow},
	{models.VariantAgresif, 1.15, 0.95, 1.05, 1.05, models.AppetiteHigh},
}

// Generator builds plan sets.
type Generator struct {
	suppliers  SupplierSource
	prices     PriceHistoryProvider
	maturation MaturationEstimator
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// NewGenerator wires a generator. A nil estimator uses GrowthRateEstimator.
func NewGenerator(suppliers SupplierSource, prices PriceHistoryProvider, maturation MaturationEstimator, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maturation == nil {
		maturation = GrowthRateEstimator{}
	}
	return &Generator{
		suppliers:  suppliers,
		prices:     prices,
		maturation: maturation,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Generate validates the request and returns the utama, aman and agresif plans.
// Any failure aborts the whole set.
func (g *Generator) Generate(ctx context.Context, in models.PlanInput) (models.PlanSet, error) {
	species, err := validate(in)
	if err != nil {
		return models.PlanSet{}, err
	}

	set, err := g.generate(ctx, in, species)
	if err != nil {
		g.logger.Error("plan generation failed", zap.String("species", string(species)), zap.Error(err))
		return models.PlanSet{}, err
	}

	g.logger.Info("plans generated",
		zap.String("plan_set_id", set.ID),
		zap.String("species", string(species)),
		zap.Float64("land_area", in.LuasLahan))
	return set, nil
}

func (g *Generator) generate(ctx context.Context, in models.PlanInput, species models.Species) (models.PlanSet, error) {
	params, ok := DefaultParameters(species)
	if !ok {
		return models.PlanSet{}, fmt.Errorf("%w: no defaults for %s", ErrInvalidInput, species)
	}

	layout, err := pondlayout.Infer(in.LuasLahan, species)
	if err != nil {
		return models.PlanSet{}, fmt.Errorf("infer pond layout: %w", err)
	}

	catalog, err := g.suppliers.Suppliers(ctx)
	if err != nil {
		return models.PlanSet{}, fmt.Errorf("%w: load supplier catalog: %w", ErrUpstream, err)
	}

	history, err := g.prices.PriceHistory(ctx, feedItem)
	if err != nil {
		return models.PlanSet{}, fmt.Errorf("%w: load %s price history: %w", ErrUpstream, feedItem, err)
	}
	volatility := dealadvisor.EstimateVolatility(history)

	harvestDays := g.maturation.EstimateDays(species, params)
	top := recommender.Recommend(catalog, in.Lokasi, models.CategoryPakan, topSuppliers)
	supplierScore := meanSupplierScore(top)

	plans := make([]models.Plan, 0, len(variants))
	for _, v := range variants {
		plans = append(plans, buildPlan(v, in, params, layout, harvestDays, top, supplierScore, volatility))
	}

	return models.PlanSet{
		ID:         g.newID(),
		Input:      in,
		Species:    species,
		Parameters: params,
		Layout:     layout,
		Plans:      plans,
		CreatedAt:  g.now().UTC(),
	}, nil
}

func buildPlan(
	v variantSpec,
	in models.PlanInput,
	params models.SpeciesParameters,
	layout models.PondLayout,
	harvestDays int,
	suppliers []models.SupplierRecommendation,
	supplierScore float64,
	volatility float64,
) models.Plan {
	density := params.Density * v.densityFactor
	survival := math.Min(maxSurvivalRate, params.SurvivalRate*v.survivalFactor)
	fcr := params.FCR * v.fcrFactor
	sellPrice := params.SellPricePerKg * v.priceFactor

	fishCount := int(math.Round(layout.TotalPondArea * density))
	survivors := int(math.Floor(float64(fishCount) * survival))
	biomass := float64(survivors) * params.TargetWeightKg
	feedKg := biomass * fcr

	costs := models.PlanCosts{
		Seed:     float64(fishCount) * params.SeedPrice,
		Feed:     feedKg * params.FeedPricePerKg,
		Overhead: params.Overhead,
		Freight:  biomass * params.FreightPerKg,
	}
	costs.Total = costs.Seed + costs.Feed + costs.Overhead + costs.Freight

	revenue := biomass * sellPrice
	profit := revenue - costs.Total

	var roi, bep float64
	if costs.Total > 0 {
		roi = round2(profit / costs.Total * 100)
	}
	if biomass > 0 {
		bep = math.Round(costs.Total / biomass)
	}

	assessment := risk.Assess(models.RiskInput{
		TotalCost:             costs.Total,
		Capital:               in.Modal,
		FeedCost:              costs.Feed,
		FCR:                   fcr,
		Density:               density,
		RecommendedMaxDensity: params.MaxDensity,
		MarketDistanceKm:      in.JarakPasarKm,
		FreightCostPerKg:      params.FreightPerKg,
		SupplierScore:         supplierScore,
	})

	priceModel := dealadvisor.Recommend(models.PriceModelInput{
		Item:          feedItem,
		HorizonWeeks:  math.Ceil(float64(harvestDays) / daysPerWeek),
		Volatility30d: volatility,
		Volume:        feedKg,
		RiskAppetite:  v.appetite,
	})

	ranked := make([]models.SupplierRecommendation, len(suppliers))
	copy(ranked, suppliers)

	return models.Plan{
		Variant:        v.variant,
		Density:        round2(density),
		FishCount:      fishCount,
		SurvivalRate:   round2(survival),
		FCR:            round2(fcr),
		SellPricePerKg: math.Round(sellPrice),
		Survivors:      survivors,
		BiomassKg:      round2(biomass),
		FeedKg:         round2(feedKg),
		HarvestDays:    harvestDays,
		Costs:          costs,
		Revenue:        revenue,
		Profit:         profit,
		ROI:            roi,
		BEPPerKg:       bep,
		Risk:           assessment,
		Suppliers:      ranked,
		PriceModel:     priceModel,
	}
}

// meanSupplierScore averages the unadjusted quality of the shortlisted
// suppliers; an empty shortlist is treated as average quality.
func meanSupplierScore(recs []models.SupplierRecommendation) float64 {
	if len(recs) == 0 {
		return neutralSupplier
	}
	scores := make([]float64, 0, len(recs))
	for _, r := range recs {
		scores = append(scores, scoring.Score(r.Supplier).TotalScore)
	}
	return stat.Mean(scores, nil)
}

func validate(in models.PlanInput) (models.Species, error) {
	if in.JenisIkan == "" {
		return "", fmt.Errorf("%w: jenis_ikan wajib diisi", ErrInvalidInput)
	}
	species, ok := models.ParseSpecies(in.JenisIkan)
	if !ok {
		return "", fmt.Errorf("%w: jenis_ikan %q tidak didukung", ErrInvalidInput, in.JenisIkan)
	}
	if !positive(in.LuasLahan) {
		return "", fmt.Errorf("%w: luas_lahan harus lebih dari 0", ErrInvalidInput)
	}
	if !positive(in.Modal) {
		return "", fmt.Errorf("%w: modal harus lebih dari 0", ErrInvalidInput)
	}
	if in.JarakPasarKm < 0 || math.IsNaN(in.JarakPasarKm) || math.IsInf(in.JarakPasarKm, 0) {
		return "", fmt.Errorf("%w: jarak_pasar_km tidak valid", ErrInvalidInput)
	}
	if !in.Lokasi.Valid() {
		return "", fmt.Errorf("%w: lokasi tidak valid", ErrInvalidInput)
	}
	return species, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
