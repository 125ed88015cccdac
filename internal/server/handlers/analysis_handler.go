package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/service/dealadvisor"
	"github.com/mamadbah2/kolamku/internal/service/planning"
	"github.com/mamadbah2/kolamku/internal/service/pondlayout"
	"github.com/mamadbah2/kolamku/internal/service/qc"
	"github.com/mamadbah2/kolamku/internal/service/risk"
)

const priceDateLayout = "2006-01-02"

// PriceHistoryProvider supplies recent market prices, oldest first.
type PriceHistoryProvider interface {
	PriceHistory(ctx context.Context, item string) ([]float64, error)
}

// PriceRecorder stores a market price observation.
type PriceRecorder interface {
	RecordPrice(ctx context.Context, date time.Time, item string, price float64) error
}

// AnalysisHandler exposes the stateless calculators: risk, price model,
// pond layout and quality control.
type AnalysisHandler struct {
	prices   PriceHistoryProvider
	recorder PriceRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewAnalysisHandler constructs the calculator HTTP adapter. recorder may be
// nil when no writable price store is configured.
func NewAnalysisHandler(prices PriceHistoryProvider, recorder PriceRecorder, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{prices: prices, recorder: recorder, logger: logger, now: time.Now}
}

type volatilityRequest struct {
	History []float64 `json:"history"`
	Item    string    `json:"item"`
}

type pondLayoutRequest struct {
	LuasLahan float64 `json:"luas_lahan"`
	JenisIkan string  `json:"jenis_ikan" binding:"required"`
}

type samplingRequest struct {
	ItemType models.QCItemType `json:"itemType" binding:"required"`
	Quantity int               `json:"quantity"`
}

type penaltyRequest struct {
	Record     models.QCRecord `json:"record"`
	Spec       models.QCSpec   `json:"spec"`
	OrderValue float64         `json:"orderValue" binding:"gte=0"`
}

type priceRecordRequest struct {
	Date  string  `json:"date"`
	Item  string  `json:"item" binding:"required"`
	Price float64 `json:"price" binding:"gt=0"`
}

// Risk scores the posted cost structure.
func (h *AnalysisHandler) Risk(c *gin.Context) {
	var in models.RiskInput
	if !bindJSON(c, h.logger, &in) {
		return
	}
	c.JSON(http.StatusOK, risk.Assess(in))
}

// PriceModel recommends a spot, fixed or indexed contract.
func (h *AnalysisHandler) PriceModel(c *gin.Context) {
	var in models.PriceModelInput
	if !bindJSON(c, h.logger, &in) {
		return
	}
	c.JSON(http.StatusOK, dealadvisor.Recommend(in))
}

// Volatility estimates 30-day volatility from a posted series or from the
// stored history of an item.
func (h *AnalysisHandler) Volatility(c *gin.Context) {
	var req volatilityRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	history := req.History
	if len(history) == 0 && req.Item != "" {
		var err error
		history, err = h.prices.PriceHistory(c.Request.Context(), req.Item)
		if err != nil {
			h.logger.Error("failed to load price history", zap.String("item", req.Item), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "price history unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"volatility30d": dealadvisor.EstimateVolatility(history),
		"points":        len(history),
	})
}

// PondLayout infers the pond partition of a plot.
func (h *AnalysisHandler) PondLayout(c *gin.Context) {
	var req pondLayoutRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	species, ok := models.ParseSpecies(req.JenisIkan)
	if !ok {
		species = models.Species(strings.TrimSpace(req.JenisIkan))
	}

	layout, err := pondlayout.Infer(req.LuasLahan, species)
	if err != nil {
		respondError(c, h.logger, err, "failed to infer pond layout")
		return
	}
	c.JSON(http.StatusOK, layout)
}

// Sampling returns the QC sample size for a delivery.
func (h *AnalysisHandler) Sampling(c *gin.Context) {
	var req samplingRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	plan, err := qc.SamplingPlan(req.ItemType, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "failed to build sampling plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Penalty evaluates a QC record against the agreed specification.
func (h *AnalysisHandler) Penalty(c *gin.Context) {
	var req penaltyRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := qc.CalculatePenalty(req.Record, req.Spec, req.OrderValue)
	if err != nil {
		respondError(c, h.logger, err, "failed to calculate penalty")
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecordPrice appends a market price observation to the price store.
func (h *AnalysisHandler) RecordPrice(c *gin.Context) {
	if h.recorder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "price store not configured"})
		return
	}

	var req priceRecordRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	date := h.now()
	if req.Date != "" {
		parsed, err := time.Parse(priceDateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	if err := h.recorder.RecordPrice(c.Request.Context(), date, req.Item, req.Price); err != nil {
		if errors.Is(err, planning.ErrInvalidInput) {
			respondError(c, h.logger, err, "invalid price record")
			return
		}
		h.logger.Error("failed to record price", zap.String("item", req.Item), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to record price"})
		return
	}

	c.Status(http.StatusCreated)
}
