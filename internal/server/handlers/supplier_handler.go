package handlers

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/service/recommender"
	"github.com/mamadbah2/kolamku/internal/service/scoring"
	"github.com/mamadbah2/kolamku/pkg/geo"
)

// SupplierSource provides the current supplier catalog.
type SupplierSource interface {
	Suppliers(ctx context.Context) ([]models.SupplierRecord, error)
}

// SupplierHandler exposes scoring and recommendation over the catalog.
type SupplierHandler struct {
	catalog SupplierSource
	logger  *zap.Logger
}

// NewSupplierHandler constructs the supplier HTTP adapter.
func NewSupplierHandler(catalog SupplierSource, logger *zap.Logger) *SupplierHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierHandler{catalog: catalog, logger: logger}
}

type recommendRequest struct {
	Location *geo.LatLng             `json:"location"`
	Category models.SupplierCategory `json:"category"`
	TopN     int                     `json:"topN"`
	// Suppliers overrides the catalog when non-empty.
	Suppliers []models.SupplierRecord `json:"suppliers"`
}

// List returns the catalog, optionally filtered by ?category=.
func (h *SupplierHandler) List(c *gin.Context) {
	records, err := h.catalog.Suppliers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to load suppliers")
		return
	}

	category := models.SupplierCategory(c.Query("category"))
	out := make([]models.SupplierRecord, 0, len(records))
	for _, r := range records {
		if category == "" || category == models.CategoryAll || r.Category == category {
			out = append(out, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{"count": len(out), "data": out})
}

// Score returns the weighted quality score of the posted supplier.
func (h *SupplierHandler) Score(c *gin.Context) {
	var record models.SupplierRecord
	if !bindJSON(c, h.logger, &record) {
		return
	}
	c.JSON(http.StatusOK, scoring.Score(record))
}

// Recommend ranks catalog suppliers for the buyer location.
func (h *SupplierHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	suppliers := req.Suppliers
	if len(suppliers) == 0 {
		var err error
		suppliers, err = h.catalog.Suppliers(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, err, "failed to load suppliers")
			return
		}
	}

	location := geo.LatLng{Lat: math.NaN(), Lng: math.NaN()}
	if req.Location != nil {
		location = *req.Location
	}

	recs := recommender.Recommend(suppliers, location, req.Category, req.TopN)
	h.logger.Debug("suppliers recommended",
		zap.String("category", string(req.Category)),
		zap.Int("returned", len(recs)))
	c.JSON(http.StatusOK, gin.H{"count": len(recs), "data": recs})
}
