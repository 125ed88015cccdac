package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/internal/repository"
)

// PlanGenerator produces plan sets from a farmer request.
type PlanGenerator interface {
	Generate(ctx context.Context, in models.PlanInput) (models.PlanSet, error)
}

// PlanHandler exposes plan generation and retrieval.
type PlanHandler struct {
	generator PlanGenerator
	repo      repository.PlanRepository
	logger    *zap.Logger
}

// NewPlanHandler constructs the plan HTTP adapter.
func NewPlanHandler(generator PlanGenerator, repo repository.PlanRepository, logger *zap.Logger) *PlanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanHandler{generator: generator, repo: repo, logger: logger}
}

// Create generates and stores the three plan variants.
func (h *PlanHandler) Create(c *gin.Context) {
	var in models.PlanInput
	if !bindJSON(c, h.logger, &in) {
		return
	}

	set, err := h.generator.Generate(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err, "failed to generate plans")
		return
	}

	if err := h.repo.SavePlanSet(c.Request.Context(), set); err != nil {
		h.logger.Error("failed to store plan set", zap.String("plan_set_id", set.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store plans"})
		return
	}

	c.JSON(http.StatusCreated, set)
}

// Get returns a previously generated plan set.
func (h *PlanHandler) Get(c *gin.Context) {
	set, err := h.repo.GetPlanSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "failed to load plans")
		return
	}
	c.JSON(http.StatusOK, set)
}
