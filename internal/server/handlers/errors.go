package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/repository"
	"github.com/mamadbah2/kolamku/internal/service/planning"
	"github.com/mamadbah2/kolamku/internal/service/pondlayout"
	"github.com/mamadbah2/kolamku/internal/service/qc"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planning.ErrInvalidInput),
		errors.Is(err, pondlayout.ErrInvalidInput),
		errors.Is(err, pondlayout.ErrUnknownSpecies),
		errors.Is(err, qc.ErrInvalidInput),
		errors.Is(err, qc.ErrUnknownItemType):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, planning.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Client errors echo the
// message, server errors stay generic.
func respondError(c *gin.Context, logger *zap.Logger, err error, publicMsg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(publicMsg, zap.Error(err))
		c.JSON(status, gin.H{"error": publicMsg})
		return
	}

	logger.Warn(publicMsg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindJSON(c *gin.Context, logger *zap.Logger, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
