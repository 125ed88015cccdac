package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/server/handlers"
)

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Plans     *handlers.PlanHandler
	Suppliers *handlers.SupplierHandler
	Analysis  *handlers.AnalysisHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/plans", h.Plans.Create)
		api.GET("/plans/:id", h.Plans.Get)

		api.GET("/suppliers", h.Suppliers.List)
		api.POST("/suppliers/score", h.Suppliers.Score)
		api.POST("/suppliers/recommend", h.Suppliers.Recommend)

		api.POST("/risk", h.Analysis.Risk)
		api.POST("/price-model", h.Analysis.PriceModel)
		api.POST("/price-model/volatility", h.Analysis.Volatility)
		api.POST("/prices", h.Analysis.RecordPrice)
		api.POST("/pond-layout", h.Analysis.PondLayout)
		api.POST("/qc/sampling", h.Analysis.Sampling)
		api.POST("/qc/penalty", h.Analysis.Penalty)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
