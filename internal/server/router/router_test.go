package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/kolamku/internal/repository/memory"
	"github.com/mamadbah2/kolamku/internal/server/handlers"
	"github.com/mamadbah2/kolamku/internal/service/catalog"
	"github.com/mamadbah2/kolamku/internal/service/planning"
)

func newTestEngine() http.Handler {
	cat := catalog.New(catalog.MockSuppliers(), nil, catalog.Options{}, nil)
	prices := planning.StaticPriceHistory{"pakan": {11000, 11200, 11100}}
	return New(Handlers{
		Plans:     handlers.NewPlanHandler(planning.NewGenerator(cat, prices, nil, nil), memory.NewPlanRepository(), nil),
		Suppliers: handlers.NewSupplierHandler(cat, nil),
		Analysis:  handlers.NewAnalysisHandler(prices, nil, nil),
	}, nil)
}

func TestRoutes(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/suppliers?category=pakan", "", http.StatusOK},
		{http.MethodPost, "/api/suppliers/recommend", `{"category":"bibit"}`, http.StatusOK},
		{http.MethodPost, "/api/risk", `{"totalCost":100,"modal":200}`, http.StatusOK},
		{http.MethodPost, "/api/price-model", `{"horizonWeeks":1,"volatility30d":0.05}`, http.StatusOK},
		{http.MethodPost, "/api/pond-layout", `{"luas_lahan":100,"jenis_ikan":"lele"}`, http.StatusOK},
		{http.MethodPost, "/api/qc/sampling", `{"itemType":"pakan","quantity":200}`, http.StatusOK},
		{http.MethodPost, "/api/prices", `{"item":"pakan","price":100}`, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/plans/unknown", "", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
