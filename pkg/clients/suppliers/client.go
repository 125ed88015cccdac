package suppliers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/kolamku/internal/config"
	"github.com/mamadbah2/kolamku/internal/domain/models"
)

// Client exposes the supplier search operations used by the catalog.
type Client interface {
	FetchSuppliers(ctx context.Context, query SearchQuery) (*models.UpstreamSupplierResponse, error)
}

// SearchQuery filters the upstream supplier search.
type SearchQuery struct {
	TipeProduk string
	JenisIkan  string
	Kota       string
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a supplier search client from configuration.
func NewClient(cfg config.SuppliersConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// apiError is the error envelope of the supplier search endpoint.
type apiError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FetchSuppliers calls GET /api/fetch-suppliers.
func (c *APIClient) FetchSuppliers(ctx context.Context, query SearchQuery) (*models.UpstreamSupplierResponse, error) {
	result := new(models.UpstreamSupplierResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"tipeProduk": query.TipeProduk,
			"jenisIkan":  query.JenisIkan,
			"kota":       query.Kota,
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/api/fetch-suppliers")
	if err != nil {
		return nil, fmt.Errorf("fetch suppliers: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return nil, fmt.Errorf("supplier api error: code=%d, message=%s", resp.StatusCode(), message)
	}

	if !result.Success {
		return nil, fmt.Errorf("supplier api returned success=false for tipeProduk=%s", query.TipeProduk)
	}

	return result, nil
}
