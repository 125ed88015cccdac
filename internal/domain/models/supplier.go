package models

import "github.com/mamadbah2/kolamku/pkg/geo"

// SupplierCategory enumerates the product groups carried by the catalog.
type SupplierCategory string

const (
	CategoryBibit     SupplierCategory = "bibit"
	CategoryPakan     SupplierCategory = "pakan"
	CategoryObat      SupplierCategory = "obat"
	CategoryPeralatan SupplierCategory = "peralatan"
	CategoryLogistik  SupplierCategory = "logistik"

	// CategoryAll disables category filtering in recommendations.
	CategoryAll SupplierCategory = "all"
)

// PriceRange describes the advertised price band of a supplier.
type PriceRange struct {
	Min  float64 `json:"min" bson:"min"`
	Max  float64 `json:"max" bson:"max"`
	Unit string  `json:"unit" bson:"unit"`
}

// SLA captures delivery performance statistics.
type SLA struct {
	AverageDeliveryTime float64 `json:"averageDeliveryTime" bson:"average_delivery_time"` // hours
	OnTimePercentage    float64 `json:"onTimePercentage" bson:"on_time_percentage"`       // 0..1
}

// SupplierRecord is a catalog entry. It is reference data and is passed by value.
type SupplierRecord struct {
	ID                string           `json:"id" bson:"id"`
	Name              string           `json:"name" bson:"name"`
	Category          SupplierCategory `json:"category" bson:"category"`
	Location          *geo.LatLng      `json:"location,omitempty" bson:"location,omitempty"`
	Address           string           `json:"address" bson:"address"`
	Phone             string           `json:"phone,omitempty" bson:"phone,omitempty"`
	HasCertification  bool             `json:"hasCertification" bson:"has_certification"`
	CertificationType string           `json:"certificationType,omitempty" bson:"certification_type,omitempty"`
	SLA               SLA              `json:"sla" bson:"sla"`
	ReturnRate        float64          `json:"returnRate" bson:"return_rate"`         // 0..1
	PriceStability    float64          `json:"priceStability" bson:"price_stability"` // 0..1
	Rating            float64          `json:"rating" bson:"rating"`                  // 0..5
	PriceRange        PriceRange       `json:"priceRange" bson:"price_range"`
	TransactionCount  int              `json:"transactionCount" bson:"transaction_count"`
}

// ScoreBreakdown holds the individual supplier quality components, each in [0,1].
type ScoreBreakdown struct {
	Certification  float64 `json:"certification" bson:"certification"`
	SLA            float64 `json:"sla" bson:"sla"`
	ReturnRate     float64 `json:"returnRate" bson:"return_rate"`
	PriceStability float64 `json:"priceStability" bson:"price_stability"`
	Rating         float64 `json:"rating" bson:"rating"`
}

// SupplierScore is the weighted quality score of one supplier.
type SupplierScore struct {
	TotalScore float64        `json:"totalScore" bson:"total_score"`
	Breakdown  ScoreBreakdown `json:"breakdown" bson:"breakdown"`
}

// ETA holds delivery time estimates in hours.
type ETA struct {
	P50 float64 `json:"p50" bson:"p50"`
	P90 float64 `json:"p90" bson:"p90"`
}

// SupplierRecommendation is one ranked entry of a recommendation pass.
// DistanceKm is nil when the supplier location is unknown.
type SupplierRecommendation struct {
	Supplier   SupplierRecord `json:"supplier" bson:"supplier"`
	Score      SupplierScore  `json:"score" bson:"score"`
	DistanceKm *float64       `json:"distanceKm" bson:"distance_km"`
	ETA        ETA            `json:"eta" bson:"eta"`
	Reasons    []string       `json:"reasons" bson:"reasons"`
	Rank       int            `json:"rank" bson:"rank"`
}

// UpstreamSupplier mirrors one row of the supplier search endpoint.
// Coordinates arrive as strings and the longitude key is spelled "lang".
type UpstreamSupplier struct {
	ID       string   `json:"id"`
	NamaToko string   `json:"namaToko"`
	Alamat   string   `json:"alamat"`
	Lat      string   `json:"lat"`
	Lang     string   `json:"lang"`
	NoHP     string   `json:"noHp,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

// UpstreamSupplierResponse is the envelope returned by the supplier search endpoint.
type UpstreamSupplierResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []UpstreamSupplier `json:"data"`
}
