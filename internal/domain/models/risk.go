package models

// RiskLabel is the ordinal risk band.
type RiskLabel string

const (
	RiskLow    RiskLabel = "Rendah"
	RiskMedium RiskLabel = "Sedang"
	RiskHigh   RiskLabel = "Tinggi"
)

// RiskInput carries the economic drivers of one cultivation plan.
type RiskInput struct {
	TotalCost             float64 `json:"totalCost" binding:"gte=0"`
	Capital               float64 `json:"modal" binding:"gte=0"`
	FeedCost              float64 `json:"feedCost" binding:"gte=0"`
	FCR                   float64 `json:"fcr" binding:"gte=0"`
	Density               float64 `json:"density" binding:"gte=0"`
	RecommendedMaxDensity float64 `json:"recommendedMaxDensity" binding:"gte=0"`
	MarketDistanceKm      float64 `json:"marketDistanceKm" binding:"gte=0"`
	FreightCostPerKg      float64 `json:"freightCostPerKg" binding:"gte=0"`
	SupplierScore         float64 `json:"supplierScore" binding:"gte=0"`
}

// RiskComponents are the raw sub-scores before summation.
type RiskComponents struct {
	Cashflow        int `json:"cashflow" bson:"cashflow"`                 // 0..30
	FeedCost        int `json:"feedCost" bson:"feed_cost"`                // 0..25
	StockingDensity int `json:"stockingDensity" bson:"stocking_density"` // 0..15
	MarketAccess    int `json:"marketAccess" bson:"market_access"`       // 0..15
	SupplierQuality int `json:"supplierQuality" bson:"supplier_quality"` // 0..15
}

// RiskAssessment is the combined risk score of a plan.
type RiskAssessment struct {
	Score      int            `json:"score" bson:"score"`
	Label      RiskLabel      `json:"label" bson:"label"`
	Reasons    []string       `json:"reasons" bson:"reasons"`
	Components RiskComponents `json:"components" bson:"components"`
}
