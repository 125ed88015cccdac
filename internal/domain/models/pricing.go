package models

// PriceModel enumerates the supported purchase pricing contracts.
type PriceModel string

const (
	PriceModelSpot    PriceModel = "spot"
	PriceModelFixed   PriceModel = "fixed"
	PriceModelIndexed PriceModel = "indexed"
)

// RiskAppetite expresses how much price exposure the buyer tolerates.
type RiskAppetite string

const (
	AppetiteLow    RiskAppetite = "low"
	AppetiteMedium RiskAppetite = "medium"
	AppetiteHigh   RiskAppetite = "high"
)

// PriceModelInput describes a purchase to be priced.
type PriceModelInput struct {
	Item          string       `json:"item"`
	HorizonWeeks  float64      `json:"horizonWeeks" binding:"gte=0"`
	Volatility30d float64      `json:"volatility30d" binding:"gte=0"`
	Volume        float64      `json:"volume" binding:"gte=0"`
	RiskAppetite  RiskAppetite `json:"riskAppetite"`
}

// PriceModelAlternative is a secondary pricing option with its rationale.
type PriceModelAlternative struct {
	Model  PriceModel `json:"model" bson:"model"`
	Reason string     `json:"reason" bson:"reason"`
}

// PriceModelRecommendation is the advisor's answer.
type PriceModelRecommendation struct {
	Recommendation PriceModel              `json:"recommendation" bson:"recommendation"`
	Confidence     float64                 `json:"confidence" bson:"confidence"`
	Reasons        []string                `json:"reasons" bson:"reasons"`
	Alternatives   []PriceModelAlternative `json:"alternatives" bson:"alternatives"`
}
