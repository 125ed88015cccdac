package models

import (
	"time"

	"github.com/mamadbah2/kolamku/pkg/geo"
)

// PlanVariant names the three generated scenarios.
type PlanVariant string

const (
	VariantUtama   PlanVariant = "utama"
	VariantAman    PlanVariant = "aman"
	VariantAgresif PlanVariant = "agresif"
)

// PlanInput is the farmer's request for cultivation plans.
type PlanInput struct {
	JenisIkan    string     `json:"jenis_ikan" bson:"jenis_ikan"`
	LuasLahan    float64    `json:"luas_lahan" bson:"luas_lahan"` // m²
	Modal        float64    `json:"modal" bson:"modal"`           // IDR
	JarakPasarKm float64    `json:"jarak_pasar_km" bson:"jarak_pasar_km"`
	Lokasi       geo.LatLng `json:"lokasi" bson:"lokasi"`
}

// SpeciesParameters are the biological and economic defaults of a species.
type SpeciesParameters struct {
	FCR              float64 `json:"fcr" bson:"fcr"`
	SurvivalRate     float64 `json:"survivalRate" bson:"survival_rate"`
	FeedPricePerKg   float64 `json:"feedPricePerKg" bson:"feed_price_per_kg"`
	SellPricePerKg   float64 `json:"sellPricePerKg" bson:"sell_price_per_kg"`
	SeedPrice        float64 `json:"seedPrice" bson:"seed_price"`
	TargetWeightKg   float64 `json:"targetWeightKg" bson:"target_weight_kg"`
	Overhead         float64 `json:"overhead" bson:"overhead"`
	FreightPerKg     float64 `json:"freightPerKg" bson:"freight_per_kg"`
	Density          float64 `json:"density" bson:"density"` // fish per m²
	MaxDensity       float64 `json:"maxDensity" bson:"max_density"`
	CycleDays        int     `json:"cycleDays" bson:"cycle_days"`
	DailyGrowthGrams float64 `json:"dailyGrowthGrams" bson:"daily_growth_grams"`
}

// PlanCosts itemizes the cost of one cultivation cycle.
type PlanCosts struct {
	Seed     float64 `json:"bibit" bson:"seed"`
	Feed     float64 `json:"pakan" bson:"feed"`
	Overhead float64 `json:"overhead" bson:"overhead"`
	Freight  float64 `json:"ongkir" bson:"freight"`
	Total    float64 `json:"total" bson:"total"`
}

// Plan is one financial scenario.
type Plan struct {
	Variant        PlanVariant              `json:"varian" bson:"variant"`
	Density        float64                  `json:"padat_tebar" bson:"density"`
	FishCount      int                      `json:"jumlah_bibit" bson:"fish_count"`
	SurvivalRate   float64                  `json:"sr" bson:"survival_rate"`
	FCR            float64                  `json:"fcr" bson:"fcr"`
	SellPricePerKg float64                  `json:"harga_jual" bson:"sell_price_per_kg"`
	Survivors      int                      `json:"jumlah_panen" bson:"survivors"`
	BiomassKg      float64                  `json:"biomassa_kg" bson:"biomass_kg"`
	FeedKg         float64                  `json:"pakan_kg" bson:"feed_kg"`
	HarvestDays    int                      `json:"estimasi_panen_hari" bson:"harvest_days"`
	Costs          PlanCosts                `json:"biaya" bson:"costs"`
	Revenue        float64                  `json:"pendapatan" bson:"revenue"`
	Profit         float64                  `json:"laba" bson:"profit"`
	ROI            float64                  `json:"roi" bson:"roi"`
	BEPPerKg       float64                  `json:"bep_per_kg" bson:"bep_per_kg"`
	Risk           RiskAssessment           `json:"risiko" bson:"risk"`
	Suppliers      []SupplierRecommendation `json:"supplier" bson:"suppliers"`
	PriceModel     PriceModelRecommendation `json:"model_harga" bson:"price_model"`
}

// PlanSet is the result of one plan generation request.
type PlanSet struct {
	ID         string            `json:"id" bson:"_id"`
	Input      PlanInput         `json:"input" bson:"input"`
	Species    Species           `json:"jenis_ikan" bson:"species"`
	Parameters SpeciesParameters `json:"parameter" bson:"parameters"`
	Layout     PondLayout        `json:"layout" bson:"layout"`
	Plans      []Plan            `json:"plans" bson:"plans"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
}
