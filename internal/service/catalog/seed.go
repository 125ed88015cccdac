package catalog

import (
	"github.com/mamadbah2/kolamku/internal/domain/models"
	"github.com/mamadbah2/kolamku/pkg/geo"
)

// MockSuppliers returns the built-in catalog served until the first successful refresh.
func MockSuppliers() []models.SupplierRecord {
	return []models.SupplierRecord{
		{
			ID: "sup-001", Name: "Mitra Pakan Bogor", Category: models.CategoryPakan,
			Location: &geo.LatLng{Lat: -6.5950, Lng: 106.8166}, Address: "Jl. Raya Pajajaran, Bogor",
			HasCertification: true, CertificationType: "SNI",
			SLA:        models.SLA{AverageDeliveryTime: 24, OnTimePercentage: 0.96},
			ReturnRate: 0.02, PriceStability: 0.90, Rating: 4.7,
			PriceRange:       models.PriceRange{Min: 11000, Max: 13500, Unit: "kg"},
			TransactionCount: 412,
		},
		{
			ID: "sup-002", Name: "Sentosa Feed Sukabumi", Category: models.CategoryPakan,
			Location: &geo.LatLng{Lat: -6.9277, Lng: 106.9300}, Address: "Jl. Siliwangi, Sukabumi",
			SLA:        models.SLA{AverageDeliveryTime: 48, OnTimePercentage: 0.88},
			ReturnRate: 0.05, PriceStability: 0.75, Rating: 4.2,
			PriceRange:       models.PriceRange{Min: 10500, Max: 12500, Unit: "kg"},
			TransactionCount: 187,
		},
		{
			ID: "sup-003", Name: "Prima Aqua Feed Bandung", Category: models.CategoryPakan,
			Location: &geo.LatLng{Lat: -6.9175, Lng: 107.6191}, Address: "Jl. Soekarno-Hatta, Bandung",
			HasCertification: true, CertificationType: "CPIB",
			SLA:        models.SLA{AverageDeliveryTime: 36, OnTimePercentage: 0.93},
			ReturnRate: 0.03, PriceStability: 0.86, Rating: 4.5,
			PriceRange:       models.PriceRange{Min: 11500, Max: 14000, Unit: "kg"},
			TransactionCount: 265,
		},
		{
			ID: "sup-004", Name: "Benih Unggul Parung", Category: models.CategoryBibit,
			Location: &geo.LatLng{Lat: -6.4213, Lng: 106.7326}, Address: "Jl. Raya Parung, Bogor",
			HasCertification: true, CertificationType: "CPIB",
			SLA:        models.SLA{AverageDeliveryTime: 12, OnTimePercentage: 0.97},
			ReturnRate: 0.02, PriceStability: 0.88, Rating: 4.8,
			PriceRange:       models.PriceRange{Min: 150, Max: 400, Unit: "ekor"},
			TransactionCount: 530,
		},
		{
			ID: "sup-005", Name: "Pembenihan Nila Cirata", Category: models.CategoryBibit,
			Location: &geo.LatLng{Lat: -6.7000, Lng: 107.3500}, Address: "Waduk Cirata, Purwakarta",
			SLA:        models.SLA{AverageDeliveryTime: 30, OnTimePercentage: 0.90},
			ReturnRate: 0.04, PriceStability: 0.80, Rating: 4.3,
			PriceRange:       models.PriceRange{Min: 120, Max: 350, Unit: "ekor"},
			TransactionCount: 98,
		},
		{
			ID: "sup-006", Name: "Apotek Ikan Sehat", Category: models.CategoryObat,
			Location: &geo.LatLng{Lat: -6.2088, Lng: 106.8456}, Address: "Jl. Pramuka, Jakarta Timur",
			HasCertification: true, CertificationType: "BPOM",
			SLA:        models.SLA{AverageDeliveryTime: 24, OnTimePercentage: 0.95},
			ReturnRate: 0.01, PriceStability: 0.92, Rating: 4.6,
			PriceRange:       models.PriceRange{Min: 25000, Max: 150000, Unit: "botol"},
			TransactionCount: 344,
		},
		{
			ID: "sup-007", Name: "Toko Perikanan Jaya", Category: models.CategoryPeralatan,
			Location: &geo.LatLng{Lat: -6.3000, Lng: 106.6500}, Address: "Jl. Raya Serpong, Tangerang Selatan",
			SLA:        models.SLA{AverageDeliveryTime: 48, OnTimePercentage: 0.85},
			ReturnRate: 0.06, PriceStability: 0.82, Rating: 4.1,
			PriceRange:       models.PriceRange{Min: 50000, Max: 2500000, Unit: "unit"},
			TransactionCount: 76,
		},
		{
			ID: "sup-008", Name: "Ekspedisi Ikan Hidup Nusantara", Category: models.CategoryLogistik,
			Location: &geo.LatLng{Lat: -6.1754, Lng: 106.8272}, Address: "Jl. Gunung Sahari, Jakarta Pusat",
			SLA:        models.SLA{AverageDeliveryTime: 18, OnTimePercentage: 0.91},
			ReturnRate: 0.03, PriceStability: 0.78, Rating: 4.4,
			PriceRange:       models.PriceRange{Min: 1500, Max: 3000, Unit: "kg"},
			TransactionCount: 158,
		},
	}
}
