package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Log       LogConfig
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
	Suppliers SuppliersConfig
	Planning  PlanningConfig
}

// LogConfig controls the service logger.
type LogConfig struct {
	Service     string
	Level       string
	Development bool
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the plan store. An empty URI keeps plans in memory.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig points at the spreadsheet holding market price history.
// Both fields empty disables the spreadsheet provider.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	PriceRange      string
}

// SuppliersConfig configures the upstream supplier search and its refresh cadence.
type SuppliersConfig struct {
	BaseURL       string
	RefreshCron   string
	ProductTypes  []string
	JenisIkan     string
	Kota          string
	RefreshOnBoot bool
}

// PlanningConfig controls the mock price history used when no spreadsheet is configured.
type PlanningConfig struct {
	PriceSeed   int64
	PricePoints int
}

// Enabled reports whether a spreadsheet has been configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// Enabled reports whether the upstream supplier search is configured.
func (c SuppliersConfig) Enabled() bool {
	return c.BaseURL != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	seed, err := strconv.ParseInt(getenvWithDefault("PRICE_HISTORY_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("PRICE_HISTORY_SEED must be an integer: %w", err)
	}
	points, err := strconv.Atoi(getenvWithDefault("PRICE_HISTORY_POINTS", "30"))
	if err != nil {
		return nil, fmt.Errorf("PRICE_HISTORY_POINTS must be an integer: %w", err)
	}

	cfg := &Config{
		Log: LogConfig{
			Service:     getenvWithDefault("SERVICE_NAME", "kolamku"),
			Level:       os.Getenv("LOG_LEVEL"),
			Development: os.Getenv("APP_ENV") == "development",
		},
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "kolamku"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_PRICE_ID"),
			PriceRange:      getenvWithDefault("GOOGLE_SHEET_PRICE_RANGE", "Harga!A:C"),
		},
		Suppliers: SuppliersConfig{
			BaseURL:       os.Getenv("SUPPLIER_API_BASE_URL"),
			RefreshCron:   getenvWithDefault("SUPPLIER_REFRESH_CRON", "0 */6 * * *"),
			ProductTypes:  splitList(getenvWithDefault("SUPPLIER_PRODUCT_TYPES", "bibit,pakan,obat")),
			JenisIkan:     os.Getenv("SUPPLIER_JENIS_IKAN"),
			Kota:          os.Getenv("SUPPLIER_KOTA"),
			RefreshOnBoot: getenvWithDefault("SUPPLIER_REFRESH_ON_BOOT", "true") == "true",
		},
		Planning: PlanningConfig{
			PriceSeed:   seed,
			PricePoints: points,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	switch {
	case c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "":
		return errors.New("GOOGLE_SHEET_PRICE_ID must be provided with GOOGLE_SHEETS_CREDENTIALS_PATH")
	case c.Sheets.CredentialsPath == "" && c.Sheets.SpreadsheetID != "":
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided with GOOGLE_SHEET_PRICE_ID")
	}

	if c.Suppliers.Enabled() {
		if c.Suppliers.RefreshCron == "" {
			return errors.New("SUPPLIER_REFRESH_CRON must be provided")
		}
		if len(c.Suppliers.ProductTypes) == 0 {
			return errors.New("SUPPLIER_PRODUCT_TYPES must list at least one product type")
		}
	}

	if c.Planning.PricePoints < 2 {
		return errors.New("PRICE_HISTORY_POINTS must be at least 2")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
