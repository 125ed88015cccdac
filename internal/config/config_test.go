package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "MONGODB_URI", "MONGODB_DB_NAME", "GOOGLE_SHEETS_CREDENTIALS_PATH",
		"GOOGLE_SHEET_PRICE_ID", "SUPPLIER_API_BASE_URL", "SUPPLIER_PRODUCT_TYPES",
		"PRICE_HISTORY_SEED", "PRICE_HISTORY_POINTS", "SERVICE_NAME", "LOG_LEVEL", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, LogConfig{Service: "kolamku"}, cfg.Log)
	assert.Equal(t, "kolamku", cfg.MongoDB.DBName)
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.Suppliers.Enabled())
	assert.Equal(t, []string{"bibit", "pakan", "obat"}, cfg.Suppliers.ProductTypes)
	assert.Equal(t, int64(1), cfg.Planning.PriceSeed)
	assert.Equal(t, 30, cfg.Planning.PricePoints)
}

func TestLoadFromEnvFile(t *testing.T) {
	keys := []string{"APP_PORT", "SUPPLIER_API_BASE_URL", "SUPPLIER_PRODUCT_TYPES", "PRICE_HISTORY_POINTS"}
	for _, key := range keys {
		// t.Setenv restores the previous value on cleanup; godotenv only
		// fills variables that are unset.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nSUPPLIER_API_BASE_URL=http://suppliers.local\nSUPPLIER_PRODUCT_TYPES= pakan , ,bibit\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Suppliers.Enabled())
	assert.Equal(t, []string{"pakan", "bibit"}, cfg.Suppliers.ProductTypes)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			MongoDB:   MongoDBConfig{DBName: "kolamku"},
			Suppliers: SuppliersConfig{RefreshCron: "0 * * * *", ProductTypes: []string{"pakan"}},
			Planning:  PlanningConfig{PricePoints: 10},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "missing port", modify: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT"},
		{name: "mongo without db", modify: func(c *Config) { c.MongoDB = MongoDBConfig{URI: "mongodb://localhost"} }, wantErr: "MONGODB_DB_NAME"},
		{name: "sheet id without credentials", modify: func(c *Config) { c.Sheets.SpreadsheetID = "abc" }, wantErr: "GOOGLE_SHEETS_CREDENTIALS_PATH"},
		{name: "credentials without sheet", modify: func(c *Config) { c.Sheets.CredentialsPath = "/tmp/x.json" }, wantErr: "GOOGLE_SHEET_PRICE_ID"},
		{name: "supplier api without product types", modify: func(c *Config) {
			c.Suppliers.BaseURL = "http://x"
			c.Suppliers.ProductTypes = nil
		}, wantErr: "SUPPLIER_PRODUCT_TYPES"},
		{name: "too few price points", modify: func(c *Config) { c.Planning.PricePoints = 1 }, wantErr: "PRICE_HISTORY_POINTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
