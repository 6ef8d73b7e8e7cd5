package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"CATALOG_API_URL", "CATALOG_ACCESS_TOKEN", "CATALOG_PAGE_LIMIT",
		"SALES_DATA_ROOT", "SALES_DB_PATH", "SALES_OUTPUT_DIR",
		"SALES_CURRENCY", "DEBUG",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.APIURL != "https://dummyjson.com" {
		t.Errorf("APIURL = %q, expected default", cfg.Catalog.APIURL)
	}
	if cfg.Catalog.PageLimit != 100 {
		t.Errorf("PageLimit = %d, expected 100", cfg.Catalog.PageLimit)
	}
	if cfg.Sales.DataRoot != "./data" {
		t.Errorf("DataRoot = %q, expected ./data", cfg.Sales.DataRoot)
	}
	if cfg.Sales.OutputDir != "./output" {
		t.Errorf("OutputDir = %q, expected ./output", cfg.Sales.OutputDir)
	}
	if cfg.Sales.Currency != "₹" {
		t.Errorf("Currency = %q, expected ₹", cfg.Sales.Currency)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "http://localhost:8080")
	t.Setenv("CATALOG_ACCESS_TOKEN", "secret")
	t.Setenv("CATALOG_PAGE_LIMIT", "25")
	t.Setenv("SALES_CURRENCY", "$")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.APIURL != "http://localhost:8080" {
		t.Errorf("APIURL = %q", cfg.Catalog.APIURL)
	}
	if cfg.Catalog.AccessToken != "secret" {
		t.Errorf("AccessToken = %q", cfg.Catalog.AccessToken)
	}
	if cfg.Catalog.PageLimit != 25 {
		t.Errorf("PageLimit = %d, expected 25", cfg.Catalog.PageLimit)
	}
	if cfg.Sales.Currency != "$" {
		t.Errorf("Currency = %q, expected $", cfg.Sales.Currency)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadInvalidPageLimit(t *testing.T) {
	t.Setenv("CATALOG_PAGE_LIMIT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid CATALOG_PAGE_LIMIT")
	}
}

func TestLoadEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "CATALOG_API_URL=http://envfile:9090\nSALES_DATA_ROOT=/srv/sales\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	os.Unsetenv("CATALOG_API_URL")
	os.Unsetenv("SALES_DATA_ROOT")
	defer os.Unsetenv("CATALOG_API_URL")
	defer os.Unsetenv("SALES_DATA_ROOT")

	cfg, err := Load(envPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.APIURL != "http://envfile:9090" {
		t.Errorf("APIURL = %q, expected value from .env file", cfg.Catalog.APIURL)
	}
	if cfg.Sales.DataRoot != "/srv/sales" {
		t.Errorf("DataRoot = %q, expected value from .env file", cfg.Sales.DataRoot)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load("does-not-exist.env"); err == nil {
		t.Error("Load() expected error for explicit missing .env file")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Catalog: CatalogConfig{APIURL: "https://dummyjson.com"},
		Sales:   SalesConfig{DataRoot: "./data"},
	}

	if err := cfg.Validate([]string{"catalog", "apiUrl"}, []string{"sales", "dataRoot"}); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}

	if err := cfg.Validate([]string{"catalog", "accessToken"}); err == nil {
		t.Error("Validate() expected error for missing access token")
	}

	if err := cfg.Validate([]string{"sales", "dbPath"}); err == nil {
		t.Error("Validate() expected error for missing db path")
	}
}
