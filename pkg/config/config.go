// Package config provides configuration management for the sales analytics
// system. It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Catalog CatalogConfig
	Sales   SalesConfig
	Debug   bool
}

// CatalogConfig represents catalog API configuration.
type CatalogConfig struct {
	APIURL      string
	AccessToken string
	PageLimit   int
}

// SalesConfig represents sales-data related configuration.
type SalesConfig struct {
	DataRoot  string
	DBPath    string
	OutputDir string
	Currency  string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	pageLimit, err := parseIntEnv("CATALOG_PAGE_LIMIT", 100)
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_PAGE_LIMIT: %w", err)
	}

	config := &Config{
		Catalog: CatalogConfig{
			APIURL:      getEnvOrDefault("CATALOG_API_URL", "https://dummyjson.com"),
			AccessToken: os.Getenv("CATALOG_ACCESS_TOKEN"),
			PageLimit:   pageLimit,
		},
		Sales: SalesConfig{
			DataRoot:  getEnvOrDefault("SALES_DATA_ROOT", "./data"),
			DBPath:    os.Getenv("SALES_DB_PATH"),
			OutputDir: getEnvOrDefault("SALES_OUTPUT_DIR", "./output"),
			Currency:  getEnvOrDefault("SALES_CURRENCY", "₹"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "catalog":
			switch path[1] {
			case "apiUrl":
				value = c.Catalog.APIURL
			case "accessToken":
				value = c.Catalog.AccessToken
			case "pageLimit":
				if c.Catalog.PageLimit > 0 {
					value = "set"
				}
			}
		case "sales":
			switch path[1] {
			case "dataRoot":
				value = c.Sales.DataRoot
			case "dbPath":
				value = c.Sales.DBPath
			case "outputDir":
				value = c.Sales.OutputDir
			case "currency":
				value = c.Sales.Currency
			}
		}

		if value == "" {
			missing = append(missing, joinPath(path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an int from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}

	return parsed, nil
}

// joinPath joins a path slice into a dot-separated string.
func joinPath(path []string) string {
	result := ""
	for i, p := range path {
		if i > 0 {
			result += "."
		}
		result += p
	}
	return result
}
