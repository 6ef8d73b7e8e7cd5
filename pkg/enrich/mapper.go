package enrich

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override maps a local product identifier directly to a catalog id, for
// products whose numeric-suffix convention does not hold.
type Override struct {
	ProductID string `yaml:"product_id"`
	CatalogID int    `yaml:"catalog_id"`
}

// OverrideConfig represents the catalog-overrides YAML file.
type OverrideConfig struct {
	Overrides []Override `yaml:"overrides"`
}

// OverrideMapper resolves local product identifiers to catalog ids from a
// YAML override file. A nil mapper is valid and maps nothing.
type OverrideMapper struct {
	byProduct map[string]int
}

// NewOverrideMapper loads an OverrideMapper from a YAML configuration file.
func NewOverrideMapper(configPath string) (*OverrideMapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file: %w", err)
	}

	var config OverrideConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	mapper := &OverrideMapper{
		byProduct: make(map[string]int, len(config.Overrides)),
	}
	for _, o := range config.Overrides {
		mapper.byProduct[o.ProductID] = o.CatalogID
	}

	return mapper, nil
}

// CatalogID returns the override catalog id for a product identifier.
func (m *OverrideMapper) CatalogID(productID string) (int, bool) {
	if m == nil {
		return 0, false
	}
	id, ok := m.byProduct[productID]
	return id, ok
}

// Len returns the number of loaded overrides.
func (m *OverrideMapper) Len() int {
	if m == nil {
		return 0
	}
	return len(m.byProduct)
}
