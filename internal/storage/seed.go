package storage

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

//go:embed seed.yaml
var seedCatalog []byte

// SeedProducts decodes the built-in six-bear catalog.
func SeedProducts() ([]model.Product, error) {
	var doc struct {
		Products []model.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(seedCatalog, &doc); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return doc.Products, nil
}

// SeedSnapshot builds the initial store state: seed catalog, empty
// carts, no orders, no role selected.
func SeedSnapshot() (store.Snapshot, error) {
	products, err := SeedProducts()
	if err != nil {
		return store.Snapshot{}, err
	}
	return store.Snapshot{Products: products}, nil
}
