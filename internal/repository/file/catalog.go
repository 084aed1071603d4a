package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/TNRIN/DRESS/internal/domain"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

// CatalogSource reads the product catalog from a static JSON document. The
// document is a JSON array of product records; anything else is rejected.
type CatalogSource struct {
	path string
}

// NewCatalogSource creates a catalog source for the given file path.
func NewCatalogSource(path string) *CatalogSource {
	return &CatalogSource{path: path}
}

// Load reads and validates the full product list. Any read, parse, or
// invariant failure yields the catalog-unavailable condition; there is no
// partial load.
func (s *CatalogSource) Load(ctx context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.CatalogUnavailable(fmt.Errorf("read %s: %w", s.path, err))
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, apperrors.CatalogUnavailable(fmt.Errorf("parse %s: expected a JSON array of products: %w", s.path, err))
	}

	seen := make(map[int]struct{}, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, apperrors.CatalogUnavailable(fmt.Errorf("invalid record at index %d: %w", i, err))
		}
		if _, dup := seen[products[i].ID]; dup {
			return nil, apperrors.CatalogUnavailable(fmt.Errorf("duplicate product id %d", products[i].ID))
		}
		seen[products[i].ID] = struct{}{}
	}

	return products, nil
}
