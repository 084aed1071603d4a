package service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/repository"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
	"github.com/TNRIN/DRESS/pkg/pagination"
)

// CatalogService serves read access to the product catalog. The catalog is
// loaded once at startup and swapped atomically on reload; queries before a
// successful load fail with a catalog-unavailable error.
type CatalogService struct {
	source repository.CatalogSource
	logger *slog.Logger

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
	lastErr  error
}

func NewCatalogService(source repository.CatalogSource, logger *slog.Logger) *CatalogService {
	return &CatalogService{source: source, logger: logger}
}

// Load reads the catalog from the source and replaces the current snapshot.
// On failure the previous snapshot, if any, stays in place.
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := s.source.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "catalog load failed", slog.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	s.products = products
	s.loaded = true
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "catalog loaded", slog.Int("products", len(products)))
	return nil
}

// Reload re-reads the catalog source. Exposed for the reload endpoint.
func (s *CatalogService) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Ready reports whether a catalog snapshot is available. Used by the
// readiness probe.
func (s *CatalogService) Ready(ctx context.Context) error {
	_, err := s.snapshot()
	return err
}

func (s *CatalogService) snapshot() ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, apperrors.CatalogUnavailable(s.lastErr)
	}
	return s.products, nil
}

// Products returns the full catalog in source order.
func (s *CatalogService) Products() ([]domain.Product, error) {
	return s.snapshot()
}

// GetByID returns the product with the given identifier.
func (s *CatalogService) GetByID(id int) (*domain.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("product", strconv.Itoa(id))
}

// FilterByCategory returns the products in the given category. An absent
// category or the "all" sentinel returns the whole catalog.
func (s *CatalogService) FilterByCategory(category string) ([]domain.Product, error) {
	if strings.TrimSpace(category) == "" {
		return s.Filter(domain.ProductFilter{})
	}
	return s.Filter(domain.ProductFilter{Categories: []string{category}})
}

// Filter returns the products matching every criterion of the filter,
// preserving catalog order.
func (s *CatalogService) Filter(filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Product, 0, len(products))
	for i := range products {
		if filter.Matches(&products[i]) {
			matched = append(matched, products[i])
		}
	}
	return matched, nil
}

// Sort returns a sorted copy of products. The input slice is not modified.
func (s *CatalogService) Sort(products []domain.Product, key domain.SortKey) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case domain.SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.Compare(sorted[i].Name, sorted[j].Name) < 0
		})
	case domain.SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.Compare(sorted[i].Name, sorted[j].Name) > 0
		})
	default:
		// Featured products first, then ascending identifier.
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Featured != sorted[j].Featured {
				return sorted[i].Featured
			}
			return sorted[i].ID < sorted[j].ID
		})
	}
	return sorted
}

// List filters, sorts and paginates the catalog in that order.
func (s *CatalogService) List(filter domain.ProductFilter, key domain.SortKey, params pagination.Params) (pagination.Result[domain.Product], error) {
	matched, err := s.Filter(filter)
	if err != nil {
		return pagination.Result[domain.Product]{}, err
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = pagination.DefaultPerPage
	}
	params.Offset = (params.Page - 1) * params.PerPage

	sorted := s.Sort(matched, key)
	page, total := pagination.Slice(sorted, params)
	return pagination.NewResult(page, total, params), nil
}

// Categories returns the distinct product categories in first-seen order.
func (s *CatalogService) Categories() ([]string, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}
