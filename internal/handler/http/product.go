package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/service"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
	"github.com/TNRIN/DRESS/pkg/httputil"
	"github.com/TNRIN/DRESS/pkg/pagination"
)

// CatalogHandler handles HTTP requests for catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	key := domain.ParseSortKey(r.URL.Query().Get("sort"))
	params := pagination.FromRequest(r)

	result, err := h.service.List(filter, key, params)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, result)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httputil.WriteError(w, r, h.logger, apperrors.InvalidInput("product id must be a positive integer"))
		return
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, product)
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories()
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, map[string]any{"categories": categories})
}

// ReloadCatalog handles POST /api/v1/catalog/reload
func (h *CatalogHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, map[string]string{"status": "reloaded"})
}

// filterFromQuery builds a product filter from the list query string.
// "category" selects one category; "categories", "sizes" and "colors" are
// comma-separated lists; "max_price" is an inclusive ceiling.
func filterFromQuery(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Categories: splitParam(q.Get("categories")),
		Sizes:      splitParam(q.Get("sizes")),
		Colors:     splitParam(q.Get("colors")),
	}

	if category := strings.TrimSpace(q.Get("category")); category != "" {
		filter.Categories = append(filter.Categories, category)
	}

	if raw := strings.TrimSpace(q.Get("max_price")); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			return domain.ProductFilter{}, apperrors.InvalidInput("max_price must be a non-negative number")
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}

func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
