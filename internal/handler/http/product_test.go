package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/service"
)

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Silk Dress", Category: "dresses", Price: 79.99, Sizes: []string{"S", "M"}, Colors: []string{"Red"}, InStock: true},
		{ID: 2, Name: "Linen Shirt", Category: "tops", Price: 24.50, Sizes: []string{"M", "L"}, Colors: []string{"White"}, InStock: true, Featured: true},
		{ID: 3, Name: "Ankle Boots", Category: "shoes", Price: 120.00, Sizes: []string{"38"}, Colors: []string{"Black"}, InStock: true},
	}
}

func setupCatalogRouter(t *testing.T, src stubCatalogSource, load bool) *chi.Mux {
	t.Helper()
	svc := service.NewCatalogService(src, testLogger())
	if load {
		require.NoError(t, svc.Load(context.Background()))
	}
	handler := NewCatalogHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Get("/api/v1/products", handler.ListProducts)
	r.Get("/api/v1/products/{id}", handler.GetProduct)
	r.Get("/api/v1/categories", handler.ListCategories)
	r.Post("/api/v1/catalog/reload", handler.ReloadCatalog)
	return r
}

type productListResponse struct {
	Data struct {
		Data       []domain.Product `json:"data"`
		TotalCount int              `json:"total_count"`
		Page       int              `json:"page"`
		PerPage    int              `json:"per_page"`
		TotalPages int              `json:"total_pages"`
	} `json:"data"`
}

func TestListProducts_Defaults(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp productListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Data.TotalCount)
	assert.Equal(t, 9, resp.Data.PerPage)
	require.Len(t, resp.Data.Data, 3)
	// Featured ordering puts product 2 first.
	assert.Equal(t, 2, resp.Data.Data[0].ID)
}

func TestListProducts_FilterAndSort(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?categories=tops,shoes&sort=price-high", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp productListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data.Data, 2)
	assert.Equal(t, 3, resp.Data.Data[0].ID)
	assert.Equal(t, 2, resp.Data.Data[1].ID)
}

func TestListProducts_MaxPrice(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?max_price=79.99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp productListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Data.TotalCount)
}

func TestListProducts_InvalidMaxPrice(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?max_price=cheap", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestListProducts_CatalogUnavailable(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CATALOG_UNAVAILABLE", resp.Error.Code)
}

func TestGetProduct(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Ankle Boots", resp.Data.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProduct_BadID(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/silk", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"dresses", "tops", "shoes"}, resp.Data.Categories)
}

func TestReloadCatalog(t *testing.T) {
	router := setupCatalogRouter(t, stubCatalogSource{products: catalogFixture()}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
