package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/service"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

func setupCheckoutRouter(repo *mockCartRepository) *chi.Mux {
	settings := testSettingsService()
	carts := testCartService(repo)
	svc := service.NewCheckoutService(carts, settings, nil, testLogger())
	handler := NewCheckoutHandler(svc, testLogger())

	r := chi.NewRouter()
	r.With(ContentTypeJSON, SessionIDFromHeader).Post("/api/v1/checkout", handler.Checkout)
	return r
}

func checkoutBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(CheckoutRequest{
		Name:    "Amaya Perera",
		Phone:   "0771234567",
		Address: "12 Galle Road, Colombo",
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestCheckout(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "sess-1").Return(sampleCart("sess-1"), nil)
	repo.On("Delete", mock.Anything, "sess-1").Return(nil)

	router := setupCheckoutRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
	req.Header.Set(SessionHeader, "sess-1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data domain.Order `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, strings.HasPrefix(resp.Data.Number, "ORD-"))
	assert.InDelta(t, 99.98, resp.Data.Subtotal, 0.001)
	assert.Contains(t, resp.Data.DeepLink, "https://wa.me/")

	repo.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := new(mockCartRepository)
	repo.On("Get", mock.Anything, "sess-1").Return(nil, apperrors.NotFound("cart", "sess-1"))

	router := setupCheckoutRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
	req.Header.Set(SessionHeader, "sess-1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestCheckout_ValidationError(t *testing.T) {
	router := setupCheckoutRouter(new(mockCartRepository))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte(`{"name":"A"}`)))
	req.Header.Set(SessionHeader, "sess-1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "Phone")
}

func TestGetStore(t *testing.T) {
	handler := NewStoreHandler(testSettingsService(), 100, testLogger())

	r := chi.NewRouter()
	r.Get("/api/v1/store", handler.GetStore)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data StoreResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Elegance", resp.Data.StoreName)
	assert.Equal(t, "LKR", resp.Data.Currency)
	assert.Equal(t, 10.0, resp.Data.ShippingFee)
	assert.Equal(t, 100.0, resp.Data.FreeShippingThreshold)
}
