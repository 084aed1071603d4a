package http

import (
	"log/slog"
	"net/http"

	"github.com/TNRIN/DRESS/internal/service"
	"github.com/TNRIN/DRESS/pkg/httputil"
)

// StoreHandler handles HTTP requests for the store settings endpoint.
type StoreHandler struct {
	settings              *service.SettingsService
	freeShippingThreshold float64
	logger                *slog.Logger
}

// NewStoreHandler creates a new store settings HTTP handler.
func NewStoreHandler(settings *service.SettingsService, freeShippingThreshold float64, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		settings:              settings,
		freeShippingThreshold: freeShippingThreshold,
		logger:                logger,
	}
}

// StoreResponse is the public view of the store settings. The order counter
// stays internal.
type StoreResponse struct {
	StoreName             string  `json:"storeName"`
	Currency              string  `json:"currency"`
	ShippingFee           float64 `json:"shippingFee"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
}

// GetStore handles GET /api/v1/store
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	settings := h.settings.Settings()
	httputil.WriteData(w, StoreResponse{
		StoreName:             settings.StoreName,
		Currency:              settings.Currency,
		ShippingFee:           settings.ShippingFee,
		FreeShippingThreshold: h.freeShippingThreshold,
	})
}
