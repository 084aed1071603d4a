package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TNRIN/DRESS/internal/service"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
	"github.com/TNRIN/DRESS/pkg/httputil"
	"github.com/TNRIN/DRESS/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
// Size, color and quantity are optional; the service normalizes them.
type AddItemRequest struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required,min=1,max=500"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
	Image     string  `json:"image" validate:"required"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// UpdateQuantityRequest is the JSON request body for updating a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	cart, err := h.service.Get(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, cart)
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), sid, service.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, cart)
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{index}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	index, err := lineIndex(r)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sid, index, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, cart)
}

// RemoveItem handles DELETE /api/v1/cart/items/{index}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	index, err := lineIndex(r)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), sid, index)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, cart)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	if err := h.service.Clear(r.Context(), sid); err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteData(w, map[string]string{"status": "cleared"})
}

func lineIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, apperrors.InvalidInput("line index must be an integer")
	}
	return index, nil
}
