package http

import (
	"log/slog"
	"net/http"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/service"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
	"github.com/TNRIN/DRESS/pkg/httputil"
	"github.com/TNRIN/DRESS/pkg/validator"
)

// CheckoutHandler handles HTTP requests for the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, logger: logger}
}

// CheckoutRequest is the JSON request body for composing an order.
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone" validate:"required,min=5,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"required,min=1,max=500"`
	Notes   string `json:"notes" validate:"max=1000"`
}

// Checkout handles POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, h.logger, apperrors.Unauthorized("session is required"))
		return
	}

	var req CheckoutRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	order, err := h.service.Compose(r.Context(), sid, domain.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
