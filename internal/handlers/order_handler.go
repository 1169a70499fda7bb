package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/foodstand-pos/internal/models"
	"github.com/Lixing-Zhang/foodstand-pos/internal/pricing"
	"github.com/Lixing-Zhang/foodstand-pos/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.CreateOrder(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order opened", "order_id", order.ID)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// DeleteOrder handles DELETE /api/order/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if err := h.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.log.Info("order discarded", "order_id", orderID)
}

// AddItem handles POST /api/order/{orderId}/item
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Error("failed to decode item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderID := chi.URLParam(r, "orderId")
	order, err := h.orderService.AddItem(r.Context(), orderID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("item added",
		"order_id", orderID,
		"product", req.Product,
		"quantity", req.Quantity,
		"extras", len(req.Extras),
	)
}

// SetDiscount handles PUT /api/order/{orderId}/discount
// A code in the body takes precedence over mode/value. value may be a JSON
// string or number; anything unreadable counts as zero.
func (h *OrderHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var req models.DiscountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Error("failed to decode discount request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderID := chi.URLParam(r, "orderId")

	var (
		order *models.OrderSummary
		err   error
	)
	if code := strings.TrimSpace(req.Code); code != "" {
		order, err = h.orderService.ApplyDiscountCode(r.Context(), orderID, code)
	} else {
		order, err = h.orderService.SetDiscount(r.Context(), orderID, string(req.Value), req.Mode)
	}
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("discount set", "order_id", orderID, "mode", order.DiscountMode, "label", order.DiscountLabel)
}

// ComputeChange handles POST /api/order/{orderId}/change
// An unreadable payment is reported as status "invalid", not as an error.
func (h *OrderHandler) ComputeChange(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Error("failed to decode change request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	change, err := h.orderService.Change(r.Context(), chi.URLParam(r, "orderId"), string(req.Payment))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := models.ChangeResponse{
		Status:  string(change.Status),
		Message: change.Message(),
	}
	if change.Status != pricing.ChangeInvalid {
		amount := change.Amount.Round(2)
		resp.Amount = &amount
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}

func (h *OrderHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "Order not found", h.log)
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, pricing.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	case errors.Is(err, service.ErrInvalidExtra):
		WriteError(w, http.StatusBadRequest, "Invalid extra ingredient", h.log)
	case errors.Is(err, service.ErrInvalidDiscountCode):
		WriteError(w, http.StatusBadRequest, "Discount code is not valid", h.log)
	default:
		h.log.Error("order request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	h.log.Warn("order request rejected", "error", err)
}
