package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/foodstand-pos/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// discountCodeBook is the interface for discount code lookups
type discountCodeBook interface {
	Lookup(ctx context.Context, code string) (pricing.Discount, bool)
	Stats() map[string]interface{}
}

// DiscountCodeHandler handles HTTP requests for discount codes
type DiscountCodeHandler struct {
	book discountCodeBook
	log  *slog.Logger
}

// NewDiscountCodeHandler creates a new DiscountCodeHandler
func NewDiscountCodeHandler(book discountCodeBook, log *slog.Logger) *DiscountCodeHandler {
	return &DiscountCodeHandler{
		book: book,
		log:  log,
	}
}

// LookupCode handles GET /api/discount-code/{code}
func (h *DiscountCodeHandler) LookupCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	discount, ok := h.book.Lookup(r.Context(), code)
	if !ok {
		WriteJSON(w, http.StatusNotFound, map[string]interface{}{
			"valid":   false,
			"code":    code,
			"message": "Discount code not found",
		}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"valid": true,
		"code":  code,
		"mode":  discount.Mode().String(),
		"value": discount.Value(),
		"label": discount.Label(),
	}, h.log)
}

// GetStats handles GET /api/discount-code/stats
func (h *DiscountCodeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.book.Stats(), h.log)
}
