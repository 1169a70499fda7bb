package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Version is overridden at build time with -ldflags "-X .../handlers.Version=..."
var Version = "dev"

// openOrderCounter reports how many orders are currently open
type openOrderCounter interface {
	OpenOrders(ctx context.Context) int
}

// HealthHandler reports whether the stand is ready to take orders
type HealthHandler struct {
	orders openOrderCounter
	codes  discountCodeBook
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. codes may be nil.
func NewHealthHandler(orders openOrderCounter, codes discountCodeBook, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		orders: orders,
		codes:  codes,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	OpenOrders    int       `json:"openOrders"`
	DiscountCodes int       `json:"discountCodes"`
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Version:    Version,
		OpenOrders: h.orders.OpenOrders(r.Context()),
	}

	if h.codes != nil {
		if n, ok := h.codes.Stats()["total_codes"].(int); ok {
			response.DiscountCodes = n
		}
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
