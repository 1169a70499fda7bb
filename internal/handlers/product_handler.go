package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/Lixing-Zhang/foodstand-pos/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles price list HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{name}
// - 200: successful operation
// - 400: empty name
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		h.logger.Warn("product name is required")
		WriteError(w, http.StatusBadRequest, "Invalid name supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.logger.Info("product not found", "product", name)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "product", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListExtras handles GET /api/extra
func (h *ProductHandler) ListExtras(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.ExtraIngredients(r.Context()), h.logger)
}

// GetPromotion handles GET /api/promotion
func (h *ProductHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Promotion(r.Context()), h.logger)
}
