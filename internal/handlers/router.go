package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/foodstand-pos/internal/config"
	"github.com/Lixing-Zhang/foodstand-pos/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health        *HealthHandler
	Product       *ProductHandler
	Order         *OrderHandler
	DiscountCodes *DiscountCodeHandler
}

// NewRouter wires middleware and routes. Order mutations require an API key.
func NewRouter(h Handlers, auth config.AuthConfig, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Price list
		r.Get("/product", h.Product.ListProducts)
		r.Get("/product/{name}", h.Product.GetProduct)
		r.Get("/extra", h.Product.ListExtras)
		r.Get("/promotion", h.Product.GetPromotion)

		// Discount codes
		r.Get("/discount-code/stats", h.DiscountCodes.GetStats)
		r.Get("/discount-code/{code}", h.DiscountCodes.LookupCode)

		// Orders
		r.Get("/order/{orderId}", h.Order.GetOrder)
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(auth))

			r.Post("/order", h.Order.CreateOrder)
			r.Delete("/order/{orderId}", h.Order.DeleteOrder)
			r.Post("/order/{orderId}/item", h.Order.AddItem)
			r.Put("/order/{orderId}/discount", h.Order.SetDiscount)
			r.Post("/order/{orderId}/change", h.Order.ComputeChange)
		})
	})

	return r
}
