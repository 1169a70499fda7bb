package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/Lixing-Zhang/foodstand-pos/internal/config"
	"github.com/Lixing-Zhang/foodstand-pos/internal/discountcode"
	"github.com/Lixing-Zhang/foodstand-pos/internal/handlers"
	"github.com/Lixing-Zhang/foodstand-pos/internal/service"
	"github.com/Lixing-Zhang/foodstand-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food stand pos server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	menu := catalog.Default()
	promotion := catalog.Promotion{
		Product:     cfg.Promotion.Product,
		SinglePrice: cfg.Promotion.SinglePrice,
		BundlePrice: cfg.Promotion.BundlePrice,
	}
	if !menu.Sellable(promotion.Product) {
		log.Error("bundle product is not on the menu", "product", promotion.Product)
		os.Exit(1)
	}

	codes := discountcode.NewBook()
	if len(cfg.DiscountCodes.Sources) > 0 {
		log.Info("loading discount codes...", "sources", len(cfg.DiscountCodes.Sources))

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := codes.Load(ctx, cfg.DiscountCodes.Sources)
		cancel()
		if err != nil {
			log.Error("failed to load discount codes", "error", err)
			os.Exit(1)
		}

		stats := codes.Stats()
		log.Info("discount codes loaded",
			"total_sources", stats["total_sources"],
			"total_codes", stats["total_codes"],
		)
	}

	productService := service.NewProductService(menu, promotion)
	orderService := service.NewOrderService(menu, promotion, codes)

	router := handlers.NewRouter(handlers.Handlers{
		Health:        handlers.NewHealthHandler(orderService, codes, log),
		Product:       handlers.NewProductHandler(productService, log),
		Order:         handlers.NewOrderHandler(orderService, log),
		DiscountCodes: handlers.NewDiscountCodeHandler(codes, log),
	}, cfg.Auth, log)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
