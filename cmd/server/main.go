package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/config"
	"github.com/Lixing-Zhang/fashion-store/internal/handlers"
	"github.com/Lixing-Zhang/fashion-store/internal/repository"
	"github.com/Lixing-Zhang/fashion-store/internal/service"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
	"github.com/Lixing-Zhang/fashion-store/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting fashion store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	store := catalog.Reference()
	log.Info("catalog loaded",
		"products", store.Len(),
		"categories", len(store.Categories()),
	)

	productRepo := repository.NewCatalogProductRepository(store)
	sessions := session.NewManager(cfg.Session, log)

	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo, sessions, log)

	router := handlers.NewRouter(cfg, productService, cartService, sessions, log)

	// Expire idle sessions in the background
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, time.Duration(cfg.Session.SweepInterval)*time.Second)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully", "sessions_discarded", sessions.Len())
}
