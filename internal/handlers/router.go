package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/fashion-store/internal/config"
	"github.com/Lixing-Zhang/fashion-store/internal/middleware"
	"github.com/Lixing-Zhang/fashion-store/internal/service"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
)

// NewRouter wires the storefront API routes
func NewRouter(
	cfg *config.Config,
	productService *service.ProductService,
	cartService *service.CartService,
	sessions *session.Manager,
	log *slog.Logger,
) http.Handler {
	healthHandler := NewHealthHandler(log, sessions)
	productHandler := NewProductHandler(productService, log)
	cartHandler := NewCartHandler(cartService, log)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/category", productHandler.ListCategories)

		r.Post("/session", cartHandler.CreateSession)

		// Session-scoped endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions, log))

			r.Delete("/session", cartHandler.EndSession)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)
			r.Post("/cart/checkout", cartHandler.Checkout)

			r.Get("/browse", cartHandler.Browse)
			r.Put("/browse/category/{category}", cartHandler.SelectCategory)
			r.Delete("/browse/category", cartHandler.ClearCategory)
		})
	})

	return r
}
