package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/fashion-store/internal/repository"
	"github.com/Lixing-Zhang/fashion-store/internal/response"
	"github.com/Lixing-Zhang/fashion-store/internal/service"
)

// ProductHandler handles product-related HTTP requests
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
// The optional category query parameter filters the list; an unknown category returns [].
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(ctx, category)
	if err != nil {
		h.logger.Error("failed to list products", "category", category, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	response.WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := parseProductID(r)
	if !ok {
		h.logger.Warn("invalid product ID format", "productId", chi.URLParam(r, "productId"))
		response.WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			response.WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	response.WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCategories handles GET /api/category
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	response.WriteJSON(w, http.StatusOK, categories, h.logger)
}

// parseProductID reads the productId URL parameter as a positive int64
func parseProductID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
