package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/fashion-store/internal/middleware"
	"github.com/Lixing-Zhang/fashion-store/internal/models"
	"github.com/Lixing-Zhang/fashion-store/internal/response"
	"github.com/Lixing-Zhang/fashion-store/internal/service"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
)

// CartHandler handles session, cart and category-filter HTTP requests
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// CreateSession handles POST /api/session
func (h *CartHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.cartService.NewSession(r.Context())
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			h.log.Warn("session limit reached")
			response.WriteError(w, http.StatusServiceUnavailable, "Too many active sessions", h.log)
			return
		}
		h.log.Error("failed to create session", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	response.WriteJSON(w, http.StatusCreated, models.SessionResponse{SessionID: id}, h.log)
}

// EndSession handles DELETE /api/session
func (h *CartHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.EndSession(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.View(r.Context(), middleware.SessionIDFromContext(r.Context()))
	h.respond(w, view, err)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode add item request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.AddItem(r.Context(), middleware.SessionIDFromContext(r.Context()), req.ProductID)
	h.respond(w, view, err)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
// The whole line is removed; removing a product that is not in the cart is not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseProductID(r)
	if !ok {
		response.WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	view, err := h.cartService.RemoveItem(r.Context(), middleware.SessionIDFromContext(r.Context()), productID)
	h.respond(w, view, err)
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	response.WriteError(w, http.StatusNotImplemented, "Checkout functionality coming soon", h.log)
}

// Browse handles GET /api/browse
func (h *CartHandler) Browse(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.Browse(r.Context(), middleware.SessionIDFromContext(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, view, h.log)
}

// SelectCategory handles PUT /api/browse/category/{category}
// Selecting the active category again clears the filter.
func (h *CartHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	view, err := h.cartService.SelectCategory(r.Context(), middleware.SessionIDFromContext(r.Context()), category)
	h.respond(w, view, err)
}

// ClearCategory handles DELETE /api/browse/category
func (h *CartHandler) ClearCategory(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.ClearCategory(r.Context(), middleware.SessionIDFromContext(r.Context()))
	h.respond(w, view, err)
}

func (h *CartHandler) respond(w http.ResponseWriter, view *models.CartView, err error) {
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, view, h.log)
}

func (h *CartHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		response.WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	case errors.Is(err, service.ErrInvalidCategory):
		response.WriteError(w, http.StatusBadRequest, "Invalid category", h.log)
	case errors.Is(err, session.ErrSessionNotFound):
		response.WriteError(w, http.StatusNotFound, "Session not found", h.log)
	default:
		h.log.Error("cart request failed", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
