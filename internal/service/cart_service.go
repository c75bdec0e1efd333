package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/fashion-store/internal/cart"
	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/models"
	"github.com/Lixing-Zhang/fashion-store/internal/repository"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")
)

// SessionStore is the session lookup the cart service depends on
type SessionStore interface {
	Create() (*session.Session, error)
	Get(id string) (*session.Session, error)
	Delete(id string) error
}

// CartService turns shopper requests into cart and category actions on a session
type CartService struct {
	products repository.ProductRepository
	sessions SessionStore
	logger   *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(products repository.ProductRepository, sessions SessionStore, logger *slog.Logger) *CartService {
	return &CartService{
		products: products,
		sessions: sessions,
		logger:   logger,
	}
}

// NewSession starts a shopping session and returns its id
func (s *CartService) NewSession(ctx context.Context) (string, error) {
	sess, err := s.sessions.Create()
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	sessionID := sess.ID
	sess.Do(func(c *cart.Store, _ *catalog.Selector) {
		c.Subscribe(func(snap cart.Snapshot) {
			s.logger.Debug("cart updated",
				"session_id", sessionID,
				"lines", len(snap.Items),
				"total_items", snap.TotalItems,
				"total_price", snap.TotalPrice,
			)
		})
	})

	return sessionID, nil
}

// EndSession discards the session and its cart
func (s *CartService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// View returns the session's cart without changing it
func (s *CartService) View(ctx context.Context, sessionID string) (*models.CartView, error) {
	return s.apply(sessionID, nil)
}

// AddItem adds one unit of the product to the session's cart
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int64) (*models.CartView, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidProduct, productID)
		}
		return nil, err
	}

	return s.apply(sessionID, func(c *cart.Store, _ *catalog.Selector) {
		c.Add(*product)
	})
}

// RemoveItem deletes the product's line from the cart. Unknown ids leave the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*models.CartView, error) {
	return s.apply(sessionID, func(c *cart.Store, _ *catalog.Selector) {
		if !c.Remove(productID) {
			s.logger.Debug("remove of product not in cart", "session_id", sessionID, "product_id", productID)
		}
	})
}

// SelectCategory toggles the session's category filter
func (s *CartService) SelectCategory(ctx context.Context, sessionID, category string) (*models.CartView, error) {
	if !s.products.HasCategory(ctx, category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	return s.apply(sessionID, func(_ *cart.Store, sel *catalog.Selector) {
		sel.Toggle(category)
	})
}

// ClearCategory removes the session's category filter
func (s *CartService) ClearCategory(ctx context.Context, sessionID string) (*models.CartView, error) {
	return s.apply(sessionID, func(_ *cart.Store, sel *catalog.Selector) {
		sel.Clear()
	})
}

// Browse returns the products visible under the session's category filter
func (s *CartService) Browse(ctx context.Context, sessionID string) (*models.BrowseView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var category string
	sess.Do(func(_ *cart.Store, sel *catalog.Selector) {
		category = sel.Current()
	})

	var products []models.Product
	if category == catalog.NoCategory {
		products, err = s.products.GetAll(ctx)
	} else {
		products, err = s.products.GetByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	return &models.BrowseView{Category: category, Products: products}, nil
}

// apply runs fn on the session, if non-nil, and renders the resulting state
// under the same lock so the view matches the action's outcome.
func (s *CartService) apply(sessionID string, fn func(*cart.Store, *catalog.Selector)) (*models.CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var view models.CartView
	sess.Do(func(c *cart.Store, sel *catalog.Selector) {
		if fn != nil {
			fn(c, sel)
		}
		view = models.CartView{
			SessionID:  sess.ID,
			Items:      c.Items(),
			TotalItems: c.TotalItems(),
			TotalPrice: c.TotalPrice(),
			Category:   sel.Current(),
		}
	})
	return &view, nil
}
