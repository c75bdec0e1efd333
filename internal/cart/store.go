package cart

import "github.com/Lixing-Zhang/fashion-store/internal/models"

// Snapshot is the rendered state of a cart after an action
type Snapshot struct {
	Items      []models.CartItem
	TotalItems int
	TotalPrice string
}

// Store owns the cart of one session. All changes go through Dispatch.
// A Store is not safe for concurrent use; callers serialise access.
type Store struct {
	cart      Cart
	listeners []func(Snapshot)
}

// NewStore creates a store holding an empty cart
func NewStore() *Store {
	return &Store{cart: Cart{}}
}

// Dispatch applies a to the cart and reports whether the cart changed.
// Subscribers are notified only on change.
func (s *Store) Dispatch(a Action) bool {
	next, changed := a.apply(s.cart)
	if !changed {
		return false
	}
	s.cart = next

	if len(s.listeners) > 0 {
		snap := s.Snapshot()
		for _, fn := range s.listeners {
			fn(snap)
		}
	}
	return true
}

// Add puts one unit of p into the cart
func (s *Store) Add(p models.Product) {
	s.Dispatch(Add{Product: p})
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (s *Store) Remove(productID int64) bool {
	return s.Dispatch(Remove{ProductID: productID})
}

// Subscribe registers fn to receive the snapshot after every change
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.listeners = append(s.listeners, fn)
}

// Items returns a copy of the cart lines in insertion order
func (s *Store) Items() []models.CartItem {
	return s.cart.clone()
}

func (s *Store) TotalItems() int {
	return TotalItems(s.cart)
}

func (s *Store) TotalPrice() string {
	return TotalPrice(s.cart)
}

// Snapshot captures the current cart for rendering
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:      s.Items(),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}
