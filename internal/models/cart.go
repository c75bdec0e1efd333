package models

// CartItem is a product line in a shopping cart
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// AddItemRequest represents an incoming add-to-cart request
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// CartView is the rendered state of one session's cart and category filter
type CartView struct {
	SessionID  string     `json:"sessionId"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice string     `json:"totalPrice"`
	Category   string     `json:"category,omitempty"`
}

// SessionResponse is returned when a new shopping session starts
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}
