package models

// Product represents a clothing item in the store catalog
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Category    string  `json:"category"`
}

// Category describes one browsable group of the catalog
type Category struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// BrowseView is the product grid for a session's current category filter
type BrowseView struct {
	Category string    `json:"category,omitempty"`
	Products []Product `json:"products"`
}
