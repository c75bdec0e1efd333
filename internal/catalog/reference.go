package catalog

import "github.com/Lixing-Zhang/fashion-store/internal/models"

var referenceProducts = []models.Product{
	{ID: 1, Name: "Classic Cotton T-Shirt", Price: 29.99, Description: "Comfortable everyday wear", Icon: "👕", Category: "Tops"},
	{ID: 2, Name: "Slim Fit Jeans", Price: 79.99, Description: "Premium denim", Icon: "👖", Category: "Bottoms"},
	{ID: 3, Name: "Leather Jacket", Price: 199.99, Description: "Genuine leather", Icon: "🧥", Category: "Outerwear"},
	{ID: 4, Name: "Summer Dress", Price: 89.99, Description: "Light and breezy", Icon: "👗", Category: "Dresses"},
	{ID: 5, Name: "Casual Sneakers", Price: 69.99, Description: "All-day comfort", Icon: "👟", Category: "Footwear"},
	{ID: 6, Name: "Wool Sweater", Price: 59.99, Description: "Warm and cozy", Icon: "🧶", Category: "Tops"},
	{ID: 7, Name: "Formal Blazer", Price: 149.99, Description: "Professional style", Icon: "🎩", Category: "Outerwear"},
	{ID: 8, Name: "Yoga Pants", Price: 49.99, Description: "Flexible and comfortable", Icon: "🩱", Category: "Activewear"},
	{ID: 9, Name: "Denim Jacket", Price: 89.99, Description: "Timeless classic", Icon: "🧥", Category: "Outerwear"},
	{ID: 10, Name: "Cotton Shorts", Price: 34.99, Description: "Perfect for summer", Icon: "🩳", Category: "Bottoms"},
	{ID: 11, Name: "Hoodie", Price: 54.99, Description: "Casual comfort", Icon: "🧥", Category: "Tops"},
	{ID: 12, Name: "Maxi Skirt", Price: 64.99, Description: "Elegant and flowing", Icon: "👗", Category: "Bottoms"},
}

var referenceCategories = []models.Category{
	{Name: "Tops", Icon: "👕", Description: "T-shirts, Shirts & More"},
	{Name: "Bottoms", Icon: "👖", Description: "Jeans, Pants & Shorts"},
	{Name: "Dresses", Icon: "👗", Description: "Casual & Formal Dresses"},
	{Name: "Outerwear", Icon: "🧥", Description: "Jackets & Coats"},
	{Name: "Footwear", Icon: "👟", Description: "Shoes & Sneakers"},
	{Name: "Activewear", Icon: "🩱", Description: "Sports & Fitness"},
}

// Reference returns the store's built-in 12 product catalog
func Reference() *Catalog {
	return MustNew(referenceProducts, referenceCategories)
}
