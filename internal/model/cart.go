package model

// CartItem is a product and quantity in the shopping cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a cart item resolved against the catalogue.
type CartLine struct {
	CartItem
	Product  Product `json:"product"`
	Subtotal int64   `json:"subtotal"`
}

// CartView is the cart as shown to the shopper.
type CartView struct {
	Lines []CartLine `json:"lines"`
	Count int        `json:"count"`
	Total int64      `json:"total"`
}
