package repository

import (
	"context"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository in memory. Items keep the order
// in which products were first added.
type cartRepository struct {
	mu     sync.RWMutex
	items  []model.CartItem
	logger zerolog.Logger
}

// NewCartRepository creates an empty cart.
func NewCartRepository(logger zerolog.Logger) CartRepository {
	return &cartRepository{
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) Items(ctx context.Context) []model.CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.CartItem, len(r.items))
	copy(items, r.items)
	return items
}

// Add adds quantity of a product, accumulating onto an existing line.
func (r *cartRepository) Add(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return model.Invalidf("product ID is required")
	}
	if quantity <= 0 {
		return model.Invalidf("quantity must be greater than zero")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.index(productID); i >= 0 {
		r.items[i].Quantity += quantity
	} else {
		r.items = append(r.items, model.CartItem{ProductID: productID, Quantity: quantity})
	}

	r.logger.Debug().Str("product_id", productID).Int("quantity", quantity).Msg("added to cart")

	return nil
}

// SetQuantity sets the quantity of a product already in the cart. Zero
// removes the line.
func (r *cartRepository) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 0 {
		return model.Invalidf("quantity must not be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(productID)
	if i < 0 {
		return model.NotFoundf("product %s is not in the cart", productID)
	}

	if quantity == 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
		return nil
	}
	r.items[i].Quantity = quantity
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(productID)
	if i < 0 {
		return model.NotFoundf("product %s is not in the cart", productID)
	}

	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *cartRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
}

// Count returns the total quantity across all items.
func (r *cartRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		count += item.Quantity
	}
	return count
}

func (r *cartRepository) index(productID string) int {
	for i := range r.items {
		if r.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
