// Package repository holds the in-memory stores behind the storefront and
// the admin back-office. Each store owns its entities exclusively and hands
// out copies; the interfaces are the seam for a persistence collaborator.
package repository

import (
	"context"

	"simusmart/internal/model"
)

// CatalogRepository defines data access for products and categories.
type CatalogRepository interface {
	// ListProducts returns the products matching filter, in insertion order.
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetProduct retrieves a single product by its ID.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// AddProduct stores a new product, assigning an ID when it has none.
	AddProduct(ctx context.Context, p model.Product) (model.Product, error)

	// UpdateProduct replaces the product with the same ID.
	UpdateProduct(ctx context.Context, p model.Product) error

	// DeleteProduct removes a product by ID.
	DeleteProduct(ctx context.Context, id string) error

	// AdjustStock applies stock deltas per product ID, all or nothing.
	// Unknown product IDs are skipped and returned.
	AdjustStock(ctx context.Context, deltas map[string]int) (missing []string, err error)

	// ListCategories returns all categories in insertion order.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// GetCategory retrieves a single category by its ID.
	GetCategory(ctx context.Context, id string) (*model.Category, error)

	// AddCategory stores a new category, assigning an ID when it has none.
	AddCategory(ctx context.Context, c model.Category) (model.Category, error)

	// UpdateCategory replaces the category with the same ID.
	UpdateCategory(ctx context.Context, c model.Category) error

	// DeleteCategory removes a category by ID without checking references.
	DeleteCategory(ctx context.Context, id string) error

	// DeleteCategoryIfUnused removes a category only when no product uses
	// its name. The lookup, count and removal happen under one lock. It
	// returns the category and the number of blocking products; the category
	// is removed only when that number is zero.
	DeleteCategoryIfUnused(ctx context.Context, id string) (*model.Category, int, error)

	// CountProductsInCategory counts products whose category equals name.
	CountProductsInCategory(ctx context.Context, name string) (int, error)
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) error
	SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error

	// MarkStockDeducted sets the one-way stock flag. It reports whether the
	// flag was already set.
	MarkStockDeducted(ctx context.Context, id string) (alreadySet bool, err error)
}

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	GetReview(ctx context.Context, id string) (*model.Review, error)
	AddReview(ctx context.Context, r model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, r model.Review) error
	SetStatus(ctx context.Context, id string, status model.ReviewStatus) error
	DeleteReview(ctx context.Context, id string) error
}

// SettingsRepository defines access to the single store settings record.
type SettingsRepository interface {
	// Get returns a deep copy of the current settings.
	Get(ctx context.Context) (model.StoreSettings, error)

	// Save atomically replaces the settings and returns what was stored.
	Save(ctx context.Context, s model.StoreSettings) (model.StoreSettings, error)

	AddSocialLink(ctx context.Context, l model.SocialLink) (model.SocialLink, error)
	UpdateSocialLink(ctx context.Context, l model.SocialLink) error
	DeleteSocialLink(ctx context.Context, id string) error

	AddQuickLink(ctx context.Context, l model.QuickLink) (model.QuickLink, error)
	UpdateQuickLink(ctx context.Context, l model.QuickLink) error
	DeleteQuickLink(ctx context.Context, id string) error

	AddPaymentMethod(ctx context.Context, m model.PaymentMethod) (model.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, m model.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id string) error
}

// SessionRepository holds the identity state of the single client session.
type SessionRepository interface {
	Snapshot(ctx context.Context) model.Session
	SetUser(ctx context.Context, u *model.User)
	// PatchUser merges patch into the current user and reports whether a
	// user was present.
	PatchUser(ctx context.Context, patch model.UserPatch) (*model.User, bool)
	SetAdmin(ctx context.Context, on bool)
	SetLastPath(ctx context.Context, path string)
}

// CartRepository holds the shopping cart.
type CartRepository interface {
	Items(ctx context.Context) []model.CartItem
	Add(ctx context.Context, productID string, quantity int) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context)
	// Count returns the total quantity across all items.
	Count(ctx context.Context) int
}
