// Package service holds the business rules over the in-memory stores:
// input validation, the category delete guard, stock deduction and the
// session rules of the storefront and the admin back-office.
package service

import (
	"context"

	"simusmart/internal/model"
)

// CatalogService defines operations for products and categories.
type CatalogService interface {
	// ListProducts returns the products matching filter.
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// AddProduct validates and stores a new product.
	AddProduct(ctx context.Context, p model.Product) (model.Product, error)

	// UpdateProduct validates and replaces an existing product.
	UpdateProduct(ctx context.Context, p model.Product) error

	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	AddCategory(ctx context.Context, c model.Category) (model.Category, error)
	UpdateCategory(ctx context.Context, c model.Category) error

	// DeleteCategory removes a category unless products still use its name,
	// in which case it returns a *model.CategoryInUseError.
	DeleteCategory(ctx context.Context, id string) error
}

// OrderService defines operations for order management.
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)

	// GetOrderDetails retrieves an order with its items resolved against
	// the catalogue. Products that no longer exist resolve to nil.
	GetOrderDetails(ctx context.Context, id string) (*model.OrderDetails, error)

	SetStatus(ctx context.Context, id string, status model.OrderStatus) error
	SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error

	// DeductStock decrements product stock for the order's items once.
	DeductStock(ctx context.Context, id string) (*model.StockDeduction, error)
}

// ReviewService defines operations for product reviews.
type ReviewService interface {
	ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	GetReview(ctx context.Context, id string) (*model.Review, error)

	// SubmitReview stores a shopper review awaiting moderation.
	SubmitReview(ctx context.Context, r model.Review) (model.Review, error)

	UpdateReview(ctx context.Context, r model.Review) error

	// Moderate approves or rejects a review.
	Moderate(ctx context.Context, id string, status model.ReviewStatus) error

	DeleteReview(ctx context.Context, id string) error

	// ProductRating summarises the approved reviews of a product.
	ProductRating(ctx context.Context, productID string) (model.RatingSummary, error)
}

// SettingsService defines operations on the store settings.
type SettingsService interface {
	Get(ctx context.Context) (model.StoreSettings, error)
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

// SessionService defines the shopper and admin session operations.
type SessionService interface {
	Snapshot(ctx context.Context) model.Session

	// Login signs a shopper in through the Authenticator.
	Login(ctx context.Context, creds model.Credentials) (*model.User, error)
	Logout(ctx context.Context)

	// AdminLogin switches admin mode on for an admin email.
	AdminLogin(ctx context.Context, creds model.Credentials) error
	AdminLogout(ctx context.Context)

	// UpdateUser merges patch into the signed-in user. It returns nil when
	// nobody is signed in.
	UpdateUser(ctx context.Context, patch model.UserPatch) (*model.User, error)

	// RecordPath remembers the last shopper path, ignoring admin and login
	// routes. It reports whether the path was recorded.
	RecordPath(ctx context.Context, path string) bool
}

// CartService defines shopping cart operations.
type CartService interface {
	// View resolves the cart against the catalogue.
	View(ctx context.Context) (*model.CartView, error)

	Add(ctx context.Context, productID string, quantity int) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context)
	Count(ctx context.Context) int
}

// Authenticator resolves login credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, creds model.Credentials) (*model.User, error)
}
