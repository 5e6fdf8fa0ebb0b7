package router

import (
	"context"
	"net/http"

	"simusmart/internal/handler"
	"simusmart/internal/middleware"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Orders   *handler.OrderHandler
	Reviews  *handler.ReviewHandler
	Settings *handler.SettingsHandler
	Session  *handler.SessionHandler
	Cart     *handler.CartHandler
	Forms    *handler.FormHandler
}

// Options configures the cross-cutting behaviour of the router.
type Options struct {
	// IsAdmin reports whether the admin area is unlocked.
	IsAdmin        func(ctx context.Context) bool
	TracerProvider trace.TracerProvider
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront
	mux.HandleFunc("GET /api/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.Catalog.GetProduct)
	mux.HandleFunc("GET /api/products/{id}/reviews", h.Reviews.ListForProduct)
	mux.HandleFunc("GET /api/categories", h.Catalog.ListCategories)
	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("POST /api/reviews", h.Reviews.Submit)

	mux.HandleFunc("GET /api/session", h.Session.Get)
	mux.HandleFunc("POST /api/session/login", h.Session.Login)
	mux.HandleFunc("POST /api/session/logout", h.Session.Logout)
	mux.HandleFunc("PATCH /api/session/user", h.Session.UpdateUser)
	mux.HandleFunc("PUT /api/session/last-path", h.Session.RecordPath)

	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{productId}", h.Cart.SetItem)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", h.Cart.RemoveItem)

	// Admin login and logout stay reachable without an admin session
	mux.HandleFunc("POST /api/admin/login", h.Session.AdminLogin)
	mux.HandleFunc("POST /api/admin/logout", h.Session.AdminLogout)

	admin := http.NewServeMux()

	admin.HandleFunc("POST /api/admin/products", h.Catalog.CreateProduct)
	admin.HandleFunc("PUT /api/admin/products/{id}", h.Catalog.UpdateProduct)
	admin.HandleFunc("DELETE /api/admin/products/{id}", h.Catalog.DeleteProduct)
	admin.HandleFunc("POST /api/admin/categories", h.Catalog.CreateCategory)
	admin.HandleFunc("PUT /api/admin/categories/{id}", h.Catalog.UpdateCategory)
	admin.HandleFunc("DELETE /api/admin/categories/{id}", h.Catalog.DeleteCategory)

	admin.HandleFunc("GET /api/admin/orders", h.Orders.List)
	admin.HandleFunc("GET /api/admin/orders/{id}", h.Orders.Get)
	admin.HandleFunc("PUT /api/admin/orders/{id}/status", h.Orders.SetStatus)
	admin.HandleFunc("PUT /api/admin/orders/{id}/payment-status", h.Orders.SetPaymentStatus)
	admin.HandleFunc("POST /api/admin/orders/{id}/deduct-stock", h.Orders.DeductStock)

	admin.HandleFunc("GET /api/admin/reviews", h.Reviews.List)
	admin.HandleFunc("PUT /api/admin/reviews/{id}", h.Reviews.Update)
	admin.HandleFunc("PUT /api/admin/reviews/{id}/status", h.Reviews.Moderate)
	admin.HandleFunc("DELETE /api/admin/reviews/{id}", h.Reviews.Delete)

	admin.HandleFunc("PUT /api/admin/settings", h.Settings.Save)
	admin.HandleFunc("POST /api/admin/settings/socials", h.Settings.AddSocialLink)
	admin.HandleFunc("PUT /api/admin/settings/socials/{id}", h.Settings.UpdateSocialLink)
	admin.HandleFunc("DELETE /api/admin/settings/socials/{id}", h.Settings.DeleteSocialLink)
	admin.HandleFunc("POST /api/admin/settings/quick-links", h.Settings.AddQuickLink)
	admin.HandleFunc("PUT /api/admin/settings/quick-links/{id}", h.Settings.UpdateQuickLink)
	admin.HandleFunc("DELETE /api/admin/settings/quick-links/{id}", h.Settings.DeleteQuickLink)
	admin.HandleFunc("POST /api/admin/settings/payment-methods", h.Settings.AddPaymentMethod)
	admin.HandleFunc("PUT /api/admin/settings/payment-methods/{id}", h.Settings.UpdatePaymentMethod)
	admin.HandleFunc("DELETE /api/admin/settings/payment-methods/{id}", h.Settings.DeletePaymentMethod)

	admin.HandleFunc("POST /api/admin/forms/{kind}", h.Forms.Submit)

	mux.Handle("/api/admin/", middleware.RequireAdmin(opts.IsAdmin, logger)(admin))

	// Apply middleware in order: Recovery -> Logging -> ServerTiming -> Tracing -> CORS.
	// ServerTiming swaps the request, so Tracing sits inside it to see the routed pattern.
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Tracing(opts.TracerProvider)(handler)
	handler = middleware.ServerTiming(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
