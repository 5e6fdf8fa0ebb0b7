package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// catalogRepository implements CatalogRepository in memory.
type catalogRepository struct {
	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category
	logger     zerolog.Logger
}

// NewCatalogRepository creates an in-memory catalogue seeded with the given
// categories and products.
func NewCatalogRepository(categories []model.Category, products []model.Product, logger zerolog.Logger) CatalogRepository {
	r := &catalogRepository{
		products:   make([]model.Product, 0, len(products)),
		categories: make([]model.Category, 0, len(categories)),
		logger:     logger.With().Str("repository", "catalog").Logger(),
	}
	for _, p := range products {
		r.products = append(r.products, p.Clone())
	}
	r.categories = append(r.categories, categories...)
	return r
}

// ListProducts returns the products matching filter, in insertion order.
func (r *catalogRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, p.Clone())
	}

	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (r *catalogRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.productIndex(id)
	if i < 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.NotFoundf("product %s not found", id)
	}

	p := r.products[i].Clone()
	return &p, nil
}

// AddProduct stores a new product, assigning an ID when it has none.
func (r *catalogRepository) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = newID(prefixProduct)
	} else if r.productIndex(p.ID) >= 0 {
		return model.Product{}, model.Invalidf("product %s already exists", p.ID)
	}

	p = p.Clone()
	r.products = append(r.products, p)

	r.logger.Debug().Str("product_id", p.ID).Msg("product added")

	return p.Clone(), nil
}

// UpdateProduct replaces the product with the same ID.
func (r *catalogRepository) UpdateProduct(ctx context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(p.ID)
	if i < 0 {
		return model.NotFoundf("product %s not found", p.ID)
	}

	r.products[i] = p.Clone()

	r.logger.Debug().Str("product_id", p.ID).Msg("product updated")

	return nil
}

// DeleteProduct removes a product by ID.
func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(id)
	if i < 0 {
		return model.NotFoundf("product %s not found", id)
	}

	r.products = append(r.products[:i], r.products[i+1:]...)

	r.logger.Debug().Str("product_id", id).Msg("product deleted")

	return nil
}

// AdjustStock applies stock deltas per product ID, all or nothing.
func (r *catalogRepository) AdjustStock(ctx context.Context, deltas map[string]int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var missing []string
	updates := make(map[int]int, len(deltas))
	for id, delta := range deltas {
		i := r.productIndex(id)
		if i < 0 {
			missing = append(missing, id)
			continue
		}
		stock := r.products[i].Stock + delta
		if stock < 0 {
			return nil, model.Invalidf("insufficient stock for product %s: have %d, need %d", id, r.products[i].Stock, -delta)
		}
		updates[i] = stock
	}

	for i, stock := range updates {
		r.products[i].Stock = stock
	}
	slices.Sort(missing)

	r.logger.Debug().
		Int("adjusted", len(updates)).
		Int("missing", len(missing)).
		Msg("stock adjusted")

	return missing, nil
}

// ListCategories returns all categories in insertion order.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

// GetCategory retrieves a single category by its ID.
func (r *catalogRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.categoryIndex(id)
	if i < 0 {
		r.logger.Debug().Str("category_id", id).Msg("category not found")
		return nil, model.NotFoundf("category %s not found", id)
	}

	c := r.categories[i]
	return &c, nil
}

// AddCategory stores a new category, assigning an ID when it has none.
func (r *catalogRepository) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = newID(prefixCategory)
	} else if r.categoryIndex(c.ID) >= 0 {
		return model.Category{}, model.Invalidf("category %s already exists", c.ID)
	}

	r.categories = append(r.categories, c)

	r.logger.Debug().Str("category_id", c.ID).Msg("category added")

	return c, nil
}

// UpdateCategory replaces the category with the same ID.
func (r *catalogRepository) UpdateCategory(ctx context.Context, c model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.categoryIndex(c.ID)
	if i < 0 {
		return model.NotFoundf("category %s not found", c.ID)
	}

	r.categories[i] = c

	r.logger.Debug().Str("category_id", c.ID).Msg("category updated")

	return nil
}

// DeleteCategory removes a category by ID without checking references.
func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.categoryIndex(id)
	if i < 0 {
		return model.NotFoundf("category %s not found", id)
	}

	r.categories = append(r.categories[:i], r.categories[i+1:]...)

	r.logger.Debug().Str("category_id", id).Msg("category deleted")

	return nil
}

// DeleteCategoryIfUnused removes a category when no product references it
// by name.
func (r *catalogRepository) DeleteCategoryIfUnused(ctx context.Context, id string) (*model.Category, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.categoryIndex(id)
	if i < 0 {
		return nil, 0, model.NotFoundf("category %s not found", id)
	}
	c := r.categories[i]

	if count := r.countInCategory(c.Name); count > 0 {
		return &c, count, nil
	}

	r.categories = append(r.categories[:i], r.categories[i+1:]...)

	r.logger.Debug().Str("category_id", id).Msg("category deleted")

	return &c, 0, nil
}

// CountProductsInCategory counts products whose category equals name.
func (r *catalogRepository) CountProductsInCategory(ctx context.Context, name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.countInCategory(name), nil
}

func (r *catalogRepository) countInCategory(name string) int {
	count := 0
	for _, p := range r.products {
		if p.Category == name {
			count++
		}
	}
	return count
}

func (r *catalogRepository) productIndex(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *catalogRepository) categoryIndex(id string) int {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return i
		}
	}
	return -1
}
