package service

import (
	"context"
	"fmt"
	"strings"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// DefaultCategoryImage is used for new categories saved without an image.
const DefaultCategoryImage = "https://picsum.photos/seed/newcat/400/400"

// catalogService implements CatalogService.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	filter.Query = strings.TrimSpace(filter.Query)

	products, err := s.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("query", filter.Query).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Str("query", filter.Query).
		Str("category", filter.Category).
		Int("count", len(products)).
		Msg("listed products")

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.NotFoundf("product ID is empty")
	}
	return s.catalogRepo.GetProduct(ctx, id)
}

func (s *catalogService) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	p = normalizeProduct(p)
	if err := validateProduct(p); err != nil {
		s.logger.Warn().Err(err).Str("name", p.Name).Msg("invalid product")
		return model.Product{}, err
	}
	s.checkCategory(ctx, p)

	added, err := s.catalogRepo.AddProduct(ctx, p)
	if err != nil {
		return model.Product{}, err
	}

	s.logger.Info().Str("product_id", added.ID).Str("name", added.Name).Msg("product created")

	return added, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, p model.Product) error {
	p = normalizeProduct(p)
	if p.ID == "" {
		return model.Invalidf("product ID is required")
	}
	if err := validateProduct(p); err != nil {
		s.logger.Warn().Err(err).Str("product_id", p.ID).Msg("invalid product")
		return err
	}
	s.checkCategory(ctx, p)

	return s.catalogRepo.UpdateProduct(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return s.catalogRepo.GetCategory(ctx, id)
}

func (s *catalogService) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return model.Category{}, model.Invalidf("category name is required")
	}
	if strings.TrimSpace(c.ImageURL) == "" {
		c.ImageURL = DefaultCategoryImage
	}

	added, err := s.catalogRepo.AddCategory(ctx, c)
	if err != nil {
		return model.Category{}, err
	}

	s.logger.Info().Str("category_id", added.ID).Str("name", added.Name).Msg("category created")

	return added, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, c model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return model.Invalidf("category ID is required")
	}
	if c.Name == "" {
		return model.Invalidf("category name is required")
	}

	current, err := s.catalogRepo.GetCategory(ctx, c.ID)
	if err != nil {
		return err
	}
	if current.Name != c.Name {
		// Products keep the old name; renaming does not cascade.
		s.logger.Warn().
			Str("category_id", c.ID).
			Str("from", current.Name).
			Str("to", c.Name).
			Msg("category renamed")
	}

	return s.catalogRepo.UpdateCategory(ctx, c)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	c, count, err := s.catalogRepo.DeleteCategoryIfUnused(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Warn().
			Str("category_id", id).
			Str("category", c.Name).
			Int("blocking_count", count).
			Msg("category delete blocked")
		return &model.CategoryInUseError{CategoryName: c.Name, BlockingCount: count}
	}

	s.logger.Info().Str("category_id", id).Str("name", c.Name).Msg("category deleted")

	return nil
}

// checkCategory logs products whose category matches no category name.
func (s *catalogService) checkCategory(ctx context.Context, p model.Product) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return
	}
	for _, c := range categories {
		if c.Name == p.Category {
			return
		}
	}
	s.logger.Warn().
		Str("product_id", p.ID).
		Str("category", p.Category).
		Msg("product category does not match any category")
}

func normalizeProduct(p model.Product) model.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	return p
}

func validateProduct(p model.Product) error {
	switch {
	case p.Name == "":
		return model.Invalidf("product name is required")
	case p.Price < 0:
		return model.Invalidf("product price must not be negative")
	case p.Stock < 0:
		return model.Invalidf("product stock must not be negative")
	case p.Category == "":
		return model.Invalidf("product category is required")
	}
	return nil
}
