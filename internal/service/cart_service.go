package service

import (
	"context"
	"errors"
	"fmt"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// View resolves cart items against the catalogue. Items whose product no
// longer exists are left out of the view.
func (s *cartService) View(ctx context.Context) (*model.CartView, error) {
	items := s.cartRepo.Items(ctx)

	view := &model.CartView{Lines: make([]model.CartLine, 0, len(items))}
	for _, item := range items {
		product, err := s.catalogRepo.GetProduct(ctx, item.ProductID)
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debug().Str("product_id", item.ProductID).Msg("cart references a missing product")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", item.ProductID, err)
		}

		subtotal := product.Price * int64(item.Quantity)
		view.Lines = append(view.Lines, model.CartLine{
			CartItem: item,
			Product:  *product,
			Subtotal: subtotal,
		})
		view.Count += item.Quantity
		view.Total += subtotal
	}

	return view, nil
}

// Add puts a catalogue product into the cart.
func (s *cartService) Add(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return model.Invalidf("product ID is required")
	}
	if _, err := s.catalogRepo.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.cartRepo.Add(ctx, productID, quantity)
}

func (s *cartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	return s.cartRepo.SetQuantity(ctx, productID, quantity)
}

func (s *cartService) Remove(ctx context.Context, productID string) error {
	return s.cartRepo.Remove(ctx, productID)
}

func (s *cartService) Clear(ctx context.Context) {
	s.cartRepo.Clear(ctx)
	s.logger.Debug().Msg("cart cleared")
}

func (s *cartService) Count(ctx context.Context) int {
	return s.cartRepo.Count(ctx)
}
