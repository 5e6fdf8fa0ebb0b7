package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger

	// deductMu serialises stock deduction so an order is never deducted twice.
	deductMu sync.Mutex
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.orderRepo.GetOrder(ctx, id)
}

// GetOrderDetails retrieves an order with its items resolved against the
// catalogue.
func (s *orderService) GetOrderDetails(ctx context.Context, id string) (*model.OrderDetails, error) {
	order, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		line := model.OrderLine{OrderItem: item}

		product, err := s.catalogRepo.GetProduct(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Product = product
		case errors.Is(err, model.ErrNotFound):
			s.logger.Debug().
				Str("order_id", id).
				Str("product_id", item.ProductID).
				Msg("order references a missing product")
		default:
			return nil, fmt.Errorf("failed to resolve product %s: %w", item.ProductID, err)
		}

		lines = append(lines, line)
	}

	return &model.OrderDetails{Order: *order, Lines: lines}, nil
}

func (s *orderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if err := s.orderRepo.SetStatus(ctx, id, status); err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Str("status", string(status)).Msg("failed to set order status")
		return err
	}
	return nil
}

func (s *orderService) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	if err := s.orderRepo.SetPaymentStatus(ctx, id, status); err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Str("payment_status", string(status)).Msg("failed to set payment status")
		return err
	}

	s.logger.Info().Str("order_id", id).Str("payment_status", string(status)).Msg("payment status updated")

	return nil
}

// DeductStock decrements product stock by the order's item quantities and
// sets the order's stock flag. An order already deducted is left alone.
func (s *orderService) DeductStock(ctx context.Context, id string) (*model.StockDeduction, error) {
	s.deductMu.Lock()
	defer s.deductMu.Unlock()

	order, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.StockDeduction{OrderID: id}
	if order.StockDeducted {
		s.logger.Debug().Str("order_id", id).Msg("stock already deducted")
		result.AlreadyDeducted = true
		return result, nil
	}

	deltas := make(map[string]int, len(order.Items))
	for _, item := range order.Items {
		deltas[item.ProductID] -= item.Quantity
	}

	missing, err := s.catalogRepo.AdjustStock(ctx, deltas)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Msg("stock deduction refused")
		return nil, err
	}
	if len(missing) > 0 {
		s.logger.Warn().
			Str("order_id", id).
			Strs("missing_products", missing).
			Msg("skipped missing products during stock deduction")
	}
	result.MissingProducts = missing

	if _, err := s.orderRepo.MarkStockDeducted(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to mark stock deducted")
		return nil, fmt.Errorf("failed to mark stock deducted: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Int("item_count", order.QuantityTotal()).
		Msg("stock deducted")

	return result, nil
}
