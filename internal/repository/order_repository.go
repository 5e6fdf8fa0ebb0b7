package repository

import (
	"context"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository in memory.
type orderRepository struct {
	mu     sync.RWMutex
	orders []model.Order
	logger zerolog.Logger
}

// NewOrderRepository creates an in-memory order store seeded with orders.
func NewOrderRepository(orders []model.Order, logger zerolog.Logger) OrderRepository {
	r := &orderRepository{
		orders: make([]model.Order, 0, len(orders)),
		logger: logger.With().Str("repository", "order").Logger(),
	}
	for _, o := range orders {
		r.orders = append(r.orders, o.Clone())
	}
	return r
}

// ListOrders returns all orders in insertion order.
func (r *orderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o.Clone())
	}
	return orders, nil
}

// GetOrder retrieves an order by its ID.
func (r *orderRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		r.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.NotFoundf("order %s not found", id)
	}

	o := r.orders[i].Clone()
	return &o, nil
}

// SetStatus sets the fulfilment status. Any status may follow any other.
func (r *orderRepository) SetStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if !status.Valid() {
		return model.Invalidf("unknown order status %q", status)
	}

	return r.update(id, func(o *model.Order) {
		if o.Status != status {
			r.logger.Debug().
				Str("order_id", id).
				Str("from", string(o.Status)).
				Str("to", string(status)).
				Msg("order status changed")
		}
		o.Status = status
	})
}

// SetPaymentStatus sets the payment status.
func (r *orderRepository) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	if !status.Valid() {
		return model.Invalidf("unknown payment status %q", status)
	}

	return r.update(id, func(o *model.Order) {
		o.PaymentStatus = status
	})
}

// MarkStockDeducted sets the one-way stock flag.
func (r *orderRepository) MarkStockDeducted(ctx context.Context, id string) (bool, error) {
	var alreadySet bool
	err := r.update(id, func(o *model.Order) {
		alreadySet = o.StockDeducted
		o.StockDeducted = true
	})
	return alreadySet, err
}

func (r *orderRepository) update(id string, fn func(o *model.Order)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.NotFoundf("order %s not found", id)
	}

	fn(&r.orders[i])
	return nil
}

func (r *orderRepository) index(id string) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}
