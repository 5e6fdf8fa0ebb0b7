package model

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusActive    OrderStatus = "Active"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus records whether an order has been paid.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

// Order represents a customer order.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	Date            string        `json:"date"`
	Status          OrderStatus   `json:"status"`
	Total           int64         `json:"total"`
	ItemCount       int           `json:"itemCount"`
	Items           []OrderItem   `json:"items"`
	CustomerAddress string        `json:"customerAddress"`
	CustomerPhone   string        `json:"customerPhone"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`

	// PaymentDetails is the confirmation message from the payment provider,
	// stored verbatim.
	PaymentDetails *string `json:"paymentDetails,omitempty"`
	StockDeducted  bool    `json:"stockDeducted"`
}

// OrderItem is a line item. ProductID is a weak reference into the catalogue.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// QuantityTotal returns the sum of item quantities.
func (o Order) QuantityTotal() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// Clone returns a copy that shares no slices or pointers with o.
func (o Order) Clone() Order {
	if o.Items != nil {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	if o.PaymentDetails != nil {
		details := *o.PaymentDetails
		o.PaymentDetails = &details
	}
	return o
}

// OrderLine pairs an order item with the product it references. Product is
// nil when the referenced product no longer exists.
type OrderLine struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}

// OrderDetails is an order with its line items resolved against the catalogue.
type OrderDetails struct {
	Order
	Lines []OrderLine `json:"lines"`
}

// StockDeduction reports the outcome of deducting stock for an order.
type StockDeduction struct {
	OrderID         string   `json:"orderId"`
	AlreadyDeducted bool     `json:"alreadyDeducted"`
	MissingProducts []string `json:"missingProducts,omitempty"`
}
