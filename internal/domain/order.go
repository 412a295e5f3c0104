package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// ORDER STATUS MACHINE
// =============================================================================

// OrderStatus is a state of the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the forward moves a shop owner may make.
// Completed and cancelled have no way out.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusCompleted},
}

// ParseOrderStatus returns ErrInvalidStatus for anything outside the lifecycle.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Valid reports whether s is a lifecycle state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the table allows s → next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod is how the buyer pays.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodOnline
}

// PaymentStatus tracks settlement. Refunded is a flag only.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// InitialPaymentStatus is paid for online orders, which settle before checkout,
// and pending for cash.
func InitialPaymentStatus(m PaymentMethod) PaymentStatus {
	if m == PaymentMethodOnline {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

// PaymentStatusAfterCancel flips paid to refunded and keeps anything else.
func PaymentStatusAfterCancel(p PaymentStatus) PaymentStatus {
	if p == PaymentStatusPaid {
		return PaymentStatusRefunded
	}
	return p
}

// =============================================================================
// ORDER DOMAIN TYPES
// =============================================================================

// OrderItem is a line copied from the submitted items when the order was
// placed. ProductID is nil for lines submitted without a product reference.
type OrderItem struct {
	ID        uuid.UUID
	ProductID *uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// OrderShop summarises the seller for display.
type OrderShop struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Phone   string
	Address string
}

// OrderBuyer summarises the purchaser for display.
type OrderBuyer struct {
	ID     uuid.UUID
	Name   string
	Mobile string
}

// Order is an immutable priced snapshot moving through the status lifecycle.
type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	DeliveryAddress string
	Notes           string
	Items           []OrderItem
	Shop            OrderShop
	Buyer           OrderBuyer
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VisibleTo reports whether userID bought the order or owns its shop.
func (o *Order) VisibleTo(userID uuid.UUID) bool {
	return o.Buyer.ID == userID || o.Shop.OwnerID == userID
}

// OrderItemInput is one submitted line.
type OrderItemInput struct {
	ProductID *uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Valid reports whether the line can be stored exactly as submitted: a name,
// a price in whole paise and a quantity the INTEGER column holds. Subtotals
// of valid lines are exact.
func (i OrderItemInput) Valid() bool {
	return strings.TrimSpace(i.Name) != "" && ValidAmount(i.Price) && i.Quantity > 0 && ValidQuantity(i.Quantity)
}

// Subtotal is price × quantity rounded to paise.
func (i OrderItemInput) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// CreateOrderParams is a checkout request. TotalAmount must equal the sum of
// the item subtotals.
type CreateOrderParams struct {
	ShopID          uuid.UUID
	Items           []OrderItemInput
	TotalAmount     decimal.Decimal
	PaymentMethod   PaymentMethod
	DeliveryAddress string
	Notes           string
}

// OrderItemsTotal sums the rounded subtotals of items.
func OrderItemsTotal(items []OrderItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// =============================================================================
// ORDER DOMAIN ERRORS
// =============================================================================

var (
	ErrOrderNotFound       = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyOrder          = &Error{Code: EINVALID, Message: "Order must have at least one item"}
	ErrInvalidOrderItem    = &Error{Code: EINVALID, Message: "Order items need a name, a price in whole paise and a positive quantity"}
	ErrOrderTotalTooLarge  = &Error{Code: EINVALID, Message: "Order total cannot exceed 99999999.99"}
	ErrInvalidPayment      = &Error{Code: EINVALID, Message: "Payment method must be cash or online"}
	ErrInvalidStatus       = &Error{Code: EINVALID, Message: "Invalid status"}
	ErrIllegalTransition   = &Error{Code: EINVALID, Message: "Illegal order status transition"}
	ErrOrderTotalMismatch  = &Error{Code: EINVALID, Message: "Order total does not match the items"}
	ErrNotOrderOwner       = &Error{Code: EFORBIDDEN, Message: "You do not have permission to cancel this order"}
	ErrNotOrderViewer      = &Error{Code: EFORBIDDEN, Message: "You do not have permission to view this order"}
	ErrNotOrderShopOwner   = &Error{Code: EFORBIDDEN, Message: "You do not have permission to update this order"}
	ErrNotShopOrdersViewer = &Error{Code: EFORBIDDEN, Message: "You do not have permission to view orders of this shop"}
	ErrAlreadyTerminal     = &Error{Code: EINVALID, Message: "Order is already completed or cancelled"}
	ErrOrderStatusChanged  = &Error{Code: ECONFLICT, Message: "Order status changed, please reload and try again"}
)

// =============================================================================
// ORDER SERVICE INTERFACES
// =============================================================================

// OrderService creates orders and drives their status lifecycle.
type OrderService interface {
	// CreateOrder writes the order and its item snapshot atomically.
	CreateOrder(ctx context.Context, buyerID uuid.UUID, params CreateOrderParams) (*Order, error)

	// GetOrder returns an order to its buyer or to the owner of its shop.
	GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*Order, error)

	ListMyOrders(ctx context.Context, buyerID uuid.UUID) ([]Order, error)

	// ListShopOrders lists a shop's orders, optionally with one status.
	ListShopOrders(ctx context.Context, requesterID, shopID uuid.UUID, status *OrderStatus) ([]Order, error)

	// ListVisibleOrders lists orders the requester bought or sold.
	ListVisibleOrders(ctx context.Context, requesterID uuid.UUID) ([]Order, error)

	// UpdateStatus applies a transition allowed by the status table.
	// Only the shop owner may call it.
	UpdateStatus(ctx context.Context, requesterID, orderID uuid.UUID, status OrderStatus) (*Order, error)

	// CancelOrder cancels a non-terminal order on behalf of its buyer.
	CancelOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*Order, error)
}
