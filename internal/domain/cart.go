package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================

// CartItem is a cart line joined with the product's current name, price,
// image and unit. Prices are read live, unlike order snapshots.
type CartItem struct {
	ProductID   uuid.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	ShopID      uuid.UUID
	ShopName    string
	Image       string
	Unit        string
}

// Subtotal is price × quantity at read time.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the line subtotals. Totals are never stored.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddCartItemParams adds quantity of a product to the user's cart for its shop.
// A zero Quantity adds one.
type AddCartItemParams struct {
	ProductID uuid.UUID
	ShopID    uuid.UUID
	Quantity  int
}

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound        = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrCartItemNotFound    = &Error{Code: ENOTFOUND, Message: "Item not found in cart"}
	ErrInvalidQuantity     = &Error{Code: EINVALID, Message: "Quantity cannot be negative"}
	ErrQuantityTooLarge    = &Error{Code: EINVALID, Message: "Quantity cannot exceed 2147483647"}
	ErrProductShopMismatch = &Error{Code: EINVALID, Message: "Product does not belong to this shop"}
)

// =============================================================================
// CART SERVICE INTERFACES
// =============================================================================

// CartService keeps one line per (cart, product) in each per-shop cart.
type CartService interface {
	// GetCart returns the lines of every cart the user holds.
	GetCart(ctx context.Context, userID uuid.UUID) ([]CartItem, error)

	// AddItem increments the line for the product, creating the cart and the
	// line as needed, and returns the lines of that shop's cart.
	AddItem(ctx context.Context, userID uuid.UUID, params AddCartItemParams) ([]CartItem, error)

	// UpdateQuantity sets a line's quantity exactly. Zero removes the line.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) ([]CartItem, error)

	// RemoveItem deletes the product's line if present.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) ([]CartItem, error)

	// ClearCart deletes every line the user holds.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
