package domain

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// Product is an item offered by a shop. Price changes never affect orders
// already placed.
type Product struct {
	ID            uuid.UUID
	ShopID        uuid.UUID
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Unit          string
	Image         string
	IsAvailable   bool
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductFilter narrows a product listing. Zero values do not filter.
type ProductFilter struct {
	ShopID      *uuid.UUID
	Category    string
	Search      string
	IsAvailable *bool
	Limit       int
}

// CreateProductParams holds the fields of a new product.
// IsAvailable defaults to true when nil.
type CreateProductParams struct {
	ShopID        uuid.UUID
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Unit          string
	Image         string
	IsAvailable   *bool
	Stock         int
}

// UpdateProductParams carries optional product changes. Nil leaves a field unchanged.
type UpdateProductParams struct {
	Name          *string
	Description   *string
	Category      *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Unit          *string
	Image         *string
	IsAvailable   *bool
	Stock         *int
}

// =============================================================================
// AMOUNT AND QUANTITY BOUNDS
// =============================================================================

// MaxQuantity is the largest quantity or stock an INTEGER column holds.
const MaxQuantity = math.MaxInt32

// MaxAmount is the largest price or order total a NUMERIC(10,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

// ValidAmount reports whether d is a non-negative amount in whole paise that
// is stored without rounding.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Round(2)) && d.LessThanOrEqual(MaxAmount)
}

// ValidQuantity reports whether n fits a quantity or stock column.
func ValidQuantity(n int) bool {
	return n >= 0 && int64(n) <= MaxQuantity
}

// =============================================================================
// PRODUCT DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrNegativePrice   = &Error{Code: EINVALID, Message: "Price cannot be negative"}
	ErrNegativeStock   = &Error{Code: EINVALID, Message: "Stock cannot be negative"}
	ErrInvalidPrice    = &Error{Code: EINVALID, Message: "Price must be in whole paise and at most 99999999.99"}
	ErrStockTooLarge   = &Error{Code: EINVALID, Message: "Stock cannot exceed 2147483647"}
)

// =============================================================================
// PRODUCT SERVICE INTERFACES
// =============================================================================

// ProductService is the product half of the catalog. Mutations are gated on
// ownership of the parent shop.
type ProductService interface {
	CreateProduct(ctx context.Context, requesterID uuid.UUID, params CreateProductParams) (*Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	ListShopProducts(ctx context.Context, shopID uuid.UUID, filter ProductFilter) ([]Product, error)
	UpdateProduct(ctx context.Context, requesterID, productID uuid.UUID, params UpdateProductParams) (*Product, error)
	DeleteProduct(ctx context.Context, requesterID, productID uuid.UUID) error

	// ShopCatalog returns every product of a shop the requester owns.
	ShopCatalog(ctx context.Context, requesterID, shopID uuid.UUID) (*Shop, []Product, error)
}
