package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// SHOP DOMAIN TYPES
// =============================================================================

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the pair lies within the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Shop is a seller owned by exactly one user.
type Shop struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Category     string
	Image        string
	Phone        string
	Address      string
	City         string
	State        string
	Pincode      string
	Coordinates  *Coordinates
	OpeningTime  string
	ClosingTime  string
	IsOpen       bool
	Rating       decimal.Decimal
	TotalRatings int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether userID owns the shop.
func (s *Shop) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// ShopFilter narrows a catalog listing. Zero values do not filter.
type ShopFilter struct {
	Category string
	City     string
	Search   string
	IsOpen   *bool
	Limit    int
}

// CreateShopParams holds the fields of a new shop.
type CreateShopParams struct {
	Name        string
	Description string
	Category    string
	Image       string
	Phone       string
	Address     string
	City        string
	State       string
	Pincode     string
	Coordinates *Coordinates
	OpeningTime string
	ClosingTime string
}

// UpdateShopParams carries optional shop changes. Nil leaves a field unchanged.
type UpdateShopParams struct {
	Name        *string
	Description *string
	Category    *string
	Image       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	Pincode     *string
	Coordinates *Coordinates
	OpeningTime *string
	ClosingTime *string
	IsOpen      *bool
}

// DuplicateShopGroup lists shops sharing a case-insensitive name.
type DuplicateShopGroup struct {
	Name    string
	ShopIDs []uuid.UUID
}

// =============================================================================
// SHOP DOMAIN ERRORS
// =============================================================================

var (
	ErrShopNotFound      = &Error{Code: ENOTFOUND, Message: "Shop not found"}
	ErrDuplicateShopName = &Error{Code: ECONFLICT, Message: "You already have a shop with this name"}
	ErrInvalidCoordinate = &Error{Code: EINVALID, Message: "Coordinates must be a valid latitude and longitude"}
)

// =============================================================================
// SHOP SERVICE INTERFACES
// =============================================================================

// ShopService is the shop half of the catalog. Mutations are owner-gated.
type ShopService interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, params CreateShopParams) (*Shop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*Shop, error)
	ListShops(ctx context.Context, filter ShopFilter) ([]Shop, error)
	ListOwnerShops(ctx context.Context, ownerID uuid.UUID) ([]Shop, error)
	UpdateShop(ctx context.Context, requesterID, shopID uuid.UUID, params UpdateShopParams) (*Shop, error)
	DeleteShop(ctx context.Context, requesterID, shopID uuid.UUID) error
}

// MaintenanceService runs the administrative catalog fixes. Every operation is
// idempotent.
type MaintenanceService interface {
	OpenAllShops(ctx context.Context) (int64, error)
	SetShopStatus(ctx context.Context, nameMatch string, open bool) (int64, error)
	FindDuplicateShops(ctx context.Context) ([]DuplicateShopGroup, error)
	SetShopCoordinates(ctx context.Context, nameMatch string, coords Coordinates, jitter float64) ([]Shop, error)
	ListAllShops(ctx context.Context) ([]Shop, error)
	ShopCatalog(ctx context.Context, shopID uuid.UUID) (*Shop, []Product, error)
}
