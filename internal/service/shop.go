package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	defaultShopLimit = 50
	maxShopLimit     = 100
)

type shopService struct {
	repo repository.Querier
}

// NewShopService creates the shop half of the catalog.
func NewShopService(repo repository.Querier) domain.ShopService {
	return &shopService{repo: repo}
}

// CreateShop registers a new open shop for ownerID. An owner cannot hold two
// shops with the same name.
func (s *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, params domain.CreateShopParams) (*domain.Shop, error) {
	if err := validateShop(params); err != nil {
		return nil, err
	}
	lat, lng := coordinatesToPgtype(params.Coordinates)

	shop, err := s.repo.CreateShop(ctx, repository.CreateShopParams{
		OwnerID:     uuidToPgtype(ownerID),
		Name:        strings.TrimSpace(params.Name),
		Description: optionalText(params.Description),
		Category:    strings.TrimSpace(params.Category),
		Image:       optionalText(params.Image),
		Phone:       strings.TrimSpace(params.Phone),
		Address:     strings.TrimSpace(params.Address),
		City:        strings.TrimSpace(params.City),
		State:       strings.TrimSpace(params.State),
		Pincode:     strings.TrimSpace(params.Pincode),
		Latitude:    lat,
		Longitude:   lng,
		OpeningTime: optionalText(params.OpeningTime),
		ClosingTime: optionalText(params.ClosingTime),
		IsOpen:      true,
	})
	if err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintShopsOwnerName) {
			return nil, domain.ErrDuplicateShopName
		}
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.ShopsCreated.Inc()
	}

	return toShop(shop), nil
}

func validateShop(params domain.CreateShopParams) error {
	var verr error
	required := []struct{ field, value string }{
		{"name", params.Name},
		{"category", params.Category},
		{"phone", params.Phone},
		{"address", params.Address},
		{"city", params.City},
		{"state", params.State},
		{"pincode", params.Pincode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr = domain.AddFieldError(verr, r.field, fmt.Sprintf("%s is required", r.field))
		}
	}
	if verr != nil {
		return verr
	}
	if params.Coordinates != nil && !params.Coordinates.Valid() {
		return domain.ErrInvalidCoordinate
	}
	return nil
}

// GetShop returns a shop by ID.
func (s *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	shop, err := s.repo.GetShopByID(ctx, uuidToPgtype(shopID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return toShop(shop), nil
}

// ListShops filters the public shop listing. Search matches name or
// description, case-insensitively, with wildcards taken literally.
func (s *shopService) ListShops(ctx context.Context, filter domain.ShopFilter) ([]domain.Shop, error) {
	var isOpen pgtype.Bool
	if filter.IsOpen != nil {
		isOpen = pgtype.Bool{Bool: *filter.IsOpen, Valid: true}
	}

	rows, err := s.repo.ListShops(ctx, repository.ListShopsParams{
		Category: optionalText(filter.Category),
		City:     searchText(filter.City),
		IsOpen:   isOpen,
		Search:   searchText(filter.Search),
		Limit:    listLimit(filter.Limit, defaultShopLimit, maxShopLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.CatalogSearches.WithLabelValues("shops").Inc()
	}

	return toShops(rows), nil
}

// ListOwnerShops returns every shop ownerID owns.
func (s *shopService) ListOwnerShops(ctx context.Context, ownerID uuid.UUID) ([]domain.Shop, error) {
	rows, err := s.repo.ListShopsByOwner(ctx, uuidToPgtype(ownerID))
	if err != nil {
		return nil, fmt.Errorf("failed to list owner shops: %w", err)
	}
	return toShops(rows), nil
}

// UpdateShop applies the non-nil fields of params. Owner only.
func (s *shopService) UpdateShop(ctx context.Context, requesterID, shopID uuid.UUID, params domain.UpdateShopParams) (*domain.Shop, error) {
	if _, err := ownedShop(ctx, s.repo, "shop.update", requesterID, shopID, "update this shop"); err != nil {
		return nil, err
	}
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, domain.NewValidationError("shop.update", "name", "name cannot be empty")
	}
	if params.Coordinates != nil && !params.Coordinates.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}
	lat, lng := coordinatesToPgtype(params.Coordinates)

	shop, err := s.repo.UpdateShop(ctx, repository.UpdateShopParams{
		Name:        patchText(params.Name),
		Description: patchText(params.Description),
		Category:    patchText(params.Category),
		Image:       patchText(params.Image),
		Phone:       patchText(params.Phone),
		Address:     patchText(params.Address),
		City:        patchText(params.City),
		State:       patchText(params.State),
		Pincode:     patchText(params.Pincode),
		Latitude:    lat,
		Longitude:   lng,
		OpeningTime: patchText(params.OpeningTime),
		ClosingTime: patchText(params.ClosingTime),
		IsOpen:      patchBool(params.IsOpen),
		ID:          uuidToPgtype(shopID),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrShopNotFound
		}
		if repository.IsUniqueViolation(err, repository.ConstraintShopsOwnerName) {
			return nil, domain.ErrDuplicateShopName
		}
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return toShop(shop), nil
}

// DeleteShop removes the shop with its products and carts. Shops with order
// history are kept. Owner only.
func (s *shopService) DeleteShop(ctx context.Context, requesterID, shopID uuid.UUID) error {
	if _, err := ownedShop(ctx, s.repo, "shop.delete", requesterID, shopID, "delete this shop"); err != nil {
		return err
	}
	if err := s.repo.DeleteShop(ctx, uuidToPgtype(shopID)); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return domain.Conflict("shop.delete", "Shop has orders and cannot be deleted")
		}
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	return nil
}
