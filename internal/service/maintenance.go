package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type maintenanceService struct {
	repo   repository.Querier
	logger *slog.Logger
	jitter func() float64
}

// NewMaintenanceService creates the administrative catalog fixes run by
// kiranactl.
func NewMaintenanceService(repo repository.Querier, logger *slog.Logger) domain.MaintenanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &maintenanceService{
		repo:   repo,
		logger: logger,
		jitter: func() float64 { return rand.Float64()*2 - 1 },
	}
}

// OpenAllShops opens every closed shop and reports how many changed.
func (s *maintenanceService) OpenAllShops(ctx context.Context) (int64, error) {
	n, err := s.repo.SetAllShopsOpen(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open shops: %w", err)
	}
	s.logger.Info("shops opened", "changed", n)
	return n, nil
}

// SetShopStatus opens or closes the shops whose name contains nameMatch.
func (s *maintenanceService) SetShopStatus(ctx context.Context, nameMatch string, open bool) (int64, error) {
	nameMatch = strings.TrimSpace(nameMatch)
	if nameMatch == "" {
		return 0, domain.NewValidationError("maintenance.set_shop_status", "name", "name is required")
	}
	n, err := s.repo.SetShopOpenByName(ctx, repository.SetShopOpenByNameParams{
		IsOpen: open,
		Name:   escapeLike(nameMatch),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to set shop status: %w", err)
	}
	s.logger.Info("shop status set", "name", nameMatch, "open", open, "changed", n)
	return n, nil
}

// FindDuplicateShops groups shops that share a name, ignoring case.
func (s *maintenanceService) FindDuplicateShops(ctx context.Context) ([]domain.DuplicateShopGroup, error) {
	rows, err := s.repo.FindDuplicateShopNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find duplicate shops: %w", err)
	}
	groups := make([]domain.DuplicateShopGroup, 0, len(rows))
	for _, row := range rows {
		ids := make([]uuid.UUID, 0, len(row.ShopIds))
		for _, id := range row.ShopIds {
			ids = append(ids, pgtypeToUUID(id))
		}
		groups = append(groups, domain.DuplicateShopGroup{Name: row.Name, ShopIDs: ids})
	}
	return groups, nil
}

// SetShopCoordinates places every shop whose name contains nameMatch at
// coords, each displaced by up to jitter degrees per axis. A zero jitter
// makes repeated runs converge on the same value.
func (s *maintenanceService) SetShopCoordinates(ctx context.Context, nameMatch string, coords domain.Coordinates, jitter float64) ([]domain.Shop, error) {
	nameMatch = strings.TrimSpace(nameMatch)
	if nameMatch == "" {
		return nil, domain.NewValidationError("maintenance.set_coordinates", "name", "name is required")
	}
	if !coords.Valid() || jitter < 0 {
		return nil, domain.ErrInvalidCoordinate
	}

	shops, err := s.repo.ListShopsByName(ctx, escapeLike(nameMatch))
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	updated := make([]domain.Shop, 0, len(shops))
	for _, shop := range shops {
		point := coords
		if jitter > 0 {
			point.Lat += s.jitter() * jitter
			point.Lng += s.jitter() * jitter
			if !point.Valid() {
				point = coords
			}
		}
		row, err := s.repo.SetShopCoordinates(ctx, repository.SetShopCoordinatesParams{
			ID:        shop.ID,
			Latitude:  pgtype.Float8{Float64: point.Lat, Valid: true},
			Longitude: pgtype.Float8{Float64: point.Lng, Valid: true},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set coordinates of %s: %w", shop.Name, err)
		}
		updated = append(updated, *toShop(row))
	}

	s.logger.Info("shop coordinates set", "name", nameMatch, "changed", len(updated))
	return updated, nil
}

// ListAllShops returns every shop, open or not.
func (s *maintenanceService) ListAllShops(ctx context.Context) ([]domain.Shop, error) {
	rows, err := s.repo.ListShopsByName(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return toShops(rows), nil
}

// ShopCatalog returns a shop and all of its products, without an owner check.
func (s *maintenanceService) ShopCatalog(ctx context.Context, shopID uuid.UUID) (*domain.Shop, []domain.Product, error) {
	shop, err := s.repo.GetShopByID(ctx, uuidToPgtype(shopID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, domain.ErrShopNotFound
		}
		return nil, nil, fmt.Errorf("failed to get shop: %w", err)
	}
	products, err := catalogProducts(ctx, s.repo, shop.ID)
	if err != nil {
		return nil, nil, err
	}
	return toShop(shop), products, nil
}
