package service

import (
	"testing"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_OpenAllShops(t *testing.T) {
	store := newMockStore(t)
	store.EXPECT().SetAllShopsOpen(gomock.Any()).Return(int64(3), nil)

	n, err := NewMaintenanceService(store, nil).OpenAllShops(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func Test_SetShopStatus(t *testing.T) {
	store := newMockStore(t)
	svc := NewMaintenanceService(store, nil)

	_, err := svc.SetShopStatus(t.Context(), "  ", true)
	assert.True(t, domain.IsValidationError(err))

	store.EXPECT().
		SetShopOpenByName(gomock.Any(), repository.SetShopOpenByNameParams{IsOpen: false, Name: `100\% Fresh`}).
		Return(int64(1), nil)

	n, err := svc.SetShopStatus(t.Context(), "100% Fresh", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func Test_FindDuplicateShops(t *testing.T) {
	store := newMockStore(t)
	a, b := uuid.New(), uuid.New()
	store.EXPECT().FindDuplicateShopNames(gomock.Any()).Return([]repository.FindDuplicateShopNamesRow{
		{Name: "sharma store", ShopCount: 2, ShopIds: []pgtype.UUID{pgID(a), pgID(b)}},
	}, nil)

	groups, err := NewMaintenanceService(store, nil).FindDuplicateShops(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.DuplicateShopGroup{{Name: "sharma store", ShopIDs: []uuid.UUID{a, b}}}, groups)
}

func Test_SetShopCoordinates(t *testing.T) {
	shopID := uuid.New()
	coords := domain.Coordinates{Lat: 18.5204, Lng: 73.8567}

	t.Run("without jitter every run converges", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ListShopsByName(gomock.Any(), "Sharma").Return([]repository.Shop{testShop(shopID, uuid.New())}, nil)
		store.EXPECT().
			SetShopCoordinates(gomock.Any(), repository.SetShopCoordinatesParams{
				ID:        pgID(shopID),
				Latitude:  pgtype.Float8{Float64: 18.5204, Valid: true},
				Longitude: pgtype.Float8{Float64: 73.8567, Valid: true},
			}).
			DoAndReturn(func(_ any, arg repository.SetShopCoordinatesParams) (repository.Shop, error) {
				shop := testShop(shopID, uuid.New())
				shop.Latitude, shop.Longitude = arg.Latitude, arg.Longitude
				return shop, nil
			})

		shops, err := NewMaintenanceService(store, nil).SetShopCoordinates(t.Context(), "Sharma", coords, 0)
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, coords, *shops[0].Coordinates)
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		store := newMockStore(t)
		svc := NewMaintenanceService(store, nil).(*maintenanceService)
		svc.jitter = func() float64 { return 1 }

		store.EXPECT().ListShopsByName(gomock.Any(), "Sharma").Return([]repository.Shop{testShop(shopID, uuid.New())}, nil)
		store.EXPECT().SetShopCoordinates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, arg repository.SetShopCoordinatesParams) (repository.Shop, error) {
				assert.InDelta(t, 18.5304, arg.Latitude.Float64, 1e-9)
				assert.InDelta(t, 73.8667, arg.Longitude.Float64, 1e-9)
				return testShop(shopID, uuid.New()), nil
			})

		_, err := svc.SetShopCoordinates(t.Context(), "Sharma", coords, 0.01)
		require.NoError(t, err)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewMaintenanceService(newMockStore(t), nil)
		_, err := svc.SetShopCoordinates(t.Context(), "Sharma", domain.Coordinates{Lat: 100}, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

		_, err = svc.SetShopCoordinates(t.Context(), "", coords, 0)
		assert.True(t, domain.IsValidationError(err))
	})
}

func Test_MaintenanceShopCatalog(t *testing.T) {
	store := newMockStore(t)
	shopID := uuid.New()
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, uuid.New()), nil)
	store.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return([]repository.Product{testProduct(uuid.New(), shopID)}, nil)

	shop, products, err := NewMaintenanceService(store, nil).ShopCatalog(t.Context(), shopID)
	require.NoError(t, err)
	assert.Equal(t, shopID, shop.ID)
	assert.Len(t, products, 1)
}
