package cache

import (
	"os"
	"testing"
	"time"

	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// unreachableRedis fails every command without waiting on retries.
func unreachableRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// testRedis connects to REDIS_TEST_ADDR and flushes its database, or skips.
func testRedis(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	rdb, err := Connect(t.Context(), addr, "", 15)
	require.NoError(t, err)
	require.NoError(t, rdb.FlushDB(t.Context()).Err())
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("6f1c2a8e-0b5e-4c1e-9a52-2d8f4b1a7c33")
	assert.Equal(t, "kirana:shop:6f1c2a8e-0b5e-4c1e-9a52-2d8f4b1a7c33", shopKey(pgID(id)))
	assert.Equal(t, "kirana:product:6f1c2a8e-0b5e-4c1e-9a52-2d8f4b1a7c33", productKey(pgID(id)))
}

func TestCatalog_FallsBackWhenRedisIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, unreachableRedis(t), time.Minute, nil)
	shopID := pgID(uuid.New())

	store.EXPECT().GetShopByID(gomock.Any(), shopID).Return(repository.Shop{ID: shopID, Name: "Sharma"}, nil).Times(2)

	for range 2 {
		shop, err := catalog.GetShopByID(t.Context(), shopID)
		require.NoError(t, err)
		assert.Equal(t, "Sharma", shop.Name)
	}
}

func TestCatalog_WritesSurviveRedisOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, unreachableRedis(t), time.Minute, nil)
	productID := pgID(uuid.New())

	store.EXPECT().DeleteProduct(gomock.Any(), productID).Return(nil)
	store.EXPECT().SetAllShopsOpen(gomock.Any()).Return(int64(2), nil)

	assert.NoError(t, catalog.DeleteProduct(t.Context(), productID))
	n, err := catalog.SetAllShopsOpen(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCatalog_ReadThrough(t *testing.T) {
	rdb := testRedis(t)
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, rdb, time.Minute, nil)
	shopID := pgID(uuid.New())
	shop := repository.Shop{
		ID:        shopID,
		Name:      "Sharma",
		Latitude:  pgtype.Float8{Float64: 18.5, Valid: true},
		Longitude: pgtype.Float8{Float64: 73.8, Valid: true},
		IsOpen:    true,
	}

	store.EXPECT().GetShopByID(gomock.Any(), shopID).Return(shop, nil).Times(1)

	first, err := catalog.GetShopByID(t.Context(), shopID)
	require.NoError(t, err)
	second, err := catalog.GetShopByID(t.Context(), shopID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, shop.Latitude, second.Latitude)
	assert.Equal(t, shopID, second.ID)
}

func TestCatalog_CachesMisses(t *testing.T) {
	rdb := testRedis(t)
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, rdb, time.Minute, nil)
	productID := pgID(uuid.New())

	store.EXPECT().GetProductByID(gomock.Any(), productID).Return(repository.Product{}, pgx.ErrNoRows).Times(1)

	for range 2 {
		_, err := catalog.GetProductByID(t.Context(), productID)
		assert.True(t, repository.IsNotFound(err))
	}
}

func TestCatalog_UpdateInvalidates(t *testing.T) {
	rdb := testRedis(t)
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, rdb, time.Minute, nil)
	shopID := pgID(uuid.New())

	gomock.InOrder(
		store.EXPECT().GetShopByID(gomock.Any(), shopID).Return(repository.Shop{ID: shopID, Name: "Old"}, nil),
		store.EXPECT().UpdateShop(gomock.Any(), gomock.Any()).Return(repository.Shop{ID: shopID, Name: "New"}, nil),
		store.EXPECT().GetShopByID(gomock.Any(), shopID).Return(repository.Shop{ID: shopID, Name: "New"}, nil),
	)

	_, err := catalog.GetShopByID(t.Context(), shopID)
	require.NoError(t, err)
	_, err = catalog.UpdateShop(t.Context(), repository.UpdateShopParams{ID: shopID, Name: pgtype.Text{String: "New", Valid: true}})
	require.NoError(t, err)

	shop, err := catalog.GetShopByID(t.Context(), shopID)
	require.NoError(t, err)
	assert.Equal(t, "New", shop.Name)
}

func TestCatalog_BulkUpdateInvalidatesShops(t *testing.T) {
	rdb := testRedis(t)
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	catalog := NewCatalog(store, rdb, time.Minute, nil)
	a, b := pgID(uuid.New()), pgID(uuid.New())

	store.EXPECT().GetShopByID(gomock.Any(), a).Return(repository.Shop{ID: a}, nil).Times(2)
	store.EXPECT().GetShopByID(gomock.Any(), b).Return(repository.Shop{ID: b}, nil).Times(2)
	store.EXPECT().SetShopOpenByName(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	for _, id := range []pgtype.UUID{a, b} {
		_, err := catalog.GetShopByID(t.Context(), id)
		require.NoError(t, err)
	}
	_, err := catalog.SetShopOpenByName(t.Context(), repository.SetShopOpenByNameParams{Name: "x", IsOpen: true})
	require.NoError(t, err)

	keys, err := rdb.Keys(t.Context(), shopPrefix+"*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, id := range []pgtype.UUID{a, b} {
		_, err := catalog.GetShopByID(t.Context(), id)
		require.NoError(t, err)
	}
}
