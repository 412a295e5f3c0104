package service

import (
	"testing"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_AddItem_MergesIntoShopCart(t *testing.T) {
	store := newMockStore(t)
	svc := NewCartService(store)
	userID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()

	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(testProduct(productID, shopID), nil)
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, uuid.New()), nil)
	expectTx(store)
	store.EXPECT().
		UpsertCart(gomock.Any(), repository.UpsertCartParams{
			UserID:   pgID(userID),
			ShopID:   pgID(shopID),
			ShopName: "Sharma General Store",
		}).
		Return(repository.Cart{ID: pgID(cartID)}, nil)
	store.EXPECT().
		AddCartItem(gomock.Any(), repository.AddCartItemParams{
			CartID:    pgID(cartID),
			ProductID: pgID(productID),
			Quantity:  1,
		}).
		Return(repository.CartItem{Quantity: 3}, nil)
	store.EXPECT().
		ListCartLinesByCart(gomock.Any(), pgID(cartID)).
		Return([]repository.ListCartLinesByCartRow{{
			ProductID:   pgID(productID),
			ProductName: "Toor Dal",
			Price:       decimal.RequireFromString("145.50"),
			Quantity:    3,
			ShopID:      pgID(shopID),
			ShopName:    "Sharma General Store",
			Unit:        "kg",
		}}, nil)

	items, err := svc.AddItem(t.Context(), userID, domain.AddCartItemParams{ProductID: productID, ShopID: shopID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].Subtotal().Equal(decimal.RequireFromString("436.5")))
}

func Test_AddItem_MergeOverflow(t *testing.T) {
	store := newMockStore(t)
	shopID := uuid.New()
	productID := uuid.New()

	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(testProduct(productID, shopID), nil)
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, uuid.New()), nil)
	expectTx(store)
	store.EXPECT().UpsertCart(gomock.Any(), gomock.Any()).Return(repository.Cart{ID: pgID(uuid.New())}, nil)
	store.EXPECT().AddCartItem(gomock.Any(), gomock.Any()).
		Return(repository.CartItem{}, &pgconn.PgError{Code: "22003", Message: "integer out of range"})

	_, err := NewCartService(store).AddItem(t.Context(), uuid.New(), domain.AddCartItemParams{ProductID: productID, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
}

func Test_AddItem_Rejections(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()

	_, err := NewCartService(newMockStore(t)).AddItem(t.Context(), userID, domain.AddCartItemParams{ProductID: productID, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = NewCartService(newMockStore(t)).AddItem(t.Context(), userID, domain.AddCartItemParams{ProductID: productID, Quantity: overMaxQuantity()})
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)

	store := newMockStore(t)
	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(repository.Product{}, pgx.ErrNoRows)
	_, err = NewCartService(store).AddItem(t.Context(), userID, domain.AddCartItemParams{ProductID: productID})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	store = newMockStore(t)
	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(testProduct(productID, shopID), nil)
	_, err = NewCartService(store).AddItem(t.Context(), userID, domain.AddCartItemParams{ProductID: productID, ShopID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrProductShopMismatch)
}

func Test_UpdateQuantity(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()
	cartID := uuid.New()
	lookup := repository.GetCartItemForUserParams{UserID: pgID(userID), ProductID: pgID(productID)}
	item := repository.CartItem{ID: pgID(itemID), CartID: pgID(cartID), ProductID: pgID(productID), Quantity: 2}

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewCartService(newMockStore(t)).UpdateQuantity(t.Context(), userID, productID, -2)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("quantity past column range", func(t *testing.T) {
		_, err := NewCartService(newMockStore(t)).UpdateQuantity(t.Context(), userID, productID, overMaxQuantity())
		assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	})

	t.Run("no cart", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return(nil, nil)

		_, err := NewCartService(store).UpdateQuantity(t.Context(), userID, productID, 2)
		assert.ErrorIs(t, err, domain.ErrCartNotFound)
	})

	t.Run("product not in cart", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return([]repository.Cart{{ID: pgID(cartID)}}, nil)
		store.EXPECT().GetCartItemForUser(gomock.Any(), lookup).Return(repository.CartItem{}, pgx.ErrNoRows)

		_, err := NewCartService(store).UpdateQuantity(t.Context(), userID, productID, 2)
		assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
	})

	t.Run("sets quantity exactly", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return([]repository.Cart{{ID: pgID(cartID)}}, nil)
		store.EXPECT().GetCartItemForUser(gomock.Any(), lookup).Return(item, nil)
		store.EXPECT().SetCartItemQuantity(gomock.Any(), repository.SetCartItemQuantityParams{ID: pgID(itemID), Quantity: 7}).Return(nil)
		store.EXPECT().ListCartLinesByCart(gomock.Any(), pgID(cartID)).Return(nil, nil)

		items, err := NewCartService(store).UpdateQuantity(t.Context(), userID, productID, 7)
		require.NoError(t, err)
		assert.NotNil(t, items)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return([]repository.Cart{{ID: pgID(cartID)}}, nil)
		store.EXPECT().GetCartItemForUser(gomock.Any(), lookup).Return(item, nil)
		store.EXPECT().DeleteCartItem(gomock.Any(), pgID(itemID)).Return(nil)
		store.EXPECT().ListCartLinesByCart(gomock.Any(), pgID(cartID)).Return(nil, nil)

		items, err := NewCartService(store).UpdateQuantity(t.Context(), userID, productID, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func Test_RemoveItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	store := newMockStore(t)
	store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return([]repository.Cart{{}}, nil)
	store.EXPECT().
		DeleteCartItemForUser(gomock.Any(), repository.DeleteCartItemForUserParams{UserID: pgID(userID), ProductID: pgID(productID)}).
		Return(int64(0), nil)
	store.EXPECT().ListCartLinesByUser(gomock.Any(), pgID(userID)).Return(nil, nil)

	items, err := NewCartService(store).RemoveItem(t.Context(), userID, productID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func Test_ClearCart(t *testing.T) {
	userID := uuid.New()

	store := newMockStore(t)
	store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return(nil, nil)
	assert.ErrorIs(t, NewCartService(store).ClearCart(t.Context(), userID), domain.ErrCartNotFound)

	store = newMockStore(t)
	store.EXPECT().ListCartsByUser(gomock.Any(), pgID(userID)).Return([]repository.Cart{{}, {}}, nil)
	store.EXPECT().ClearCartItemsForUser(gomock.Any(), pgID(userID)).Return(int64(4), nil)
	assert.NoError(t, NewCartService(store).ClearCart(t.Context(), userID))
}
