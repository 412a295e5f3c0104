package service

import (
	"testing"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testProduct(id, shopID uuid.UUID) repository.Product {
	return repository.Product{
		ID:          pgID(id),
		ShopID:      pgID(shopID),
		Name:        "Toor Dal",
		Category:    "pulses",
		Price:       decimal.RequireFromString("145.50"),
		Unit:        "kg",
		IsAvailable: true,
		Stock:       20,
	}
}

func Test_CreateProduct_DefaultsToAvailable(t *testing.T) {
	store := newMockStore(t)
	svc := NewProductService(store)
	ownerID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()

	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, ownerID), nil)
	store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, arg repository.CreateProductParams) (repository.Product, error) {
			assert.True(t, arg.IsAvailable)
			assert.Equal(t, int32(0), arg.Stock)
			assert.False(t, arg.OriginalPrice.Valid)
			return testProduct(productID, shopID), nil
		})

	product, err := svc.CreateProduct(t.Context(), ownerID, domain.CreateProductParams{
		ShopID:   shopID,
		Name:     "Toor Dal",
		Category: "pulses",
		Price:    decimal.RequireFromString("145.50"),
		Unit:     "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("145.5")))
}

func Test_CreateProduct_Rejections(t *testing.T) {
	ownerID := uuid.New()
	shopID := uuid.New()
	base := domain.CreateProductParams{
		ShopID:   shopID,
		Name:     "Toor Dal",
		Category: "pulses",
		Price:    decimal.NewFromInt(10),
		Unit:     "kg",
	}

	negativePrice := base
	negativePrice.Price = decimal.NewFromInt(-1)
	_, err := NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, negativePrice)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)

	negativeStock := base
	negativeStock.Stock = -3
	_, err = NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, negativeStock)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	fractionalPaise := base
	fractionalPaise.Price = decimal.RequireFromString("10.005")
	_, err = NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, fractionalPaise)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	tooDear := base
	tooDear.Price = decimal.RequireFromString("100000000")
	_, err = NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, tooDear)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	hugeStock := base
	hugeStock.Stock = overMaxQuantity()
	_, err = NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, hugeStock)
	assert.ErrorIs(t, err, domain.ErrStockTooLarge)

	missing := base
	missing.Unit = ""
	_, err = NewProductService(newMockStore(t)).CreateProduct(t.Context(), ownerID, missing)
	assert.Contains(t, domain.GetValidationFields(err), "unit")

	store := newMockStore(t)
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, ownerID), nil)
	_, err = NewProductService(store).CreateProduct(t.Context(), uuid.New(), base)
	assert.Equal(t, "You do not have permission to add products to this shop", domain.ErrorMessage(err))
}

func Test_ListShopProducts(t *testing.T) {
	store := newMockStore(t)
	svc := NewProductService(store)
	shopID := uuid.New()

	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, uuid.New()), nil)
	store.EXPECT().
		ListProducts(gomock.Any(), repository.ListProductsParams{
			ShopID:   pgID(shopID),
			Category: pgText("pulses"),
			Limit:    shopProductLimit,
		}).
		Return([]repository.Product{testProduct(uuid.New(), shopID)}, nil)

	products, err := svc.ListShopProducts(t.Context(), shopID, domain.ProductFilter{Category: "pulses"})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func Test_ListShopProducts_UnknownShop(t *testing.T) {
	store := newMockStore(t)
	shopID := uuid.New()
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(repository.Shop{}, pgx.ErrNoRows)

	_, err := NewProductService(store).ListShopProducts(t.Context(), shopID, domain.ProductFilter{})
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func Test_ListProducts_Filters(t *testing.T) {
	store := newMockStore(t)
	available := false

	store.EXPECT().
		ListProducts(gomock.Any(), repository.ListProductsParams{
			IsAvailable: pgtype.Bool{Bool: false, Valid: true},
			Search:      pgText("dal"),
			Limit:       defaultProductLimit,
		}).
		Return(nil, nil)

	_, err := NewProductService(store).ListProducts(t.Context(), domain.ProductFilter{Search: " dal ", IsAvailable: &available})
	assert.NoError(t, err)
}

func Test_UpdateProduct_ShopOwnerOnly(t *testing.T) {
	store := newMockStore(t)
	svc := NewProductService(store)
	ownerID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()
	price := decimal.NewFromInt(99)

	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(testProduct(productID, shopID), nil).Times(2)
	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, ownerID), nil).Times(2)

	_, err := svc.UpdateProduct(t.Context(), uuid.New(), productID, domain.UpdateProductParams{Price: &price})
	assert.Equal(t, "You do not have permission to update this product", domain.ErrorMessage(err))

	store.EXPECT().
		UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, arg repository.UpdateProductParams) (repository.Product, error) {
			assert.True(t, arg.Price.Valid)
			assert.False(t, arg.Stock.Valid)
			p := testProduct(productID, shopID)
			p.Price = arg.Price.Decimal
			return p, nil
		})

	product, err := svc.UpdateProduct(t.Context(), ownerID, productID, domain.UpdateProductParams{Price: &price})
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(price))
}

func Test_DeleteProduct_NotFound(t *testing.T) {
	store := newMockStore(t)
	productID := uuid.New()
	store.EXPECT().GetProductByID(gomock.Any(), pgID(productID)).Return(repository.Product{}, pgx.ErrNoRows)

	err := NewProductService(store).DeleteProduct(t.Context(), uuid.New(), productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func Test_ProductShopCatalog(t *testing.T) {
	store := newMockStore(t)
	ownerID := uuid.New()
	shopID := uuid.New()

	store.EXPECT().GetShopByID(gomock.Any(), pgID(shopID)).Return(testShop(shopID, ownerID), nil)
	store.EXPECT().
		ListProducts(gomock.Any(), repository.ListProductsParams{ShopID: pgID(shopID), Limit: shopProductLimit}).
		Return([]repository.Product{testProduct(uuid.New(), shopID), testProduct(uuid.New(), shopID)}, nil)

	shop, products, err := NewProductService(store).ShopCatalog(t.Context(), ownerID, shopID)
	require.NoError(t, err)
	assert.Equal(t, "Sharma General Store", shop.Name)
	assert.Len(t, products, 2)
}

func Test_UpdateProduct_BoundsPatch(t *testing.T) {
	svc := NewProductService(newMockStore(t))
	price := decimal.RequireFromString("0.001")
	_, err := svc.UpdateProduct(t.Context(), uuid.New(), uuid.New(), domain.UpdateProductParams{Price: &price})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	stock := overMaxQuantity()
	_, err = svc.UpdateProduct(t.Context(), uuid.New(), uuid.New(), domain.UpdateProductParams{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrStockTooLarge)
}
