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
	"github.com/shopspring/decimal"
)

const (
	defaultProductLimit = 100
	maxProductLimit     = 100

	// A shop's own listing is effectively unpaged.
	shopProductLimit = 1000
)

type productService struct {
	repo repository.Querier
}

// NewProductService creates the product half of the catalog.
func NewProductService(repo repository.Querier) domain.ProductService {
	return &productService{repo: repo}
}

// CreateProduct adds a product to a shop the requester owns.
func (s *productService) CreateProduct(ctx context.Context, requesterID uuid.UUID, params domain.CreateProductParams) (*domain.Product, error) {
	var verr error
	if strings.TrimSpace(params.Name) == "" {
		verr = domain.AddFieldError(verr, "name", "name is required")
	}
	if strings.TrimSpace(params.Category) == "" {
		verr = domain.AddFieldError(verr, "category", "category is required")
	}
	if strings.TrimSpace(params.Unit) == "" {
		verr = domain.AddFieldError(verr, "unit", "unit is required")
	}
	if verr != nil {
		return nil, verr
	}
	if err := checkPrices(&params.Price, params.OriginalPrice); err != nil {
		return nil, err
	}
	if err := checkStock(&params.Stock); err != nil {
		return nil, err
	}

	if _, err := ownedShop(ctx, s.repo, "product.create", requesterID, params.ShopID, "add products to this shop"); err != nil {
		return nil, err
	}

	available := true
	if params.IsAvailable != nil {
		available = *params.IsAvailable
	}

	product, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		ShopID:        uuidToPgtype(params.ShopID),
		Name:          strings.TrimSpace(params.Name),
		Description:   optionalText(params.Description),
		Category:      strings.TrimSpace(params.Category),
		Price:         params.Price,
		OriginalPrice: patchDecimal(params.OriginalPrice),
		Unit:          strings.TrimSpace(params.Unit),
		Image:         optionalText(params.Image),
		IsAvailable:   available,
		Stock:         int32(params.Stock),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductsCreated.Inc()
	}

	return toProduct(product), nil
}

// GetProduct returns a product by ID.
func (s *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, uuidToPgtype(productID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return toProduct(product), nil
}

// ListProducts filters products across every shop.
func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.list(ctx, filter, listLimit(filter.Limit, defaultProductLimit, maxProductLimit))
}

// ListShopProducts lists the products of one shop.
func (s *productService) ListShopProducts(ctx context.Context, shopID uuid.UUID, filter domain.ProductFilter) ([]domain.Product, error) {
	if _, err := s.repo.GetShopByID(ctx, uuidToPgtype(shopID)); err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	filter.ShopID = &shopID
	return s.list(ctx, filter, listLimit(filter.Limit, shopProductLimit, shopProductLimit))
}

func (s *productService) list(ctx context.Context, filter domain.ProductFilter, limit int32) ([]domain.Product, error) {
	var shopID pgtype.UUID
	if filter.ShopID != nil {
		shopID = uuidToPgtype(*filter.ShopID)
	}

	rows, err := s.repo.ListProducts(ctx, repository.ListProductsParams{
		ShopID:      shopID,
		Category:    optionalText(filter.Category),
		IsAvailable: patchBool(filter.IsAvailable),
		Search:      searchText(filter.Search),
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.CatalogSearches.WithLabelValues("products").Inc()
	}

	return toProducts(rows), nil
}

// UpdateProduct applies the non-nil fields of params. Shop owner only.
func (s *productService) UpdateProduct(ctx context.Context, requesterID, productID uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error) {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, domain.NewValidationError("product.update", "name", "name cannot be empty")
	}
	if err := checkPrices(params.Price, params.OriginalPrice); err != nil {
		return nil, err
	}
	if err := checkStock(params.Stock); err != nil {
		return nil, err
	}
	if _, err := ownedProduct(ctx, s.repo, "product.update", requesterID, productID, "update this product"); err != nil {
		return nil, err
	}

	product, err := s.repo.UpdateProduct(ctx, repository.UpdateProductParams{
		Name:          patchText(params.Name),
		Description:   patchText(params.Description),
		Category:      patchText(params.Category),
		Price:         patchDecimal(params.Price),
		OriginalPrice: patchDecimal(params.OriginalPrice),
		Unit:          patchText(params.Unit),
		Image:         patchText(params.Image),
		IsAvailable:   patchBool(params.IsAvailable),
		Stock:         patchInt(params.Stock),
		ID:            uuidToPgtype(productID),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return toProduct(product), nil
}

// DeleteProduct removes a product. Past orders keep their item snapshot.
func (s *productService) DeleteProduct(ctx context.Context, requesterID, productID uuid.UUID) error {
	if _, err := ownedProduct(ctx, s.repo, "product.delete", requesterID, productID, "delete this product"); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, uuidToPgtype(productID)); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ShopCatalog returns a shop with all of its products for export.
func (s *productService) ShopCatalog(ctx context.Context, requesterID, shopID uuid.UUID) (*domain.Shop, []domain.Product, error) {
	shop, err := ownedShop(ctx, s.repo, "product.export", requesterID, shopID, "export products of this shop")
	if err != nil {
		return nil, nil, err
	}
	products, err := catalogProducts(ctx, s.repo, shop.ID)
	if err != nil {
		return nil, nil, err
	}
	if telemetry.Business != nil {
		telemetry.Business.CatalogExports.Inc()
	}
	return toShop(shop), products, nil
}

func catalogProducts(ctx context.Context, q repository.Querier, shopID pgtype.UUID) ([]domain.Product, error) {
	rows, err := q.ListProducts(ctx, repository.ListProductsParams{
		ShopID: shopID,
		Limit:  shopProductLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shop products: %w", err)
	}
	return toProducts(rows), nil
}

// checkPrices accepts nil for prices a patch leaves unchanged.
func checkPrices(prices ...*decimal.Decimal) error {
	for _, p := range prices {
		switch {
		case p == nil:
		case p.IsNegative():
			return domain.ErrNegativePrice
		case !domain.ValidAmount(*p):
			return domain.ErrInvalidPrice
		}
	}
	return nil
}

func checkStock(stock *int) error {
	switch {
	case stock == nil:
		return nil
	case *stock < 0:
		return domain.ErrNegativeStock
	case !domain.ValidQuantity(*stock):
		return domain.ErrStockTooLarge
	}
	return nil
}
