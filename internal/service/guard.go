package service

import (
	"context"
	"fmt"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
)

// ownedShop loads the shop and checks that requesterID owns it. Missing
// shops are reported before ownership so the caller can tell 404 from 403.
func ownedShop(ctx context.Context, q repository.Querier, op string, requesterID, shopID uuid.UUID, action string) (repository.Shop, error) {
	shop, err := q.GetShopByID(ctx, uuidToPgtype(shopID))
	if err != nil {
		if repository.IsNotFound(err) {
			return repository.Shop{}, domain.ErrShopNotFound
		}
		return repository.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	if pgtypeToUUID(shop.OwnerID) != requesterID {
		return repository.Shop{}, domain.Forbidden(op, "You do not have permission to "+action)
	}
	return shop, nil
}

// ownedProduct loads the product and checks that requesterID owns its shop.
func ownedProduct(ctx context.Context, q repository.Querier, op string, requesterID, productID uuid.UUID, action string) (repository.Product, error) {
	product, err := q.GetProductByID(ctx, uuidToPgtype(productID))
	if err != nil {
		if repository.IsNotFound(err) {
			return repository.Product{}, domain.ErrProductNotFound
		}
		return repository.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	if _, err := ownedShop(ctx, q, op, requesterID, pgtypeToUUID(product.ShopID), action); err != nil {
		return repository.Product{}, err
	}
	return product, nil
}

// listLimit clamps a requested page size to (0, ceiling], using def for zero.
func listLimit(requested, def, ceiling int) int32 {
	switch {
	case requested <= 0:
		return int32(def)
	case requested > ceiling:
		return int32(ceiling)
	}
	return int32(requested)
}
