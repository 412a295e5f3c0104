package service

import (
	"context"
	"fmt"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type cartService struct {
	store repository.Store
}

// NewCartService creates the cart consolidator.
func NewCartService(store repository.Store) domain.CartService {
	return &cartService{store: store}
}

// GetCart returns the lines of every cart the user holds, one cart per shop.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	rows, err := s.store.ListCartLinesByUser(ctx, uuidToPgtype(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return cartItemsFromUser(rows), nil
}

// AddItem merges quantity into the line for the product. A missing cart or
// line is created, an existing line is incremented.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, params domain.AddCartItemParams) ([]domain.CartItem, error) {
	quantity := params.Quantity
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !domain.ValidQuantity(quantity) {
		return nil, domain.ErrQuantityTooLarge
	}
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.store.GetProductByID(ctx, uuidToPgtype(params.ProductID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	shopID := pgtypeToUUID(product.ShopID)
	if params.ShopID != uuid.Nil && params.ShopID != shopID {
		return nil, domain.ErrProductShopMismatch
	}

	shop, err := s.store.GetShopByID(ctx, product.ShopID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	var cartID pgtype.UUID
	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		cart, err := q.UpsertCart(ctx, repository.UpsertCartParams{
			UserID:   uuidToPgtype(userID),
			ShopID:   shop.ID,
			ShopName: shop.Name,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert cart: %w", err)
		}
		cartID = cart.ID

		_, err = q.AddCartItem(ctx, repository.AddCartItemParams{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  int32(quantity),
		})
		if repository.IsOutOfRange(err) {
			return domain.ErrQuantityTooLarge
		}
		if err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if telemetry.Business != nil {
		telemetry.Business.CartItemsAdded.WithLabelValues("added").Inc()
	}

	rows, err := s.store.ListCartLinesByCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return cartItemsFromCart(rows), nil
}

// UpdateQuantity sets the line's quantity exactly. Zero removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) ([]domain.CartItem, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !domain.ValidQuantity(quantity) {
		return nil, domain.ErrQuantityTooLarge
	}
	if err := s.requireCart(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.store.GetCartItemForUser(ctx, repository.GetCartItemForUserParams{
		UserID:    uuidToPgtype(userID),
		ProductID: uuidToPgtype(productID),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	operation := "set_quantity"
	if quantity == 0 {
		operation = "remove"
		err = s.store.DeleteCartItem(ctx, item.ID)
	} else {
		err = s.store.SetCartItemQuantity(ctx, repository.SetCartItemQuantityParams{
			ID:       item.ID,
			Quantity: int32(quantity),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues(operation).Inc()
	}

	rows, err := s.store.ListCartLinesByCart(ctx, item.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return cartItemsFromCart(rows), nil
}

// RemoveItem deletes the product's line. Removing an absent line is not an
// error.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) ([]domain.CartItem, error) {
	if err := s.requireCart(ctx, userID); err != nil {
		return nil, err
	}

	_, err := s.store.DeleteCartItemForUser(ctx, repository.DeleteCartItemForUserParams{
		UserID:    uuidToPgtype(userID),
		ProductID: uuidToPgtype(productID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues("remove").Inc()
	}

	return s.GetCart(ctx, userID)
}

// ClearCart deletes every line of every cart the user holds.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.requireCart(ctx, userID); err != nil {
		return err
	}
	if _, err := s.store.ClearCartItemsForUser(ctx, uuidToPgtype(userID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if telemetry.Business != nil {
		telemetry.Business.CartCleared.Inc()
	}
	return nil
}

func (s *cartService) requireCart(ctx context.Context, userID uuid.UUID) error {
	carts, err := s.store.ListCartsByUser(ctx, uuidToPgtype(userID))
	if err != nil {
		return fmt.Errorf("failed to list carts: %w", err)
	}
	if len(carts) == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}
