package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	outOfRange          = "22003"
)

// IsNotFound reports whether err means a :one query matched no row.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// An empty constraint matches any unique constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a foreign key violation, such
// as deleting a row that is still referenced.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// IsOutOfRange reports whether a value overflowed its column, such as a cart
// line quantity incremented past the INTEGER range.
func IsOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == outOfRange
}

// Constraint names referenced by callers.
const (
	ConstraintUsersMobile      = "users_mobile_key"
	ConstraintShopsOwnerName   = "shops_owner_name_key"
	ConstraintOrdersNumber     = "orders_order_number_key"
	ConstraintCartsUserShop    = "carts_user_shop_key"
	ConstraintCartItemsProduct = "cart_items_cart_product_key"
)
