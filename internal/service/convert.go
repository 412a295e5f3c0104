package service

import (
	"strings"
	"time"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Helper functions for converting between uuid.UUID and pgtype.UUID
func uuidToPgtype(u uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: u, Valid: u != uuid.Nil}
}

func pgtypeToUUID(u pgtype.UUID) uuid.UUID {
	if !u.Valid {
		return uuid.Nil
	}
	return uuid.UUID(u.Bytes)
}

func textValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// optionalText maps "" to NULL.
func optionalText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	return pgtype.Text{String: s, Valid: s != ""}
}

// patchText maps nil to NULL so COALESCE keeps the stored value.
func patchText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: strings.TrimSpace(*s), Valid: true}
}

func patchBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func patchInt(n *int) pgtype.Int4 {
	if n == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*n), Valid: true}
}

func patchDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func coordinatesToPgtype(c *domain.Coordinates) (pgtype.Float8, pgtype.Float8) {
	if c == nil {
		return pgtype.Float8{}, pgtype.Float8{}
	}
	return pgtype.Float8{Float64: c.Lat, Valid: true}, pgtype.Float8{Float64: c.Lng, Valid: true}
}

func timeValue(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}

// escapeLike quotes the LIKE wildcards in a user supplied search term.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// searchText trims and escapes a search term, mapping "" to NULL.
func searchText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: escapeLike(s), Valid: true}
}

func toUser(u repository.User) *domain.User {
	return &domain.User{
		ID:          pgtypeToUUID(u.ID),
		Mobile:      u.Mobile,
		Name:        textValue(u.Name),
		Email:       textValue(u.Email),
		Role:        domain.Role(u.Role),
		IsVerified:  u.IsVerified,
		HasPassword: u.PasswordHash.Valid && u.PasswordHash.String != "",
		CreatedAt:   timeValue(u.CreatedAt),
		UpdatedAt:   timeValue(u.UpdatedAt),
	}
}

func toShop(s repository.Shop) *domain.Shop {
	shop := &domain.Shop{
		ID:           pgtypeToUUID(s.ID),
		OwnerID:      pgtypeToUUID(s.OwnerID),
		Name:         s.Name,
		Description:  textValue(s.Description),
		Category:     s.Category,
		Image:        textValue(s.Image),
		Phone:        s.Phone,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		OpeningTime:  textValue(s.OpeningTime),
		ClosingTime:  textValue(s.ClosingTime),
		IsOpen:       s.IsOpen,
		Rating:       s.Rating,
		TotalRatings: int(s.TotalRatings),
		CreatedAt:    timeValue(s.CreatedAt),
		UpdatedAt:    timeValue(s.UpdatedAt),
	}
	if s.Latitude.Valid && s.Longitude.Valid {
		shop.Coordinates = &domain.Coordinates{Lat: s.Latitude.Float64, Lng: s.Longitude.Float64}
	}
	return shop
}

func toShops(rows []repository.Shop) []domain.Shop {
	shops := make([]domain.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, *toShop(row))
	}
	return shops
}

func toProduct(p repository.Product) *domain.Product {
	product := &domain.Product{
		ID:          pgtypeToUUID(p.ID),
		ShopID:      pgtypeToUUID(p.ShopID),
		Name:        p.Name,
		Description: textValue(p.Description),
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Image:       textValue(p.Image),
		IsAvailable: p.IsAvailable,
		Stock:       int(p.Stock),
		CreatedAt:   timeValue(p.CreatedAt),
		UpdatedAt:   timeValue(p.UpdatedAt),
	}
	if p.OriginalPrice.Valid {
		original := p.OriginalPrice.Decimal
		product.OriginalPrice = &original
	}
	return product
}

func toProducts(rows []repository.Product) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, *toProduct(row))
	}
	return products
}

// cartLine is the column set shared by the cart line queries.
type cartLine struct {
	ProductID   pgtype.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int32
	ShopID      pgtype.UUID
	ShopName    string
	Image       pgtype.Text
	Unit        string
}

func (l cartLine) toDomain() domain.CartItem {
	return domain.CartItem{
		ProductID:   pgtypeToUUID(l.ProductID),
		ProductName: l.ProductName,
		Price:       l.Price,
		Quantity:    int(l.Quantity),
		ShopID:      pgtypeToUUID(l.ShopID),
		ShopName:    l.ShopName,
		Image:       textValue(l.Image),
		Unit:        l.Unit,
	}
}

func cartItemsFromCart(rows []repository.ListCartLinesByCartRow) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, cartLine(row).toDomain())
	}
	return items
}

func cartItemsFromUser(rows []repository.ListCartLinesByUserRow) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, cartLine(row).toDomain())
	}
	return items
}

// orderRow is the column set shared by the order queries joined with their
// shop and buyer.
type orderRow struct {
	Order       repository.Order
	ShopName    string
	ShopPhone   string
	ShopAddress string
	ShopOwnerID pgtype.UUID
	BuyerName   pgtype.Text
	BuyerMobile string
}

func (r orderRow) toDomain() domain.Order {
	o := r.Order
	return domain.Order{
		ID:              pgtypeToUUID(o.ID),
		OrderNumber:     o.OrderNumber,
		TotalAmount:     o.TotalAmount,
		Status:          domain.OrderStatus(o.Status),
		PaymentMethod:   domain.PaymentMethod(o.PaymentMethod),
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatus),
		DeliveryAddress: textValue(o.DeliveryAddress),
		Notes:           textValue(o.Notes),
		Items:           []domain.OrderItem{},
		Shop: domain.OrderShop{
			ID:      pgtypeToUUID(o.ShopID),
			OwnerID: pgtypeToUUID(r.ShopOwnerID),
			Name:    r.ShopName,
			Phone:   r.ShopPhone,
			Address: r.ShopAddress,
		},
		Buyer: domain.OrderBuyer{
			ID:     pgtypeToUUID(o.UserID),
			Name:   textValue(r.BuyerName),
			Mobile: r.BuyerMobile,
		},
		CreatedAt: timeValue(o.CreatedAt),
		UpdatedAt: timeValue(o.UpdatedAt),
	}
}

func toOrderItem(i repository.OrderItem) domain.OrderItem {
	item := domain.OrderItem{
		ID:       pgtypeToUUID(i.ID),
		Name:     i.Name,
		Price:    i.Price,
		Quantity: int(i.Quantity),
		Subtotal: i.Subtotal,
	}
	if i.ProductID.Valid {
		id := pgtypeToUUID(i.ProductID)
		item.ProductID = &id
	}
	return item
}
