package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kirana/internal/domain"
)

// Response DTOs. Domain types never reach the wire directly; each entity has
// one tagged shape here.

type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Mobile     string    `json:"mobile"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Mobile:     u.Mobile,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
	}
}

type PublicProfileDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ShopDTO struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Pincode      string          `json:"pincode"`
	Coordinates  *CoordinatesDTO `json:"coordinates"`
	OpeningTime  string          `json:"openingTime"`
	ClosingTime  string          `json:"closingTime"`
	IsOpen       bool            `json:"isOpen"`
	Rating       decimal.Decimal `json:"rating"`
	TotalRatings int             `json:"totalRatings"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toShopDTO(s *domain.Shop) ShopDTO {
	dto := ShopDTO{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Description:  s.Description,
		Category:     s.Category,
		Image:        s.Image,
		Phone:        s.Phone,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		OpeningTime:  s.OpeningTime,
		ClosingTime:  s.ClosingTime,
		IsOpen:       s.IsOpen,
		Rating:       s.Rating,
		TotalRatings: s.TotalRatings,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.Coordinates != nil {
		dto.Coordinates = &CoordinatesDTO{Lat: s.Coordinates.Lat, Lng: s.Coordinates.Lng}
	}
	return dto
}

func toShopDTOs(shops []domain.Shop) []ShopDTO {
	out := make([]ShopDTO, 0, len(shops))
	for i := range shops {
		out = append(out, toShopDTO(&shops[i]))
	}
	return out
}

type ProductDTO struct {
	ID            uuid.UUID        `json:"id"`
	ShopID        uuid.UUID        `json:"shopId"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Unit          string           `json:"unit"`
	Image         string           `json:"image"`
	IsAvailable   bool             `json:"isAvailable"`
	Stock         int              `json:"stock"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		ShopID:        p.ShopID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Unit:          p.Unit,
		Image:         p.Image,
		IsAvailable:   p.IsAvailable,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, toProductDTO(&products[i]))
	}
	return out
}

type CartItemDTO struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShopID      uuid.UUID       `json:"shopId"`
	ShopName    string          `json:"shopName"`
	Image       string          `json:"image"`
	Unit        string          `json:"unit"`
}

func toCartItemDTOs(items []domain.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
			ShopID:      item.ShopID,
			ShopName:    item.ShopName,
			Image:       item.Image,
			Unit:        item.Unit,
		})
	}
	return out
}

type OrderItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderShopDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

type OrderBuyerDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Mobile string    `json:"mobile"`
}

type OrderDTO struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []OrderItemDTO  `json:"items"`
	Shop            OrderShopDTO    `json:"shop"`
	Buyer           OrderBuyerDTO   `json:"buyer"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toOrderDTO(o *domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return OrderDTO{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		Items:           items,
		Shop: OrderShopDTO{
			ID:      o.Shop.ID,
			Name:    o.Shop.Name,
			Phone:   o.Shop.Phone,
			Address: o.Shop.Address,
		},
		Buyer: OrderBuyerDTO{
			ID:     o.Buyer.ID,
			Name:   o.Buyer.Name,
			Mobile: o.Buyer.Mobile,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	return out
}
