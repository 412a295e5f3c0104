package api

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler"
)

// ShopHandler serves /api/shops.
type ShopHandler struct {
	shops domain.ShopService
}

func NewShopHandler(shops domain.ShopService) *ShopHandler {
	return &ShopHandler{shops: shops}
}

type shopRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Pincode     string          `json:"pincode"`
	Coordinates *CoordinatesDTO `json:"coordinates"`
	OpeningTime string          `json:"openingTime"`
	ClosingTime string          `json:"closingTime"`
}

// updateShopRequest uses pointers so absent fields stay unchanged.
type updateShopRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Image       *string         `json:"image"`
	Phone       *string         `json:"phone"`
	Address     *string         `json:"address"`
	City        *string         `json:"city"`
	State       *string         `json:"state"`
	Pincode     *string         `json:"pincode"`
	Coordinates *CoordinatesDTO `json:"coordinates"`
	OpeningTime *string         `json:"openingTime"`
	ClosingTime *string         `json:"closingTime"`
	IsOpen      *bool           `json:"isOpen"`
}

type shopResponse struct {
	handler.Envelope
	Shop ShopDTO `json:"shop"`
}

type shopsResponse struct {
	handler.Envelope
	Shops []ShopDTO `json:"shops"`
}

func (c *CoordinatesDTO) toDomain() *domain.Coordinates {
	if c == nil {
		return nil
	}
	return &domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// Create handles POST /api/shops
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := handler.DecodeJSON(r, "shop.create", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	shop, err := h.shops.CreateShop(r.Context(), domain.RequireUserID(r.Context()), domain.CreateShopParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Coordinates: req.Coordinates.toDomain(),
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusCreated, shopResponse{
		Envelope: handler.Success("Shop created successfully"),
		Shop:     toShopDTO(shop),
	})
}

// List handles GET /api/shops?category=&city=&isOpen=&search=&limit=
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	shops, err := h.shops.ListShops(r.Context(), domain.ShopFilter{
		Category: q.Get("category"),
		City:     q.Get("city"),
		Search:   q.Get("search"),
		IsOpen:   boolQuery(r, "isOpen"),
		Limit:    intQuery(r, "limit"),
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, shopsResponse{
		Envelope: handler.Success(""),
		Shops:    toShopDTOs(shops),
	})
}

// MyShops handles GET /api/shops/owner/my-shops
func (h *ShopHandler) MyShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListOwnerShops(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, shopsResponse{
		Envelope: handler.Success(""),
		Shops:    toShopDTOs(shops),
	})
}

// Get handles GET /api/shops/{id}
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	shopID, err := handler.PathID(r, "id", domain.ErrShopNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	shop, err := h.shops.GetShop(r.Context(), shopID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, shopResponse{
		Envelope: handler.Success(""),
		Shop:     toShopDTO(shop),
	})
}

// Update handles PUT /api/shops/{id}
func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	shopID, err := handler.PathID(r, "id", domain.ErrShopNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateShopRequest
	if err := handler.DecodeJSON(r, "shop.update", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	shop, err := h.shops.UpdateShop(r.Context(), domain.RequireUserID(r.Context()), shopID, domain.UpdateShopParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Coordinates: req.Coordinates.toDomain(),
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		IsOpen:      req.IsOpen,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, shopResponse{
		Envelope: handler.Success("Shop updated successfully"),
		Shop:     toShopDTO(shop),
	})
}

// Delete handles DELETE /api/shops/{id}
func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shopID, err := handler.PathID(r, "id", domain.ErrShopNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.shops.DeleteShop(r.Context(), domain.RequireUserID(r.Context()), shopID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, handler.Success("Shop deleted successfully"))
}

// boolQuery returns nil when the parameter is absent. Anything other than
// "true" reads as false.
func boolQuery(r *http.Request, key string) *bool {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key) == "true"
	return &v
}

// intQuery returns 0, meaning "service default", for absent or malformed values.
func intQuery(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
