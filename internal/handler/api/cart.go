package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler"
)

// CartHandler serves /api/cart. Every route requires authentication.
type CartHandler struct {
	carts domain.CartService
}

func NewCartHandler(carts domain.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// cartProductRef is the product object the web client sends with an add.
// Only the ID is read; name and price always come from the catalog.
type cartProductRef struct {
	ID string `json:"id"`
}

// addToCartRequest accepts either productId or product.id. shopName is
// accepted for compatibility and ignored.
type addToCartRequest struct {
	ProductID string          `json:"productId" validate:"omitempty,uuid"`
	Product   *cartProductRef `json:"product"`
	ShopID    string          `json:"shopId" validate:"required,uuid"`
	ShopName  string          `json:"shopName"`
	Quantity  int             `json:"quantity"`
}

func (req addToCartRequest) productID() (uuid.UUID, error) {
	raw := req.ProductID
	if raw == "" && req.Product != nil {
		raw = req.Product.ID
	}
	if raw == "" {
		return uuid.Nil, domain.NewValidationError("cart.add", "productId", "productId is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("cart.add", "productId", "productId must be a valid id")
	}
	return id, nil
}

type updateCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

type cartResponse struct {
	handler.Envelope
	Items []CartItemDTO `json:"items"`
	Total string        `json:"total"`
}

func newCartResponse(message string, items []domain.CartItem) cartResponse {
	return cartResponse{
		Envelope: handler.Success(message),
		Items:    toCartItemDTOs(items),
		Total:    domain.CartTotal(items).StringFixed(2),
	}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.GetCart(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, newCartResponse("", items))
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := handler.DecodeJSON(r, "cart.add", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	productID, err := req.productID()
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	items, err := h.carts.AddItem(r.Context(), domain.RequireUserID(r.Context()), domain.AddCartItemParams{
		ProductID: productID,
		ShopID:    uuid.MustParse(req.ShopID),
		Quantity:  req.Quantity,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, newCartResponse("Item added to cart", items))
}

// Update handles PUT /api/cart/update
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := handler.DecodeJSON(r, "cart.update", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	items, err := h.carts.UpdateQuantity(r.Context(), domain.RequireUserID(r.Context()), uuid.MustParse(req.ProductID), *req.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, newCartResponse("Cart updated", items))
}

// Remove handles DELETE /api/cart/remove/{productId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "productId", domain.NewValidationError("cart.remove", "productId", "productId must be a valid id"))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	items, err := h.carts.RemoveItem(r.Context(), domain.RequireUserID(r.Context()), productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, newCartResponse("Item removed from cart", items))
}

// Clear handles DELETE /api/cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.ClearCart(r.Context(), domain.RequireUserID(r.Context())); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, newCartResponse("Cart cleared", nil))
}
