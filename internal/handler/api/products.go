package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/export"
	"github.com/dukerupert/kirana/internal/handler"
)

// ProductHandler serves /api/products.
type ProductHandler struct {
	products domain.ProductService
}

func NewProductHandler(products domain.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	ShopID        string           `json:"shopId" validate:"required,uuid"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Unit          string           `json:"unit"`
	Image         string           `json:"image"`
	IsAvailable   *bool            `json:"isAvailable"`
	Stock         int              `json:"stock"`
}

type updateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Unit          *string          `json:"unit"`
	Image         *string          `json:"image"`
	IsAvailable   *bool            `json:"isAvailable"`
	Stock         *int             `json:"stock"`
}

type productResponse struct {
	handler.Envelope
	Product ProductDTO `json:"product"`
}

type productsResponse struct {
	handler.Envelope
	Products []ProductDTO `json:"products"`
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := handler.DecodeJSON(r, "product.create", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), domain.RequireUserID(r.Context()), domain.CreateProductParams{
		ShopID:        uuid.MustParse(req.ShopID),
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         *req.Price,
		OriginalPrice: req.OriginalPrice,
		Unit:          req.Unit,
		Image:         req.Image,
		IsAvailable:   req.IsAvailable,
		Stock:         req.Stock,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusCreated, productResponse{
		Envelope: handler.Success("Product created successfully"),
		Product:  toProductDTO(product),
	})
}

// List handles GET /api/products?shopId=&category=&isAvailable=&search=&limit=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := productFilter(r)
	if raw := r.URL.Query().Get("shopId"); raw != "" {
		shopID, err := uuid.Parse(raw)
		if err != nil {
			handler.ErrorResponse(w, r, domain.NewValidationError("product.list", "shopId", "shopId must be a valid id"))
			return
		}
		filter.ShopID = &shopID
	}

	products, err := h.products.ListProducts(r.Context(), filter)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, productsResponse{
		Envelope: handler.Success(""),
		Products: toProductDTOs(products),
	})
}

// ListByShop handles GET /api/products/shop/{shopId}
func (h *ProductHandler) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := handler.PathID(r, "shopId", domain.ErrShopNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	products, err := h.products.ListShopProducts(r.Context(), shopID, productFilter(r))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, productsResponse{
		Envelope: handler.Success(""),
		Products: toProductDTOs(products),
	})
}

// Export handles GET /api/products/shop/{shopId}/export and streams the
// shop's catalog as an Excel workbook. Owner only.
func (h *ProductHandler) Export(w http.ResponseWriter, r *http.Request) {
	shopID, err := handler.PathID(r, "shopId", domain.ErrShopNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	shop, products, err := h.products.ShopCatalog(r.Context(), domain.RequireUserID(r.Context()), shopID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	// Buffer so a write failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, shop, products); err != nil {
		handler.InternalErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(shop)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "id", domain.ErrProductNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, productResponse{
		Envelope: handler.Success(""),
		Product:  toProductDTO(product),
	})
}

// Update handles PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "id", domain.ErrProductNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateProductRequest
	if err := handler.DecodeJSON(r, "product.update", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), domain.RequireUserID(r.Context()), productID, domain.UpdateProductParams{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Unit:          req.Unit,
		Image:         req.Image,
		IsAvailable:   req.IsAvailable,
		Stock:         req.Stock,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, productResponse{
		Envelope: handler.Success("Product updated successfully"),
		Product:  toProductDTO(product),
	})
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := handler.PathID(r, "id", domain.ErrProductNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.products.DeleteProduct(r.Context(), domain.RequireUserID(r.Context()), productID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, handler.Success("Product deleted successfully"))
}

func productFilter(r *http.Request) domain.ProductFilter {
	q := r.URL.Query()
	return domain.ProductFilter{
		Category:    q.Get("category"),
		Search:      q.Get("search"),
		IsAvailable: boolQuery(r, "isAvailable"),
		Limit:       intQuery(r, "limit"),
	}
}
