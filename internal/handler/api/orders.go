package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler"
)

// OrderHandler serves /api/orders. Every route requires authentication.
type OrderHandler struct {
	orders domain.OrderService
}

func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	ProductID   *uuid.UUID      `json:"productId"`
	Name        string          `json:"name"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

type createOrderRequest struct {
	ShopID          string             `json:"shopId" validate:"required,uuid"`
	Items           []orderItemRequest `json:"items" validate:"required"`
	TotalAmount     *decimal.Decimal   `json:"totalAmount" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes"`
}

func (req createOrderRequest) toParams() domain.CreateOrderParams {
	items := make([]domain.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		name := item.Name
		if name == "" {
			name = item.ProductName
		}
		items = append(items, domain.OrderItemInput{
			ProductID: item.ProductID,
			Name:      name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return domain.CreateOrderParams{
		ShopID:          uuid.MustParse(req.ShopID),
		Items:           items,
		TotalAmount:     *req.TotalAmount,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderResponse struct {
	handler.Envelope
	Order OrderDTO `json:"order"`
}

type ordersResponse struct {
	handler.Envelope
	Orders []OrderDTO `json:"orders"`
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := handler.DecodeJSON(r, "order.create", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), domain.RequireUserID(r.Context()), req.toParams())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusCreated, orderResponse{
		Envelope: handler.Success("Order created successfully"),
		Order:    toOrderDTO(order),
	})
}

// List handles GET /api/orders: recent orders the requester bought or sold.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListVisibleOrders(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

// MyOrders handles GET /api/orders/my-orders
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListMyOrders(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

// ShopOrders handles GET /api/orders/shop-orders?shopId=&status=
func (h *OrderHandler) ShopOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawShopID := q.Get("shopId")
	if rawShopID == "" {
		handler.ErrorResponse(w, r, domain.NewValidationError("order.shop_orders", "shopId", "Shop ID is required"))
		return
	}
	shopID, err := uuid.Parse(rawShopID)
	if err != nil {
		handler.ErrorResponse(w, r, domain.ErrShopNotFound)
		return
	}

	var status *domain.OrderStatus
	if raw := q.Get("status"); raw != "" {
		s, err := domain.ParseOrderStatus(raw)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		status = &s
	}

	orders, err := h.orders.ListShopOrders(r.Context(), domain.RequireUserID(r.Context()), shopID, status)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

// Get handles GET /api/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := handler.PathID(r, "id", domain.ErrOrderNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), domain.RequireUserID(r.Context()), orderID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, orderResponse{
		Envelope: handler.Success(""),
		Order:    toOrderDTO(order),
	})
}

// UpdateStatus handles PUT /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := handler.PathID(r, "id", domain.ErrOrderNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := handler.DecodeJSON(r, "order.update_status", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), domain.RequireUserID(r.Context()), orderID, status)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, orderResponse{
		Envelope: handler.Success("Order status updated"),
		Order:    toOrderDTO(order),
	})
}

// Cancel handles PUT /api/orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID, err := handler.PathID(r, "id", domain.ErrOrderNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), domain.RequireUserID(r.Context()), orderID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, orderResponse{
		Envelope: handler.Success("Order cancelled successfully"),
		Order:    toOrderDTO(order),
	})
}

func (h *OrderHandler) writeOrders(w http.ResponseWriter, orders []domain.Order) {
	handler.OK(w, http.StatusOK, ordersResponse{
		Envelope: handler.Success(""),
		Orders:   toOrderDTOs(orders),
	})
}
