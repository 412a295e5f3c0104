package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	myOrdersLimit      = 50
	shopOrdersLimit    = 100
	visibleOrdersLimit = 100

	orderSuffixLength = 5
	base36Digits      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type orderService struct {
	store  repository.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderService creates the order lifecycle manager.
func NewOrderService(store repository.Store, logger *slog.Logger) domain.OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateOrder validates the checkout, recomputes the total and writes the
// order header and its item snapshot in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, params domain.CreateOrderParams) (*domain.Order, error) {
	if params.ShopID == uuid.Nil {
		return nil, s.reject("missing_shop", domain.NewValidationError("order.create", "shopId", "shopId is required"))
	}
	if len(params.Items) == 0 {
		return nil, s.reject("empty", domain.ErrEmptyOrder)
	}
	for _, item := range params.Items {
		if !item.Valid() {
			return nil, s.reject("invalid_item", domain.ErrInvalidOrderItem)
		}
	}
	if !params.PaymentMethod.Valid() {
		return nil, s.reject("invalid_payment", domain.ErrInvalidPayment)
	}

	total := domain.OrderItemsTotal(params.Items)
	if !domain.ValidAmount(total) {
		return nil, s.reject("total_too_large", domain.ErrOrderTotalTooLarge)
	}
	if !total.Equal(params.TotalAmount.Round(2)) {
		return nil, s.reject("total_mismatch", domain.ErrOrderTotalMismatch)
	}

	shop, err := s.store.GetShopByID(ctx, uuidToPgtype(params.ShopID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, s.reject("shop_not_found", domain.ErrShopNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	orderNumber, err := s.orderNumber()
	if err != nil {
		return nil, err
	}

	var orderID pgtype.UUID
	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		order, err := q.CreateOrder(ctx, repository.CreateOrderParams{
			OrderNumber:     orderNumber,
			UserID:          uuidToPgtype(buyerID),
			ShopID:          shop.ID,
			TotalAmount:     total,
			Status:          string(domain.OrderStatusPending),
			PaymentMethod:   string(params.PaymentMethod),
			PaymentStatus:   string(domain.InitialPaymentStatus(params.PaymentMethod)),
			DeliveryAddress: optionalText(params.DeliveryAddress),
			Notes:           optionalText(params.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		orderID = order.ID

		for _, item := range params.Items {
			var productID pgtype.UUID
			if item.ProductID != nil {
				productID = uuidToPgtype(*item.ProductID)
			}
			_, err := q.CreateOrderItem(ctx, repository.CreateOrderItemParams{
				OrderID:   order.ID,
				ProductID: productID,
				Name:      strings.TrimSpace(item.Name),
				Price:     item.Price,
				Quantity:  int32(item.Quantity),
				Subtotal:  item.Subtotal(),
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if telemetry.Business != nil {
		method := string(params.PaymentMethod)
		telemetry.Business.OrdersCreated.WithLabelValues(method).Inc()
		telemetry.Business.OrderValue.WithLabelValues(method).Observe(total.InexactFloat64())
		telemetry.Business.OrderItemCount.Observe(float64(len(params.Items)))
	}

	s.logger.Info("order created",
		"order_number", orderNumber,
		"shop_id", params.ShopID,
		"total", total.StringFixed(2),
	)

	return s.loadOrder(ctx, pgtypeToUUID(orderID))
}

// orderNumber returns ORD-<base36 millis>-<random base36>, upper-cased.
// Collisions are left to the unique index.
func (s *orderService) orderNumber() (string, error) {
	suffix := make([]byte, orderSuffixLength)
	radix := big.NewInt(int64(len(base36Digits)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, radix)
		if err != nil {
			return "", fmt.Errorf("failed to generate order number: %w", err)
		}
		suffix[i] = base36Digits[n.Int64()]
	}
	stamp := strconv.FormatInt(s.now().UnixMilli(), 36)
	return strings.ToUpper("ORD-" + stamp + "-" + string(suffix)), nil
}

func (s *orderService) reject(reason string, err error) error {
	if telemetry.Business != nil {
		telemetry.Business.OrdersRejected.WithLabelValues(reason).Inc()
	}
	return err
}

// GetOrder returns the order to its buyer or the owner of its shop.
func (s *orderService) GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.VisibleTo(requesterID) {
		return nil, domain.ErrNotOrderViewer
	}
	return order, nil
}

// ListMyOrders returns the buyer's most recent orders.
func (s *orderService) ListMyOrders(ctx context.Context, buyerID uuid.UUID) ([]domain.Order, error) {
	rows, err := s.store.ListOrdersByUser(ctx, repository.ListOrdersByUserParams{
		UserID: uuidToPgtype(buyerID),
		Limit:  myOrdersLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]orderRow, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderRow(row))
	}
	return s.withItems(ctx, orders)
}

// ListShopOrders lists a shop's orders for its owner, optionally narrowed to
// one status.
func (s *orderService) ListShopOrders(ctx context.Context, requesterID, shopID uuid.UUID, status *domain.OrderStatus) ([]domain.Order, error) {
	shop, err := s.store.GetShopByID(ctx, uuidToPgtype(shopID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if pgtypeToUUID(shop.OwnerID) != requesterID {
		return nil, domain.ErrNotShopOrdersViewer
	}

	var statusFilter pgtype.Text
	if status != nil {
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		statusFilter = pgtype.Text{String: string(*status), Valid: true}
	}

	rows, err := s.store.ListOrdersByShop(ctx, repository.ListOrdersByShopParams{
		ShopID: shop.ID,
		Status: statusFilter,
		Limit:  shopOrdersLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shop orders: %w", err)
	}
	orders := make([]orderRow, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderRow(row))
	}
	return s.withItems(ctx, orders)
}

// ListVisibleOrders lists recent orders the requester bought or sold.
func (s *orderService) ListVisibleOrders(ctx context.Context, requesterID uuid.UUID) ([]domain.Order, error) {
	rows, err := s.store.ListOrdersVisibleToUser(ctx, repository.ListOrdersVisibleToUserParams{
		UserID: uuidToPgtype(requesterID),
		Limit:  visibleOrdersLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]orderRow, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderRow(row))
	}
	return s.withItems(ctx, orders)
}

// UpdateStatus moves the order along the status table on behalf of the shop
// owner. The write is conditional on the status read, so a concurrent change
// fails with ErrOrderStatusChanged instead of being overwritten.
func (s *orderService) UpdateStatus(ctx context.Context, requesterID, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Shop.OwnerID != requesterID {
		return nil, domain.ErrNotOrderShopOwner
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domain.ErrIllegalTransition.Wrapf("Cannot change order status from %s to %s", order.Status, status)
	}

	payment := order.PaymentStatus
	if status == domain.OrderStatusCancelled {
		payment = domain.PaymentStatusAfterCancel(payment)
	}

	return s.transition(ctx, order, status, payment)
}

// CancelOrder cancels a non-terminal order for its buyer. A paid order is
// flagged refunded; no money moves.
func (s *orderService) CancelOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Buyer.ID != requesterID {
		return nil, domain.ErrNotOrderOwner
	}
	if order.Status.IsTerminal() {
		return nil, domain.ErrAlreadyTerminal.Wrapf("Cannot cancel order with status: %s", order.Status)
	}

	return s.transition(ctx, order, domain.OrderStatusCancelled, domain.PaymentStatusAfterCancel(order.PaymentStatus))
}

func (s *orderService) transition(ctx context.Context, order *domain.Order, status domain.OrderStatus, payment domain.PaymentStatus) (*domain.Order, error) {
	_, err := s.store.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
		Status:        string(status),
		PaymentStatus: string(payment),
		ID:            uuidToPgtype(order.ID),
		CurrentStatus: string(order.Status),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrOrderStatusChanged
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.OrderTransitions.WithLabelValues(string(order.Status), string(status)).Inc()
		if payment == domain.PaymentStatusRefunded && order.PaymentStatus != domain.PaymentStatusRefunded {
			telemetry.Business.RefundsFlagged.Inc()
		}
	}

	s.logger.Info("order status changed",
		"order_number", order.OrderNumber,
		"from", order.Status,
		"to", status,
	)

	return s.loadOrder(ctx, order.ID)
}

// loadOrder reads an order with its shop, buyer and items.
func (s *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	row, err := s.store.GetOrderWithParties(ctx, uuidToPgtype(orderID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	orders, err := s.withItems(ctx, []orderRow{orderRow(row)})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// withItems attaches items to every order with a single query.
func (s *orderService) withItems(ctx context.Context, rows []orderRow) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]pgtype.UUID, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i, row := range rows {
		order := row.toDomain()
		orders = append(orders, order)
		ids = append(ids, row.Order.ID)
		index[order.ID] = i
	}

	items, err := s.store.ListOrderItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	for _, item := range items {
		if i, ok := index[pgtypeToUUID(item.OrderID)]; ok {
			orders[i].Items = append(orders[i].Items, toOrderItem(item))
		}
	}
	return orders, nil
}
