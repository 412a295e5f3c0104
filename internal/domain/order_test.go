package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled,
	}
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusConfirmed}:   true,
		{OrderStatusPending, OrderStatusCancelled}:   true,
		{OrderStatusConfirmed, OrderStatusPreparing}: true,
		{OrderStatusConfirmed, OrderStatusCancelled}: true,
		{OrderStatusPreparing, OrderStatusReady}:     true,
		{OrderStatusReady, OrderStatusCompleted}:     true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]OrderStatus{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	tests := map[OrderStatus]bool{
		OrderStatusPending:   false,
		OrderStatusConfirmed: false,
		OrderStatusPreparing: false,
		OrderStatusReady:     false,
		OrderStatusCompleted: true,
		OrderStatusCancelled: true,
	}
	for status, want := range tests {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if s, err := ParseOrderStatus("ready"); err != nil || s != OrderStatusReady {
		t.Errorf("ParseOrderStatus(ready) = %q, %v", s, err)
	}
	for _, in := range []string{"", "shipped", "READY"} {
		if _, err := ParseOrderStatus(in); err != ErrInvalidStatus {
			t.Errorf("ParseOrderStatus(%q) error = %v, want ErrInvalidStatus", in, err)
		}
	}
}

func TestPaymentStatusRules(t *testing.T) {
	if got := InitialPaymentStatus(PaymentMethodCash); got != PaymentStatusPending {
		t.Errorf("cash initial = %q", got)
	}
	if got := InitialPaymentStatus(PaymentMethodOnline); got != PaymentStatusPaid {
		t.Errorf("online initial = %q", got)
	}
	if got := PaymentStatusAfterCancel(PaymentStatusPaid); got != PaymentStatusRefunded {
		t.Errorf("paid after cancel = %q", got)
	}
	if got := PaymentStatusAfterCancel(PaymentStatusPending); got != PaymentStatusPending {
		t.Errorf("pending after cancel = %q", got)
	}
	if PaymentMethod("card").Valid() {
		t.Error("card is not a payment method")
	}
}

func TestOrderItemsTotal(t *testing.T) {
	items := []OrderItemInput{
		{Name: "Rice", Price: decimal.RequireFromString("50"), Quantity: 3},
		{Name: "Dal", Price: decimal.RequireFromString("12.335"), Quantity: 2},
	}

	if got := items[0].Subtotal(); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("subtotal = %s, want 150", got)
	}
	if got := items[1].Subtotal(); !got.Equal(decimal.RequireFromString("24.67")) {
		t.Errorf("subtotal = %s, want 24.67", got)
	}
	if got := OrderItemsTotal(items); !got.Equal(decimal.RequireFromString("174.67")) {
		t.Errorf("total = %s, want 174.67", got)
	}
}

func TestOrder_VisibleTo(t *testing.T) {
	buyer, owner, stranger := uuid.New(), uuid.New(), uuid.New()
	order := &Order{Buyer: OrderBuyer{ID: buyer}, Shop: OrderShop{OwnerID: owner}}

	if !order.VisibleTo(buyer) || !order.VisibleTo(owner) {
		t.Error("buyer and shop owner should see the order")
	}
	if order.VisibleTo(stranger) {
		t.Error("stranger should not see the order")
	}
}

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ProductName: "A", Price: decimal.NewFromInt(50), Quantity: 3},
		{ProductName: "B", Price: decimal.RequireFromString("9.50"), Quantity: 2},
	}

	if got := items[0].Subtotal(); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("subtotal = %s, want 150", got)
	}
	if got := CartTotal(items); !got.Equal(decimal.NewFromInt(169)) {
		t.Errorf("total = %s, want 169", got)
	}
	if got := CartTotal(nil); !got.IsZero() {
		t.Errorf("empty total = %s", got)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(""); err != nil || r != RoleBuyer {
		t.Errorf("ParseRole(\"\") = %q, %v", r, err)
	}
	if r, err := ParseRole("shopowner"); err != nil || r != RoleShopOwner {
		t.Errorf("ParseRole(shopowner) = %q, %v", r, err)
	}
	if _, err := ParseRole("admin"); err != ErrInvalidRole {
		t.Errorf("ParseRole(admin) error = %v", err)
	}
}

func TestCoordinates_Valid(t *testing.T) {
	if !(Coordinates{Lat: 12.97, Lng: 77.59}).Valid() {
		t.Error("Bengaluru should be valid")
	}
	if (Coordinates{Lat: 91, Lng: 0}).Valid() || (Coordinates{Lat: 0, Lng: -181}).Valid() {
		t.Error("out of range coordinates should be invalid")
	}
}

func TestOrderItemInput_Valid(t *testing.T) {
	tooMany := MaxQuantity
	tooMany++

	tests := []struct {
		name string
		item OrderItemInput
		want bool
	}{
		{"whole paise", OrderItemInput{Name: "Rice", Price: decimal.RequireFromString("50.25"), Quantity: 3}, true},
		{"trailing zeros", OrderItemInput{Name: "Rice", Price: decimal.RequireFromString("50.2500"), Quantity: 3}, true},
		{"fractional paise", OrderItemInput{Name: "Dal", Price: decimal.RequireFromString("12.335"), Quantity: 2}, false},
		{"price past column", OrderItemInput{Name: "Dal", Price: decimal.RequireFromString("100000000"), Quantity: 1}, false},
		{"blank name", OrderItemInput{Name: "  ", Price: decimal.NewFromInt(1), Quantity: 1}, false},
		{"zero quantity", OrderItemInput{Name: "Dal", Price: decimal.NewFromInt(1), Quantity: 0}, false},
		{"quantity past column", OrderItemInput{Name: "Dal", Price: decimal.NewFromInt(1), Quantity: tooMany}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidAmount(t *testing.T) {
	if !ValidAmount(MaxAmount) {
		t.Error("MaxAmount should be valid")
	}
	if ValidAmount(MaxAmount.Add(decimal.RequireFromString("0.01"))) {
		t.Error("amount past NUMERIC(10,2) should be invalid")
	}
	if ValidAmount(decimal.RequireFromString("-0.01")) {
		t.Error("negative amount should be invalid")
	}
}
