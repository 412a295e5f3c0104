package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler/api"
	"github.com/dukerupert/kirana/internal/router"
	"github.com/dukerupert/kirana/internal/routes"
)

// Fake services. Each method delegates to a function field; an unset field
// fails the test through the panic the recovery middleware turns into a 500.

type fakeAuth struct {
	sendOTP   func(ctx context.Context, mobile string) (string, error)
	verifyOTP func(ctx context.Context, params domain.VerifyOTPParams) (*domain.Session, error)
	signup    func(ctx context.Context, params domain.SignupParams) (*domain.Session, error)
	login     func(ctx context.Context, mobile, password string) (*domain.Session, error)
	users     map[string]*domain.User
}

func (f *fakeAuth) SendOTP(ctx context.Context, mobile string) (string, error) {
	return f.sendOTP(ctx, mobile)
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, params domain.VerifyOTPParams) (*domain.Session, error) {
	return f.verifyOTP(ctx, params)
}

func (f *fakeAuth) Signup(ctx context.Context, params domain.SignupParams) (*domain.Session, error) {
	return f.signup(ctx, params)
}

func (f *fakeAuth) Login(ctx context.Context, mobile, password string) (*domain.Session, error) {
	return f.login(ctx, mobile, password)
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	user, ok := f.users[token]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

type fakeShops struct {
	domain.ShopService
	listShops func(ctx context.Context, filter domain.ShopFilter) ([]domain.Shop, error)
}

func (f *fakeShops) ListShops(ctx context.Context, filter domain.ShopFilter) ([]domain.Shop, error) {
	return f.listShops(ctx, filter)
}

type fakeProducts struct {
	domain.ProductService
	updateProduct func(ctx context.Context, requesterID, productID uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error)
	shopCatalog   func(ctx context.Context, requesterID, shopID uuid.UUID) (*domain.Shop, []domain.Product, error)
}

func (f *fakeProducts) UpdateProduct(ctx context.Context, requesterID, productID uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error) {
	return f.updateProduct(ctx, requesterID, productID, params)
}

func (f *fakeProducts) ShopCatalog(ctx context.Context, requesterID, shopID uuid.UUID) (*domain.Shop, []domain.Product, error) {
	return f.shopCatalog(ctx, requesterID, shopID)
}

type fakeCart struct {
	domain.CartService
	addItem        func(ctx context.Context, userID uuid.UUID, params domain.AddCartItemParams) ([]domain.CartItem, error)
	updateQuantity func(ctx context.Context, userID, productID uuid.UUID, quantity int) ([]domain.CartItem, error)
	clearCart      func(ctx context.Context, userID uuid.UUID) error
}

func (f *fakeCart) AddItem(ctx context.Context, userID uuid.UUID, params domain.AddCartItemParams) ([]domain.CartItem, error) {
	return f.addItem(ctx, userID, params)
}

func (f *fakeCart) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) ([]domain.CartItem, error) {
	return f.updateQuantity(ctx, userID, productID, quantity)
}

func (f *fakeCart) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return f.clearCart(ctx, userID)
}

type fakeOrders struct {
	domain.OrderService
	cancelOrder    func(ctx context.Context, requesterID, orderID uuid.UUID) (*domain.Order, error)
	listShopOrders func(ctx context.Context, requesterID, shopID uuid.UUID, status *domain.OrderStatus) ([]domain.Order, error)
}

func (f *fakeOrders) CancelOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*domain.Order, error) {
	return f.cancelOrder(ctx, requesterID, orderID)
}

func (f *fakeOrders) ListShopOrders(ctx context.Context, requesterID, shopID uuid.UUID, status *domain.OrderStatus) ([]domain.Order, error) {
	return f.listShopOrders(ctx, requesterID, shopID, status)
}

type fakeUsers struct {
	domain.UserService
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

// Test harness

var (
	buyer = &domain.User{ID: uuid.New(), Mobile: "9876543210", Name: "Asha", Role: domain.RoleBuyer, IsVerified: true}
	owner = &domain.User{ID: uuid.New(), Mobile: "9123456780", Name: "Ravi", Role: domain.RoleShopOwner, IsVerified: true}
)

const (
	buyerToken = "buyer-token"
	ownerToken = "owner-token"
)

type testServer struct {
	auth     *fakeAuth
	shops    *fakeShops
	products *fakeProducts
	cart     *fakeCart
	orders   *fakeOrders
	users    *fakeUsers
	db       fakePinger

	// chain runs after Recovery on every route
	chain []router.Middleware

	exposeOTP bool
}

func newTestServer() *testServer {
	return &testServer{
		auth: &fakeAuth{users: map[string]*domain.User{
			buyerToken: buyer,
			ownerToken: owner,
		}},
		shops:     &fakeShops{},
		products:  &fakeProducts{},
		cart:      &fakeCart{},
		orders:    &fakeOrders{},
		users:     &fakeUsers{},
		exposeOTP: true,
	}
}

func (s *testServer) handler() http.Handler {
	r := router.New(append([]router.Middleware{router.Recovery(nil)}, s.chain...)...)
	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Auth:           s.auth,
		HealthHandler:  api.NewHealthHandler(s.db, "test", nil),
		AuthHandler:    api.NewAuthHandler(s.auth, s.exposeOTP),
		ShopHandler:    api.NewShopHandler(s.shops),
		ProductHandler: api.NewProductHandler(s.products),
		CartHandler:    api.NewCartHandler(s.cart),
		OrderHandler:   api.NewOrderHandler(s.orders),
		UserHandler:    api.NewUserHandler(s.users),
	})
	return r
}

// do sends a request with an optional JSON body and bearer token.
func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}
