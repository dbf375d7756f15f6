package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/adapter/api/route"
	"github.com/hugohenrick/loja-virtual/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type testServer struct {
	router     *gin.Engine
	jwt        *auth.JWTService
	users      *memory.UserRepository
	categories *memory.CategoryRepository
	products   *service.ProductService
	warehouse  *service.WarehouseService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	categories := memory.NewCategoryRepository(store)
	units := memory.NewWarehouseRepository(store)
	carts := memory.NewCartRepository(store)
	invoices := memory.NewInvoiceRepository(store)
	users := memory.NewUserRepository(store)
	profiles := memory.NewProfileRepository(store)
	clock := service.Clock{Now: func() time.Time { return fixedNow }, Location: time.UTC}
	log := logger.NewNop()

	jwtService, err := auth.NewJWTService("segredo-de-teste", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	catalogService := service.NewCatalogService(products, categories, units, profiles)
	cartService := service.NewCartService(store, carts, products, users, profiles, units, invoices, clock)
	invoiceService := service.NewInvoiceService(store, invoices, clock)
	productService := service.NewProductService(store, products, categories)
	warehouseService := service.NewWarehouseService(store, units, products)
	authService := service.NewAuthService(store, users, profiles)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/health", controller.NewHealthController("memory", nil, log).Check)
	route.SetupAuthRoutes(api, controller.NewAuthController(authService, jwtService, log), jwtService)
	route.SetupCatalogRoutes(api, controller.NewCatalogController(catalogService, log), jwtService)
	route.SetupCartRoutes(api, controller.NewCartController(cartService, invoiceService, log), jwtService)
	route.SetupAdminRoutes(api, route.AdminControllers{
		Products:  controller.NewProductController(productService, log),
		Warehouse: controller.NewWarehouseController(warehouseService, log),
		Sales:     controller.NewSalesController(invoiceService, log),
	}, jwtService)

	if err := categories.Create(context.Background(), &product.Category{ID: 1, Name: "Roupas"}); err != nil {
		t.Fatal(err)
	}

	return &testServer{
		router:     router,
		jwt:        jwtService,
		users:      users,
		categories: categories,
		products:   productService,
		warehouse:  warehouseService,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// expiredToken assina com o segredo de teste um token que expirou há expiredFor
func expiredToken(t *testing.T, userID string, expiredFor time.Duration) string {
	t.Helper()
	expiresAt := time.Now().Add(-expiredFor)
	claims := auth.JWTClaims{
		UserID:   userID,
		Username: "ana",
		Role:     auth.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			Issuer:    "loja-virtual-api",
			Subject:   userID,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-de-teste"))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("resposta inválida %q: %v", w.Body.String(), err)
	}
	return v
}

// customer cadastra e autentica um cliente pela API, retornando o token
func (s *testServer) customer(t *testing.T, username string, subscribed bool) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Username:   username,
		FirstName:  "Cliente",
		LastName:   username,
		Email:      username + "@example.com",
		Password:   "segredo1",
		NationalID: "11.111.111-1",
		Address:    "Av. Central 10",
		Subscribed: subscribed,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: username, Password: "segredo1"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	return decode[dto.LoginResponse](t, w).AccessToken
}

func (s *testServer) admin(t *testing.T) string {
	t.Helper()

	u, err := user.NewUser("admin", "Administrador", "", "admin@loja.cl", "admin123", user.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.users.Create(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	token, _, err := s.jwt.GenerateToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (s *testServer) stock(t *testing.T, id int64, price int64, offer, subscriber, units int) {
	t.Helper()
	ctx := context.Background()

	_, err := s.products.Create(ctx, id, service.ProductInput{
		CategoryID:            1,
		Name:                  "Polera",
		Price:                 price,
		OfferDiscountPct:      offer,
		SubscriberDiscountPct: subscriber,
	})
	if err != nil {
		t.Fatal(err)
	}
	if units > 0 {
		if _, err := s.warehouse.AddUnits(ctx, id, units); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode[dto.HealthResponse](t, w); got.Status != "ok" || got.Storage != "memory" {
		t.Errorf("health = %+v", got)
	}
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.customer(t, "ana", true)

	w := s.do(t, http.MethodGet, "/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, body = %s", w.Code, w.Body.String())
	}
	me := decode[dto.UserResponse](t, w)
	if me.Username != "ana" || me.Role != "customer" || me.Profile == nil || !me.Profile.Subscribed {
		t.Errorf("me = %+v", me)
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"duplicate username", http.MethodPost, "/auth/register", "", dto.RegisterRequest{
			Username: "ANA", FirstName: "A", LastName: "B", Email: "outra@example.com", Password: "segredo1", NationalID: "1-9",
		}, http.StatusConflict},
		{"missing fields", http.MethodPost, "/auth/register", "", map[string]string{"username": "x"}, http.StatusBadRequest},
		{"wrong password", http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "ana", Password: "errada1"}, http.StatusUnauthorized},
		{"unknown user", http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "bia", Password: "segredo1"}, http.StatusUnauthorized},
		{"me without token", http.MethodGet, "/auth/me", "", nil, http.StatusUnauthorized},
		{"refresh", http.MethodPost, "/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: token}, http.StatusOK},
		{"refresh garbage", http.MethodPost, "/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: "lixo"}, http.StatusUnauthorized},
		{"refresh recently expired", http.MethodPost, "/auth/refresh-token", "", dto.RefreshTokenRequest{
			RefreshToken: expiredToken(t, me.ID, 2*time.Hour),
		}, http.StatusOK},
		{"refresh expired long ago", http.MethodPost, "/auth/refresh-token", "", dto.RefreshTokenRequest{
			RefreshToken: expiredToken(t, me.ID, 365*24*time.Hour),
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)
	s.stock(t, 1, 10000, 20, 10, 2)
	s.stock(t, 2, 5000, 0, 0, 0)
	token := s.customer(t, "ana", true)

	w := s.do(t, http.MethodGet, "/catalog/products/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	anon := decode[dto.CatalogProductResponse](t, w)
	if anon.PayablePrice != 8000 {
		t.Errorf("preço anônimo = %d, want 8000", anon.PayablePrice)
	}
	if anon.Availability.Status != "available_on_offer" || anon.Availability.Count != 2 {
		t.Errorf("availability = %+v", anon.Availability)
	}

	w = s.do(t, http.MethodGet, "/catalog/products/1", token, nil)
	if got := decode[dto.CatalogProductResponse](t, w).PayablePrice; got != 7000 {
		t.Errorf("preço assinante = %d, want 7000", got)
	}

	w = s.do(t, http.MethodGet, "/catalog/products/2", "", nil)
	if got := decode[dto.CatalogProductResponse](t, w).Availability; got.Status != "sold_out" || got.Banner != "ESGOTADO" {
		t.Errorf("availability = %+v", got)
	}

	w = s.do(t, http.MethodGet, "/catalog/products/1/stock", "", nil)
	if got := decode[dto.AvailabilityResponse](t, w); got.Count != 2 || got.Status != "available_on_offer" {
		t.Errorf("stock = %+v", got)
	}
	if _, err := s.warehouse.AddUnits(context.Background(), 1, 1); err != nil {
		t.Fatal(err)
	}
	w = s.do(t, http.MethodGet, "/catalog/products/1/stock", "", nil)
	if got := decode[dto.AvailabilityResponse](t, w); got.Count != 3 {
		t.Errorf("stock após reposição = %d, want 3", got.Count)
	}

	w = s.do(t, http.MethodGet, "/catalog/products?q=pol", "", nil)
	if got := decode[[]dto.CatalogProductResponse](t, w); len(got) != 2 {
		t.Errorf("busca retornou %d produtos, want 2", len(got))
	}

	w = s.do(t, http.MethodGet, "/catalog/categories/1/products", "", nil)
	if got := decode[[]dto.CategoryProductResponse](t, w); len(got) != 2 {
		t.Errorf("categoria retornou %d produtos, want 2", len(got))
	}

	for path, want := range map[string]int{
		"/catalog/products/99":           http.StatusNotFound,
		"/catalog/products/abc":          http.StatusBadRequest,
		"/catalog/products/99/stock":     http.StatusNotFound,
		"/catalog/categories/9/products": http.StatusNotFound,
	} {
		if w := s.do(t, http.MethodGet, path, "", nil); w.Code != want {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, want)
		}
	}
}

func TestCartAndCheckout(t *testing.T) {
	s := newTestServer(t)
	s.stock(t, 1, 10000, 20, 10, 1)
	token := s.customer(t, "ana", true)

	if w := s.do(t, http.MethodPost, "/cart/checkout", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("checkout com carrinho vazio status = %d, want 400", w.Code)
	}

	w := s.do(t, http.MethodPost, "/cart/items", token, dto.AddCartItemRequest{ProductID: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/cart", token, nil)
	view := decode[dto.CartResponse](t, w)
	if len(view.Lines) != 1 || view.Total != 7000 || view.Net+view.Tax != view.Total {
		t.Errorf("cart = %+v", view)
	}

	w = s.do(t, http.MethodPost, "/cart/checkout", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d, body = %s", w.Code, w.Body.String())
	}
	inv := decode[dto.InvoiceResponse](t, w)
	if inv.Status != "sold" || inv.Total != 7000 || inv.SaleDate != "2026-10-19" || len(inv.Lines) != 1 {
		t.Errorf("invoice = %+v", inv)
	}

	w = s.do(t, http.MethodGet, "/purchases", token, nil)
	if got := decode[[]dto.InvoiceResponse](t, w); len(got) != 1 || got[0].Number != inv.Number {
		t.Errorf("purchases = %+v", got)
	}

	// sem estoque: a segunda compra do mesmo produto é recusada
	s.do(t, http.MethodPost, "/cart/items", token, dto.AddCartItemRequest{ProductID: 1})
	if w := s.do(t, http.MethodPost, "/cart/checkout", token, nil); w.Code != http.StatusConflict {
		t.Errorf("checkout sem estoque status = %d, want 409", w.Code)
	}

	other := s.customer(t, "bia", false)
	w = s.do(t, http.MethodGet, "/cart", token, nil)
	lineID := decode[dto.CartResponse](t, w).Lines[0].ID
	if w := s.do(t, http.MethodDelete, "/cart/items/"+itoa(lineID), other, nil); w.Code != http.StatusNotFound {
		t.Errorf("remover linha alheia status = %d, want 404", w.Code)
	}
	if w := s.do(t, http.MethodDelete, "/cart/items/"+itoa(lineID), token, nil); w.Code != http.StatusNoContent {
		t.Errorf("remover linha status = %d, want 204", w.Code)
	}
}

func TestAdminAccess(t *testing.T) {
	s := newTestServer(t)
	customer := s.customer(t, "ana", false)

	if w := s.do(t, http.MethodGet, "/admin/products", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("sem token status = %d, want 401", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/admin/products", customer, nil); w.Code != http.StatusForbidden {
		t.Errorf("cliente status = %d, want 403", w.Code)
	}

	admin := s.admin(t)
	if w := s.do(t, http.MethodGet, "/cart", admin, nil); w.Code != http.StatusForbidden {
		t.Errorf("administrador no carrinho status = %d, want 403", w.Code)
	}
}

func TestAdminMaintenance(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin(t)

	create := dto.CreateProductRequest{ID: 10, ProductRequest: dto.ProductRequest{CategoryID: 1, Name: "Jeans", Price: 20000, OfferDiscountPct: 10}}
	if w := s.do(t, http.MethodPost, "/admin/products", admin, create); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	if w := s.do(t, http.MethodPost, "/admin/products", admin, create); w.Code != http.StatusConflict {
		t.Errorf("id repetido status = %d, want 409", w.Code)
	}

	invalid := create
	invalid.ID = 11
	invalid.OfferDiscountPct = 60
	invalid.SubscriberDiscountPct = 50
	if w := s.do(t, http.MethodPost, "/admin/products", admin, invalid); w.Code != http.StatusBadRequest {
		t.Errorf("descontos acima de 100 status = %d, want 400", w.Code)
	}

	if w := s.do(t, http.MethodPost, "/admin/warehouse", admin, dto.AddUnitsRequest{ProductID: 10, Quantity: 1001}); w.Code != http.StatusBadRequest {
		t.Errorf("quantidade acima do limite status = %d, want 400", w.Code)
	}

	w := s.do(t, http.MethodPost, "/admin/warehouse", admin, dto.AddUnitsRequest{ProductID: 10, Quantity: 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("add units status = %d, body = %s", w.Code, w.Body.String())
	}
	added := decode[dto.AddUnitsResponse](t, w)
	if len(added.UnitIDs) != 3 || added.Message != `Foram adicionadas 3 unidades de "Jeans" ao estoque` {
		t.Errorf("add units = %+v", added)
	}

	if w := s.do(t, http.MethodDelete, "/admin/products/10", admin, nil); w.Code != http.StatusConflict {
		t.Errorf("remover produto com estoque status = %d, want 409", w.Code)
	}

	w = s.do(t, http.MethodGet, "/admin/warehouse", admin, nil)
	units := decode[[]dto.UnitResponse](t, w)
	if len(units) != 3 || units[0].State != "No estoque" {
		t.Errorf("warehouse = %+v", units)
	}

	for _, id := range added.UnitIDs {
		if w := s.do(t, http.MethodDelete, "/admin/warehouse/"+itoa(id), admin, nil); w.Code != http.StatusNoContent {
			t.Fatalf("remover unidade status = %d", w.Code)
		}
	}
	if w := s.do(t, http.MethodDelete, "/admin/products/10", admin, nil); w.Code != http.StatusNoContent {
		t.Errorf("remover produto status = %d, want 204", w.Code)
	}
	if w := s.do(t, http.MethodDelete, "/admin/products/10", admin, nil); w.Code != http.StatusNotFound {
		t.Errorf("remover produto inexistente status = %d, want 404", w.Code)
	}
}

func TestSalesChangeStatus(t *testing.T) {
	s := newTestServer(t)
	s.stock(t, 1, 10000, 0, 0, 1)
	customer := s.customer(t, "ana", false)
	admin := s.admin(t)

	s.do(t, http.MethodPost, "/cart/items", customer, dto.AddCartItemRequest{ProductID: 1})
	inv := decode[dto.InvoiceResponse](t, s.do(t, http.MethodPost, "/cart/checkout", customer, nil))
	path := "/admin/sales/" + itoa(inv.Number)

	w := s.do(t, http.MethodPatch, path+"/status/Despachado", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[dto.InvoiceResponse](t, w)
	if got.Status != "dispatched" || got.DispatchDate != "2026-10-19" || got.DeliveryDate != "" {
		t.Errorf("invoice = %+v", got)
	}

	if w := s.do(t, http.MethodPatch, path+"/status/lost", admin, nil); w.Code != http.StatusBadRequest {
		t.Errorf("estado inválido status = %d, want 400", w.Code)
	}
	if w := s.do(t, http.MethodPatch, "/admin/sales/999/status/sold", admin, nil); w.Code != http.StatusNotFound {
		t.Errorf("boleta inexistente status = %d, want 404", w.Code)
	}

	w = s.do(t, http.MethodGet, "/admin/sales", admin, nil)
	sales := decode[[]dto.InvoiceResponse](t, w)
	if len(sales) != 1 || sales[0].CustomerName != "Cliente ana" || sales[0].StatusLabel != "Despachado" {
		t.Errorf("sales = %+v", sales)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
