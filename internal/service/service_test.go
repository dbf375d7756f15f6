package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/service"
)

// fixture monta todos os serviços sobre um Store em memória
type fixture struct {
	store      *memory.Store
	products   *memory.ProductRepository
	categories *memory.CategoryRepository
	units      *memory.WarehouseRepository
	carts      *memory.CartRepository
	invoices   *memory.InvoiceRepository
	users      *memory.UserRepository
	profiles   *memory.ProfileRepository
	clock      service.Clock

	catalog   *service.CatalogService
	cart      *service.CartService
	warehouse *service.WarehouseService
	invoice   *service.InvoiceService
	product   *service.ProductService
	auth      *service.AuthService
}

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:      store,
		products:   memory.NewProductRepository(store),
		categories: memory.NewCategoryRepository(store),
		units:      memory.NewWarehouseRepository(store),
		carts:      memory.NewCartRepository(store),
		invoices:   memory.NewInvoiceRepository(store),
		users:      memory.NewUserRepository(store),
		profiles:   memory.NewProfileRepository(store),
		clock:      service.Clock{Now: func() time.Time { return fixedNow }, Location: time.UTC},
	}

	f.catalog = service.NewCatalogService(f.products, f.categories, f.units, f.profiles)
	f.cart = service.NewCartService(store, f.carts, f.products, f.users, f.profiles, f.units, f.invoices, f.clock)
	f.warehouse = service.NewWarehouseService(store, f.units, f.products)
	f.invoice = service.NewInvoiceService(store, f.invoices, f.clock)
	f.product = service.NewProductService(store, f.products, f.categories)
	f.auth = service.NewAuthService(store, f.users, f.profiles)

	if err := f.categories.Create(context.Background(), &product.Category{ID: 1, Name: "Roupas"}); err != nil {
		t.Fatalf("criar categoria: %v", err)
	}
	return f
}

func (f *fixture) addProduct(t *testing.T, id int64, name string, price int64, offer, subscriber int) *product.Product {
	t.Helper()
	p, err := f.product.Create(context.Background(), id, service.ProductInput{
		CategoryID:            1,
		Name:                  name,
		Price:                 price,
		OfferDiscountPct:      offer,
		SubscriberDiscountPct: subscriber,
	})
	if err != nil {
		t.Fatalf("criar produto: %v", err)
	}
	return p
}

func (f *fixture) addUnits(t *testing.T, productID int64, quantity int) {
	t.Helper()
	if _, err := f.warehouse.AddUnits(context.Background(), productID, quantity); err != nil {
		t.Fatalf("adicionar unidades: %v", err)
	}
}

func (f *fixture) register(t *testing.T, username string, subscribed bool) *user.User {
	t.Helper()
	u, _, err := f.auth.Register(context.Background(), service.RegisterInput{
		Username:   username,
		FirstName:  "Cliente",
		LastName:   username,
		Email:      username + "@example.com",
		Password:   "segredo1",
		NationalID: "11.111.111-1",
		Address:    "Av. Central 10",
		Subscribed: subscribed,
	})
	if err != nil {
		t.Fatalf("registrar cliente: %v", err)
	}
	return u
}

func TestClock_Today(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("zona horária indisponível: %v", err)
	}
	c := service.Clock{Now: func() time.Time { return time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC) }, Location: loc}
	if got := c.Today(); got.Day() != 19 {
		t.Errorf("Today() = %s, want dia 19", got)
	}
}
