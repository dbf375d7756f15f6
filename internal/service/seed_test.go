package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/service"
)

func TestSeedService_Run(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seed := service.NewSeedService(f.store, f.categories, f.product, f.warehouse, f.users)
	admin := service.AdminAccount{Username: "admin", Password: "admin123", Email: "admin@loja.cl"}

	result, err := seed.Run(ctx, admin, true)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.AdminCreated {
		t.Error("administrador não foi criado")
	}
	if result.Products != 5 || result.Units != 14 {
		t.Errorf("result = %+v, want 5 produtos e 14 unidades", result)
	}
	// a categoria 1 já existe na fixture
	if result.Categories != 2 {
		t.Errorf("Categories = %d, want 2", result.Categories)
	}

	u, err := f.users.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if u.Role != user.RoleAdmin || !u.CheckPassword("admin123") {
		t.Errorf("administrador inválido: %+v", u)
	}

	stock, err := f.catalog.ResolveStock(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if stock.Count != 0 {
		t.Errorf("produto 4 deveria estar esgotado, count = %d", stock.Count)
	}

	again, err := seed.Run(ctx, admin, true)
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}
	if again.AdminCreated || again.Products != 0 || again.Units != 0 {
		t.Errorf("segunda execução duplicou dados: %+v", again)
	}
}

func TestSeedService_AdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seed := service.NewSeedService(f.store, f.categories, f.product, f.warehouse, f.users)

	result, err := seed.Run(ctx, service.AdminAccount{Username: "admin", Password: "admin123", Email: "admin@loja.cl"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !result.AdminCreated || result.Products != 0 {
		t.Errorf("result = %+v", result)
	}

	products, err := f.product.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Errorf("catálogo deveria estar vazio, tem %d produtos", len(products))
	}
}

func TestSeedService_InvalidAdminRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seed := service.NewSeedService(f.store, f.categories, f.product, f.warehouse, f.users)

	_, err := seed.Run(ctx, service.AdminAccount{Username: "admin", Password: "123", Email: "admin@loja.cl"}, true)
	if !errors.Is(err, user.ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}

	if _, err := f.users.FindByUsername(ctx, "admin"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("administrador não deveria existir, err = %v", err)
	}
}
