package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/pricing"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

func TestCatalogService_ProductInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, 1, "Camiseta", 10000, 20, 10)
	f.addUnits(t, 1, 2)
	subscriber := f.register(t, "assinante", true)
	regular := f.register(t, "comum", false)

	tests := []struct {
		name    string
		viewer  string
		payable int64
	}{
		{"anonymous", "", 8000},
		{"regular customer", regular.ID, 8000},
		{"subscriber", subscriber.ID, 7000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := f.catalog.ProductInfo(ctx, 1, tt.viewer)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got := info.Quote.Payable(); got != tt.payable {
				t.Errorf("Payable() = %d, want %d", got, tt.payable)
			}
			if info.Quote.SubscriberPrice != 7000 || info.Quote.OfferPrice != 8000 {
				t.Errorf("Quote = %+v", info.Quote)
			}
			if info.Availability.Status != warehouse.StatusAvailableOnOffer || info.Availability.Count != 2 {
				t.Errorf("Availability = %+v", info.Availability)
			}
			if len(info.Labels) != 3 || info.Labels[0].Kind != pricing.LabelNormalStruck {
				t.Errorf("Labels = %+v", info.Labels)
			}
		})
	}

	if _, err := f.catalog.ProductInfo(ctx, 99, ""); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("produto inexistente: erro = %v, want ErrNotFound", err)
	}
}

func TestCatalogService_ResolveStockReadsCurrentCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, 1, "Camiseta", 10000, 0, 0)

	a, err := f.catalog.ResolveStock(ctx, 1)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if a.Status != warehouse.StatusSoldOut {
		t.Errorf("sem unidades: Status = %s, want sold_out", a.Status)
	}

	f.addUnits(t, 1, 1)
	a, _ = f.catalog.ResolveStock(ctx, 1)
	if a.Status != warehouse.StatusAvailable || a.Count != 1 {
		t.Errorf("após adicionar: %+v", a)
	}
}

func TestCatalogService_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, 1, "Camiseta", 10000, 0, 0)
	f.addProduct(t, 2, "Abrigo", 30000, 10, 0)
	f.addProduct(t, 3, "Calça", 20000, 0, 0)

	all, err := f.catalog.Search(ctx, "", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(all) != 3 || all[0].Product.Name != "Abrigo" || all[2].Product.Name != "Camiseta" {
		t.Errorf("Search ordem inesperada")
	}

	found, _ := f.catalog.Search(ctx, "camis", "")
	if len(found) != 1 || found[0].Product.ID != 1 {
		t.Errorf("Search(camis) = %d resultados", len(found))
	}
}

func TestCatalogService_ProductsByCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, 1, "Camiseta", 10000, 0, 0)

	products, err := f.catalog.ProductsByCategory(ctx, 1)
	if err != nil || len(products) != 1 {
		t.Fatalf("ProductsByCategory = %v, %v", products, err)
	}
	if _, err := f.catalog.ProductsByCategory(ctx, 42); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("categoria inexistente: erro = %v, want ErrNotFound", err)
	}
}
