package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/service"
)

func TestInvoiceService_ChangeStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProduct(t, 1, "Camiseta", 10000, 0, 0)
	f.addUnits(t, 1, 1)
	u := f.register(t, "cliente", false)
	if _, err := f.cart.AddProduct(ctx, u.ID, 1); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	inv, err := f.cart.Checkout(ctx, u.ID)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	today := f.clock.Today()

	got, err := f.invoice.ChangeStatus(ctx, inv.Number, "Despachado")
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if got.Status != invoice.StatusDispatched || got.DispatchDate == nil || !got.DispatchDate.Equal(today) {
		t.Errorf("após despacho: %+v", got)
	}

	stored, _ := f.invoice.Get(ctx, inv.Number)
	if stored.Status != invoice.StatusDispatched || stored.DeliveryDate != nil {
		t.Errorf("boleta gravada = %+v", stored)
	}
	if len(stored.Lines) != 1 {
		t.Errorf("Lines = %d, want 1", len(stored.Lines))
	}

	// a data de despacho é mantida ao entregar em outro dia
	later := service.NewInvoiceService(f.store, f.invoices, service.Clock{
		Now:      func() time.Time { return fixedNow.AddDate(0, 0, 2) },
		Location: time.UTC,
	})
	got, err = later.ChangeStatus(ctx, inv.Number, "delivered")
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if !got.DispatchDate.Equal(today) || !got.DeliveryDate.Equal(today.AddDate(0, 0, 2)) {
		t.Errorf("após entrega: despacho %s, entrega %s", got.DispatchDate, got.DeliveryDate)
	}

	got, _ = later.ChangeStatus(ctx, inv.Number, "anulado")
	if got.Status != invoice.StatusCancelled || got.DispatchDate != nil || got.DeliveryDate != nil {
		t.Errorf("após anular: %+v", got)
	}
}

func TestInvoiceService_ChangeStatusErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.invoice.ChangeStatus(ctx, 1, "perdido"); !errors.Is(err, invoice.ErrInvalidStatus) {
		t.Errorf("status inválido: erro = %v, want ErrInvalidStatus", err)
	}
	if _, err := f.invoice.ChangeStatus(ctx, 42, "sold"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("boleta inexistente: erro = %v, want ErrNotFound", err)
	}
}
