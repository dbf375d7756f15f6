package service

import (
	"context"

	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
)

// InvoiceService atende as vendas do back office e as compras do cliente
type InvoiceService struct {
	tx       Transactor
	invoices invoice.Repository
	clock    Clock
}

// NewInvoiceService cria uma nova instância de InvoiceService
func NewInvoiceService(tx Transactor, invoices invoice.Repository, clock Clock) *InvoiceService {
	return &InvoiceService{tx: tx, invoices: invoices, clock: clock}
}

// List lista todas as boletas
func (s *InvoiceService) List(ctx context.Context) ([]*invoice.Invoice, error) {
	return s.invoices.List(ctx)
}

// Get busca uma boleta com as linhas
func (s *InvoiceService) Get(ctx context.Context, number int64) (*invoice.Invoice, error) {
	return s.invoices.FindByNumber(ctx, number)
}

// MyPurchases lista as boletas do cliente autenticado
func (s *InvoiceService) MyPurchases(ctx context.Context, userID string) ([]*invoice.Invoice, error) {
	return s.invoices.ListByUser(ctx, userID)
}

// ChangeStatus aplica o novo status à boleta e grava status e datas juntos
func (s *InvoiceService) ChangeStatus(ctx context.Context, number int64, status string) (*invoice.Invoice, error) {
	target, err := invoice.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var inv *invoice.Invoice
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		inv, err = s.invoices.FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if err := inv.ApplyStatus(target, s.clock.Today()); err != nil {
			return err
		}
		return s.invoices.UpdateStatus(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}
