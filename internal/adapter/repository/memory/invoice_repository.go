package memory

import (
	"context"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

// InvoiceRepository implementa invoice.Repository em memória
type InvoiceRepository struct {
	store *Store
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// Create grava a boleta e suas linhas
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		found, err := exists(txn, tableUsers, "id", inv.UserID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("usuário %s não existe", inv.UserID)
		}

		seen := make(map[int64]bool, len(inv.Lines))
		for _, l := range inv.Lines {
			u, ok, err := first[warehouse.Unit](txn, tableUnits, "id", l.WarehouseUnitID)
			if err != nil {
				return err
			}
			if !ok || u.ProductID != l.ProductID {
				return apperr.ReferentialIntegrity("unidade %d do produto %d não existe", l.WarehouseUnitID, l.ProductID)
			}
			sold, err := isSold(txn, l.WarehouseUnitID)
			if err != nil {
				return err
			}
			if sold || seen[l.WarehouseUnitID] {
				return apperr.Conflict("a unidade %d já foi vendida", l.WarehouseUnitID)
			}
			seen[l.WarehouseUnitID] = true
		}

		number, err := nextID(txn, tableInvoices)
		if err != nil {
			return err
		}
		inv.Number = number
		for i := range inv.Lines {
			id, err := nextID(txn, tableInvoiceLines)
			if err != nil {
				return err
			}
			inv.Lines[i].ID = id
			inv.Lines[i].InvoiceNumber = number
			if err := insert(txn, tableInvoiceLines, inv.Lines[i]); err != nil {
				return err
			}
		}

		header := *inv
		header.Lines = nil
		header.DispatchDate = copyTime(inv.DispatchDate)
		header.DeliveryDate = copyTime(inv.DeliveryDate)
		return insert(txn, tableInvoices, header)
	})
}

// FindByNumber busca uma boleta pelo número, com as linhas
func (r *InvoiceRepository) FindByNumber(ctx context.Context, number int64) (*invoice.Invoice, error) {
	var found *invoice.Invoice
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		inv, ok, err := first[invoice.Invoice](txn, tableInvoices, "id", number)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("boleta %d não encontrada", number)
		}
		if inv.Lines, err = all[invoice.Line](txn, tableInvoiceLines, "invoice", number); err != nil {
			return err
		}
		found, err = withCustomer(txn, inv)
		return err
	})
	return found, err
}

// List lista todas as boletas ordenadas por número
func (r *InvoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	return r.list(ctx, "id")
}

// ListByUser lista as boletas de um cliente ordenadas por número
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]*invoice.Invoice, error) {
	return r.list(ctx, "user", userID)
}

func (r *InvoiceRepository) list(ctx context.Context, index string, args ...interface{}) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		rows, err := all[invoice.Invoice](txn, tableInvoices, index, args...)
		if err != nil {
			return err
		}
		for _, inv := range rows {
			withName, err := withCustomer(txn, inv)
			if err != nil {
				return err
			}
			invoices = append(invoices, withName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// UpdateStatus grava o status e as três datas da boleta
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, inv *invoice.Invoice) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		stored, ok, err := first[invoice.Invoice](txn, tableInvoices, "id", inv.Number)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("boleta %d não encontrada", inv.Number)
		}
		stored.Status = inv.Status
		stored.SaleDate = inv.SaleDate
		stored.DispatchDate = copyTime(inv.DispatchDate)
		stored.DeliveryDate = copyTime(inv.DeliveryDate)
		return insert(txn, tableInvoices, stored)
	})
}

// withCustomer preenche os dados do cliente como o join da versão PostgreSQL
func withCustomer(txn *memdb.Txn, inv invoice.Invoice) (*invoice.Invoice, error) {
	u, ok, err := first[user.User](txn, tableUsers, "id", inv.UserID)
	if err != nil {
		return nil, err
	}
	if ok {
		inv.CustomerName = u.FullName()
	}
	p, _, err := first[user.Profile](txn, tableProfiles, "id", inv.UserID)
	if err != nil {
		return nil, err
	}
	inv.Subscribed = p.Subscribed
	inv.DispatchDate = copyTime(inv.DispatchDate)
	inv.DeliveryDate = copyTime(inv.DeliveryDate)
	return &inv, nil
}
