package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

const selectInvoice = `
	SELECT
		i.number, i.user_id::text, TRIM(u.first_name || ' ' || u.last_name), COALESCE(pr.subscribed, FALSE),
		i.total, i.status, i.sale_date, i.dispatch_date, i.delivery_date
	FROM
		invoices i
		JOIN users u ON u.id = i.user_id
		LEFT JOIN profiles pr ON pr.user_id = i.user_id
`

// InvoiceRepository implementa a interface invoice.Repository usando PostgreSQL
type InvoiceRepository struct {
	db *database.PostgresDB
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *database.PostgresDB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create implementa invoice.Repository.Create. Deve rodar dentro de uma transação
// para que a boleta e as linhas sejam gravadas juntas.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	conn := r.db.Conn(ctx)

	err := conn.QueryRow(ctx, `
		INSERT INTO invoices (user_id, total, status, sale_date, dispatch_date, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING number
	`,
		inv.UserID,
		inv.Total,
		string(inv.Status),
		inv.SaleDate,
		inv.DispatchDate,
		inv.DeliveryDate,
	).Scan(&inv.Number)
	if err != nil {
		return translate(err, messages{reference: fmt.Sprintf("usuário %s não existe", inv.UserID)})
	}

	if len(inv.Lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range inv.Lines {
		l := &inv.Lines[i]
		l.InvoiceNumber = inv.Number
		batch.Queue(`
			INSERT INTO invoice_lines (
				invoice_number, warehouse_unit_id, product_id, product_name, price,
				offer_discount_pct, subscriber_discount_pct, total_discount_pct, discounts, payable_price
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			)
			RETURNING id
		`,
			l.InvoiceNumber,
			l.WarehouseUnitID,
			l.ProductID,
			l.ProductName,
			l.Price,
			l.OfferDiscountPct,
			l.SubscriberDiscountPct,
			l.TotalDiscountPct,
			l.Discounts,
			l.PayablePrice,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&l.ID)
		})
	}

	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		return translate(err, messages{
			conflict:  "uma das unidades já foi vendida",
			reference: "unidade ou produto inexistente",
		})
	}
	return nil
}

// FindByNumber implementa invoice.Repository.FindByNumber
func (r *InvoiceRepository) FindByNumber(ctx context.Context, number int64) (*invoice.Invoice, error) {
	conn := r.db.Conn(ctx)

	inv, err := scanInvoice(conn.QueryRow(ctx, selectInvoice+" WHERE i.number = $1", number))
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("boleta %d não encontrada", number)})
	}

	rows, err := conn.Query(ctx, `
		SELECT
			id, invoice_number, warehouse_unit_id, product_id, product_name, price,
			offer_discount_pct, subscriber_discount_pct, total_discount_pct, discounts, payable_price
		FROM invoice_lines
		WHERE invoice_number = $1
		ORDER BY id
	`, number)
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	for rows.Next() {
		var l invoice.Line
		err := rows.Scan(
			&l.ID,
			&l.InvoiceNumber,
			&l.WarehouseUnitID,
			&l.ProductID,
			&l.ProductName,
			&l.Price,
			&l.OfferDiscountPct,
			&l.SubscriberDiscountPct,
			&l.TotalDiscountPct,
			&l.Discounts,
			&l.PayablePrice,
		)
		if err != nil {
			return nil, translate(err, messages{})
		}
		inv.Lines = append(inv.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, messages{})
	}

	return inv, nil
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	return r.query(ctx, selectInvoice+" ORDER BY i.number")
}

// ListByUser implementa invoice.Repository.ListByUser
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]*invoice.Invoice, error) {
	return r.query(ctx, selectInvoice+" WHERE i.user_id = $1 ORDER BY i.number", userID)
}

// UpdateStatus implementa invoice.Repository.UpdateStatus
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices SET
			status = $2,
			sale_date = $3,
			dispatch_date = $4,
			delivery_date = $5
		WHERE number = $1
	`

	tag, err := r.db.Conn(ctx).Exec(ctx, query,
		inv.Number,
		string(inv.Status),
		inv.SaleDate,
		inv.DispatchDate,
		inv.DeliveryDate,
	)
	if err != nil {
		return translate(err, messages{})
	}
	return notFoundIfNone(tag, fmt.Sprintf("boleta %d não encontrada", inv.Number))
}

func (r *InvoiceRepository) query(ctx context.Context, sql string, args ...any) ([]*invoice.Invoice, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	invoices := make([]*invoice.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, translate(err, messages{})
		}
		invoices = append(invoices, inv)
	}
	return invoices, translate(rows.Err(), messages{})
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	inv := &invoice.Invoice{}
	var status string
	err := row.Scan(
		&inv.Number,
		&inv.UserID,
		&inv.CustomerName,
		&inv.Subscribed,
		&inv.Total,
		&status,
		&inv.SaleDate,
		&inv.DispatchDate,
		&inv.DeliveryDate,
	)
	if err != nil {
		return nil, err
	}
	inv.Status = invoice.Status(status)
	return inv, nil
}
