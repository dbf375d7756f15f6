package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hugohenrick/loja-virtual/internal/domain/cart"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

const selectCartLine = `
	SELECT
		id, user_id::text, product_id, product_name, image_url, price,
		offer_discount_pct, subscriber_discount_pct, total_discount_pct,
		offer_discount_amount, subscriber_discount_amount, total_discount_amount,
		discounts, payable_price, created_at
	FROM cart_lines
`

// CartRepository implementa a interface cart.Repository usando PostgreSQL
type CartRepository struct {
	db *database.PostgresDB
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository(db *database.PostgresDB) *CartRepository {
	return &CartRepository{db: db}
}

// Create implementa cart.Repository.Create
func (r *CartRepository) Create(ctx context.Context, l *cart.Line) error {
	query := `
		INSERT INTO cart_lines (
			user_id, product_id, product_name, image_url, price,
			offer_discount_pct, subscriber_discount_pct, total_discount_pct,
			offer_discount_amount, subscriber_discount_amount, total_discount_amount,
			discounts, payable_price, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query,
		l.UserID,
		l.ProductID,
		l.ProductName,
		l.ImageURL,
		l.Price,
		l.OfferDiscountPct,
		l.SubscriberDiscountPct,
		l.TotalDiscountPct,
		l.OfferDiscountAmount,
		l.SubscriberDiscountAmount,
		l.TotalDiscountAmount,
		l.Discounts,
		l.PayablePrice,
		l.CreatedAt,
	).Scan(&l.ID)
	return translate(err, messages{reference: fmt.Sprintf("produto %d ou usuário inexistente", l.ProductID)})
}

// FindByID implementa cart.Repository.FindByID
func (r *CartRepository) FindByID(ctx context.Context, id int64) (*cart.Line, error) {
	l, err := scanCartLine(r.db.Conn(ctx).QueryRow(ctx, selectCartLine+" WHERE id = $1", id))
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("linha %d não encontrada no carrinho", id)})
	}
	return l, nil
}

// ListByUser implementa cart.Repository.ListByUser
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]*cart.Line, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, selectCartLine+" WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	lines := make([]*cart.Line, 0)
	for rows.Next() {
		l, err := scanCartLine(rows)
		if err != nil {
			return nil, translate(err, messages{})
		}
		lines = append(lines, l)
	}
	return lines, translate(rows.Err(), messages{})
}

// Delete implementa cart.Repository.Delete
func (r *CartRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, "DELETE FROM cart_lines WHERE id = $1", id)
	if err != nil {
		return translate(err, messages{})
	}
	return notFoundIfNone(tag, fmt.Sprintf("linha %d não encontrada no carrinho", id))
}

// DeleteByUser implementa cart.Repository.DeleteByUser
func (r *CartRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Conn(ctx).Exec(ctx, "DELETE FROM cart_lines WHERE user_id = $1", userID)
	return translate(err, messages{})
}

func scanCartLine(row pgx.Row) (*cart.Line, error) {
	l := &cart.Line{}
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.ProductID,
		&l.ProductName,
		&l.ImageURL,
		&l.Price,
		&l.OfferDiscountPct,
		&l.SubscriberDiscountPct,
		&l.TotalDiscountPct,
		&l.OfferDiscountAmount,
		&l.SubscriberDiscountAmount,
		&l.TotalDiscountAmount,
		&l.Discounts,
		&l.PayablePrice,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}
