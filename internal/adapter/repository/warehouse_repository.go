package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

// unidade vendida = referenciada por alguma linha de boleta
const unitSold = "EXISTS (SELECT 1 FROM invoice_lines il WHERE il.warehouse_unit_id = u.id)"

// WarehouseRepository implementa a interface warehouse.Repository usando PostgreSQL
type WarehouseRepository struct {
	db *database.PostgresDB
}

// NewWarehouseRepository cria uma nova instância de WarehouseRepository
func NewWarehouseRepository(db *database.PostgresDB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

// CreateBatch implementa warehouse.Repository.CreateBatch
func (r *WarehouseRepository) CreateBatch(ctx context.Context, productID int64, quantity int) ([]*warehouse.Unit, error) {
	query := `
		INSERT INTO warehouse_units (product_id, created_at)
		SELECT $1, $2 FROM generate_series(1, $3)
		RETURNING id, product_id, created_at
	`

	rows, err := r.db.Conn(ctx).Query(ctx, query, productID, time.Now(), quantity)
	if err != nil {
		return nil, translate(err, messages{reference: fmt.Sprintf("produto %d não existe", productID)})
	}
	defer rows.Close()

	units := make([]*warehouse.Unit, 0, quantity)
	for rows.Next() {
		u := &warehouse.Unit{}
		if err := rows.Scan(&u.ID, &u.ProductID, &u.CreatedAt); err != nil {
			return nil, translate(err, messages{})
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, messages{reference: fmt.Sprintf("produto %d não existe", productID)})
	}

	return units, nil
}

// FindByID implementa warehouse.Repository.FindByID
func (r *WarehouseRepository) FindByID(ctx context.Context, id int64) (*warehouse.Unit, error) {
	u := &warehouse.Unit{}
	err := r.db.Conn(ctx).QueryRow(ctx,
		"SELECT id, product_id, created_at FROM warehouse_units WHERE id = $1", id,
	).Scan(&u.ID, &u.ProductID, &u.CreatedAt)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("unidade %d não encontrada", id)})
	}
	return u, nil
}

// List implementa warehouse.Repository.List
func (r *WarehouseRepository) List(ctx context.Context) ([]*warehouse.UnitListing, error) {
	query := `
		SELECT
			u.id, u.product_id, u.created_at, p.name, c.name, p.image_url, ` + unitSold + `
		FROM
			warehouse_units u
			JOIN products p ON p.id = u.product_id
			JOIN categories c ON c.id = p.category_id
		ORDER BY u.id
	`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	listings := make([]*warehouse.UnitListing, 0)
	for rows.Next() {
		l := &warehouse.UnitListing{}
		if err := rows.Scan(&l.ID, &l.ProductID, &l.CreatedAt, &l.ProductName, &l.CategoryName, &l.ImageURL, &l.Sold); err != nil {
			return nil, translate(err, messages{})
		}
		listings = append(listings, l)
	}
	return listings, translate(rows.Err(), messages{})
}

// CountAvailable implementa warehouse.Repository.CountAvailable
func (r *WarehouseRepository) CountAvailable(ctx context.Context, productID int64) (int, error) {
	var count int
	err := r.db.Conn(ctx).QueryRow(ctx,
		"SELECT COUNT(*) FROM warehouse_units u WHERE u.product_id = $1 AND NOT "+unitSold, productID,
	).Scan(&count)
	if err != nil {
		return 0, translate(err, messages{})
	}
	return count, nil
}

// IsSold implementa warehouse.Repository.IsSold
func (r *WarehouseRepository) IsSold(ctx context.Context, id int64) (bool, error) {
	var sold bool
	err := r.db.Conn(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM invoice_lines WHERE warehouse_unit_id = $1)", id,
	).Scan(&sold)
	if err != nil {
		return false, translate(err, messages{})
	}
	return sold, nil
}

// ReserveAvailable implementa warehouse.Repository.ReserveAvailable. A linha fica
// bloqueada até o fim da transação; unidades bloqueadas por outras compras são puladas.
func (r *WarehouseRepository) ReserveAvailable(ctx context.Context, productID int64, exclude []int64) (*warehouse.Unit, error) {
	if exclude == nil {
		exclude = []int64{}
	}

	query := `
		SELECT u.id, u.product_id, u.created_at
		FROM warehouse_units u
		WHERE u.product_id = $1
			AND NOT (u.id = ANY($2))
			AND NOT ` + unitSold + `
		ORDER BY u.id
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	u := &warehouse.Unit{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, productID, exclude).Scan(&u.ID, &u.ProductID, &u.CreatedAt)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("nenhuma unidade disponível do produto %d", productID)})
	}
	return u, nil
}

// Delete implementa warehouse.Repository.Delete
func (r *WarehouseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, "DELETE FROM warehouse_units WHERE id = $1", id)
	if err != nil {
		return translate(err, messages{reference: fmt.Sprintf("a unidade %d aparece em boletas", id)})
	}
	return notFoundIfNone(tag, fmt.Sprintf("unidade %d não encontrada", id))
}
