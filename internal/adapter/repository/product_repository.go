package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

const selectProduct = `
	SELECT
		p.id, p.category_id, c.name, p.name, p.description, p.image_url,
		p.price, p.offer_discount_pct, p.subscriber_discount_pct, p.created_at, p.updated_at
	FROM
		products p
		JOIN categories c ON c.id = p.category_id
`

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db *database.PostgresDB
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *database.PostgresDB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, category_id, name, description, image_url,
			price, offer_discount_pct, subscriber_discount_pct, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.Conn(ctx).Exec(ctx, query,
		p.ID,
		p.CategoryID,
		p.Name,
		p.Description,
		p.ImageURL,
		p.Price,
		p.OfferDiscountPct,
		p.SubscriberDiscountPct,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return translate(err, messages{
		conflict:  fmt.Sprintf("já existe um produto com id %d", p.ID),
		reference: fmt.Sprintf("categoria %d não existe", p.CategoryID),
	})
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row := r.db.Conn(ctx).QueryRow(ctx, selectProduct+" WHERE p.id = $1", id)

	p, err := scanProduct(row)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("produto %d não encontrado", id)})
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	return r.query(ctx, selectProduct+" ORDER BY p.id")
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.query(ctx, selectProduct+" ORDER BY p.name, p.id")
	}
	return r.query(ctx, selectProduct+" WHERE p.name ILIKE $1 ORDER BY p.name, p.id", likePattern(query))
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*product.Product, error) {
	return r.query(ctx, selectProduct+" WHERE p.category_id = $1 ORDER BY p.name, p.id", categoryID)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			category_id = $2,
			name = $3,
			description = $4,
			image_url = $5,
			price = $6,
			offer_discount_pct = $7,
			subscriber_discount_pct = $8,
			updated_at = $9
		WHERE id = $1
	`

	tag, err := r.db.Conn(ctx).Exec(ctx, query,
		p.ID,
		p.CategoryID,
		p.Name,
		p.Description,
		p.ImageURL,
		p.Price,
		p.OfferDiscountPct,
		p.SubscriberDiscountPct,
		p.UpdatedAt,
	)
	if err != nil {
		return translate(err, messages{reference: fmt.Sprintf("categoria %d não existe", p.CategoryID)})
	}
	return notFoundIfNone(tag, fmt.Sprintf("produto %d não encontrado", p.ID))
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return translate(err, messages{
			reference: fmt.Sprintf("o produto %d está referenciado por estoque, carrinhos ou boletas", id),
		})
	}
	return notFoundIfNone(tag, fmt.Sprintf("produto %d não encontrado", id))
}

func (r *ProductRepository) query(ctx context.Context, sql string, args ...any) ([]*product.Product, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, translate(err, messages{})
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, messages{})
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&p.CategoryName,
		&p.Name,
		&p.Description,
		&p.ImageURL,
		&p.Price,
		&p.OfferDiscountPct,
		&p.SubscriberDiscountPct,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CategoryRepository implementa a interface product.CategoryRepository usando PostgreSQL
type CategoryRepository struct {
	db *database.PostgresDB
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *database.PostgresDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create implementa product.CategoryRepository.Create; o id é gerado quando não informado
func (r *CategoryRepository) Create(ctx context.Context, c *product.Category) error {
	var err error
	conflict := messages{conflict: fmt.Sprintf("já existe a categoria %q", c.Name)}

	if c.ID == 0 {
		err = r.db.Conn(ctx).QueryRow(ctx,
			"INSERT INTO categories (name) VALUES ($1) RETURNING id", c.Name,
		).Scan(&c.ID)
		return translate(err, conflict)
	}

	_, err = r.db.Conn(ctx).Exec(ctx, "INSERT INTO categories (id, name) VALUES ($1, $2)", c.ID, c.Name)
	if err != nil {
		return translate(err, conflict)
	}

	// mantém a sequência à frente dos ids informados
	_, err = r.db.Conn(ctx).Exec(ctx,
		"SELECT setval(pg_get_serial_sequence('categories', 'id'), GREATEST((SELECT MAX(id) FROM categories), 1))")
	return translate(err, messages{})
}

// FindByID implementa product.CategoryRepository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*product.Category, error) {
	c := &product.Category{}
	err := r.db.Conn(ctx).QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("categoria %d não encontrada", id)})
	}
	return c, nil
}

// List implementa product.CategoryRepository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*product.Category, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, translate(err, messages{})
	}
	defer rows.Close()

	categories := make([]*product.Category, 0)
	for rows.Next() {
		c := &product.Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, translate(err, messages{})
		}
		categories = append(categories, c)
	}
	return categories, translate(rows.Err(), messages{})
}
