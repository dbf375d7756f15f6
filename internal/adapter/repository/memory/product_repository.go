package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
)

// ProductRepository implementa product.Repository em memória
type ProductRepository struct {
	store *Store
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Create cria um novo produto
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		taken, err := exists(txn, tableProducts, "id", p.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("já existe um produto com id %d", p.ID)
		}
		c, ok, err := first[product.Category](txn, tableCategories, "id", p.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ReferentialIntegrity("categoria %d não existe", p.CategoryID)
		}

		now := time.Now()
		p.CategoryName = c.Name
		p.CreatedAt = now
		p.UpdatedAt = now
		return insert(txn, tableProducts, *p)
	})
}

// FindByID busca um produto pelo ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	var found *product.Product
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		p, ok, err := first[product.Product](txn, tableProducts, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("produto %d não encontrado", id)
		}
		found, err = withCategory(txn, p)
		return err
	})
	return found, err
}

// List lista todos os produtos ordenados por id
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	return r.list(ctx, "id", nil)
}

// Search lista os produtos ordenados por nome, filtrando pelo trecho do nome
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	products, err := r.list(ctx, "id", func(p product.Product) bool {
		return query == "" || strings.Contains(strings.ToLower(p.Name), query)
	})
	if err != nil {
		return nil, err
	}
	sortByName(products)
	return products, nil
}

// FindByCategory lista os produtos de uma categoria ordenados por nome
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*product.Product, error) {
	products, err := r.list(ctx, "category", nil, categoryID)
	if err != nil {
		return nil, err
	}
	sortByName(products)
	return products, nil
}

func (r *ProductRepository) list(ctx context.Context, index string, keep func(product.Product) bool, args ...interface{}) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		rows, err := all[product.Product](txn, tableProducts, index, args...)
		if err != nil {
			return err
		}
		for _, p := range rows {
			if keep != nil && !keep(p) {
				continue
			}
			withName, err := withCategory(txn, p)
			if err != nil {
				return err
			}
			products = append(products, withName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Update atualiza os dados de um produto existente
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		current, ok, err := first[product.Product](txn, tableProducts, "id", p.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("produto %d não encontrado", p.ID)
		}
		found, err := exists(txn, tableCategories, "id", p.CategoryID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("categoria %d não existe", p.CategoryID)
		}

		p.CreatedAt = current.CreatedAt
		p.UpdatedAt = time.Now()
		return insert(txn, tableProducts, *p)
	})
}

// Delete remove um produto que não esteja referenciado
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		p, ok, err := first[product.Product](txn, tableProducts, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("produto %d não encontrado", id)
		}

		references := []struct {
			table   string
			message string
		}{
			{tableUnits, "o produto %d possui unidades no estoque"},
			{tableCartLines, "o produto %d está em carrinhos"},
			{tableInvoiceLines, "o produto %d aparece em boletas"},
		}
		for _, ref := range references {
			used, err := exists(txn, ref.table, "product", id)
			if err != nil {
				return err
			}
			if used {
				return apperr.ReferentialIntegrity(ref.message, id)
			}
		}

		if err := txn.Delete(tableProducts, &p); err != nil {
			return dbError(err)
		}
		return nil
	})
}

// withCategory preenche o nome da categoria como o join da versão PostgreSQL
func withCategory(txn *memdb.Txn, p product.Product) (*product.Product, error) {
	c, ok, err := first[product.Category](txn, tableCategories, "id", p.CategoryID)
	if err != nil {
		return nil, err
	}
	if ok {
		p.CategoryName = c.Name
	}
	return &p, nil
}

func sortByName(products []*product.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Name == products[j].Name {
			return products[i].ID < products[j].ID
		}
		return products[i].Name < products[j].Name
	})
}

// CategoryRepository implementa product.CategoryRepository em memória
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Create cria uma nova categoria, gerando o ID quando não informado
func (r *CategoryRepository) Create(ctx context.Context, c *product.Category) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		id := c.ID
		for id == 0 {
			next, err := nextID(txn, tableCategories)
			if err != nil {
				return err
			}
			taken, err := exists(txn, tableCategories, "id", next)
			if err != nil {
				return err
			}
			if !taken {
				id = next
			}
		}

		taken, err := exists(txn, tableCategories, "id", id)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("já existe uma categoria com id %d", id)
		}
		if taken, err = exists(txn, tableCategories, "name", c.Name); err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("já existe a categoria %q", c.Name)
		}

		c.ID = id
		return insert(txn, tableCategories, *c)
	})
}

// FindByID busca uma categoria pelo ID
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*product.Category, error) {
	var found *product.Category
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		c, ok, err := first[product.Category](txn, tableCategories, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("categoria %d não encontrada", id)
		}
		found = &c
		return nil
	})
	return found, err
}

// List lista as categorias ordenadas por nome
func (r *CategoryRepository) List(ctx context.Context) ([]*product.Category, error) {
	categories := make([]*product.Category, 0)
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		rows, err := all[product.Category](txn, tableCategories, "name")
		if err != nil {
			return err
		}
		for i := range rows {
			categories = append(categories, &rows[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
