package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto; id duplicado resulta em apperr.ErrConflict
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// List lista todos os produtos ordenados por id
	List(ctx context.Context) ([]*Product, error)

	// Search lista os produtos ordenados por nome; query vazia retorna todos
	Search(ctx context.Context, query string) ([]*Product, error)

	// FindByCategory lista os produtos de uma categoria
	FindByCategory(ctx context.Context, categoryID int64) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto; produtos referenciados não são removidos
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository define a interface para operações de repositório de categorias
type CategoryRepository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id int64) (*Category, error)

	// List lista as categorias ordenadas por nome
	List(ctx context.Context) ([]*Category, error)
}
