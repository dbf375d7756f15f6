package cart

import (
	"context"
)

// Repository define a interface para operações de repositório do carrinho
type Repository interface {
	// Create grava uma nova linha, preenchendo o ID
	Create(ctx context.Context, l *Line) error

	// FindByID busca uma linha pelo ID
	FindByID(ctx context.Context, id int64) (*Line, error)

	// ListByUser lista as linhas do carrinho de um usuário, na ordem de inclusão
	ListByUser(ctx context.Context, userID string) ([]*Line, error)

	// Delete remove uma linha
	Delete(ctx context.Context, id int64) error

	// DeleteByUser esvazia o carrinho de um usuário
	DeleteByUser(ctx context.Context, userID string) error
}
