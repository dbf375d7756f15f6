package invoice

import (
	"context"
)

// Repository define a interface para operações de repositório de boletas
type Repository interface {
	// Create grava a boleta e suas linhas, preenchendo o número e os ids gerados
	Create(ctx context.Context, inv *Invoice) error

	// FindByNumber busca uma boleta pelo número, com as linhas
	FindByNumber(ctx context.Context, number int64) (*Invoice, error)

	// List lista todas as boletas, sem as linhas
	List(ctx context.Context) ([]*Invoice, error)

	// ListByUser lista as boletas de um cliente, sem as linhas
	ListByUser(ctx context.Context, userID string) ([]*Invoice, error)

	// UpdateStatus grava o status e as três datas em uma única atualização
	UpdateStatus(ctx context.Context, inv *Invoice) error
}
