package warehouse

import (
	"context"
)

// Repository define a interface para operações de repositório do estoque
type Repository interface {
	// CreateBatch cria quantity unidades do produto
	CreateBatch(ctx context.Context, productID int64, quantity int) ([]*Unit, error)

	// FindByID busca uma unidade pelo ID
	FindByID(ctx context.Context, id int64) (*Unit, error)

	// List lista todas as unidades com os dados do produto
	List(ctx context.Context) ([]*UnitListing, error)

	// CountAvailable conta as unidades do produto sem linha de boleta associada
	CountAvailable(ctx context.Context, productID int64) (int, error)

	// IsSold informa se alguma linha de boleta referencia a unidade
	IsSold(ctx context.Context, id int64) (bool, error)

	// ReserveAvailable bloqueia e retorna uma unidade não vendida do produto
	ReserveAvailable(ctx context.Context, productID int64, exclude []int64) (*Unit, error)

	// Delete remove uma unidade; unidades vendidas não são removidas
	Delete(ctx context.Context, id int64) error
}
