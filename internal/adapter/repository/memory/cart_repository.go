package memory

import (
	"context"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/cart"
)

// CartRepository implementa cart.Repository em memória
type CartRepository struct {
	store *Store
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

// Create grava uma nova linha no carrinho
func (r *CartRepository) Create(ctx context.Context, l *cart.Line) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		found, err := exists(txn, tableProducts, "id", l.ProductID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("produto %d não existe", l.ProductID)
		}
		if found, err = exists(txn, tableUsers, "id", l.UserID); err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("usuário %s não existe", l.UserID)
		}

		id, err := nextID(txn, tableCartLines)
		if err != nil {
			return err
		}
		l.ID = id
		return insert(txn, tableCartLines, *l)
	})
}

// FindByID busca uma linha pelo ID
func (r *CartRepository) FindByID(ctx context.Context, id int64) (*cart.Line, error) {
	var found *cart.Line
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		l, ok, err := first[cart.Line](txn, tableCartLines, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("linha %d não encontrada no carrinho", id)
		}
		found = &l
		return nil
	})
	return found, err
}

// ListByUser lista as linhas do carrinho de um usuário, na ordem de inclusão
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]*cart.Line, error) {
	lines := make([]*cart.Line, 0)
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		rows, err := all[cart.Line](txn, tableCartLines, "user", userID)
		if err != nil {
			return err
		}
		for i := range rows {
			lines = append(lines, &rows[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Delete remove uma linha
func (r *CartRepository) Delete(ctx context.Context, id int64) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		l, ok, err := first[cart.Line](txn, tableCartLines, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("linha %d não encontrada no carrinho", id)
		}
		if err := txn.Delete(tableCartLines, &l); err != nil {
			return dbError(err)
		}
		return nil
	})
}

// DeleteByUser esvazia o carrinho de um usuário
func (r *CartRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		if _, err := txn.DeleteAll(tableCartLines, "user", userID); err != nil {
			return dbError(err)
		}
		return nil
	})
}
