package memory

import (
	"context"
	"time"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

// WarehouseRepository implementa warehouse.Repository em memória
type WarehouseRepository struct {
	store *Store
}

// NewWarehouseRepository cria uma nova instância de WarehouseRepository
func NewWarehouseRepository(store *Store) *WarehouseRepository {
	return &WarehouseRepository{store: store}
}

// CreateBatch cria quantity unidades do produto
func (r *WarehouseRepository) CreateBatch(ctx context.Context, productID int64, quantity int) ([]*warehouse.Unit, error) {
	var units []*warehouse.Unit
	err := r.store.update(ctx, func(txn *memdb.Txn) error {
		found, err := exists(txn, tableProducts, "id", productID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("produto %d não existe", productID)
		}

		now := time.Now()
		units = make([]*warehouse.Unit, 0, quantity)
		for i := 0; i < quantity; i++ {
			id, err := nextID(txn, tableUnits)
			if err != nil {
				return err
			}
			u := warehouse.Unit{ID: id, ProductID: productID, CreatedAt: now}
			if err := insert(txn, tableUnits, u); err != nil {
				return err
			}
			units = append(units, &u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

// FindByID busca uma unidade pelo ID
func (r *WarehouseRepository) FindByID(ctx context.Context, id int64) (*warehouse.Unit, error) {
	var found *warehouse.Unit
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		u, ok, err := first[warehouse.Unit](txn, tableUnits, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("unidade %d não encontrada", id)
		}
		found = &u
		return nil
	})
	return found, err
}

// List lista todas as unidades com os dados do produto, ordenadas por id
func (r *WarehouseRepository) List(ctx context.Context) ([]*warehouse.UnitListing, error) {
	listings := make([]*warehouse.UnitListing, 0)
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		units, err := all[warehouse.Unit](txn, tableUnits, "id")
		if err != nil {
			return err
		}
		for _, u := range units {
			raw, _, err := first[product.Product](txn, tableProducts, "id", u.ProductID)
			if err != nil {
				return err
			}
			p, err := withCategory(txn, raw)
			if err != nil {
				return err
			}
			sold, err := isSold(txn, u.ID)
			if err != nil {
				return err
			}
			listings = append(listings, &warehouse.UnitListing{
				Unit:         u,
				ProductName:  p.Name,
				CategoryName: p.CategoryName,
				ImageURL:     p.ImageURL,
				Sold:         sold,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// CountAvailable conta as unidades do produto que ainda não foram vendidas
func (r *WarehouseRepository) CountAvailable(ctx context.Context, productID int64) (int, error) {
	count := 0
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		units, err := all[warehouse.Unit](txn, tableUnits, "product", productID)
		if err != nil {
			return err
		}
		for _, u := range units {
			sold, err := isSold(txn, u.ID)
			if err != nil {
				return err
			}
			if !sold {
				count++
			}
		}
		return nil
	})
	return count, err
}

// IsSold informa se alguma linha de boleta referencia a unidade
func (r *WarehouseRepository) IsSold(ctx context.Context, id int64) (bool, error) {
	var sold bool
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		var err error
		sold, err = isSold(txn, id)
		return err
	})
	return sold, err
}

// ReserveAvailable retorna a unidade livre de menor id do produto, ignorando as excluídas
func (r *WarehouseRepository) ReserveAvailable(ctx context.Context, productID int64, exclude []int64) (*warehouse.Unit, error) {
	skip := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	var found *warehouse.Unit
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		units, err := all[warehouse.Unit](txn, tableUnits, "product", productID)
		if err != nil {
			return err
		}
		for i := range units {
			u := &units[i]
			if skip[u.ID] || (found != nil && u.ID > found.ID) {
				continue
			}
			sold, err := isSold(txn, u.ID)
			if err != nil {
				return err
			}
			if !sold {
				found = u
			}
		}
		if found == nil {
			return apperr.NotFound("nenhuma unidade disponível do produto %d", productID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Delete remove uma unidade que não tenha sido vendida
func (r *WarehouseRepository) Delete(ctx context.Context, id int64) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		u, ok, err := first[warehouse.Unit](txn, tableUnits, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("unidade %d não encontrada", id)
		}
		sold, err := isSold(txn, id)
		if err != nil {
			return err
		}
		if sold {
			return apperr.ReferentialIntegrity("a unidade %d aparece em boletas", id)
		}
		if err := txn.Delete(tableUnits, &u); err != nil {
			return dbError(err)
		}
		return nil
	})
}
