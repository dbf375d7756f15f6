package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

// MaxUnitsPerBatch é o máximo de unidades incluídas de uma vez no estoque
const MaxUnitsPerBatch = 1000

var ErrInvalidQuantity = apperr.Validation("a quantidade deve estar entre 1 e %d unidades", MaxUnitsPerBatch)

// AddUnitsResult é o resultado da inclusão de unidades no estoque
type AddUnitsResult struct {
	Product *product.Product
	Units   []*warehouse.Unit
	Message string
}

// WarehouseService atende a manutenção do estoque (bodega)
type WarehouseService struct {
	tx       Transactor
	units    warehouse.Repository
	products product.Repository
}

// NewWarehouseService cria uma nova instância de WarehouseService
func NewWarehouseService(tx Transactor, units warehouse.Repository, products product.Repository) *WarehouseService {
	return &WarehouseService{tx: tx, units: units, products: products}
}

// AddUnits cria quantity unidades do produto em uma única transação
func (s *WarehouseService) AddUnits(ctx context.Context, productID int64, quantity int) (*AddUnitsResult, error) {
	if quantity < 1 || quantity > MaxUnitsPerBatch {
		return nil, ErrInvalidQuantity
	}

	result := &AddUnitsResult{}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		units, err := s.units.CreateBatch(ctx, productID, quantity)
		if err != nil {
			return err
		}

		result.Product = p
		result.Units = units
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Message = addedMessage(result.Product.Name, quantity)
	return result, nil
}

// List lista todas as unidades do estoque
func (s *WarehouseService) List(ctx context.Context) ([]*warehouse.UnitListing, error) {
	return s.units.List(ctx)
}

// DeleteUnit remove uma unidade ainda não vendida
func (s *WarehouseService) DeleteUnit(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.units.FindByID(ctx, id); err != nil {
			return err
		}

		sold, err := s.units.IsSold(ctx, id)
		if err != nil {
			return err
		}
		if sold {
			return apperr.ReferentialIntegrity("a unidade %d já foi vendida e não pode ser removida", id)
		}

		return s.units.Delete(ctx, id)
	})
}

func addedMessage(productName string, quantity int) string {
	if quantity == 1 {
		return fmt.Sprintf("Foi adicionado 1 novo %q ao estoque", productName)
	}
	return fmt.Sprintf("Foram adicionadas %d unidades de %q ao estoque", quantity, productName)
}
