package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
)

// ProductInput reúne os dados informados na manutenção de produtos
type ProductInput struct {
	CategoryID            int64
	Name                  string
	Description           string
	ImageURL              string
	Price                 int64
	OfferDiscountPct      int
	SubscriberDiscountPct int
}

// ProductService atende a manutenção de produtos do back office
type ProductService struct {
	tx         Transactor
	products   product.Repository
	categories product.CategoryRepository
}

// NewProductService cria uma nova instância de ProductService
func NewProductService(tx Transactor, products product.Repository, categories product.CategoryRepository) *ProductService {
	return &ProductService{tx: tx, products: products, categories: categories}
}

// List lista os produtos ordenados por id
func (s *ProductService) List(ctx context.Context) ([]*product.Product, error) {
	return s.products.List(ctx)
}

// Get busca um produto pelo id
func (s *ProductService) Get(ctx context.Context, id int64) (*product.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create cadastra um produto com o id informado; id repetido resulta em conflito
func (s *ProductService) Create(ctx context.Context, id int64, in ProductInput) (*product.Product, error) {
	p, err := product.NewProduct(id, in.CategoryID, in.Name, in.Description, in.ImageURL,
		in.Price, in.OfferDiscountPct, in.SubscriberDiscountPct)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.category(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		p.CategoryName = c.Name
		return s.products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Update altera os dados de um produto existente. Linhas de carrinho e boletas já
// gravadas mantêm os preços antigos.
func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput) (*product.Product, error) {
	var p *product.Product

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.products.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := p.Update(in.CategoryID, in.Name, in.Description, in.ImageURL,
			in.Price, in.OfferDiscountPct, in.SubscriberDiscountPct); err != nil {
			return err
		}

		c, err := s.category(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		p.CategoryName = c.Name
		return s.products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Delete remove um produto que não esteja referenciado por carrinhos, estoque ou boletas
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

func (s *ProductService) category(ctx context.Context, id int64) (*product.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrValidation, err, "categoria inexistente")
		}
		return nil, err
	}
	return c, nil
}
