package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/loja-virtual/internal/domain/pricing"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

// ProductInfo é o produto pronto para a vitrine: preços, rótulos e disponibilidade
type ProductInfo struct {
	Product      *product.Product
	Quote        pricing.Quote
	Labels       []pricing.Label
	Availability warehouse.Availability
}

// CatalogService atende a navegação do catálogo
type CatalogService struct {
	products   product.Repository
	categories product.CategoryRepository
	units      warehouse.Repository
	profiles   user.ProfileRepository
}

// NewCatalogService cria uma nova instância de CatalogService
func NewCatalogService(
	products product.Repository,
	categories product.CategoryRepository,
	units warehouse.Repository,
	profiles user.ProfileRepository,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		units:      units,
		profiles:   profiles,
	}
}

// ProductInfo monta a ficha de um produto para o visitante (viewerID vazio para anônimos)
func (s *CatalogService) ProductInfo(ctx context.Context, productID int64, viewerID string) (*ProductInfo, error) {
	subscribed, err := isSubscribed(ctx, s.profiles, viewerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar perfil: %w", err)
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, p, subscribed)
}

// Search lista os produtos ordenados por nome, filtrando pelo trecho do nome quando informado
func (s *CatalogService) Search(ctx context.Context, query string, viewerID string) ([]*ProductInfo, error) {
	subscribed, err := isSubscribed(ctx, s.profiles, viewerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar perfil: %w", err)
	}

	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	infos := make([]*ProductInfo, 0, len(products))
	for _, p := range products {
		info, err := s.describe(ctx, p, subscribed)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ResolveStock consulta as unidades não vendidas do produto a cada chamada
func (s *CatalogService) ResolveStock(ctx context.Context, productID int64) (warehouse.Availability, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return warehouse.Availability{}, err
	}
	return s.availability(ctx, p)
}

// Categories lista as categorias do catálogo
func (s *CatalogService) Categories(ctx context.Context) ([]*product.Category, error) {
	return s.categories.List(ctx)
}

// ProductsByCategory lista os produtos de uma categoria existente
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*product.Product, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.products.FindByCategory(ctx, categoryID)
}

func (s *CatalogService) describe(ctx context.Context, p *product.Product, subscribed bool) (*ProductInfo, error) {
	availability, err := s.availability(ctx, p)
	if err != nil {
		return nil, err
	}

	q := pricing.Resolve(p.PricingInput(), subscribed)
	return &ProductInfo{
		Product:      p,
		Quote:        q,
		Labels:       pricing.Describe(q),
		Availability: availability,
	}, nil
}

func (s *CatalogService) availability(ctx context.Context, p *product.Product) (warehouse.Availability, error) {
	count, err := s.units.CountAvailable(ctx, p.ID)
	if err != nil {
		return warehouse.Availability{}, fmt.Errorf("erro ao contar unidades do produto %d: %w", p.ID, err)
	}
	return warehouse.Resolve(count, p.OfferDiscountPct), nil
}
