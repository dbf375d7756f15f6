package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// demoProduct é um produto da carga inicial com a quantidade de unidades no estoque
type demoProduct struct {
	ID    int64
	Input ProductInput
	Units int
}

var demoCategories = []product.Category{
	{ID: 1, Name: "Poleras"},
	{ID: 2, Name: "Pantalones"},
	{ID: 3, Name: "Accesorios"},
}

var demoProducts = []demoProduct{
	{1, ProductInput{CategoryID: 1, Name: "Polera básica blanca", Description: "Algodão orgânico", ImageURL: "/media/polera-blanca.jpg", Price: 9990}, 5},
	{2, ProductInput{CategoryID: 1, Name: "Polera estampada", Description: "Estampa exclusiva", ImageURL: "/media/polera-estampada.jpg", Price: 14990, OfferDiscountPct: 20, SubscriberDiscountPct: 5}, 3},
	{3, ProductInput{CategoryID: 2, Name: "Jeans recto", Description: "Mezclilla azul", ImageURL: "/media/jeans.jpg", Price: 29990, SubscriberDiscountPct: 5}, 2},
	{4, ProductInput{CategoryID: 2, Name: "Pantalón cargo", Description: "Tecido resistente", ImageURL: "/media/cargo.jpg", Price: 24990, OfferDiscountPct: 15}, 0},
	{5, ProductInput{CategoryID: 3, Name: "Gorro de lana", Description: "Tamanho único", ImageURL: "/media/gorro.jpg", Price: 7990, OfferDiscountPct: 10, SubscriberDiscountPct: 5}, 4},
}

// AdminAccount são as credenciais do administrador criado na inicialização
type AdminAccount struct {
	Username string
	Password string
	Email    string
}

// SeedResult resume o que a carga inicial criou
type SeedResult struct {
	AdminCreated bool
	Categories   int
	Products     int
	Units        int
}

// SeedService prepara a base com o administrador e, opcionalmente, dados de demonstração
type SeedService struct {
	tx         Transactor
	categories product.CategoryRepository
	products   *ProductService
	warehouse  *WarehouseService
	users      user.Repository
}

// NewSeedService cria uma nova instância de SeedService
func NewSeedService(
	tx Transactor,
	categories product.CategoryRepository,
	products *ProductService,
	warehouse *WarehouseService,
	users user.Repository,
) *SeedService {
	return &SeedService{
		tx:         tx,
		categories: categories,
		products:   products,
		warehouse:  warehouse,
		users:      users,
	}
}

// Run garante o administrador e, se demo for verdadeiro e o catálogo estiver
// vazio, carrega as categorias, os produtos e o estoque de demonstração.
// Executar novamente não duplica nada.
func (s *SeedService) Run(ctx context.Context, admin AdminAccount, demo bool) (*SeedResult, error) {
	result := &SeedResult{}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if admin.Username != "" {
			created, err := s.ensureAdmin(ctx, admin)
			if err != nil {
				return err
			}
			result.AdminCreated = created
		}

		if !demo {
			return nil
		}

		existing, err := s.products.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		return s.loadDemoData(ctx, result)
	})
	if err != nil {
		return nil, fmt.Errorf("erro na carga inicial: %w", err)
	}

	return result, nil
}

func (s *SeedService) ensureAdmin(ctx context.Context, admin AdminAccount) (bool, error) {
	_, err := s.users.FindByUsername(ctx, admin.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return false, err
	}

	u, err := user.NewUser(admin.Username, "Administrador", "", admin.Email, admin.Password, user.RoleAdmin)
	if err != nil {
		return false, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SeedService) loadDemoData(ctx context.Context, result *SeedResult) error {
	for _, c := range demoCategories {
		c := c
		if _, err := s.categories.FindByID(ctx, c.ID); err == nil {
			continue
		}
		if err := s.categories.Create(ctx, &c); err != nil {
			return err
		}
		result.Categories++
	}

	for _, d := range demoProducts {
		if _, err := s.products.Create(ctx, d.ID, d.Input); err != nil {
			return err
		}
		result.Products++

		if d.Units == 0 {
			continue
		}
		added, err := s.warehouse.AddUnits(ctx, d.ID, d.Units)
		if err != nil {
			return err
		}
		result.Units += len(added.Units)
	}

	return nil
}
