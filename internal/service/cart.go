package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/cart"
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

var ErrEmptyCart = apperr.Validation("o carrinho está vazio")

// CartView é o carrinho de um cliente com o IVA destacado
type CartView struct {
	Lines  []*cart.Line
	Totals cart.Totals
}

// CartService atende o carrinho de compras e o fechamento da compra
type CartService struct {
	tx       Transactor
	carts    cart.Repository
	products product.Repository
	users    user.Repository
	profiles user.ProfileRepository
	units    warehouse.Repository
	invoices invoice.Repository
	clock    Clock
}

// NewCartService cria uma nova instância de CartService
func NewCartService(
	tx Transactor,
	carts cart.Repository,
	products product.Repository,
	users user.Repository,
	profiles user.ProfileRepository,
	units warehouse.Repository,
	invoices invoice.Repository,
	clock Clock,
) *CartService {
	return &CartService{
		tx:       tx,
		carts:    carts,
		products: products,
		users:    users,
		profiles: profiles,
		units:    units,
		invoices: invoices,
		clock:    clock,
	}
}

// AddProduct precifica o produto para o cliente e grava uma nova linha no carrinho.
// Cada chamada cria uma linha; linhas do mesmo produto não são agrupadas.
func (s *CartService) AddProduct(ctx context.Context, userID string, productID int64) (*cart.Line, error) {
	var line cart.Line

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		profile, err := s.profiles.FindByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("erro ao consultar perfil: %w", err)
		}

		line = cart.PriceLine(p, profile, s.clock.now())
		line.UserID = userID
		return s.carts.Create(ctx, &line)
	})
	if err != nil {
		return nil, err
	}

	return &line, nil
}

// View retorna as linhas do carrinho com o total, o valor líquido e o imposto
func (s *CartService) View(ctx context.Context, userID string) (*CartView, error) {
	lines, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CartView{Lines: lines, Totals: cart.Summarize(lines)}, nil
}

// RemoveLine remove uma linha do carrinho do próprio cliente
func (s *CartService) RemoveLine(ctx context.Context, userID string, lineID int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		l, err := s.carts.FindByID(ctx, lineID)
		if err != nil {
			return err
		}
		if l.UserID != userID {
			return apperr.NotFound("linha %d não encontrada no carrinho", lineID)
		}
		return s.carts.Delete(ctx, lineID)
	})
}

// Checkout fecha a compra: reserva uma unidade do estoque por linha, cria a boleta
// vendida com os preços congelados do carrinho e esvazia o carrinho.
func (s *CartService) Checkout(ctx context.Context, userID string) (*invoice.Invoice, error) {
	var inv *invoice.Invoice

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lines, err := s.carts.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		u, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		subscribed, err := isSubscribed(ctx, s.profiles, userID)
		if err != nil {
			return err
		}

		inv = invoice.New(userID, s.clock.Today())
		inv.CustomerName = u.FullName()
		inv.Subscribed = subscribed

		reserved := make([]int64, 0, len(lines))
		for _, l := range lines {
			unit, err := s.units.ReserveAvailable(ctx, l.ProductID, reserved)
			if err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.Conflict("não há unidades disponíveis de %q", l.ProductName)
				}
				return err
			}
			reserved = append(reserved, unit.ID)

			inv.AddLine(invoice.Line{
				WarehouseUnitID:       unit.ID,
				ProductID:             l.ProductID,
				ProductName:           l.ProductName,
				Price:                 l.Price,
				OfferDiscountPct:      l.OfferDiscountPct,
				SubscriberDiscountPct: l.SubscriberDiscountPct,
				TotalDiscountPct:      l.TotalDiscountPct,
				Discounts:             l.Discounts,
				PayablePrice:          l.PayablePrice,
			})
		}

		if err := s.invoices.Create(ctx, inv); err != nil {
			return err
		}
		return s.carts.DeleteByUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}
