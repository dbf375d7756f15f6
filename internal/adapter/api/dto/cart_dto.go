package dto

import (
	"github.com/hugohenrick/loja-virtual/internal/domain/cart"
	"github.com/hugohenrick/loja-virtual/internal/service"
)

// AddCartItemRequest representa a inclusão de um produto no carrinho
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
}

// CartResponse representa o carrinho com o IVA destacado
type CartResponse struct {
	Lines []*cart.Line `json:"lines"`
	Net   int64        `json:"net"`
	Tax   int64        `json:"tax"`
	Total int64        `json:"total"`
}

// ToCartResponse converte o carrinho para a resposta
func ToCartResponse(view *service.CartView) CartResponse {
	lines := view.Lines
	if lines == nil {
		lines = []*cart.Line{}
	}
	return CartResponse{
		Lines: lines,
		Net:   view.Totals.Net,
		Tax:   view.Totals.Tax,
		Total: view.Totals.Total,
	}
}
