package dto

import (
	"github.com/hugohenrick/loja-virtual/internal/service"
)

// ProductRequest representa os dados editáveis de um produto
type ProductRequest struct {
	CategoryID            int64  `json:"category_id" binding:"required,gt=0"`
	Name                  string `json:"name" binding:"required"`
	Description           string `json:"description"`
	ImageURL              string `json:"image_url"`
	Price                 int64  `json:"price" binding:"gte=0"`
	OfferDiscountPct      int    `json:"offer_discount_pct" binding:"gte=0,lte=100"`
	SubscriberDiscountPct int    `json:"subscriber_discount_pct" binding:"gte=0,lte=100"`
}

// CreateProductRequest inclui o id escolhido pelo administrador
type CreateProductRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
	ProductRequest
}

// ToInput converte a requisição para a entrada do serviço
func (r ProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{
		CategoryID:            r.CategoryID,
		Name:                  r.Name,
		Description:           r.Description,
		ImageURL:              r.ImageURL,
		Price:                 r.Price,
		OfferDiscountPct:      r.OfferDiscountPct,
		SubscriberDiscountPct: r.SubscriberDiscountPct,
	}
}
