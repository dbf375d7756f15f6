package dto

import (
	"github.com/hugohenrick/loja-virtual/internal/domain/pricing"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
	"github.com/hugohenrick/loja-virtual/internal/service"
)

// AvailabilityResponse representa a disponibilidade de um produto
type AvailabilityResponse struct {
	Status    string `json:"status"`
	Count     int    `json:"available_count"`
	Banner    string `json:"banner"`
	StockText string `json:"stock_text"`
}

// CatalogProductResponse representa um produto na vitrine
type CatalogProductResponse struct {
	ID                    int64                `json:"id"`
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	ImageURL              string               `json:"image_url"`
	CategoryID            int64                `json:"category_id"`
	CategoryName          string               `json:"category_name"`
	OfferDiscountPct      int                  `json:"offer_discount_pct"`
	SubscriberDiscountPct int                  `json:"subscriber_discount_pct"`
	Prices                pricing.Quote        `json:"prices"`
	PayablePrice          int64                `json:"payable_price"`
	Labels                []pricing.Label      `json:"labels"`
	Availability          AvailabilityResponse `json:"availability"`
}

// CategoryResponse representa uma categoria
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryProductResponse representa um produto na listagem por categoria
type CategoryProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ToCatalogProductResponse converte a ficha do produto para a resposta
func ToCatalogProductResponse(info *service.ProductInfo) CatalogProductResponse {
	p := info.Product
	return CatalogProductResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		ImageURL:              p.ImageURL,
		CategoryID:            p.CategoryID,
		CategoryName:          p.CategoryName,
		OfferDiscountPct:      p.OfferDiscountPct,
		SubscriberDiscountPct: p.SubscriberDiscountPct,
		Prices:                info.Quote,
		PayablePrice:          info.Quote.Payable(),
		Labels:                info.Labels,
		Availability:          ToAvailabilityResponse(info.Availability),
	}
}

// ToAvailabilityResponse converte a disponibilidade de um produto
func ToAvailabilityResponse(a warehouse.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Status:    string(a.Status),
		Count:     a.Count,
		Banner:    a.Banner(),
		StockText: a.StockText(),
	}
}

// ToCatalogProductResponses converte uma lista de fichas
func ToCatalogProductResponses(infos []*service.ProductInfo) []CatalogProductResponse {
	resp := make([]CatalogProductResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, ToCatalogProductResponse(info))
	}
	return resp
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*product.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return resp
}

// ToCategoryProductResponses converte os produtos de uma categoria
func ToCategoryProductResponses(products []*product.Product) []CategoryProductResponse {
	resp := make([]CategoryProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, CategoryProductResponse{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL})
	}
	return resp
}
