package product

import (
	"strings"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/pricing"
)

var (
	ErrInvalidID       = apperr.Validation("id do produto deve ser positivo")
	ErrEmptyName       = apperr.Validation("nome não pode ser vazio")
	ErrInvalidCategory = apperr.Validation("categoria inválida")
	ErrNegativePrice   = apperr.Validation("preço não pode ser negativo")
	ErrInvalidDiscount = apperr.Validation("descontos devem estar entre 0 e 100 e somar no máximo 100")
)

// Category representa uma categoria do catálogo
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product representa um produto do catálogo
type Product struct {
	ID                    int64     `json:"id"`
	CategoryID            int64     `json:"category_id"`
	CategoryName          string    `json:"category_name"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	ImageURL              string    `json:"image_url"`
	Price                 int64     `json:"price"`                   // Preço base em pesos
	OfferDiscountPct      int       `json:"offer_discount_pct"`      // Desconto de oferta (%)
	SubscriberDiscountPct int       `json:"subscriber_discount_pct"` // Desconto para assinantes (%)
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto com o id informado pelo administrador
func NewProduct(
	id int64,
	categoryID int64,
	name string,
	description string,
	imageURL string,
	price int64,
	offerDiscountPct int,
	subscriberDiscountPct int,
) (*Product, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	now := time.Now()
	p := &Product{ID: id, CreatedAt: now}
	if err := p.Update(categoryID, name, description, imageURL, price, offerDiscountPct, subscriberDiscountPct); err != nil {
		return nil, err
	}
	return p, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(
	categoryID int64,
	name string,
	description string,
	imageURL string,
	price int64,
	offerDiscountPct int,
	subscriberDiscountPct int,
) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if categoryID <= 0 {
		return ErrInvalidCategory
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if !validDiscounts(offerDiscountPct, subscriberDiscountPct) {
		return ErrInvalidDiscount
	}

	p.CategoryID = categoryID
	p.Name = name
	p.Description = description
	p.ImageURL = imageURL
	p.Price = price
	p.OfferDiscountPct = offerDiscountPct
	p.SubscriberDiscountPct = subscriberDiscountPct
	p.UpdatedAt = time.Now()

	return nil
}

// PricingInput retorna os dados do produto usados pelo motor de preços
func (p *Product) PricingInput() pricing.Input {
	return pricing.Input{
		BasePrice:             p.Price,
		OfferDiscountPct:      p.OfferDiscountPct,
		SubscriberDiscountPct: p.SubscriberDiscountPct,
	}
}

func validDiscounts(offer, subscriber int) bool {
	if offer < 0 || offer > 100 || subscriber < 0 || subscriber > 100 {
		return false
	}
	return offer+subscriber <= 100
}
