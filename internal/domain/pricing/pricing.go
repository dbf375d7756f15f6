package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input reúne os dados do produto necessários para o cálculo de preços
type Input struct {
	BasePrice             int64 // Preço base (pesos, sem frações)
	OfferDiscountPct      int   // Desconto de oferta (0 a 100)
	SubscriberDiscountPct int   // Desconto adicional para assinantes (0 a 100)
}

// Quote é o resultado do cálculo de preços de um produto para um visitante
type Quote struct {
	NormalPrice           int64 `json:"normal_price"`
	OfferPrice            int64 `json:"offer_price"`
	SubscriberPrice       int64 `json:"subscriber_price"`
	HasOfferDiscount      bool  `json:"has_offer_discount"`
	HasSubscriberDiscount bool  `json:"has_subscriber_discount"`
	Subscribed            bool  `json:"subscribed"`
}

// Resolve calcula os preços normal, de oferta e de assinante.
//
// Os descontos são somados e aplicados sobre o preço base, nunca compostos:
// assinante = base × (100 − (oferta + assinante)) / 100.
// Os percentuais não são validados aqui.
func Resolve(in Input, subscribed bool) Quote {
	return Quote{
		NormalPrice:           in.BasePrice,
		OfferPrice:            applyPct(in.BasePrice, in.OfferDiscountPct),
		SubscriberPrice:       applyPct(in.BasePrice, in.OfferDiscountPct+in.SubscriberDiscountPct),
		HasOfferDiscount:      in.OfferDiscountPct > 0,
		HasSubscriberDiscount: in.SubscriberDiscountPct > 0,
		Subscribed:            subscribed,
	}
}

// Payable retorna o preço a pagar pelo visitante
func (q Quote) Payable() int64 {
	if q.Subscribed {
		return q.SubscriberPrice
	}
	return q.OfferPrice
}

// Discounts retorna o total descontado do preço normal
func (q Quote) Discounts() int64 {
	return q.NormalPrice - q.Payable()
}

// applyPct aplica um desconto percentual arredondando para o peso mais próximo
func applyPct(base int64, pct int) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromInt(int64(100 - pct))).
		Div(hundred).
		Round(0).
		IntPart()
}
