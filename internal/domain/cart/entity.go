package cart

import (
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/pricing"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// Line é uma linha do carrinho com os preços congelados no momento da inclusão.
// Alterações posteriores no produto não mudam linhas já gravadas.
type Line struct {
	ID                       int64     `json:"id"`
	UserID                   string    `json:"user_id"`
	ProductID                int64     `json:"product_id"`
	ProductName              string    `json:"product_name"`
	ImageURL                 string    `json:"image_url"`
	Price                    int64     `json:"price"`
	OfferDiscountPct         int       `json:"offer_discount_pct"`
	SubscriberDiscountPct    int       `json:"subscriber_discount_pct"`
	TotalDiscountPct         int       `json:"total_discount_pct"`
	OfferDiscountAmount      int64     `json:"offer_discount_amount"`
	SubscriberDiscountAmount int64     `json:"subscriber_discount_amount"`
	TotalDiscountAmount      int64     `json:"total_discount_amount"`
	Discounts                int64     `json:"discounts"`
	PayablePrice             int64     `json:"payable_price"`
	CreatedAt                time.Time `json:"created_at"`
}

// PriceLine monta a linha do carrinho de um produto para o perfil informado.
// Perfil nulo é tratado como não assinante.
func PriceLine(p *product.Product, profile *user.Profile, now time.Time) Line {
	subscribed := profile != nil && profile.Subscribed
	q := pricing.Resolve(p.PricingInput(), subscribed)

	l := Line{
		ProductID:           p.ID,
		ProductName:         p.Name,
		ImageURL:            p.ImageURL,
		Price:               q.NormalPrice,
		OfferDiscountPct:    p.OfferDiscountPct,
		TotalDiscountPct:    p.OfferDiscountPct,
		OfferDiscountAmount: q.NormalPrice - q.OfferPrice,
		PayablePrice:        q.Payable(),
		Discounts:           q.Discounts(),
		CreatedAt:           now,
	}
	if profile != nil {
		l.UserID = profile.UserID
	}
	if subscribed {
		l.SubscriberDiscountPct = p.SubscriberDiscountPct
		l.TotalDiscountPct += p.SubscriberDiscountPct
		l.SubscriberDiscountAmount = q.OfferPrice - q.SubscriberPrice
	}
	l.TotalDiscountAmount = l.OfferDiscountAmount + l.SubscriberDiscountAmount

	return l
}

// Totals é o resumo do carrinho com o imposto destacado
type Totals struct {
	Net   int64 `json:"net"`
	Tax   int64 `json:"tax"`
	Total int64 `json:"total"`
}

// Summarize soma os preços a pagar e separa o imposto incluído
func Summarize(lines []*Line) Totals {
	var total int64
	for _, l := range lines {
		total += l.PayablePrice
	}
	net, tax := pricing.SplitTax(total)
	return Totals{Net: net, Tax: tax, Total: total}
}
