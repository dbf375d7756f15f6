package warehouse

import "fmt"

// Status classifica a disponibilidade de um produto
type Status string

const (
	StatusSoldOut          Status = "sold_out"
	StatusAvailable        Status = "available"
	StatusAvailableOnOffer Status = "available_on_offer"
)

// Availability é a disponibilidade atual de um produto
type Availability struct {
	Count            int    `json:"available_count"`
	Status           Status `json:"status"`
	OfferDiscountPct int    `json:"offer_discount_pct"`
}

// Resolve classifica a disponibilidade a partir das unidades não vendidas.
// Sem unidades o produto está esgotado, com ou sem oferta.
func Resolve(availableCount int, offerDiscountPct int) Availability {
	a := Availability{Count: availableCount, OfferDiscountPct: offerDiscountPct}

	switch {
	case availableCount <= 0:
		a.Count = 0
		a.Status = StatusSoldOut
	case offerDiscountPct > 0:
		a.Status = StatusAvailableOnOffer
	default:
		a.Status = StatusAvailable
	}

	return a
}

// Banner retorna a faixa de estado exibida no catálogo
func (a Availability) Banner() string {
	switch a.Status {
	case StatusSoldOut:
		return "ESGOTADO"
	case StatusAvailableOnOffer:
		return fmt.Sprintf("EM OFERTA %d%% DE DESCONTO", a.OfferDiscountPct)
	default:
		return "DISPONÍVEL NO ESTOQUE"
	}
}

// StockText retorna a quantidade em estoque por extenso
func (a Availability) StockText() string {
	if a.Count == 1 {
		return "Em estoque: 1 unidade"
	}
	return fmt.Sprintf("Em estoque: %d unidades", a.Count)
}
