package invoice

import (
	"time"
)

// Line é uma linha da boleta: uma unidade do estoque vendida
type Line struct {
	ID                    int64  `json:"id"`
	InvoiceNumber         int64  `json:"invoice_number"`
	WarehouseUnitID       int64  `json:"warehouse_unit_id"`
	ProductID             int64  `json:"product_id"`
	ProductName           string `json:"product_name"`
	Price                 int64  `json:"price"`
	OfferDiscountPct      int    `json:"offer_discount_pct"`
	SubscriberDiscountPct int    `json:"subscriber_discount_pct"`
	TotalDiscountPct      int    `json:"total_discount_pct"`
	Discounts             int64  `json:"discounts"`
	PayablePrice          int64  `json:"payable_price"`
}

// Invoice representa uma boleta de venda
type Invoice struct {
	Number       int64      `json:"number"`
	UserID       string     `json:"user_id"`
	CustomerName string     `json:"customer_name"`
	Subscribed   bool       `json:"subscribed"`
	Total        int64      `json:"total"`
	Status       Status     `json:"status"`
	SaleDate     time.Time  `json:"sale_date"`
	DispatchDate *time.Time `json:"dispatch_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Lines        []Line     `json:"lines,omitempty"`
}

// New cria uma boleta vendida na data informada
func New(userID string, today time.Time) *Invoice {
	return &Invoice{
		UserID:   userID,
		Status:   StatusSold,
		SaleDate: today,
	}
}

// AddLine adiciona uma linha e acumula o total a pagar
func (inv *Invoice) AddLine(l Line) {
	inv.Lines = append(inv.Lines, l)
	inv.Total += l.PayablePrice
}

// ApplyStatus aplica a transição para o status alvo, ajustando as datas.
//
// Qualquer status alvo é aceito a partir de qualquer status atual. O status
// atual só é consultado quando o alvo é StatusDelivered.
func (inv *Invoice) ApplyStatus(target Status, today time.Time) error {
	if !target.Valid() {
		return ErrInvalidStatus
	}

	switch target {
	case StatusCancelled, StatusSold:
		inv.SaleDate = today
		inv.DispatchDate = nil
		inv.DeliveryDate = nil
	case StatusDispatched:
		inv.DispatchDate = datePtr(today)
		inv.DeliveryDate = nil
	case StatusDelivered:
		switch inv.Status {
		case StatusSold:
			inv.DispatchDate = datePtr(today)
			inv.DeliveryDate = datePtr(today)
		case StatusDispatched, StatusDelivered:
			inv.DeliveryDate = datePtr(today)
		}
		// a partir de StatusCancelled as datas ficam como estão
	}

	inv.Status = target
	return nil
}

// Today retorna a data civil de now no fuso horário da loja
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}
