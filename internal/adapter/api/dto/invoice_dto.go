package dto

import (
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
)

const dateLayout = "2006-01-02"

// InvoiceResponse representa uma boleta
type InvoiceResponse struct {
	Number       int64          `json:"number"`
	UserID       string         `json:"user_id"`
	CustomerName string         `json:"customer_name"`
	Subscribed   bool           `json:"subscribed"`
	Total        int64          `json:"total"`
	Status       string         `json:"status"`
	StatusLabel  string         `json:"status_label"`
	SaleDate     string         `json:"sale_date"`
	DispatchDate string         `json:"dispatch_date,omitempty"`
	DeliveryDate string         `json:"delivery_date,omitempty"`
	Lines        []invoice.Line `json:"lines,omitempty"`
}

// ToInvoiceResponse converte uma boleta; as datas são dias civis (AAAA-MM-DD)
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		Number:       inv.Number,
		UserID:       inv.UserID,
		CustomerName: inv.CustomerName,
		Subscribed:   inv.Subscribed,
		Total:        inv.Total,
		Status:       string(inv.Status),
		StatusLabel:  inv.Status.Label(),
		SaleDate:     inv.SaleDate.Format(dateLayout),
		Lines:        inv.Lines,
	}
	if inv.DispatchDate != nil {
		resp.DispatchDate = inv.DispatchDate.Format(dateLayout)
	}
	if inv.DeliveryDate != nil {
		resp.DeliveryDate = inv.DeliveryDate.Format(dateLayout)
	}
	return resp
}

// ToInvoiceResponses converte uma lista de boletas
func ToInvoiceResponses(invoices []*invoice.Invoice) []InvoiceResponse {
	resp := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, ToInvoiceResponse(inv))
	}
	return resp
}
