package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LabelKind identifica o papel de um rótulo de preço na vitrine
type LabelKind string

const (
	LabelNormal       LabelKind = "normal"
	LabelNormalStruck LabelKind = "normal_struck" // Preço normal riscado quando há oferta
	LabelOffer        LabelKind = "offer"
	LabelSubscriber   LabelKind = "subscriber"
)

// Label é um texto de preço pronto para exibição
type Label struct {
	Kind   LabelKind `json:"kind"`
	Text   string    `json:"text"`
	Amount int64     `json:"amount"`
}

var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatMoney formata um valor em pesos, com separador de milhar (ex.: $10.000)
func FormatMoney(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// Describe monta os rótulos de preço exibidos na ficha do produto
func Describe(q Quote) []Label {
	var labels []Label

	if q.HasOfferDiscount {
		labels = append(labels,
			Label{Kind: LabelNormalStruck, Text: "Normal: " + FormatMoney(q.NormalPrice), Amount: q.NormalPrice},
			Label{Kind: LabelOffer, Text: "Oferta: " + FormatMoney(q.OfferPrice), Amount: q.OfferPrice},
		)
	} else {
		labels = append(labels, Label{Kind: LabelNormal, Text: "Normal: " + FormatMoney(q.NormalPrice), Amount: q.NormalPrice})
	}

	if q.HasSubscriberDiscount {
		labels = append(labels, Label{Kind: LabelSubscriber, Text: "Assinante: " + FormatMoney(q.SubscriberPrice), Amount: q.SubscriberPrice})
	}

	return labels
}
