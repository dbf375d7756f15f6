package pricing

import "github.com/shopspring/decimal"

// TaxRatePct é a alíquota de IVA embutida nos preços
const TaxRatePct = 19

var taxFactor = decimal.NewFromInt(100 + TaxRatePct).Div(hundred)

// SplitTax decompõe um total com IVA em valor líquido e imposto
func SplitTax(total int64) (net, tax int64) {
	net = decimal.NewFromInt(total).Div(taxFactor).Round(0).IntPart()
	return net, total - net
}
