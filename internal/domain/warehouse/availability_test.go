package warehouse

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		offer  int
		status Status
		banner string
	}{
		{"sold out without offer", 0, 0, StatusSoldOut, "ESGOTADO"},
		{"sold out ignores offer", 0, 30, StatusSoldOut, "ESGOTADO"},
		{"available", 2, 0, StatusAvailable, "DISPONÍVEL NO ESTOQUE"},
		{"available on offer", 2, 20, StatusAvailableOnOffer, "EM OFERTA 20% DE DESCONTO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Resolve(tt.count, tt.offer)
			if a.Status != tt.status {
				t.Errorf("Status = %s, want %s", a.Status, tt.status)
			}
			if a.Count != tt.count {
				t.Errorf("Count = %d, want %d", a.Count, tt.count)
			}
			if got := a.Banner(); got != tt.banner {
				t.Errorf("Banner() = %q, want %q", got, tt.banner)
			}
		})
	}
}

func TestAvailability_StockText(t *testing.T) {
	if got := Resolve(1, 0).StockText(); got != "Em estoque: 1 unidade" {
		t.Errorf("StockText() = %q", got)
	}
	if got := Resolve(0, 0).StockText(); got != "Em estoque: 0 unidades" {
		t.Errorf("StockText() = %q", got)
	}
	if got := Resolve(12, 0).StockText(); got != "Em estoque: 12 unidades" {
		t.Errorf("StockText() = %q", got)
	}
}

func TestUnitListing_StateLabel(t *testing.T) {
	if got := (UnitListing{Sold: true}).StateLabel(); got != "Vendido" {
		t.Errorf("StateLabel() = %q", got)
	}
	if got := (UnitListing{}).StateLabel(); got != "No estoque" {
		t.Errorf("StateLabel() = %q", got)
	}
}
