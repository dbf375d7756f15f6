package warehouse

import (
	"time"
)

// Unit representa uma unidade física de um produto no estoque (uma linha da bodega)
type Unit struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UnitListing é uma unidade do estoque com os dados do produto e se já foi vendida
type UnitListing struct {
	Unit
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name"`
	ImageURL     string `json:"image_url"`
	Sold         bool   `json:"sold"`
}

// StateLabel retorna o texto exibido na manutenção do estoque
func (u UnitListing) StateLabel() string {
	if u.Sold {
		return "Vendido"
	}
	return "No estoque"
}
