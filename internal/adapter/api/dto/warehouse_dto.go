package dto

import (
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
)

// AddUnitsRequest representa a inclusão de unidades no estoque
type AddUnitsRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gte=1,lte=1000"`
}

// AddUnitsResponse representa o resultado da inclusão de unidades
type AddUnitsResponse struct {
	Message string  `json:"message"`
	UnitIDs []int64 `json:"unit_ids"`
}

// UnitResponse representa uma unidade na manutenção do estoque
type UnitResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CategoryName string    `json:"category_name"`
	ImageURL     string    `json:"image_url"`
	Sold         bool      `json:"sold"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUnitResponses converte a listagem do estoque
func ToUnitResponses(listings []*warehouse.UnitListing) []UnitResponse {
	resp := make([]UnitResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, UnitResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			CategoryName: l.CategoryName,
			ImageURL:     l.ImageURL,
			Sold:         l.Sold,
			State:        l.StateLabel(),
			CreatedAt:    l.CreatedAt,
		})
	}
	return resp
}
