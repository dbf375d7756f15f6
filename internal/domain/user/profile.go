package user

import (
	"strings"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
)

var ErrEmptyNationalID = apperr.Validation("RUT não pode ser vazio")

// Profile guarda os dados de cliente associados a um usuário (perfil)
type Profile struct {
	UserID     string `json:"user_id"`
	NationalID string `json:"national_id"` // RUT
	Address    string `json:"address"`
	Subscribed bool   `json:"subscribed"`
	ImageURL   string `json:"image_url"`
}

// NewProfile cria o perfil de cliente de um usuário
func NewProfile(userID, nationalID, address string, subscribed bool, imageURL string) (*Profile, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, ErrEmptyNationalID
	}
	return &Profile{
		UserID:     userID,
		NationalID: nationalID,
		Address:    strings.TrimSpace(address),
		Subscribed: subscribed,
		ImageURL:   imageURL,
	}, nil
}
