package dto

import (
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// RegisterRequest representa os dados do cadastro de um cliente
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	NationalID string `json:"national_id" binding:"required"`
	Address    string `json:"address"`
	Subscribed bool   `json:"subscribed"`
	ImageURL   string `json:"image_url"`
}

// LoginRequest representa os dados para login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse representa os dados públicos de um usuário
type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	Status      string           `json:"status"`
	LastLoginAt *time.Time       `json:"last_login_at,omitempty"`
	Profile     *ProfileResponse `json:"profile,omitempty"`
}

// ProfileResponse representa o perfil de cliente
type ProfileResponse struct {
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Subscribed bool   `json:"subscribed"`
	ImageURL   string `json:"image_url"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// ToUserResponse converte o usuário (e o perfil, se houver) para a resposta
func ToUserResponse(u *user.User, p *user.Profile) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
	}
	if p != nil {
		resp.Profile = &ProfileResponse{
			NationalID: p.NationalID,
			Address:    p.Address,
			Subscribed: p.Subscribed,
			ImageURL:   p.ImageURL,
		}
	}
	return resp
}
