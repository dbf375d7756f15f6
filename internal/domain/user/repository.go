package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário; username ou email repetido resulta em apperr.ErrConflict
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um usuário pelo nome de usuário
	FindByUsername(ctx context.Context, username string) (*User, error)

	// UpdateLastLogin atualiza o timestamp de último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error
}

// ProfileRepository define a interface para operações de repositório de perfis
type ProfileRepository interface {
	// Create cria o perfil de um usuário
	Create(ctx context.Context, p *Profile) error

	// FindByUserID busca o perfil de um usuário
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
}
