package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// Erros de autenticação
var (
	ErrInvalidCredentials = errors.New("usuário ou senha incorretos")
	ErrInactiveUser       = errors.New("usuário inativo")
)

// RegisterInput reúne os dados do cadastro de um cliente
type RegisterInput struct {
	Username   string
	FirstName  string
	LastName   string
	Email      string
	Password   string
	NationalID string
	Address    string
	Subscribed bool
	ImageURL   string
}

// AuthService atende o cadastro e a autenticação de usuários
type AuthService struct {
	tx       Transactor
	users    user.Repository
	profiles user.ProfileRepository
}

// NewAuthService cria uma nova instância de AuthService
func NewAuthService(tx Transactor, users user.Repository, profiles user.ProfileRepository) *AuthService {
	return &AuthService{tx: tx, users: users, profiles: profiles}
}

// Register cria o usuário cliente e o seu perfil na mesma transação
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*user.User, *user.Profile, error) {
	u, err := user.NewUser(in.Username, in.FirstName, in.LastName, in.Email, in.Password, user.RoleCustomer)
	if err != nil {
		return nil, nil, err
	}
	p, err := user.NewProfile(u.ID, in.NationalID, in.Address, in.Subscribed, in.ImageURL)
	if err != nil {
		return nil, nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, u); err != nil {
			return err
		}
		return s.profiles.Create(ctx, p)
	})
	if err != nil {
		return nil, nil, err
	}

	return u, p, nil
}

// Authenticate confere usuário e senha e registra o login
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrInactiveUser
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Me retorna o usuário e o perfil; administradores podem não ter perfil
func (s *AuthService) Me(ctx context.Context, userID string) (*user.User, *user.Profile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return u, nil, nil
		}
		return nil, nil, err
	}
	return u, p, nil
}
