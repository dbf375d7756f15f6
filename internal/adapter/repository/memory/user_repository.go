package memory

import (
	"context"
	"time"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// UserRepository implementa user.Repository em memória
type UserRepository struct {
	store *Store
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create cria um novo usuário
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		checks := []struct {
			index string
			value string
			err   error
		}{
			{"id", u.ID, apperr.Conflict("já existe um usuário com id %s", u.ID)},
			{"username", u.Username, apperr.Conflict("o nome de usuário %q já está em uso", u.Username)},
			{"email", u.Email, apperr.Conflict("o email %q já está em uso", u.Email)},
		}
		for _, c := range checks {
			if c.value == "" {
				continue
			}
			taken, err := exists(txn, tableUsers, c.index, c.value)
			if err != nil {
				return err
			}
			if taken {
				return c.err
			}
		}
		return insert(txn, tableUsers, *u)
	})
}

// FindByID busca um usuário pelo ID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.find(ctx, "id", id, apperr.NotFound("usuário %s não encontrado", id))
}

// FindByUsername busca um usuário pelo nome de usuário, sem diferenciar maiúsculas
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.find(ctx, "username", username, apperr.NotFound("usuário %q não encontrado", username))
}

func (r *UserRepository) find(ctx context.Context, index, value string, notFound error) (*user.User, error) {
	var found *user.User
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		u, ok, err := first[user.User](txn, tableUsers, index, value)
		if err != nil {
			return err
		}
		if !ok {
			return notFound
		}
		found = &u
		return nil
	})
	return found, err
}

// UpdateLastLogin atualiza o timestamp de último login do usuário
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		u, ok, err := first[user.User](txn, tableUsers, "id", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("usuário %s não encontrado", id)
		}
		now := time.Now()
		u.LastLoginAt = &now
		u.UpdatedAt = now
		return insert(txn, tableUsers, u)
	})
}

// ProfileRepository implementa user.ProfileRepository em memória
type ProfileRepository struct {
	store *Store
}

// NewProfileRepository cria uma nova instância de ProfileRepository
func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Create cria o perfil de um usuário existente
func (r *ProfileRepository) Create(ctx context.Context, p *user.Profile) error {
	return r.store.update(ctx, func(txn *memdb.Txn) error {
		found, err := exists(txn, tableUsers, "id", p.UserID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferentialIntegrity("usuário %s não existe", p.UserID)
		}
		if found, err = exists(txn, tableProfiles, "id", p.UserID); err != nil {
			return err
		}
		if found {
			return apperr.Conflict("o usuário %s já possui perfil", p.UserID)
		}
		return insert(txn, tableProfiles, *p)
	})
}

// FindByUserID busca o perfil de um usuário
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*user.Profile, error) {
	var found *user.Profile
	err := r.store.view(ctx, func(txn *memdb.Txn) error {
		p, ok, err := first[user.Profile](txn, tableProfiles, "id", userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("perfil do usuário %s não encontrado", userID)
		}
		found = &p
		return nil
	})
	return found, err
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
