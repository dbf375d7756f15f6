package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

const selectUser = `
	SELECT
		id::text, username, first_name, last_name, email, password, role, status,
		last_login_at, created_at, updated_at
	FROM users
`

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, username, first_name, last_name, email, password, role, status, last_login_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.db.Conn(ctx).Exec(ctx, query,
		u.ID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		string(u.Status),
		u.LastLoginAt,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return translate(err, messages{conflict: "nome de usuário ou email já cadastrado"})
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, err := r.findOne(ctx, " WHERE id::text = $1", id)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("usuário %s não encontrado", id)})
	}
	return u, nil
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := r.findOne(ctx, " WHERE LOWER(username) = LOWER($1)", username)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("usuário %q não encontrado", username)})
	}
	return u, nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	tag, err := r.db.Conn(ctx).Exec(ctx,
		"UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id::text = $1", id, now)
	if err != nil {
		return translate(err, messages{})
	}
	return notFoundIfNone(tag, fmt.Sprintf("usuário %s não encontrado", id))
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	u := &user.User{}
	var role, status string
	err := r.db.Conn(ctx).QueryRow(ctx, selectUser+where, arg).Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&status,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = user.Role(role)
	u.Status = user.Status(status)
	return u, nil
}

// ProfileRepository implementa a interface user.ProfileRepository usando PostgreSQL
type ProfileRepository struct {
	db *database.PostgresDB
}

// NewProfileRepository cria uma nova instância de ProfileRepository
func NewProfileRepository(db *database.PostgresDB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create implementa user.ProfileRepository.Create
func (r *ProfileRepository) Create(ctx context.Context, p *user.Profile) error {
	_, err := r.db.Conn(ctx).Exec(ctx, `
		INSERT INTO profiles (user_id, national_id, address, subscribed, image_url)
		VALUES ($1, $2, $3, $4, $5)
	`, p.UserID, p.NationalID, p.Address, p.Subscribed, p.ImageURL)
	return translate(err, messages{
		conflict:  fmt.Sprintf("o usuário %s já possui perfil", p.UserID),
		reference: fmt.Sprintf("usuário %s não existe", p.UserID),
	})
}

// FindByUserID implementa user.ProfileRepository.FindByUserID
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*user.Profile, error) {
	p := &user.Profile{}
	err := r.db.Conn(ctx).QueryRow(ctx, `
		SELECT user_id::text, national_id, address, subscribed, image_url
		FROM profiles
		WHERE user_id::text = $1
	`, userID).Scan(&p.UserID, &p.NationalID, &p.Address, &p.Subscribed, &p.ImageURL)
	if err != nil {
		return nil, translate(err, messages{notFound: fmt.Sprintf("perfil do usuário %s não encontrado", userID)})
	}
	return p, nil
}
