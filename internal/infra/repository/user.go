package repository

import (
	"context"
	"time"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func scanUser(row interface{ Scan(...any) error }) (*user.User, error) {
	var (
		id           uuid.UUID
		username     string
		email        string
		passwordHash string
		role         string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &username, &email, &passwordHash, &role, &createdAt); err != nil {
		return nil, err
	}
	return user.Reconstruct(id, username, email, passwordHash, user.Role(role), createdAt), nil
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Username(), u.Email(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, dbtx db.DBTX, username string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE username = $1`, username)

	u, err := scanUser(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return u, nil
}
