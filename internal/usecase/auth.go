package usecase

import (
	"context"
	"errors"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/jwt"
	"resort-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, dbtx db.DBTX, username string) (*user.User, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, username, email, rawPassword string) (*user.User, error)
	Login(ctx context.Context, username, rawPassword string) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	pool       *pgxpool.Pool
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(pool *pgxpool.Pool, userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		pool:       pool,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, username, email, rawPassword string) (*user.User, error) {
	hash, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}

	u, err := user.New(username, email, hash)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, a.pool, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, rawPassword string) (string, *user.User, error) {
	u, err := a.userRepo.FindByUsername(ctx, a.pool, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.Compare(u.PasswordHash(), rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Username(), u.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, u, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := a.userRepo.FindByID(ctx, a.pool, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}
	return claims.UserID, role, nil
}
