package usecase

import (
	"resort-booking/internal/domain/user"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}
