//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/jwt"
	"resort-booking/internal/pkg/password"
	"resort-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byUsername map[string]*user.User
	byID       map[uuid.UUID]*user.User
	createErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*user.User),
		byID:       make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUsername[u.Username()]; ok {
		return infra.WrapRepoErr("duplicate", errs.New("unique violation"), infra.KindDuplicateKey)
	}
	f.byUsername[u.Username()] = u
	f.byID[u.ID()] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, _ db.DBTX, username string) (*user.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
	}
	return u, nil
}

func newAuthForTest(t *testing.T) (usecase.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	return usecase.NewAuthUseCase(nil, repo, jwtSvc), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a guest account", func(t *testing.T) {
		auth, _ := newAuthForTest(t)

		u, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, user.RoleGuest, u.Role())
		assert.NoError(t, password.Compare(u.PasswordHash(), "s3cret-pass"))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		auth, _ := newAuthForTest(t)

		_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		_, err = auth.Register(ctx, "alice", "other@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, usecase.ErrDuplicateUser)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		auth, _ := newAuthForTest(t)

		_, err := auth.Register(ctx, "alice", "not-an-email", "s3cret-pass")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a valid token", func(t *testing.T) {
		auth, _ := newAuthForTest(t)
		_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		token, u, err := auth.Login(ctx, "alice", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, role, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), userID)
		assert.Equal(t, user.RoleGuest, role)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		auth, _ := newAuthForTest(t)
		_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		_, _, err = auth.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("rejects unknown user without leaking existence", func(t *testing.T) {
		auth, _ := newAuthForTest(t)

		_, _, err := auth.Login(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	auth, _ := newAuthForTest(t)

	_, _, err := auth.ValidateToken("garbage")
	assert.ErrorIs(t, err, usecase.ErrTokenValidation)
}
