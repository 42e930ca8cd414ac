package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
	"parcelo/internal/session/token"
)

type mockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthenticate_Success(t *testing.T) {
	ctx := context.Background()
	hash := hashOf(t, "secret123")

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Name: "Admin", Email: email, PasswordHash: hash}, nil
		},
	}

	uc := NewSessionUseCase(users, "test-secret", time.Hour, zap.NewNop())

	resp, err := uc.Authenticate(ctx, dto.CreateSessionRequest{Email: "admin@parcelo.dev", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "admin@parcelo.dev", resp.User.Email)

	claims, err := token.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user with email " + email + " not found")
		},
	}

	uc := NewSessionUseCase(users, "test-secret", time.Hour, zap.NewNop())

	_, err := uc.Authenticate(ctx, dto.CreateSessionRequest{Email: "ghost@parcelo.dev", Password: "x"})

	ue, ok := apperrors.IsUnauthorizedError(err)
	require.True(t, ok)
	assert.Equal(t, "user not found", ue.Message)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hash := hashOf(t, "secret123")

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, PasswordHash: hash}, nil
		},
	}

	uc := NewSessionUseCase(users, "test-secret", time.Hour, zap.NewNop())

	_, err := uc.Authenticate(ctx, dto.CreateSessionRequest{Email: "admin@parcelo.dev", Password: "wrong"})

	ue, ok := apperrors.IsUnauthorizedError(err)
	require.True(t, ok)
	assert.Equal(t, "password does not match", ue.Message)
}
