package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
	"parcelo/internal/session/token"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionUseCase struct {
	users     UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewSessionUseCase(users UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Authenticate verifies the credentials and issues a signed token. Unknown
// email and wrong password both come back as UnauthorizedError; the
// messages differ but neither leaks the stored hash.
func (uc *SessionUseCase) Authenticate(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("user not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("password does not match")
	}

	signed, err := token.Generate(uc.jwtSecret, user.ID, uc.tokenTTL)
	if err != nil {
		return nil, apperrors.NewInternalError("signing session token", err)
	}

	uc.logger.Info("session issued", zap.Uint("userId", user.ID))

	return &dto.SessionResponse{
		User: dto.SessionUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: signed,
	}, nil
}
