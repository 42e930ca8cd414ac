package session

import (
	"database/sql"

	"go.uber.org/zap"

	"parcelo/internal/config"
	"parcelo/internal/session/controller"
	"parcelo/internal/session/usecase"
	userrepo "parcelo/internal/user/repository"
)

func NewModule(db *sql.DB, cfg config.AuthConfig, logger *zap.Logger) *controller.SessionController {
	users := userrepo.NewMySQLUserRepository(db)
	uc := usecase.NewSessionUseCase(users, cfg.JWTSecret, cfg.TokenTTL, logger)
	return controller.NewSessionController(uc, logger)
}
