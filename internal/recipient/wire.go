package recipient

import (
	"database/sql"

	"go.uber.org/zap"

	"parcelo/internal/recipient/controller"
	recipientrepo "parcelo/internal/recipient/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.RecipientController {
	repo := recipientrepo.NewMySQLRecipientRepository(db)
	return controller.NewRecipientController(repo, logger)
}
