package deliveryman

import (
	"database/sql"

	"go.uber.org/zap"

	"parcelo/internal/deliveryman/controller"
	deliverymanrepo "parcelo/internal/deliveryman/repository"
	"parcelo/internal/deliveryman/usecase"
	filerepo "parcelo/internal/file/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.DeliverymanController {
	repo := deliverymanrepo.NewMySQLDeliverymanRepository(db)
	fileRepo := filerepo.NewMySQLFileRepository(db)

	uc := usecase.NewDeliverymanUseCase(repo, fileRepo, logger)

	return controller.NewDeliverymanController(uc, logger)
}
