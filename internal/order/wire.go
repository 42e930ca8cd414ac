package order

import (
	"database/sql"

	"go.uber.org/zap"

	deliverymanrepo "parcelo/internal/deliveryman/repository"
	"parcelo/internal/mail"
	"parcelo/internal/order/controller"
	orderrepo "parcelo/internal/order/repository"
	"parcelo/internal/order/usecase"
	recipientrepo "parcelo/internal/recipient/repository"
)

func NewModule(db *sql.DB, mailer mail.Mailer, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	recipientRepo := recipientrepo.NewMySQLRecipientRepository(db)
	deliverymanRepo := deliverymanrepo.NewMySQLDeliverymanRepository(db)

	uc := usecase.NewOrderUseCase(orderRepo, recipientRepo, deliverymanRepo, mailer, logger)

	return controller.NewOrderController(uc, logger)
}
