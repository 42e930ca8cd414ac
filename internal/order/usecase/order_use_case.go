package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindAllActive(ctx context.Context) ([]domain.OrderDetail, error)
	Create(ctx context.Context, recipientID, deliverymanID uint, product string) (*domain.Order, error)
	Update(ctx context.Context, id, recipientID, deliverymanID uint, product string) error
	Cancel(ctx context.Context, id uint, at time.Time) error
}

type RecipientRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Recipient, error)
}

type DeliverymanRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Deliveryman, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type OrderUseCase struct {
	orderRepo       OrderRepository
	recipientRepo   RecipientRepository
	deliverymanRepo DeliverymanRepository
	mailer          Mailer
	logger          *zap.Logger
	now             func() time.Time
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	recipientRepo RecipientRepository,
	deliverymanRepo DeliverymanRepository,
	mailer Mailer,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:       orderRepo,
		recipientRepo:   recipientRepo,
		deliverymanRepo: deliverymanRepo,
		mailer:          mailer,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderListItem, error) {
	details, err := uc.orderRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderListItem, 0, len(details))
	for _, d := range details {
		items = append(items, dto.OrderListItem{
			ID:      d.ID,
			Product: d.Product,
			Deliveryman: dto.OrderDeliverymanItem{
				Name:  d.Deliveryman.Name,
				Email: d.Deliveryman.Email,
			},
			Recipient: dto.OrderRecipientItem{
				Name:       d.Recipient.Name,
				Street:     d.Recipient.Street,
				Number:     d.Recipient.Number,
				Complement: d.Recipient.Complement,
				State:      d.Recipient.State,
				City:       d.Recipient.City,
				ZipCode:    d.Recipient.ZipCode,
			},
		})
	}

	return items, nil
}

// Create verifies both referenced entities before touching the Orders table,
// then inserts the order and notifies the deliveryman by email. The email is
// best-effort: the order is already committed when it is sent, so a delivery
// failure is logged and the request still succeeds.
func (uc *OrderUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	recipient, err := uc.recipientRepo.FindByID(ctx, req.RecipientID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("recipient not found")
		}
		return nil, err
	}

	deliveryman, err := uc.deliverymanRepo.FindByID(ctx, req.DeliverymanID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("deliveryman not found")
		}
		return nil, err
	}

	order, err := uc.orderRepo.Create(ctx, req.RecipientID, req.DeliverymanID, req.Product)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.Uint("orderId", order.ID),
		zap.Uint("recipientId", req.RecipientID),
		zap.Uint("deliverymanId", req.DeliverymanID),
	)

	uc.notifyDeliveryman(ctx, order, deliveryman, recipient)

	return order, nil
}

func (uc *OrderUseCase) notifyDeliveryman(ctx context.Context, order *domain.Order, dm *domain.Deliveryman, rec *domain.Recipient) {
	to := fmt.Sprintf("%s <%s>", dm.Name, dm.Email)
	subject := "New delivery assigned"
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>A new delivery is waiting for you: <strong>%s</strong>, to be delivered to %s, %s %s, %s - %s.</p>",
		dm.Name, order.Product, rec.Name, rec.Street, rec.Number, rec.City, rec.State,
	)

	if err := uc.mailer.Send(ctx, to, subject, html); err != nil {
		uc.logger.Warn("delivery notification failed",
			zap.Uint("orderId", order.ID),
			zap.String("to", to),
			zap.Error(err),
		)
	}
}

// Update replaces recipientId, deliverymanId and product wholesale after
// checking the order and both references exist. It echoes the written
// fields, it does not refetch the row.
func (uc *OrderUseCase) Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.UpdateOrderResponse, error) {
	if _, err := uc.orderRepo.FindByID(ctx, id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, err
	}

	if _, err := uc.recipientRepo.FindByID(ctx, req.RecipientID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("recipient not found")
		}
		return nil, err
	}

	if _, err := uc.deliverymanRepo.FindByID(ctx, req.DeliverymanID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("deliveryman not found")
		}
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, id, req.RecipientID, req.DeliverymanID, req.Product); err != nil {
		return nil, err
	}

	return &dto.UpdateOrderResponse{
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
		Product:       req.Product,
	}, nil
}

// Cancel soft-deletes the order: the existence check always runs first, then
// canceledAt is stamped and the updated order returned.
func (uc *OrderUseCase) Cancel(ctx context.Context, id uint) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, err
	}

	canceledAt := uc.now()
	if err := uc.orderRepo.Cancel(ctx, id, canceledAt); err != nil {
		return nil, err
	}

	order.CanceledAt = &canceledAt

	uc.logger.Info("order canceled", zap.Uint("orderId", id))

	return order, nil
}
