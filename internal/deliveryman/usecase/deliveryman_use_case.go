package usecase

import (
	"context"

	"go.uber.org/zap"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
)

type DeliverymanRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Deliveryman, error)
	FindByEmail(ctx context.Context, email string) (*domain.Deliveryman, error)
	FindAll(ctx context.Context) ([]domain.Deliveryman, map[uint]domain.File, error)
	Create(ctx context.Context, name, email string, avatarID *uint) (*domain.Deliveryman, error)
	Update(ctx context.Context, id uint, name, email string, avatarID *uint) error
	Delete(ctx context.Context, id uint) error
}

type FileRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.File, error)
}

type DeliverymanUseCase struct {
	repo     DeliverymanRepository
	fileRepo FileRepository
	logger   *zap.Logger
}

func NewDeliverymanUseCase(repo DeliverymanRepository, fileRepo FileRepository, logger *zap.Logger) *DeliverymanUseCase {
	return &DeliverymanUseCase{
		repo:     repo,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

func (uc *DeliverymanUseCase) List(ctx context.Context) ([]dto.DeliverymanResponse, error) {
	deliverymen, avatars, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.DeliverymanResponse, 0, len(deliverymen))
	for _, dm := range deliverymen {
		resp := deliverymanResponse(&dm)
		if avatar, ok := avatars[dm.ID]; ok {
			resp.Avatar = &dto.FileRef{ID: avatar.ID, Name: avatar.Name, Path: avatar.Path}
		}
		resps = append(resps, resp)
	}

	return resps, nil
}

func (uc *DeliverymanUseCase) Create(ctx context.Context, req dto.CreateDeliverymanRequest) (*dto.DeliverymanResponse, error) {
	if _, err := uc.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("email already in use")
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	if err := uc.checkAvatar(ctx, req.AvatarID); err != nil {
		return nil, err
	}

	dm, err := uc.repo.Create(ctx, req.Name, req.Email, req.AvatarID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("deliveryman created", zap.Uint("deliverymanId", dm.ID))

	resp := deliverymanResponse(dm)
	return &resp, nil
}

func (uc *DeliverymanUseCase) Update(ctx context.Context, id uint, req dto.UpdateDeliverymanRequest) (*dto.DeliverymanResponse, error) {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("deliveryman not found")
		}
		return nil, err
	}

	if req.Email != current.Email {
		if other, err := uc.repo.FindByEmail(ctx, req.Email); err == nil && other.ID != id {
			return nil, apperrors.NewConflictError("email already in use")
		} else if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); !ok {
				return nil, err
			}
		}
	}

	if err := uc.checkAvatar(ctx, req.AvatarID); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, id, req.Name, req.Email, req.AvatarID); err != nil {
		return nil, err
	}

	resp := dto.DeliverymanResponse{ID: id, Name: req.Name, Email: req.Email, AvatarID: req.AvatarID}
	return &resp, nil
}

func (uc *DeliverymanUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("deliveryman not found")
		}
		return err
	}

	uc.logger.Info("deliveryman deleted", zap.Uint("deliverymanId", id))
	return nil
}

func (uc *DeliverymanUseCase) checkAvatar(ctx context.Context, avatarID *uint) error {
	if avatarID == nil {
		return nil
	}
	if _, err := uc.fileRepo.FindByID(ctx, *avatarID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("avatar file not found")
		}
		return err
	}
	return nil
}

func deliverymanResponse(dm *domain.Deliveryman) dto.DeliverymanResponse {
	return dto.DeliverymanResponse{
		ID:       dm.ID,
		Name:     dm.Name,
		Email:    dm.Email,
		AvatarID: dm.AvatarID,
	}
}
