package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
)

type mockDeliverymanRepository struct {
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.Deliveryman, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.Deliveryman, error)
	FindAllFunc     func(ctx context.Context) ([]domain.Deliveryman, map[uint]domain.File, error)
	CreateFunc      func(ctx context.Context, name, email string, avatarID *uint) (*domain.Deliveryman, error)
	UpdateFunc      func(ctx context.Context, id uint, name, email string, avatarID *uint) error
	DeleteFunc      func(ctx context.Context, id uint) error

	createCalls int
	updateCalls int
}

func (m *mockDeliverymanRepository) FindByID(ctx context.Context, id uint) (*domain.Deliveryman, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockDeliverymanRepository) FindByEmail(ctx context.Context, email string) (*domain.Deliveryman, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockDeliverymanRepository) FindAll(ctx context.Context) ([]domain.Deliveryman, map[uint]domain.File, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockDeliverymanRepository) Create(ctx context.Context, name, email string, avatarID *uint) (*domain.Deliveryman, error) {
	m.createCalls++
	return m.CreateFunc(ctx, name, email, avatarID)
}

func (m *mockDeliverymanRepository) Update(ctx context.Context, id uint, name, email string, avatarID *uint) error {
	m.updateCalls++
	return m.UpdateFunc(ctx, id, name, email, avatarID)
}

func (m *mockDeliverymanRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

type mockFileRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*domain.File, error)
}

func (m *mockFileRepository) FindByID(ctx context.Context, id uint) (*domain.File, error) {
	return m.FindByIDFunc(ctx, id)
}

func emailFree() func(ctx context.Context, email string) (*domain.Deliveryman, error) {
	return func(ctx context.Context, email string) (*domain.Deliveryman, error) {
		return nil, apperrors.NewNotFoundError("deliveryman with email " + email + " not found")
	}
}

func TestDeliverymanCreate_Success(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		FindByEmailFunc: emailFree(),
		CreateFunc: func(ctx context.Context, name, email string, avatarID *uint) (*domain.Deliveryman, error) {
			return &domain.Deliveryman{ID: 7, Name: name, Email: email, AvatarID: avatarID}, nil
		},
	}
	fileRepo := &mockFileRepository{}

	uc := NewDeliverymanUseCase(repo, fileRepo, zap.NewNop())

	resp, err := uc.Create(ctx, dto.CreateDeliverymanRequest{Name: "John Doe", Email: "john@example.com"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Nil(t, resp.AvatarID)
}

func TestDeliverymanCreate_EmailTaken(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Deliveryman, error) {
			return &domain.Deliveryman{ID: 1, Email: email}, nil
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	_, err := uc.Create(ctx, dto.CreateDeliverymanRequest{Name: "John Doe", Email: "john@example.com"})

	ce, ok := apperrors.IsConflictError(err)
	require.True(t, ok)
	assert.Equal(t, "email already in use", ce.Message)
	assert.Zero(t, repo.createCalls)
}

func TestDeliverymanCreate_AvatarMissing(t *testing.T) {
	ctx := context.Background()
	avatarID := uint(42)

	repo := &mockDeliverymanRepository{FindByEmailFunc: emailFree()}
	fileRepo := &mockFileRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.File, error) {
			return nil, apperrors.NewNotFoundError("file with id 42 not found")
		},
	}

	uc := NewDeliverymanUseCase(repo, fileRepo, zap.NewNop())

	_, err := uc.Create(ctx, dto.CreateDeliverymanRequest{Name: "John Doe", Email: "john@example.com", AvatarID: &avatarID})

	nfe, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "avatar file not found", nfe.Message)
	assert.Zero(t, repo.createCalls)
}

func TestDeliverymanUpdate_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Deliveryman, error) {
			return nil, apperrors.NewNotFoundError("deliveryman with id 9 not found")
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	_, err := uc.Update(ctx, 9, dto.UpdateDeliverymanRequest{Name: "John Doe", Email: "john@example.com"})

	nfe, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "deliveryman not found", nfe.Message)
	assert.Zero(t, repo.updateCalls)
}

func TestDeliverymanUpdate_EmailChangeToTakenAddress(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Deliveryman, error) {
			return &domain.Deliveryman{ID: id, Name: "John Doe", Email: "john@example.com"}, nil
		},
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Deliveryman, error) {
			return &domain.Deliveryman{ID: 2, Email: email}, nil
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	_, err := uc.Update(ctx, 1, dto.UpdateDeliverymanRequest{Name: "John Doe", Email: "taken@example.com"})

	_, ok := apperrors.IsConflictError(err)
	require.True(t, ok)
	assert.Zero(t, repo.updateCalls)
}

func TestDeliverymanUpdate_SameEmailSkipsUniquenessCheck(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Deliveryman, error) {
			return &domain.Deliveryman{ID: id, Name: "John Doe", Email: "john@example.com"}, nil
		},
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.Deliveryman, error) {
			t.Fatal("uniqueness check must not run when the email is unchanged")
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, id uint, name, email string, avatarID *uint) error {
			return nil
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	resp, err := uc.Update(ctx, 1, dto.UpdateDeliverymanRequest{Name: "Johnny Doe", Email: "john@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", resp.Name)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestDeliverymanDelete_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockDeliverymanRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("deliveryman with id 9 not found")
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	err := uc.Delete(ctx, 9)

	nfe, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "deliveryman not found", nfe.Message)
}

func TestDeliverymanList_IncludesAvatars(t *testing.T) {
	ctx := context.Background()
	avatarID := uint(3)

	repo := &mockDeliverymanRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Deliveryman, map[uint]domain.File, error) {
			return []domain.Deliveryman{
					{ID: 1, Name: "John Doe", Email: "john@example.com", AvatarID: &avatarID},
					{ID: 2, Name: "Jane Roe", Email: "jane@example.com"},
				}, map[uint]domain.File{
					1: {ID: 3, Name: "avatar.png", Path: "abc123.png"},
				}, nil
		},
	}

	uc := NewDeliverymanUseCase(repo, &mockFileRepository{}, zap.NewNop())

	resps, err := uc.List(ctx)

	require.NoError(t, err)
	require.Len(t, resps, 2)
	require.NotNil(t, resps[0].Avatar)
	assert.Equal(t, "avatar.png", resps[0].Avatar.Name)
	assert.Nil(t, resps[1].Avatar)
}
