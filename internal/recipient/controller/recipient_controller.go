package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
	"parcelo/internal/validation"
)

// Recipients are pure CRUD with no cross-entity checks, so the controller
// talks to the repository directly.
type RecipientRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Recipient, error)
	FindAll(ctx context.Context) ([]domain.Recipient, error)
	Create(ctx context.Context, rec domain.Recipient) (*domain.Recipient, error)
	Update(ctx context.Context, id uint, rec domain.Recipient) error
	Delete(ctx context.Context, id uint) error
}

type RecipientController struct {
	repo   RecipientRepository
	logger *zap.Logger
}

func NewRecipientController(repo RecipientRepository, logger *zap.Logger) *RecipientController {
	return &RecipientController{
		repo:   repo,
		logger: logger,
	}
}

func (c *RecipientController) List(w http.ResponseWriter, r *http.Request) {
	recipients, err := c.repo.FindAll(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	resps := make([]dto.RecipientResponse, 0, len(recipients))
	for _, rec := range recipients {
		resps = append(resps, recipientResponse(&rec))
	}

	c.writeJSON(w, http.StatusOK, resps)
}

func (c *RecipientController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if ve := validation.Check(req); ve != nil {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	rec, err := c.repo.Create(r.Context(), domain.Recipient{
		Name:       req.Name,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		State:      req.State,
		City:       req.City,
		ZipCode:    req.ZipCode,
	})
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("recipient created", zap.Uint("recipientId", rec.ID))
	c.writeJSON(w, http.StatusCreated, recipientResponse(rec))
}

func (c *RecipientController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if ve := validation.Check(req); ve != nil {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, err := c.repo.FindByID(r.Context(), id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "recipient not found"})
			return
		}
		c.handleError(w, err, logger)
		return
	}

	updated := domain.Recipient{
		Name:       req.Name,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		State:      req.State,
		City:       req.City,
		ZipCode:    req.ZipCode,
	}
	if err := c.repo.Update(r.Context(), id, updated); err != nil {
		c.handleError(w, err, logger)
		return
	}

	updated.ID = id
	c.writeJSON(w, http.StatusOK, recipientResponse(&updated))
}

func (c *RecipientController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "recipient not found"})
			return
		}
		c.handleError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *RecipientController) parseID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid recipient id in path", zap.String("id", idStr))
		c.writeValidationError(w, "invalid recipient id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func recipientResponse(rec *domain.Recipient) dto.RecipientResponse {
	return dto.RecipientResponse{
		ID:         rec.ID,
		Name:       rec.Name,
		Street:     rec.Street,
		Number:     rec.Number,
		Complement: rec.Complement,
		State:      rec.State,
		City:       rec.City,
		ZipCode:    rec.ZipCode,
	}
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *RecipientController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: nfe.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

func (c *RecipientController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: details})
}

func (c *RecipientController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
