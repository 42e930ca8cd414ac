package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
	"parcelo/internal/validation"
)

type DeliverymanUseCase interface {
	List(ctx context.Context) ([]dto.DeliverymanResponse, error)
	Create(ctx context.Context, req dto.CreateDeliverymanRequest) (*dto.DeliverymanResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateDeliverymanRequest) (*dto.DeliverymanResponse, error)
	Delete(ctx context.Context, id uint) error
}

type DeliverymanController struct {
	useCase DeliverymanUseCase
	logger  *zap.Logger
}

func NewDeliverymanController(useCase DeliverymanUseCase, logger *zap.Logger) *DeliverymanController {
	return &DeliverymanController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *DeliverymanController) List(w http.ResponseWriter, r *http.Request) {
	resps, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resps)
}

func (c *DeliverymanController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateDeliverymanRequest
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

	resp, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *DeliverymanController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateDeliverymanRequest
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

	resp, err := c.useCase.Update(r.Context(), id, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *DeliverymanController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	if err := c.useCase.Delete(r.Context(), id); err != nil {
		c.handleError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *DeliverymanController) parseID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid deliveryman id in path", zap.String("id", idStr))
		c.writeValidationError(w, "invalid deliveryman id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *DeliverymanController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: nfe.Message})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: ce.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

func (c *DeliverymanController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: details})
}

func (c *DeliverymanController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
