package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
	"parcelo/internal/validation"
)

type SessionUseCase interface {
	Authenticate(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error)
}

type SessionController struct {
	useCase SessionUseCase
	logger  *zap.Logger
}

func NewSessionController(useCase SessionUseCase, logger *zap.Logger) *SessionController {
	return &SessionController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateSessionRequest
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

	resp, err := c.useCase.Authenticate(r.Context(), req)
	if err != nil {
		if ue, ok := apperrors.IsUnauthorizedError(err); ok {
			c.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: ue.Message})
			return
		}
		logger.Error("unexpected error", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *SessionController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: details})
}

func (c *SessionController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
