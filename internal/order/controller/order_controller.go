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

type OrderUseCase interface {
	List(ctx context.Context) ([]dto.OrderListItem, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.UpdateOrderResponse, error)
	Cancel(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, items)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if ve := validation.Check(req); ve != nil {
		logger.Warn("order payload rejected", zap.Int("detailCount", len(ve.Details)))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, orderResponse(order))
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if ve := validation.Check(req); ve != nil {
		logger.Warn("order payload rejected", zap.Int("detailCount", len(ve.Details)))
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

func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	order, err := c.useCase.Cancel(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, orderResponse(order))
}

func (c *OrderController) parseID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid order id in path", zap.String("id", idStr))
		c.writeValidationError(w, "invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func orderResponse(o *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		RecipientID:   o.RecipientID,
		DeliverymanID: o.DeliverymanID,
		Product:       o.Product,
		CanceledAt:    o.CanceledAt,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: nfe.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: details})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
