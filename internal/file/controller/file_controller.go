package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"parcelo/internal/domain"
	"parcelo/internal/dto"
	apperrors "parcelo/internal/errors"
)

// maxUploadSize caps avatar uploads at 8 MiB.
const maxUploadSize = 8 << 20

type FileRepository interface {
	Create(ctx context.Context, name, path string) (*domain.File, error)
}

type Storage interface {
	Save(src io.Reader, originalName string) (string, error)
}

type FileController struct {
	repo    FileRepository
	storage Storage
	baseURL string
	logger  *zap.Logger
}

func NewFileController(repo FileRepository, storage Storage, baseURL string, logger *zap.Logger) *FileController {
	return &FileController{
		repo:    repo,
		storage: storage,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Upload handles multipart uploads on the form field "file": the bytes go to
// storage first, then the {name, path} row is inserted.
func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	src, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("missing or oversized upload", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "validation failed",
			Details: []apperrors.ValidationDetail{
				{Field: "file", Message: "a file field is required"},
			},
		})
		return
	}
	defer src.Close()

	storedName, err := c.storage.Save(src, header.Filename)
	if err != nil {
		logger.Error("storing upload failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
		return
	}

	file, err := c.repo.Create(r.Context(), header.Filename, storedName)
	if err != nil {
		logger.Error("persisting upload failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
		return
	}

	logger.Info("file uploaded",
		zap.Uint("fileId", file.ID),
		zap.String("name", file.Name),
		zap.String("path", file.Path),
	)

	c.writeJSON(w, http.StatusCreated, dto.FileResponse{
		ID:   file.ID,
		Name: file.Name,
		Path: file.Path,
		URL:  c.baseURL + "/" + file.Path,
	})
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *FileController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
