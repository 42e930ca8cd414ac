package file

import (
	"database/sql"

	"go.uber.org/zap"

	"parcelo/internal/config"
	"parcelo/internal/file/controller"
	filerepo "parcelo/internal/file/repository"
	"parcelo/internal/file/storage"
)

func NewModule(db *sql.DB, cfg config.UploadConfig, logger *zap.Logger) *controller.FileController {
	repo := filerepo.NewMySQLFileRepository(db)
	store := storage.NewDiskStorage(cfg.Dir)
	return controller.NewFileController(repo, store, cfg.BaseURL, logger)
}
