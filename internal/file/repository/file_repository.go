package repository

import (
	"context"
	"database/sql"
	"fmt"

	"parcelo/internal/domain"
	"parcelo/internal/errors"
)

type MySQLFileRepository struct {
	db *sql.DB
}

func NewMySQLFileRepository(db *sql.DB) *MySQLFileRepository {
	return &MySQLFileRepository{db: db}
}

func (r *MySQLFileRepository) FindByID(ctx context.Context, id uint) (*domain.File, error) {
	query := `SELECT id, name, path, createdAt FROM Files WHERE id = ?`

	var f domain.File
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.Path, &f.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("file with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying file by id: %w", err)
	}

	return &f, nil
}

func (r *MySQLFileRepository) Create(ctx context.Context, name, path string) (*domain.File, error) {
	query := `INSERT INTO Files (name, path) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, name, path)
	if err != nil {
		return nil, fmt.Errorf("inserting file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted file id: %w", err)
	}

	return r.FindByID(ctx, uint(id))
}
