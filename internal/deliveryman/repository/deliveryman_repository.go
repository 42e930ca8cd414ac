package repository

import (
	"context"
	"database/sql"
	"fmt"

	"parcelo/internal/domain"
	"parcelo/internal/errors"
)

type MySQLDeliverymanRepository struct {
	db *sql.DB
}

func NewMySQLDeliverymanRepository(db *sql.DB) *MySQLDeliverymanRepository {
	return &MySQLDeliverymanRepository{db: db}
}

func (r *MySQLDeliverymanRepository) FindByID(ctx context.Context, id uint) (*domain.Deliveryman, error) {
	query := `
		SELECT id, name, email, avatarId, createdAt, updatedAt
		FROM Deliverymen
		WHERE id = ?
	`

	var dm domain.Deliveryman
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dm.ID, &dm.Name, &dm.Email, &dm.AvatarID, &dm.CreatedAt, &dm.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("deliveryman with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying deliveryman by id: %w", err)
	}

	return &dm, nil
}

func (r *MySQLDeliverymanRepository) FindByEmail(ctx context.Context, email string) (*domain.Deliveryman, error) {
	query := `
		SELECT id, name, email, avatarId, createdAt, updatedAt
		FROM Deliverymen
		WHERE email = ?
	`

	var dm domain.Deliveryman
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&dm.ID, &dm.Name, &dm.Email, &dm.AvatarID, &dm.CreatedAt, &dm.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("deliveryman with email %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying deliveryman by email: %w", err)
	}

	return &dm, nil
}

// FindAll returns every deliveryman with the avatar file joined when set.
func (r *MySQLDeliverymanRepository) FindAll(ctx context.Context) ([]domain.Deliveryman, map[uint]domain.File, error) {
	query := `
		SELECT d.id, d.name, d.email, d.avatarId, d.createdAt, d.updatedAt,
		       f.id, f.name, f.path
		FROM Deliverymen d
		LEFT JOIN Files f ON f.id = d.avatarId
		ORDER BY d.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying deliverymen: %w", err)
	}
	defer rows.Close()

	var deliverymen []domain.Deliveryman
	avatars := make(map[uint]domain.File)

	for rows.Next() {
		var dm domain.Deliveryman
		var fileID *uint
		var fileName, filePath *string

		err := rows.Scan(
			&dm.ID, &dm.Name, &dm.Email, &dm.AvatarID, &dm.CreatedAt, &dm.UpdatedAt,
			&fileID, &fileName, &filePath,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning deliveryman row: %w", err)
		}

		if fileID != nil {
			avatars[dm.ID] = domain.File{ID: *fileID, Name: *fileName, Path: *filePath}
		}
		deliverymen = append(deliverymen, dm)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating deliveryman rows: %w", err)
	}

	return deliverymen, avatars, nil
}

func (r *MySQLDeliverymanRepository) Create(ctx context.Context, name, email string, avatarID *uint) (*domain.Deliveryman, error) {
	query := `INSERT INTO Deliverymen (name, email, avatarId) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, name, email, avatarID)
	if err != nil {
		return nil, fmt.Errorf("inserting deliveryman: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted deliveryman id: %w", err)
	}

	return r.FindByID(ctx, uint(id))
}

func (r *MySQLDeliverymanRepository) Update(ctx context.Context, id uint, name, email string, avatarID *uint) error {
	query := `UPDATE Deliverymen SET name = ?, email = ?, avatarId = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, name, email, avatarID, id); err != nil {
		return fmt.Errorf("updating deliveryman: %w", err)
	}

	return nil
}

func (r *MySQLDeliverymanRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Deliverymen WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting deliveryman: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("deliveryman with id %d not found", id))
	}

	return nil
}
