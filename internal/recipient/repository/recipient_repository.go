package repository

import (
	"context"
	"database/sql"
	"fmt"

	"parcelo/internal/domain"
	"parcelo/internal/errors"
)

type MySQLRecipientRepository struct {
	db *sql.DB
}

func NewMySQLRecipientRepository(db *sql.DB) *MySQLRecipientRepository {
	return &MySQLRecipientRepository{db: db}
}

func (r *MySQLRecipientRepository) FindByID(ctx context.Context, id uint) (*domain.Recipient, error) {
	query := `
		SELECT id, name, street, number, complement, state, city, zipCode,
		       createdAt, updatedAt
		FROM Recipients
		WHERE id = ?
	`

	var rec domain.Recipient
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.Name, &rec.Street, &rec.Number, &rec.Complement,
		&rec.State, &rec.City, &rec.ZipCode, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("recipient with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying recipient by id: %w", err)
	}

	return &rec, nil
}

func (r *MySQLRecipientRepository) FindAll(ctx context.Context) ([]domain.Recipient, error) {
	query := `
		SELECT id, name, street, number, complement, state, city, zipCode,
		       createdAt, updatedAt
		FROM Recipients
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying recipients: %w", err)
	}
	defer rows.Close()

	var recipients []domain.Recipient
	for rows.Next() {
		var rec domain.Recipient
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Street, &rec.Number, &rec.Complement,
			&rec.State, &rec.City, &rec.ZipCode, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recipient row: %w", err)
		}
		recipients = append(recipients, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipient rows: %w", err)
	}

	return recipients, nil
}

func (r *MySQLRecipientRepository) Create(ctx context.Context, rec domain.Recipient) (*domain.Recipient, error) {
	query := `
		INSERT INTO Recipients (name, street, number, complement, state, city, zipCode)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.Name, rec.Street, rec.Number, rec.Complement, rec.State, rec.City, rec.ZipCode,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting recipient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted recipient id: %w", err)
	}

	return r.FindByID(ctx, uint(id))
}

func (r *MySQLRecipientRepository) Update(ctx context.Context, id uint, rec domain.Recipient) error {
	query := `
		UPDATE Recipients
		SET name = ?, street = ?, number = ?, complement = ?, state = ?, city = ?, zipCode = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		rec.Name, rec.Street, rec.Number, rec.Complement, rec.State, rec.City, rec.ZipCode, id,
	); err != nil {
		return fmt.Errorf("updating recipient: %w", err)
	}

	return nil
}

func (r *MySQLRecipientRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Recipients WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting recipient: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("recipient with id %d not found", id))
	}

	return nil
}
