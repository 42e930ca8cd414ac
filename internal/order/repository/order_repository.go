package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"parcelo/internal/domain"
	"parcelo/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, recipientId, deliverymanId, product, canceledAt,
		       startDate, endDate, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.RecipientID, &order.DeliverymanID, &order.Product,
		&order.CanceledAt, &order.StartDate, &order.EndDate,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// FindAllActive returns every non-canceled order joined with its deliveryman
// and recipient, projected to the fixed listing shape in one query.
func (r *MySQLOrderRepository) FindAllActive(ctx context.Context) ([]domain.OrderDetail, error) {
	query := `
		SELECT o.id, o.product,
		       d.name, d.email,
		       r.name, r.street, r.number, r.complement, r.state, r.city, r.zipCode
		FROM Orders o
		JOIN Deliverymen d ON d.id = o.deliverymanId
		JOIN Recipients r ON r.id = o.recipientId
		WHERE o.canceledAt IS NULL
		ORDER BY o.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var details []domain.OrderDetail
	for rows.Next() {
		var d domain.OrderDetail
		err := rows.Scan(
			&d.ID, &d.Product,
			&d.Deliveryman.Name, &d.Deliveryman.Email,
			&d.Recipient.Name, &d.Recipient.Street, &d.Recipient.Number,
			&d.Recipient.Complement, &d.Recipient.State, &d.Recipient.City,
			&d.Recipient.ZipCode,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return details, nil
}

func (r *MySQLOrderRepository) Create(ctx context.Context, recipientID, deliverymanID uint, product string) (*domain.Order, error) {
	query := `INSERT INTO Orders (recipientId, deliverymanId, product) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, recipientID, deliverymanID, product)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted order id: %w", err)
	}

	// Refetch so createdAt/updatedAt carry the database timestamps.
	return r.FindByID(ctx, uint(id))
}

func (r *MySQLOrderRepository) Update(ctx context.Context, id, recipientID, deliverymanID uint, product string) error {
	query := `UPDATE Orders SET recipientId = ?, deliverymanId = ?, product = ? WHERE id = ?`

	// RowsAffected is not checked here: MySQL reports zero changed rows for
	// an identical update, and the caller verifies existence beforehand.
	if _, err := r.db.ExecContext(ctx, query, recipientID, deliverymanID, product, id); err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

// Cancel soft-deletes the order by stamping canceledAt.
func (r *MySQLOrderRepository) Cancel(ctx context.Context, id uint, at time.Time) error {
	query := `UPDATE Orders SET canceledAt = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("canceling order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
