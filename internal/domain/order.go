package domain

import "time"

type Order struct {
	ID            uint
	RecipientID   uint
	DeliverymanID uint
	Product       string
	CanceledAt    *time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Canceled reports whether the order was soft-deleted via cancellation.
func (o *Order) Canceled() bool {
	return o.CanceledAt != nil
}

// OrderDetail is the joined listing row: the order projected to id and
// product plus its deliveryman (name, email) and recipient (address fields).
// Only the projected fields of the embedded entities are populated.
type OrderDetail struct {
	ID          uint
	Product     string
	Deliveryman Deliveryman
	Recipient   Recipient
}
