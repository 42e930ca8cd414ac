package dto

import "time"

type CreateOrderRequest struct {
	RecipientID   uint   `json:"recipient_id" validate:"required"`
	DeliverymanID uint   `json:"deliveryman_id" validate:"required"`
	Product       string `json:"product" validate:"required"`
}

// UpdateOrderRequest is a full replacement of the mutable fields, not a
// partial merge: every field is required on update too.
type UpdateOrderRequest struct {
	RecipientID   uint   `json:"recipient_id" validate:"required"`
	DeliverymanID uint   `json:"deliveryman_id" validate:"required"`
	Product       string `json:"product" validate:"required"`
}

type OrderResponse struct {
	ID            uint       `json:"id"`
	RecipientID   uint       `json:"recipient_id"`
	DeliverymanID uint       `json:"deliveryman_id"`
	Product       string     `json:"product"`
	CanceledAt    *time.Time `json:"canceled_at"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// UpdateOrderResponse echoes the written fields back, it is not a refetch.
type UpdateOrderResponse struct {
	RecipientID   uint   `json:"recipient_id"`
	DeliverymanID uint   `json:"deliveryman_id"`
	Product       string `json:"product"`
}

// OrderListItem is the fixed projection served by GET /orders: the order
// trimmed to id and product plus the joined deliveryman and recipient.
type OrderListItem struct {
	ID          uint                 `json:"id"`
	Product     string               `json:"product"`
	Deliveryman OrderDeliverymanItem `json:"deliveryman"`
	Recipient   OrderRecipientItem   `json:"recipient"`
}

type OrderDeliverymanItem struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderRecipientItem struct {
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement"`
	State      string  `json:"state"`
	City       string  `json:"city"`
	ZipCode    string  `json:"zip_code"`
}
