package dto

type CreateRecipientRequest struct {
	Name       string  `json:"name" validate:"required"`
	Street     string  `json:"street" validate:"required"`
	Number     string  `json:"number" validate:"required"`
	Complement *string `json:"complement"`
	State      string  `json:"state" validate:"required"`
	City       string  `json:"city" validate:"required"`
	ZipCode    string  `json:"zip_code" validate:"required"`
}

type UpdateRecipientRequest struct {
	Name       string  `json:"name" validate:"required"`
	Street     string  `json:"street" validate:"required"`
	Number     string  `json:"number" validate:"required"`
	Complement *string `json:"complement"`
	State      string  `json:"state" validate:"required"`
	City       string  `json:"city" validate:"required"`
	ZipCode    string  `json:"zip_code" validate:"required"`
}

type RecipientResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement"`
	State      string  `json:"state"`
	City       string  `json:"city"`
	ZipCode    string  `json:"zip_code"`
}
