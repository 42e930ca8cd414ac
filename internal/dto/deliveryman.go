package dto

type CreateDeliverymanRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	AvatarID *uint  `json:"avatar_id" validate:"omitempty,gt=0"`
}

type UpdateDeliverymanRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	AvatarID *uint  `json:"avatar_id" validate:"omitempty,gt=0"`
}

type DeliverymanResponse struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	AvatarID *uint    `json:"avatar_id"`
	Avatar   *FileRef `json:"avatar,omitempty"`
}

// FileRef is the avatar projection embedded in deliveryman responses.
type FileRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}
