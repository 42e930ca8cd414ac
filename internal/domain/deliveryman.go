package domain

import "time"

type Deliveryman struct {
	ID        uint
	Name      string
	Email     string
	AvatarID  *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
