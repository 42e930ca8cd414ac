package domain

import "time"

// File is an uploaded file. Name is the original filename as sent by the
// client, Path is the name it was stored under on disk.
type File struct {
	ID        uint
	Name      string
	Path      string
	CreatedAt time.Time
}
