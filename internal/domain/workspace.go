package domain

import "time"

type Workspace struct {
	ID        string
	Name      string
	OwnerID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
