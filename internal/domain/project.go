package domain

import "time"

type Project struct {
	ID          string
	WorkspaceID string
	Name        string
	Goal        string
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayID returns the first 8 characters of the project ID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
