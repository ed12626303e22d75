package domain

import "time"

type Risk struct {
	ID          string
	TaskID      string
	Type        RiskType
	Severity    RiskSeverity
	Description string
	CreatedAt   time.Time
}
