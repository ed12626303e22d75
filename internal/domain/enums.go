package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectArchived  ProjectStatus = "ARCHIVED"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectActive: true, ProjectOnHold: true, ProjectCompleted: true, ProjectArchived: true,
}

// ParseProjectStatus accepts "on hold", "on-hold" and "ON_HOLD" alike.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	st := ProjectStatus(normalizeEnum(s))
	return st, ValidProjectStatuses[st]
}

type EpicStatus string

const (
	EpicBacklog    EpicStatus = "BACKLOG"
	EpicInProgress EpicStatus = "IN_PROGRESS"
	EpicDone       EpicStatus = "DONE"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskInReview   TaskStatus = "IN_REVIEW"
	TaskDone       TaskStatus = "DONE"
	TaskBlocked    TaskStatus = "BLOCKED"
)

// TaskStatuses lists task statuses in board column order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskInReview, TaskDone, TaskBlocked}

// ParseTaskStatus accepts a status name in any case, with '-' or ' ' as
// word separators.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	norm := TaskStatus(normalizeEnum(s))
	for _, st := range TaskStatuses {
		if st == norm {
			return st, true
		}
	}
	return "", false
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type RiskType string

const (
	RiskBlocker            RiskType = "BLOCKER"
	RiskResourceConstraint RiskType = "RESOURCE_CONSTRAINT"
	RiskTimeline           RiskType = "TIMELINE_RISK"
	RiskDependency         RiskType = "DEPENDENCY_ISSUE"
	RiskTechnicalDebt      RiskType = "TECHNICAL_DEBT"
)

// ValidRiskTypes is the canonical set of accepted risk type strings.
var ValidRiskTypes = map[RiskType]bool{
	RiskBlocker: true, RiskResourceConstraint: true, RiskTimeline: true,
	RiskDependency: true, RiskTechnicalDebt: true,
}

// RiskSeverity shares its values with Priority.
type RiskSeverity string

const (
	SeverityLow      RiskSeverity = "LOW"
	SeverityMedium   RiskSeverity = "MEDIUM"
	SeverityHigh     RiskSeverity = "HIGH"
	SeverityCritical RiskSeverity = "CRITICAL"
)

// ValidRiskSeverities is the canonical set of accepted severity strings.
var ValidRiskSeverities = map[RiskSeverity]bool{
	SeverityLow: true, SeverityMedium: true, SeverityHigh: true, SeverityCritical: true,
}
