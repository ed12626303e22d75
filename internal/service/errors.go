package service

import "errors"

var (
	// ErrInvalidInput wraps every input validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWorkspace is returned for an empty or placeholder workspace id.
	ErrInvalidWorkspace = errors.New("invalid workspace id")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidStatus is returned for a task status outside the workflow.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrPlanningDisabled is returned when plan generation is requested but
	// no planner is configured.
	ErrPlanningDisabled = errors.New("plan generation is not configured")
)
