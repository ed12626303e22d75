package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epicboard/internal/intelligence"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Users      service.UserService
	Workspaces service.WorkspaceService
	Projects   service.ProjectService
	Tasks      service.TaskService
	Risks      intelligence.RiskService
	Summary    intelligence.SummaryService
	Import     PlanImporter

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// PlanImporter appends a plan file's epics and tasks to a project.
type PlanImporter interface {
	ImportFile(ctx context.Context, projectID, path string) (*plan.Result, error)
}

// NewRootCmd creates the top-level "epicboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "epicboard",
		Short:         "Project boards with AI-generated epic and task plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUserCmd(app),
		newWorkspaceCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newRiskCmd(app),
	)

	return root
}
