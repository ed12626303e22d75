package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/service"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and their plans",
	}

	cmd.AddCommand(
		newProjectCreateCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectBoardCmd(app),
		newProjectPlanCmd(app),
		newProjectImportCmd(app),
		newProjectStatusCmd(app),
		newProjectRenameCmd(app),
		newProjectRemoveCmd(app),
		newProjectSummaryCmd(app),
	)

	return cmd
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var v projectFormValues

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project and generate its plan from the goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if v.WorkspaceID != "" {
				id, err := resolveWorkspaceID(ctx, app, v.WorkspaceID)
				if err != nil {
					return err
				}
				v.WorkspaceID = id
			}
			if err := completeProjectValues(ctx, app, &v); err != nil {
				return err
			}

			res, err := app.Projects.Create(ctx, service.CreateProjectInput{
				WorkspaceID: v.WorkspaceID,
				Name:        v.Name,
				Goal:        v.Goal,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created project %s [%s]\n", res.Project.Name, formatter.ShortID(res.Project.ID))
			switch {
			case res.PlanErr != nil:
				fmt.Fprintf(cmd.ErrOrStderr(), "Plan generation failed: %v\n", res.PlanErr)
				fmt.Fprintf(cmd.ErrOrStderr(), "Retry with: epicboard project plan %s\n", formatter.ShortID(res.Project.ID))
			case res.Plan != nil:
				fmt.Fprint(out, formatter.FormatPlanResult(res.Plan))
			default:
				fmt.Fprintln(out, formatter.Dim("LLM disabled; no plan generated."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&v.WorkspaceID, "workspace", "", "Workspace ID")
	cmd.Flags().StringVar(&v.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&v.Goal, "goal", "", "Project goal the plan is generated from")

	return cmd
}

// completeProjectValues fills missing create fields from a form on a
// terminal. Without one, missing fields are reported as errors.
func completeProjectValues(ctx context.Context, app *App, v *projectFormValues) error {
	var missing []string
	if v.WorkspaceID == "" {
		missing = append(missing, "--workspace")
	}
	if strings.TrimSpace(v.Name) == "" {
		missing = append(missing, "--name")
	}
	if strings.TrimSpace(v.Goal) == "" {
		missing = append(missing, "--goal")
	}
	if len(missing) == 0 {
		return nil
	}
	if !app.interactive() {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	workspaces, err := app.Workspaces.List(ctx)
	if err != nil {
		return err
	}
	if v.WorkspaceID == "" && len(workspaces) == 0 {
		return errors.New("no workspaces yet; create one with: epicboard workspace add --name NAME")
	}
	return projectCreateForm(v, workspaces).Run()
}

func newProjectListCmd(app *App) *cobra.Command {
	var workspace string
	var status projectStatusValue

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var projects []*domain.Project
			var err error
			if workspace != "" {
				wsID, rErr := resolveWorkspaceID(ctx, app, workspace)
				if rErr != nil {
					return rErr
				}
				projects, err = app.Projects.ListByWorkspace(ctx, wsID)
			} else {
				projects, err = app.Projects.List(ctx)
			}
			if err != nil {
				return err
			}

			if status.status != "" {
				filtered := projects[:0]
				for _, p := range projects {
					if p.Status == status.status {
						filtered = append(filtered, p)
					}
				}
				projects = filtered
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "Only projects in this workspace")
	cmd.Flags().Var(&status, "status", "Only projects with this status")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show ID",
		Aliases: []string{"inspect"},
		Short:   "Show a project with its epic and task tree",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			board, err := app.Projects.Board(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectShow(board, app.now()))
			return nil
		},
	}
}

func newProjectBoardCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "board ID",
		Short: "Show the project's tasks as kanban columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			board, err := app.Projects.Board(ctx, projectID)
			if err != nil {
				return err
			}

			rendered := formatter.FormatBoard(board)
			if !interactive {
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			}
			if !app.interactive() {
				return errors.New("--interactive requires a terminal")
			}
			_, err = tea.NewProgram(
				newBoardModel(board.Project.Name, rendered),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			).Run()
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open a scrollable board viewer")

	return cmd
}

func newProjectPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan ID",
		Short: "Generate epics and tasks from the project's goal",
		Long: "Asks the model for a plan based on the project's goal and appends the\n" +
			"resulting epics and tasks after any that already exist.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Projects.GeneratePlan(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanResult(res))
			return nil
		},
	}
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import ID FILE",
		Short: "Append epics and tasks from a JSON plan file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Import.ImportFile(ctx, projectID, args[1])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanResult(res))
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the project status (ACTIVE, ON_HOLD, COMPLETED, ARCHIVED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var status projectStatusValue
			if err := status.Set(args[1]); err != nil {
				return fmt.Errorf("invalid status %q: %w", args[1], err)
			}
			p, err := app.Projects.Update(ctx, projectID, service.UpdateProjectInput{Status: &status.status})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s is now %s\n", p.Name, formatter.ProjectStatusPill(p.Status))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Update(ctx, projectID, service.UpdateProjectInput{Name: &args[1]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed project to %s\n", p.Name)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project with its epics, tasks and risks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !force {
				board, err := app.Projects.Board(ctx, projectID)
				if err != nil {
					return err
				}
				if n := len(board.Epics); n > 0 {
					return fmt.Errorf("project has %d epic(s); use --force to remove it anyway", n)
				}
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", formatter.ShortID(projectID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the project has epics")

	return cmd
}

func newProjectSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary ID",
		Short: "Write a daily status summary for the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			text, err := app.Summary.DailySummary(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Daily summary", text))
			return nil
		},
	}
}
