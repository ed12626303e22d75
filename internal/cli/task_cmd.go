package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
	"github.com/alexanderramin/epicboard/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Track task status, comments, assignees and hours",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskStatusCmd(app),
		newTaskCommentCmd(app),
		newTaskAssignCmd(app),
		newTaskLogCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var status taskStatusValue

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's tasks as a tree",
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

			if status.status != "" {
				for _, e := range board.Epics {
					kept := e.Tasks[:0]
					for _, t := range e.Tasks {
						if t.Status == status.status {
							kept = append(kept, t)
						}
					}
					e.Tasks = kept
				}
			}

			items := formatter.BoardTreeItems(board)
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(items))
			return nil
		},
	}

	cmd.Flags().Var(&status, "status", "Only tasks with this status")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TASK",
		Short: "Show a task with its history and risks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Tasks.Details(ctx, taskID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetails(d, app.now()))
			return nil
		},
	}
}

func newTaskStatusCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "status TASK STATUS",
		Short: "Move a task to another status (TODO, IN_PROGRESS, IN_REVIEW, DONE, BLOCKED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var status taskStatusValue
			if err := status.Set(args[1]); err != nil {
				return fmt.Errorf("invalid status %q: %w", args[1], err)
			}
			userID, err := resolveUserID(ctx, app, user)
			if err != nil {
				return fmt.Errorf("resolving user: %w", err)
			}

			t, err := app.Tasks.UpdateStatus(ctx, taskID, userID, status.status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", t.Title, formatter.TaskStatusPill(t.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Author user ID or email")

	return cmd
}

func newTaskCommentCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "comment TASK TEXT",
		Short: "Add a comment to a task's history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			userID, err := resolveUserID(ctx, app, user)
			if err != nil {
				return fmt.Errorf("resolving user: %w", err)
			}
			if _, err := app.Tasks.AddComment(ctx, taskID, userID, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Comment added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Author user ID or email")

	return cmd
}

func newTaskAssignCmd(app *App) *cobra.Command {
	var unassign bool

	cmd := &cobra.Command{
		Use:   "assign TASK [USER]",
		Short: "Assign a task to a user (ID or email)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 && !unassign {
				return fmt.Errorf("USER is required unless --none is set")
			}
			if len(args) == 2 && unassign {
				return fmt.Errorf("USER and --none are mutually exclusive")
			}

			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var userID string
			if len(args) == 2 {
				if userID, err = resolveUserID(ctx, app, args[1]); err != nil {
					return fmt.Errorf("resolving user: %w", err)
				}
			}

			t, err := app.Tasks.Assign(ctx, taskID, userID)
			if err != nil {
				return err
			}
			if t.AssigneeID == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Unassigned %s\n", t.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s\n", t.Title, args[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unassign, "none", false, "Clear the assignee")

	return cmd
}

func newTaskLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log TASK HOURS",
		Short: "Set the hours actually spent on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[1])
			}
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.LogHours(ctx, taskID, hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t.Title, formatter.FormatHours(t.EstimatedHours, t.ActualHours))
			return nil
		},
	}
}

// taskTitles maps every task ID on the board to its title.
func taskTitles(board *domain.ProjectBoard) map[string]string {
	titles := make(map[string]string)
	for _, e := range board.Epics {
		for _, t := range e.Tasks {
			titles[t.ID] = t.Title
		}
	}
	return titles
}
