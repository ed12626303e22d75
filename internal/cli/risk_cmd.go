package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
)

func newRiskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Detect and list delivery risks",
	}

	cmd.AddCommand(
		newRiskDetectCmd(app),
		newRiskListCmd(app),
	)

	return cmd
}

func newRiskDetectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect PROJECT",
		Short: "Ask the model for risks in the project's tasks and store them",
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
			report, err := app.Risks.Detect(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRiskReport(report.Risks, report.Skipped, taskTitles(board)))
			return nil
		},
	}
}

func newRiskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List stored risks for a project",
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
			risks, err := app.Risks.List(ctx, projectID)
			if err != nil {
				return err
			}
			if len(risks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No risks recorded.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRiskList(risks, taskTitles(board)))
			return nil
		},
	}
}
