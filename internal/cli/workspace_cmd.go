package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
	"github.com/alexanderramin/epicboard/internal/service"
)

func newWorkspaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
	}

	cmd.AddCommand(
		newWorkspaceAddCmd(app),
		newWorkspaceListCmd(app),
	)

	return cmd
}

func newWorkspaceAddCmd(app *App) *cobra.Command {
	var name, owner string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ownerID, err := resolveUserID(ctx, app, owner)
			if err != nil {
				return fmt.Errorf("resolving owner: %w", err)
			}
			w, err := app.Workspaces.Create(ctx, service.CreateWorkspaceInput{Name: name, OwnerID: ownerID})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created workspace %s [%s]\n", w.Name, formatter.ShortID(w.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workspace name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner user ID or email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWorkspaceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workspaces, err := app.Workspaces.List(ctx)
			if err != nil {
				return err
			}
			if len(workspaces) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workspaces found.")
				return nil
			}

			users, err := app.Users.List(ctx)
			if err != nil {
				return err
			}
			owners := make(map[string]string, len(users))
			for _, u := range users {
				owners[u.ID] = u.Name
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkspaceList(workspaces, owners, app.now()))
			return nil
		},
	}
}
