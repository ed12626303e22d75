package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
	"github.com/alexanderramin/epicboard/internal/domain"
)

// epicboardHuhTheme returns a huh theme using the formatter palette.
func epicboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectFormValues backs the interactive project-create form.
type projectFormValues struct {
	WorkspaceID string
	Name        string
	Goal        string
}

// projectCreateForm asks only for the fields that are still empty. The
// workspace picker lists workspaces when no --workspace flag was given.
func projectCreateForm(v *projectFormValues, workspaces []*domain.Workspace) *huh.Form {
	var fields []huh.Field

	if v.WorkspaceID == "" {
		opts := make([]huh.Option[string], 0, len(workspaces))
		for _, w := range workspaces {
			opts = append(opts, huh.NewOption(w.Name+" ("+formatter.ShortID(w.ID)+")", w.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Workspace").
			Options(opts...).
			Value(&v.WorkspaceID))
	}
	if v.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Placeholder("Webshop relaunch").
			Value(&v.Name).
			Validate(requiredText("name")))
	}
	if v.Goal == "" {
		fields = append(fields, huh.NewText().
			Title("Goal").
			Description("What should this project achieve? The plan is generated from it.").
			Value(&v.Goal).
			Validate(requiredText("goal")))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(epicboardHuhTheme()).
		WithShowHelp(false)
}

func requiredText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
