package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/repository"
)

// matchID resolves input against ids: an exact match wins, otherwise a
// unique prefix.
func matchID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveProjectID accepts a full project UUID or a unique UUID prefix such
// as the 8-character IDs shown in listings.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return matchID("project", input, ids)
}

func resolveWorkspaceID(ctx context.Context, app *App, input string) (string, error) {
	workspaces, err := app.Workspaces.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(workspaces))
	for i, w := range workspaces {
		ids[i] = w.ID
	}
	return matchID("workspace", input, ids)
}

// resolveTaskID accepts a full task UUID or a unique prefix. Prefixes are
// matched across every project board.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	if t, err := app.Tasks.GetByID(ctx, input); err == nil {
		return t.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, p := range projects {
		board, err := app.Projects.Board(ctx, p.ID)
		if err != nil {
			return "", err
		}
		for _, e := range board.Epics {
			for _, t := range e.Tasks {
				ids = append(ids, t.ID)
			}
		}
	}
	return matchID("task", input, ids)
}

// resolveUserID accepts a user UUID or an email address. Empty input
// resolves to "".
func resolveUserID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	u, err := app.Users.Resolve(ctx, input)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
