package formatter

import (
	"time"

	"github.com/alexanderramin/epicboard/internal/domain"
)

// FormatUserList renders users as a table.
func FormatUserList(users []*domain.User) string {
	headers := []string{"ID", "NAME", "EMAIL", "JOINED"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			TruncID(u.ID),
			Bold(u.Name),
			u.Email,
			u.CreatedAt.Format("Jan 2, 2006"),
		})
	}
	return RenderBox("Users", RenderTable(headers, rows))
}

// FormatWorkspaceList renders workspaces with their owner's name when known.
func FormatWorkspaceList(workspaces []*domain.Workspace, owners map[string]string, now time.Time) string {
	headers := []string{"ID", "NAME", "OWNER", "UPDATED"}
	rows := make([][]string, 0, len(workspaces))
	for _, w := range workspaces {
		owner := Dim("--")
		if w.OwnerID != nil {
			owner = owners[*w.OwnerID]
			if owner == "" {
				owner = TruncID(*w.OwnerID)
			}
		}
		rows = append(rows, []string{
			TruncID(w.ID),
			Bold(w.Name),
			owner,
			HumanTimestampFrom(w.UpdatedAt, now),
		})
	}
	return RenderBox("Workspaces", RenderTable(headers, rows))
}
