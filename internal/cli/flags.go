package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/epicboard/internal/domain"
)

var (
	_ pflag.Value = (*taskStatusValue)(nil)
	_ pflag.Value = (*projectStatusValue)(nil)
)

// taskStatusValue is a flag that accepts task statuses in any case, with
// '-' or ' ' as separators ("in progress", "in-progress", "IN_PROGRESS").
type taskStatusValue struct {
	status domain.TaskStatus
}

func (v *taskStatusValue) String() string { return string(v.status) }
func (v *taskStatusValue) Type() string   { return "status" }

func (v *taskStatusValue) Set(s string) error {
	st, ok := domain.ParseTaskStatus(s)
	if !ok {
		return fmt.Errorf("must be one of %s", joinStatuses(domain.TaskStatuses))
	}
	v.status = st
	return nil
}

type projectStatusValue struct {
	status domain.ProjectStatus
}

func (v *projectStatusValue) String() string { return string(v.status) }
func (v *projectStatusValue) Type() string   { return "status" }

func (v *projectStatusValue) Set(s string) error {
	st, ok := domain.ParseProjectStatus(s)
	if !ok {
		return fmt.Errorf("must be one of %s", strings.Join([]string{
			string(domain.ProjectActive), string(domain.ProjectOnHold),
			string(domain.ProjectCompleted), string(domain.ProjectArchived),
		}, ", "))
	}
	v.status = st
	return nil
}

func joinStatuses(statuses []domain.TaskStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
