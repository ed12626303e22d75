package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanFile is the JSON structure of a hand-written plan import. It mirrors
// the shape the model is asked to produce, with snake_case hours.
type PlanFile struct {
	Epics []EpicImport `json:"epics"`
}

// EpicImport defines one epic in the import file.
type EpicImport struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Tasks       []TaskImport `json:"tasks"`
}

// TaskImport defines one task in the import file.
type TaskImport struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// LoadPlanFile reads and parses a plan import JSON file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f PlanFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &f, nil
}
