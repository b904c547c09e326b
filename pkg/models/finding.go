package models

// FindingType categorizes a validation finding.
type FindingType string

const (
	// FindingCircular indicates a cycle in the unified dependency graph.
	FindingCircular FindingType = "circular"
	// FindingMissingTask indicates a depends-on or blocks reference to a
	// task ID that does not exist in the roadmap.
	FindingMissingTask FindingType = "missing-task"
	// FindingInvalidReference indicates a blocks/depends-on asymmetry:
	// task A blocks B but B does not list A under depends-on. Advisory.
	FindingInvalidReference FindingType = "invalid-reference"
)

// Finding is a single validation result. Findings are data, not errors: the
// validators collect every finding across the roadmap and return them
// together, leaving exit-status decisions to the caller.
type Finding struct {
	TaskID         string      `json:"task-id" yaml:"task-id"`
	Type           FindingType `json:"type" yaml:"type"`
	Message        string      `json:"message" yaml:"message"`
	RelatedTaskIDs []string    `json:"related-task-ids,omitempty" yaml:"related-task-ids,omitempty"`
}

// Advisory reports whether the finding is diagnostic only and must not be
// treated as a hard validation failure by default.
func (f Finding) Advisory() bool {
	return f.Type == FindingInvalidReference
}
