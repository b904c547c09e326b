package models

// Roadmap is an ordered collection of tasks plus file-level metadata. Task
// order is significant: it is the deterministic iteration order for
// validation and cycle search, and it is preserved across load/save.
type Roadmap struct {
	Version int    `json:"version" yaml:"version"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Tasks   []Task `json:"tasks" yaml:"tasks"`
}
