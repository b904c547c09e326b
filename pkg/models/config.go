package models

// Config holds settings read from .roadmaprc via Viper.
type Config struct {
	// RoadmapFile is the roadmap file name, relative to the base path.
	RoadmapFile string `yaml:"roadmap_file" mapstructure:"roadmap_file"`
	// DefaultPriority is assigned to new tasks created without --priority.
	DefaultPriority Priority `yaml:"default_priority" mapstructure:"default_priority"`
	// DefaultOwner is assigned to new tasks created without --owner.
	DefaultOwner string `yaml:"default_owner" mapstructure:"default_owner"`
	// StrictBlocks escalates advisory blocks/depends-on asymmetry findings
	// to validation failures.
	StrictBlocks bool `yaml:"strict_blocks" mapstructure:"strict_blocks"`
	// WatchDebounceMS is the batching window for watch-mode file events.
	WatchDebounceMS int `yaml:"watch_debounce_ms" mapstructure:"watch_debounce_ms"`
}
