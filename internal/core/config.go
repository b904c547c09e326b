// Package core contains the business logic for the roadmap tool: the
// dependency-integrity engine (graph construction, cycle detection,
// reference validation, queries, topological ordering), task lifecycle
// management, ID generation, configuration, and export rendering.
package core

import (
	"fmt"
	"strings"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager defines the interface for loading and validating
// configuration from the .roadmaprc file.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .roadmaprc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .roadmaprc from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		RoadmapFile:     "roadmap.json",
		DefaultPriority: models.P2,
		DefaultOwner:    "",
		StrictBlocks:    false,
		WatchDebounceMS: 250,
	}
}

// LoadConfig reads .roadmaprc from the base path. A missing file is not an
// error: defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".roadmaprc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("roadmap.file", cfg.RoadmapFile)
	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("defaults.owner", cfg.DefaultOwner)
	v.SetDefault("validate.strict_blocks", cfg.StrictBlocks)
	v.SetDefault("watch.debounce_ms", cfg.WatchDebounceMS)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .roadmaprc: %w", err)
	}

	cfg.RoadmapFile = v.GetString("roadmap.file")
	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))
	cfg.DefaultOwner = v.GetString("defaults.owner")
	cfg.StrictBlocks = v.GetBool("validate.strict_blocks")
	cfg.WatchDebounceMS = v.GetInt("watch.debounce_ms")

	return cfg, nil
}

// validPriorities is the set of allowed Priority values.
var validPriorities = map[models.Priority]bool{
	models.P0: true,
	models.P1: true,
	models.P2: true,
	models.P3: true,
}

// validTaskTypes is the set of allowed TaskType values.
var validTaskTypes = map[models.TaskType]bool{
	models.TaskTypeBug:         true,
	models.TaskTypeFeature:     true,
	models.TaskTypeImprovement: true,
	models.TaskTypePlanning:    true,
	models.TaskTypeResearch:    true,
}

// ValidateConfig checks the configuration for invalid values, collecting
// every problem rather than stopping at the first.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.RoadmapFile == "" {
		errs = append(errs, "roadmap.file must not be empty")
	}

	if cfg.DefaultPriority != "" && !validPriorities[cfg.DefaultPriority] {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: P0, P1, P2, P3",
			cfg.DefaultPriority,
		))
	}

	if cfg.WatchDebounceMS <= 0 {
		errs = append(errs, fmt.Sprintf(
			"watch.debounce_ms must be positive, got %d", cfg.WatchDebounceMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
