package cli

import (
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/observability"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	// BasePath is the directory holding the roadmap file and .roadmaprc.
	BasePath string
	// RoadmapFile is the resolved absolute path of the roadmap file.
	RoadmapFile string

	TaskMgr  core.TaskManager
	EventLog observability.EventLog
	Config   *models.Config
)
