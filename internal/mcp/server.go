// Package mcp provides an MCP (Model Context Protocol) server that exposes
// roadmap functionality as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/core"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the task manager and exposes it as MCP tools.
type Server struct {
	server  *gomcp.Server
	taskMgr core.TaskManager
}

// NewServer creates an MCP server backed by the given task manager.
func NewServer(taskMgr core.TaskManager, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{taskMgr: taskMgr}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "roadmap", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type getTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the task identifier (e.g. F-001)"`
}

type taskOutput struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	Priority  string   `json:"priority"`
	Owner     string   `json:"owner,omitempty"`
	Created   string   `json:"created"`
	Updated   string   `json:"updated"`
	Tags      []string `json:"tags,omitempty"`
	DependsOn []string `json:"depends_on,omitempty"`
	Blocks    []string `json:"blocks,omitempty"`
}

type listTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter tasks by status (planned, in-progress, blocked, done, dropped)"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type updateTaskStatusInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the task identifier (e.g. F-001)"`
	Status string `json:"status" jsonschema:"required,the new status (planned, in-progress, blocked, done, dropped)"`
}

type updateTaskStatusOutput struct {
	Message string `json:"message"`
}

type validateRoadmapInput struct{}

type findingOutput struct {
	TaskID         string   `json:"task_id"`
	Type           string   `json:"type"`
	Message        string   `json:"message"`
	RelatedTaskIDs []string `json:"related_task_ids,omitempty"`
}

type validateRoadmapOutput struct {
	Findings []findingOutput `json:"findings"`
	Count    int             `json:"count"`
	Cycle    []string        `json:"cycle,omitempty"`
}

type getDependenciesInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the task identifier (e.g. F-001)"`
}

type getDependenciesOutput struct {
	Dependencies []taskOutput `json:"dependencies"`
	Dependents   []taskOutput `json:"dependents"`
}

type sortTasksInput struct{}

type sortTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get task details by ID. Returns the full task including status, priority, and relations.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks in roadmap order with an optional status filter.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_task_status",
		Description: "Update a task's lifecycle status. Valid statuses: planned, in-progress, blocked, done, dropped.",
	}, s.handleUpdateTaskStatus)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "validate_roadmap",
		Description: "Run dependency validation over the roadmap: cycle detection, dangling references, and blocks/depends-on asymmetries.",
	}, s.handleValidateRoadmap)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_dependencies",
		Description: "Get the tasks a task depends on and the tasks that depend on it.",
	}, s.handleGetDependencies)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "sort_tasks",
		Description: "Return the tasks in topological order, dependencies first. Fails when the roadmap contains a cycle.",
	}, s.handleSortTasks)
}

// --- Tool handlers ---

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	task, err := s.taskMgr.GetTask(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %s: %s", input.TaskID, err)), taskOutput{}, nil
	}

	return nil, taskToOutput(*task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	var tasks []models.Task
	var err error

	if input.Status != "" {
		tasks, err = s.taskMgr.FilterTasks(core.RoadmapStoreFilter{
			Status: []models.TaskStatus{models.TaskStatus(input.Status)},
		})
	} else {
		tasks, err = s.taskMgr.GetAllTasks()
	}
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	out := listTasksOutput{Tasks: make([]taskOutput, len(tasks)), Count: len(tasks)}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleUpdateTaskStatus(_ context.Context, _ *gomcp.CallToolRequest, input updateTaskStatusInput) (*gomcp.CallToolResult, updateTaskStatusOutput, error) {
	if input.TaskID == "" || input.Status == "" {
		return errorResult("task_id and status are required"), updateTaskStatusOutput{}, nil
	}

	if err := s.taskMgr.UpdateTaskStatus(input.TaskID, models.TaskStatus(input.Status)); err != nil {
		return errorResult(fmt.Sprintf("updating status of %s: %s", input.TaskID, err)), updateTaskStatusOutput{}, nil
	}

	return nil, updateTaskStatusOutput{
		Message: fmt.Sprintf("task %s is now %s", input.TaskID, input.Status),
	}, nil
}

func (s *Server) handleValidateRoadmap(_ context.Context, _ *gomcp.CallToolRequest, _ validateRoadmapInput) (*gomcp.CallToolResult, validateRoadmapOutput, error) {
	findings, err := s.taskMgr.Validate()
	if err != nil {
		return errorResult(fmt.Sprintf("validating roadmap: %s", err)), validateRoadmapOutput{}, nil
	}

	out := validateRoadmapOutput{
		Findings: make([]findingOutput, len(findings)),
		Count:    len(findings),
	}
	for i, f := range findings {
		out.Findings[i] = findingOutput{
			TaskID:         f.TaskID,
			Type:           string(f.Type),
			Message:        f.Message,
			RelatedTaskIDs: f.RelatedTaskIDs,
		}
		if f.Type == models.FindingCircular {
			out.Cycle = f.RelatedTaskIDs
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetDependencies(_ context.Context, _ *gomcp.CallToolRequest, input getDependenciesInput) (*gomcp.CallToolResult, getDependenciesOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), getDependenciesOutput{}, nil
	}

	deps, err := s.taskMgr.Dependencies(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("resolving dependencies of %s: %s", input.TaskID, err)), getDependenciesOutput{}, nil
	}
	dependents, err := s.taskMgr.Dependents(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("resolving dependents of %s: %s", input.TaskID, err)), getDependenciesOutput{}, nil
	}

	out := getDependenciesOutput{
		Dependencies: make([]taskOutput, len(deps)),
		Dependents:   make([]taskOutput, len(dependents)),
	}
	for i, t := range deps {
		out.Dependencies[i] = taskToOutput(t)
	}
	for i, t := range dependents {
		out.Dependents[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleSortTasks(_ context.Context, _ *gomcp.CallToolRequest, _ sortTasksInput) (*gomcp.CallToolResult, sortTasksOutput, error) {
	tasks, err := s.taskMgr.SortedTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("sorting tasks: %s", err)), sortTasksOutput{}, nil
	}

	out := sortTasksOutput{Tasks: make([]taskOutput, len(tasks)), Count: len(tasks)}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		Owner:     t.Owner,
		Created:   t.Created.Format(time.RFC3339),
		Updated:   t.Updated.Format(time.RFC3339),
		Tags:      t.Tags,
		DependsOn: t.DependsOn,
		Blocks:    t.Blocks,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
