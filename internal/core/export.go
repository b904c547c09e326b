package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the output encoding for RenderRoadmap.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatYAML     ExportFormat = "yaml"
	FormatJSON     ExportFormat = "json"
)

// statusOrder is the lifecycle display order for markdown export.
var statusOrder = []models.TaskStatus{
	models.StatusInProgress,
	models.StatusBlocked,
	models.StatusPlanned,
	models.StatusDone,
	models.StatusDropped,
}

// statusGroup is one status section of the markdown export.
type statusGroup struct {
	Status models.TaskStatus
	Tasks  []models.Task
}

// markdownData is the template context for the markdown export.
type markdownData struct {
	Title   string
	Version int
	Total   int
	Groups  []statusGroup
	// Related lists tasks that carry at least one relation, for the
	// dependency appendix.
	Related []models.Task
}

var markdownTemplate = template.Must(template.New("roadmap").Parse(`# {{if .Title}}{{.Title}}{{else}}Roadmap{{end}}

**Version:** {{.Version}}
**Tasks:** {{.Total}}
{{range .Groups}}
## {{.Status}} ({{len .Tasks}})

| ID | Priority | Type | Title |
|----|----------|------|-------|
{{- range .Tasks}}
| {{.ID}} | {{.Priority}} | {{.Type}} | {{.Title}} |
{{- end}}
{{end}}
{{- if .Related}}
## Dependencies
{{range .Related}}
- **{{.ID}}**{{if .DependsOn}} depends on: {{range $i, $d := .DependsOn}}{{if $i}}, {{end}}{{$d}}{{end}}{{end}}{{if .Blocks}}{{if .DependsOn}};{{end}} blocks: {{range $i, $b := .Blocks}}{{if $i}}, {{end}}{{$b}}{{end}}{{end}}
{{- end}}
{{end}}`))

// RenderRoadmap encodes the roadmap in the requested format. Markdown groups
// tasks by status in lifecycle order and appends a dependency appendix; YAML
// and JSON are direct encodings of the roadmap file shape.
func RenderRoadmap(roadmap *models.Roadmap, format ExportFormat) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(roadmap)
	case FormatYAML:
		data, err := yaml.Marshal(roadmap)
		if err != nil {
			return nil, fmt.Errorf("rendering roadmap: marshaling YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(roadmap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("rendering roadmap: marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("rendering roadmap: unsupported format %q (use markdown, yaml, or json)", format)
	}
}

func renderMarkdown(roadmap *models.Roadmap) ([]byte, error) {
	data := markdownData{
		Title:   roadmap.Title,
		Version: roadmap.Version,
		Total:   len(roadmap.Tasks),
	}

	byStatus := make(map[models.TaskStatus][]models.Task)
	for _, task := range roadmap.Tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
		if len(task.DependsOn) > 0 || len(task.Blocks) > 0 {
			data.Related = append(data.Related, task)
		}
	}
	for _, status := range statusOrder {
		if tasks := byStatus[status]; len(tasks) > 0 {
			data.Groups = append(data.Groups, statusGroup{Status: status, Tasks: tasks})
		}
	}

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering roadmap: executing template: %w", err)
	}
	return buf.Bytes(), nil
}
