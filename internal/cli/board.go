package cli

import (
	"fmt"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/pkg/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Board panel indices.
const (
	panelBoard = iota
	panelFindings
	boardPanelCount
)

// boardColumns is the status display order for the board.
var boardColumns = []models.TaskStatus{
	models.StatusPlanned,
	models.StatusInProgress,
	models.StatusBlocked,
	models.StatusDone,
}

type boardModel struct {
	activePanel int
	width       int
	height      int

	tasks    []models.Task
	findings []models.Finding

	loading bool
	err     error
}

// boardDataMsg carries loaded data back to the model.
type boardDataMsg struct {
	tasks    []models.Task
	findings []models.Finding
	err      error
}

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	boardPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	boardActivePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	boardColumnHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newBoardModel() boardModel {
	return boardModel{
		activePanel: panelBoard,
		loading:     true,
	}
}

func loadBoardData() tea.Msg {
	tasks, err := TaskMgr.GetAllTasks()
	if err != nil {
		return boardDataMsg{err: err}
	}
	findings, err := TaskMgr.Validate()
	if err != nil {
		return boardDataMsg{err: err}
	}
	return boardDataMsg{tasks: tasks, findings: findings}
}

func (m boardModel) Init() tea.Cmd {
	return loadBoardData
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % boardPanelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadBoardData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tasks = msg.tasks
		m.findings = msg.findings
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.width == 0 || m.loading {
		return "Loading..."
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	title := boardTitleStyle.Render("roadmap board")

	boardStyle := boardPanelStyle
	findingsStyle := boardPanelStyle
	if m.activePanel == panelBoard {
		boardStyle = boardActivePanelStyle
	} else {
		findingsStyle = boardActivePanelStyle
	}

	board := boardStyle.Render(m.renderColumns())
	findings := findingsStyle.Render(m.renderFindings())
	help := boardHelpStyle.Render("tab: switch panel  r: reload  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, board, findings, help)
}

// renderColumns lays out one column per status with task IDs and relation
// counts.
func (m boardModel) renderColumns() string {
	byStatus := make(map[models.TaskStatus][]models.Task)
	for _, t := range m.tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	columns := make([]string, 0, len(boardColumns))
	for _, status := range boardColumns {
		lines := []string{boardColumnHeader.Render(fmt.Sprintf("%s (%d)", status, len(byStatus[status])))}
		for _, t := range byStatus[status] {
			line := fmt.Sprintf("%s %s", t.ID, truncate(t.Title, 18))
			if len(t.DependsOn) > 0 || len(t.Blocks) > 0 {
				line += fmt.Sprintf(" [%d dep / %d blk]", len(t.DependsOn), len(t.Blocks))
			}
			lines = append(lines, line)
		}
		columns = append(columns, lipgloss.NewStyle().Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m boardModel) renderFindings() string {
	if len(m.findings) == 0 {
		return okStyle.Render("No validation findings.")
	}
	lines := make([]string, 0, len(m.findings))
	for _, f := range m.findings {
		lines = append(lines, renderFinding(f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive status board with validation findings",
	Long: `Open an interactive terminal board showing tasks grouped by status,
each task's relation counts, and the current validation findings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		p := tea.NewProgram(newBoardModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
