package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1)
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayDiffFound records nothing; differences appear in the final summary.
func (p *TUI) DisplayDiffFound(ctx context.Context, _ m.DiffStatus, _ m.ScreenshotKey) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Summarize displays the diff summary, paginating when it does not fit on
// screen.
func (p *TUI) Summarize(ctx context.Context, result m.DiffResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newSummaryModel(result)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.withSize(width, height)
		}
	}

	// If the summary is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayReportLocation prints where the report page was written.
func (p *TUI) DisplayReportLocation(ctx context.Context, report m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.output, "Report written to %s\n", report)
}

// summaryModel represents the Bubble Tea model for displaying the diff summary.
type summaryModel struct {
	entries  []m.DiffEntry
	total    int
	viewport viewport.Model
	height   int
	width    int
	quitting bool
}

func newSummaryModel(result m.DiffResult) summaryModel {
	sm := summaryModel{
		entries:  result.Entries(),
		total:    result.Total(),
		viewport: viewport.New(0, 0),
		height:   0, // Will be set on first WindowSizeMsg
		width:    0,
		quitting: false,
	}
	sm.viewport.SetContent(sm.contentLines())

	return sm
}

func (sm summaryModel) withSize(width, height int) summaryModel {
	sm.width = width
	sm.height = height
	sm.viewport.Width = width
	sm.viewport.Height = sm.pageLines()

	return sm
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return sm.withSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (sm summaryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "g", "home":
		sm.viewport.GotoTop()
		return sm, nil

	case "G", "end":
		sm.viewport.GotoBottom()
		return sm, nil
	}

	var cmd tea.Cmd
	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

// pageLines calculates how many summary lines fit on screen.
func (sm summaryModel) pageLines() int {
	if sm.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Title: 2 lines
	// - Count: 2 lines
	// - Footer: 2 lines
	reserved := 6

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// needsPagination returns true if the summary is too large to fit on screen.
func (sm summaryModel) needsPagination() bool {
	if len(sm.entries) == 0 {
		return false
	}

	return len(sm.entries) > sm.pageLines() && sm.height > 0
}

func (sm summaryModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Screenshot diff summary"))
	b.WriteString("\n\n")

	if len(sm.entries) == 0 {
		b.WriteString("No differences found\n")
		return b.String()
	}

	if sm.needsPagination() {
		b.WriteString(sm.viewport.View())
		b.WriteString("\n\n")
		_, _ = fmt.Fprintf(&b, "%d difference(s) | %3.f%%\n", sm.total, sm.viewport.ScrollPercent()*100)
		b.WriteString(helpStyle.Render("↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(sm.contentLines())
	b.WriteString("\n\n")
	_, _ = fmt.Fprintf(&b, "%d difference(s)\n", sm.total)

	return b.String()
}

func (sm summaryModel) contentLines() string {
	lines := make([]string, 0, len(sm.entries))
	for _, entry := range sm.entries {
		label := styleFor(entry.Status).Render(statusLabel(entry.Status))
		lines = append(lines, fmt.Sprintf("%s %s", label, entry.Key))
	}

	return strings.Join(lines, "\n")
}

func statusLabel(status m.DiffStatus) string {
	return fmt.Sprintf("%-7s", strings.ToUpper(string(status)))
}

func styleFor(status m.DiffStatus) lipgloss.Style {
	switch status {
	case m.StatusRemoved:
		return removedStyle
	case m.StatusAdded:
		return addedStyle
	case m.StatusChanged:
		return changedStyle
	default:
		return helpStyle
	}
}
