package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

const (
	defaultViewerWidth  = 100
	defaultViewerHeight = 30
	viewerChromeHeight  = 2
	viewerTab           = "    "
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI with an interactive diff viewer. Everything other than
// diffs is printed by the embedded SimpleUI.
type TUI struct {
	*SimpleUI

	run func(model tea.Model) error
}

// NewTUI creates a new TUI on top of simple.
func NewTUI(simple *SimpleUI) *TUI {
	t := &TUI{SimpleUI: simple}
	t.run = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithOutput(simple.cmd.OutOrStdout()), tea.WithAltScreen())
		_, err := program.Run()

		return err
	}

	return t
}

// DisplayDiff opens a scrollable viewer in view mode; otherwise the diff is
// printed with colors.
func (t *TUI) DisplayDiff(ctx context.Context, path m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.mode != ModeView {
		t.printf("%s", colorizeDiff(diff))
		return nil
	}

	return t.run(newDiffModel(string(path), diff))
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case pkg.StartsWith(line, "+++"), pkg.StartsWith(line, "---"):
			lines[i] = titleStyle.Render(line)
		case pkg.StartsWith(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case pkg.StartsWith(line, "+"):
			lines[i] = addedStyle.Render(line)
		case pkg.StartsWith(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// diffModel is the Bubble Tea model of the diff viewer.
type diffModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newDiffModel(title, diff string) diffModel {
	vp := viewport.New(defaultViewerWidth, defaultViewerHeight-viewerChromeHeight)
	// The viewport measures cells, and tabs would be counted as one.
	vp.SetContent(colorizeDiff(pkg.ReplaceAll(diff, "\t", viewerTab)))

	return diffModel{title: title, viewport: vp}
}

func (dm diffModel) Init() tea.Cmd {
	return nil
}

func (dm diffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		dm.viewport.Width = msg.Width
		dm.viewport.Height = max(msg.Height-viewerChromeHeight, 1)

		return dm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			dm.quitting = true
			return dm, tea.Quit
		}
	}

	var cmd tea.Cmd
	dm.viewport, cmd = dm.viewport.Update(msg)

	return dm, cmd
}

func (dm diffModel) View() string {
	if dm.quitting {
		return ""
	}

	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", dm.viewport.ScrollPercent()*100)

	return titleStyle.Render(dm.title) + "\n" + dm.viewport.View() + "\n" + footerStyle.Render(footer)
}
