// Package tui provides a terminal user interface for midipatterns
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/midipatterns/pkg/config"
	"github.com/james-see/midipatterns/pkg/export"
	"github.com/james-see/midipatterns/pkg/generator"
	"github.com/james-see/midipatterns/pkg/logger"
)

var (
	accent   = lipgloss.Color("#FF8C00")
	softGold = lipgloss.Color("#FFD27F")
	slate    = lipgloss.Color("#B0B8C0")
	darkGray = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(slate).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(softGold).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFolder
	StateGenerating
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	// Generators to run; empty means the whole roster
	Generators []string
	Exit       bool
}

// Model represents the TUI model
type Model struct {
	state     State
	menuIndex int
	items     []MenuItem
	input     textinput.Model
	spinner   spinner.Model
	selected  MenuItem
	cfg       *config.Config
	baseDir   string
	now       func() time.Time
	folder    string
	reports   []generator.Report
	err       error
	width     int
	height    int
}

// generationDoneMsg signals that a run finished
type generationDoneMsg struct {
	folder  string
	reports []generator.Report
	err     error
}

// New creates a new TUI model writing under baseDir
func New(cfg *config.Config, baseDir string) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "leave blank for a timestamp"
	ti.CharLimit = 128
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accent)

	return Model{
		state:   StateMenu,
		items:   menuItems(generator.NewRegistry(cfg.Params())),
		input:   ti,
		spinner: s,
		cfg:     cfg,
		baseDir: baseDir,
		now:     time.Now,
	}
}

func menuItems(reg *generator.Registry) []MenuItem {
	items := []MenuItem{{Title: "All generators", Description: "Run the whole roster into one folder"}}
	for _, e := range reg.Entries() {
		desc := e.Generator.Description()
		if !e.Available {
			desc += " (not yet implemented)"
		}
		items = append(items, MenuItem{
			Title:       e.Generator.Name(),
			Description: desc,
			Generators:  []string{e.Generator.Name()},
		})
	}
	return append(items, MenuItem{Title: "Exit", Description: "Exit the application", Exit: true})
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateFolder:
			return m.updateFolder(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generationDoneMsg:
		m.state = StateResult
		m.folder = msg.folder
		m.reports = msg.reports
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(m.items)-1 {
			m.menuIndex++
		}
	case "enter":
		item := m.items[m.menuIndex]
		if item.Exit {
			return m, tea.Quit
		}
		m.selected = item
		m.state = StateFolder
		m.input.SetValue("")
		return m, m.input.Focus()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateFolder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = StateMenu
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.input.Blur()
		m.folder = export.ResolveFolder(m.baseDir, m.input.Value(), m.now())
		m.state = StateGenerating
		return m, tea.Batch(m.spinner.Tick, m.performGeneration())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.reports = nil
		m.folder = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) performGeneration() tea.Cmd {
	folder := m.folder
	names := m.selected.Generators
	cfg := m.cfg
	return func() tea.Msg {
		if err := export.EnsureDir(folder); err != nil {
			return generationDoneMsg{folder: folder, err: err}
		}
		entries, err := generator.NewRegistry(cfg.Params()).Select(names)
		if err != nil {
			return generationDoneMsg{folder: folder, err: err}
		}
		writer := export.NewSMFWriter(folder, cfg.ExportOptions())
		return generationDoneMsg{folder: folder, reports: generator.Run(entries, writer)}
	}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().Foreground(accent).Render(logo))
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFolder:
		s.WriteString(m.viewFolder())
	case StateGenerating:
		s.WriteString(m.viewGenerating())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT GENERATOR "))
	s.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(softGold).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFolder() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" OUTPUT FOLDER "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Folder name inside %s:\n\n", m.baseDir))
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: generate • esc: back to menu"))

	return boxStyle.Render(s.String())
}

func (m Model) viewGenerating() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" GENERATING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Generating %s...\n", m.spinner.View(), m.selected.Title))
	s.WriteString(statusStyle.Render(fmt.Sprintf("  → %s", m.folder)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Generation failed: %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" DONE "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render(fmt.Sprintf("✓ Saved in %s", m.folder)))
		s.WriteString("\n\n")
		s.WriteString(reportLines(m.reports))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func reportLines(reports []generator.Report) string {
	var lines []string
	for _, r := range reports {
		switch {
		case r.Skipped:
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("- %s: not yet implemented", r.Generator)))
			continue
		case r.Err != nil && len(r.Tracks) == 0:
			lines = append(lines, errorStyle.Render(fmt.Sprintf("✗ %s: %v", r.Generator, r.Err)))
			continue
		}
		for _, tr := range r.Tracks {
			if tr.Err != nil {
				lines = append(lines, errorStyle.Render(fmt.Sprintf("✗ %s.mid: %v", tr.Name, tr.Err)))
				continue
			}
			lines = append(lines, fmt.Sprintf("✓ %s.mid (%d notes)", tr.Name, tr.Events))
		}
		if len(r.Misses) > 0 {
			lines = append(lines, statusStyle.Render(fmt.Sprintf("  %s skipped %d step(s)", r.Generator, len(r.Misses))))
		}
	}
	return strings.Join(lines, "\n")
}

const logo = `
            _     _ _             _   _
  _ __ ___ (_) __| (_)_ __   __ _| |_| |_ ___ _ __ _ __  ___
 | '_ ` + "`" + ` _ \| |/ _` + "`" + ` | | '_ \ / _` + "`" + ` | __| __/ _ \ '__| '_ \/ __|
 | | | | | | | (_| | | |_) | (_| | |_| ||  __/ |  | | | \__ \
 |_| |_| |_|_|\__,_|_| .__/ \__,_|\__|\__\___|_|  |_| |_|___/
                     |_|
`

// Run starts the TUI application
func Run(cfg *config.Config, baseDir string) error {
	// Log lines would corrupt the alt screen
	logger.SetOutput(io.Discard)

	p := tea.NewProgram(New(cfg, baseDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
