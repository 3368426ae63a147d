package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/axion/internal/storage"
)

const maxRows = 100

// ScoreSource is the part of storage the scoreboard reads.
type ScoreSource interface {
	Modes() ([]string, error)
	TopScores(mode string, limit int) ([]storage.ScoreEntry, error)
	RecentRuns(limit int) ([]storage.Run, error)
}

var _ ScoreSource = (*storage.Store)(nil)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Runs     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Runs},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Runs: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses top scores per mode and the most recent runs.
type ScoreboardModel struct {
	source   ScoreSource
	modes    []string
	cursor   int
	showRuns bool
	err      error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard for the given size.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.modes, m.err = source.Modes()
	m.reload()
	return m
}

// Mode returns the selected mode, or "" when nothing was recorded yet.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor]
}

// Rows returns the rows currently shown.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// reload rebuilds the table for the current mode and view.
func (m *ScoreboardModel) reload() {
	var (
		columns []table.Column
		rows    []table.Row
	)

	if m.showRuns {
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Mode", Width: 8},
			{Title: "Outcome", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Fill", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 7},
		}
		runs, err := m.source.RecentRuns(maxRows)
		if err != nil {
			m.err = err
		}
		for _, r := range runs {
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Mode,
				r.Outcome,
				fmt.Sprintf("%d", r.Level),
				fmt.Sprintf("%.1f%%", r.FillPct),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Ticks),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: 14},
		}
		if mode := m.Mode(); mode != "" {
			scores, err := m.source.TopScores(mode, maxRows)
			if err != nil {
				m.err = err
			}
			for i, s := range scores {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", s.Score),
					fmt.Sprintf("%d", s.Level),
					s.CreatedAt.Format("Jan 02 15:04"),
				})
			}
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + len(m.modes) - 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Runs):
			m.showRuns = !m.showRuns
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	title := "HIGH SCORES"
	if m.showRuns {
		title = "RECENT RUNS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if !m.showRuns && len(m.modes) > 0 {
		tabs := make([]string, len(m.modes))
		for i, mode := range m.modes {
			if i == m.cursor {
				tabs[i] = activeTabStyle.Render(mode)
			} else {
				tabs[i] = tabStyle.Render(mode)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
	}

	if len(m.table.Rows()) == 0 {
		b.WriteString(boxStyle.Render(emptyStyle.Render("Nothing recorded yet.\nFinish a run to fill the board.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, b.String())
	}
	return b.String()
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(source ScoreSource, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}
