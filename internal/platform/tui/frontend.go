// Package tui is the Bubble Tea frontend: the program runs in its own
// goroutine, key presses come back as actions and frames are pushed in as
// messages.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/registry"
)

// actionBuffer bounds the keys queued between two polls.
const actionBuffer = 64

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func init() {
	registry.Register("tui", "interactive terminal UI with colors and key help", func(o registry.Options) registry.Frontend {
		return New(o.Out)
	})
}

// frameMsg carries a drawn frame into the program.
type frameMsg struct {
	styled string
	plain  string
}

// Frontend runs a Bubble Tea program for the lifetime of a game.
type Frontend struct {
	out     io.Writer
	program *tea.Program
	actions chan core.Action
	done    chan struct{}
	err     error // Set before done is closed
}

// New creates a frontend writing to out, or to the terminal when out is nil.
func New(out io.Writer) *Frontend {
	return &Frontend{
		out:     out,
		actions: make(chan core.Action, actionBuffer),
		done:    make(chan struct{}),
	}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return "tui" }

// Init starts the program on the alternate screen.
func (f *Frontend) Init(cfg core.RuntimeConfig) error {
	if f.program != nil {
		return errors.New("tui: already initialized")
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if f.out != nil {
		opts = append(opts, tea.WithOutput(f.out))
	}
	f.program = tea.NewProgram(newModel(f.actions, cfg), opts...)

	go func() {
		defer close(f.done)
		if _, err := f.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			f.err = fmt.Errorf("tui: program failed: %w", err)
		}
	}()
	return nil
}

// Render sends the frame to the program. It is a no-op once the program
// has exited.
func (f *Frontend) Render(s *core.Screen) error {
	if f.program == nil {
		return errors.New("tui: not initialized")
	}
	select {
	case <-f.done:
		return nil
	default:
	}
	f.program.Send(frameMsg{styled: RenderScreen(s), plain: s.String()})
	return nil
}

// PollInput drains the queued actions without blocking. Once the program
// exits, it reports Quit along with any program error.
func (f *Frontend) PollInput() ([]core.Action, error) {
	var out []core.Action
drain:
	for {
		select {
		case a := <-f.actions:
			out = append(out, a)
		default:
			break drain
		}
	}

	select {
	case <-f.done:
		return append(out, core.ActionQuit), f.err
	default:
		return out, nil
	}
}

// Close stops the program and restores the terminal.
func (f *Frontend) Close() error {
	if f.program == nil {
		return nil
	}
	f.program.Quit()
	<-f.done
	return f.err
}

// model is the Bubble Tea side of the frontend. It only displays frames
// and forwards keys; the game lives in the platform loop.
type model struct {
	keys     KeyMap
	help     help.Model
	actions  chan<- core.Action
	frame    frameMsg
	width    int
	height   int
	status   string
	quitting bool
}

func newModel(actions chan<- core.Action, cfg core.RuntimeConfig) model {
	return model{
		keys:    DefaultKeyMap(),
		help:    help.New(),
		actions: actions,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = msg
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	a := m.keys.MapKey(msg)
	if a == core.ActionNone {
		return m, nil
	}
	m.push(a)
	if a == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// push queues an action, dropping it when the loop is not keeping up.
func (m model) push(a core.Action) {
	select {
	case m.actions <- a:
	default:
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	view := m.frame.styled + "\n" + helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		view += "\n" + m.status
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// saveScreenshot writes the last plain frame to ~/.axion/screenshots.
func (m model) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".axion", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}
	path := filepath.Join(dir, "axion_"+time.Now().Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(m.frame.plain+"\n"), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}
