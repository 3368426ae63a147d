// Package tcellui is a full-screen frontend drawn directly with tcell. It
// needs no Bubble Tea program and suits terminals where the alternate
// screen of the tui frontend misbehaves.
package tcellui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/registry"
)

// ID is the name used with --renderer.
const ID = "tcell"

const eventBuffer = 100

func init() {
	registry.Register(ID, "direct tcell drawing, no Bubble Tea", func(registry.Options) registry.Frontend {
		return New(nil)
	})
}

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorMagenta: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Frontend draws frames on a tcell.Screen.
type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	ready  bool
}

// New creates a frontend on screen. A nil screen means the terminal.
func New(screen tcell.Screen) *Frontend {
	return &Frontend{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Init takes over the terminal and starts reading events.
func (f *Frontend) Init(core.RuntimeConfig) error {
	if f.ready {
		return errors.New("tcell: already initialized")
	}
	if f.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell: cannot open screen: %w", err)
		}
		f.screen = s
	}
	if err := f.screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	f.screen.HideCursor()
	f.screen.Clear()
	f.ready = true

	go f.readEvents()
	return nil
}

// readEvents forwards screen events until Fini makes PollEvent return nil.
func (f *Frontend) readEvents() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-f.quit:
			return
		}
	}
}

// Render draws the frame at the top left corner.
func (f *Frontend) Render(frame *core.Screen) error {
	if !f.ready {
		return errors.New("tcell: not initialized")
	}
	f.screen.Clear()
	for y := range frame.Height() {
		for x := range frame.Width() {
			c := frame.GetCell(x, y)
			style, ok := colorStyles[c.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			f.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	f.screen.Show()
	return nil
}

// PollInput drains pending events without blocking.
func (f *Frontend) PollInput() ([]core.Action, error) {
	var out []core.Action
	for {
		select {
		case ev := <-f.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := mapKey(ev); a != core.ActionNone {
					out = append(out, a)
				}
			case *tcell.EventResize:
				f.screen.Sync()
			}
		default:
			return out, nil
		}
	}
}

// Close restores the terminal.
func (f *Frontend) Close() error {
	if !f.ready {
		return nil
	}
	f.ready = false
	close(f.quit)
	f.screen.Fini()
	return nil
}

func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case ' ':
			return core.ActionConfirm
		case 'r':
			return core.ActionRestart
		case 'n':
			return core.ActionNextLevel
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
