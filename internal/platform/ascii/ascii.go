// Package ascii is a plain-text frontend. Frames are written to an io.Writer
// without color or cursor control, and input comes from a script. It backs
// the headless `sim` command and loop tests.
package ascii

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/registry"
)

// ID is the name used with --renderer.
const ID = "ascii"

func init() {
	registry.Register(ID, "plain text frames on stdout, scripted input", func(opts registry.Options) registry.Frontend {
		return New(opts.Out, opts.Script, opts.LastFrameOnly)
	})
}

// Frontend writes frames as text.
type Frontend struct {
	out      *bufio.Writer
	script   []core.Action
	pos      int
	lastOnly bool
	last     string
	frames   int
}

// New creates a text frontend. A nil writer means stdout. When lastOnly is
// set, only the final frame is written, on Close.
func New(out io.Writer, script []core.Action, lastOnly bool) *Frontend {
	if out == nil {
		out = os.Stdout
	}
	return &Frontend{
		out:      bufio.NewWriter(out),
		script:   script,
		lastOnly: lastOnly,
	}
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Init implements registry.Frontend. Text output needs no setup.
func (f *Frontend) Init(core.RuntimeConfig) error { return nil }

// Render implements registry.Frontend.
func (f *Frontend) Render(frame *core.Screen) error {
	text := trimRight(frame.String())
	f.frames++
	if f.lastOnly {
		f.last = text
		return nil
	}
	if text == f.last {
		return nil
	}
	f.last = text
	sep := strings.Repeat("-", max(1, frame.Width()))
	if _, err := fmt.Fprintf(f.out, "%s\n%s\n", text, sep); err != nil {
		return fmt.Errorf("ascii: cannot write frame: %w", err)
	}
	return f.out.Flush()
}

// PollInput returns the next scripted action. Once the script is exhausted
// it asks the loop to quit.
func (f *Frontend) PollInput() ([]core.Action, error) {
	if f.pos >= len(f.script) {
		return []core.Action{core.ActionQuit}, nil
	}
	a := f.script[f.pos]
	f.pos++
	if a == core.ActionNone {
		return nil, nil
	}
	return []core.Action{a}, nil
}

// Close writes the final frame in lastOnly mode and flushes the output.
func (f *Frontend) Close() error {
	if f.lastOnly && f.last != "" {
		if _, err := fmt.Fprintln(f.out, f.last); err != nil {
			return fmt.Errorf("ascii: cannot write frame: %w", err)
		}
	}
	if err := f.out.Flush(); err != nil {
		return fmt.Errorf("ascii: cannot flush output: %w", err)
	}
	return nil
}

// Frames returns how many frames were rendered.
func (f *Frontend) Frames() int { return f.frames }

func trimRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
