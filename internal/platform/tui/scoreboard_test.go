package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axion/internal/storage"
)

type fakeSource struct {
	scores map[string][]storage.ScoreEntry
	runs   []storage.Run
	err    error
}

func (f fakeSource) Modes() ([]string, error) {
	var modes []string
	for _, m := range []string{"easy", "hard", "normal"} {
		if _, ok := f.scores[m]; ok {
			modes = append(modes, m)
		}
	}
	return modes, f.err
}

func (f fakeSource) TopScores(mode string, limit int) ([]storage.ScoreEntry, error) {
	return f.scores[mode], nil
}

func (f fakeSource) RecentRuns(limit int) ([]storage.Run, error) {
	return f.runs, nil
}

func newFakeSource() fakeSource {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return fakeSource{
		scores: map[string][]storage.ScoreEntry{
			"easy":   {{Mode: "easy", Score: 120, Level: 3, CreatedAt: now}},
			"normal": {{Mode: "normal", Score: 90, Level: 2, CreatedAt: now}, {Mode: "normal", Score: 40, Level: 1, CreatedAt: now}},
		},
		runs: []storage.Run{
			{RunID: "a", Mode: "normal", Level: 2, FillPct: 31.5, Score: 90, Ticks: 400, Outcome: storage.OutcomeLost, CreatedAt: now},
		},
	}
}

func TestScoreboardModes(t *testing.T) {
	m := NewScoreboardModel(newFakeSource(), 80, 24)

	if m.Mode() != "easy" || len(m.Rows()) != 1 {
		t.Fatalf("mode %q with %d rows, want easy with 1", m.Mode(), len(m.Rows()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != "normal" || len(m.Rows()) != 2 {
		t.Fatalf("mode %q with %d rows, want normal with 2", m.Mode(), len(m.Rows()))
	}
	if row := m.Rows()[0]; row[0] != "#1" || row[1] != "90" || row[2] != "2" {
		t.Errorf("first row = %v", row)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).Mode(); got != "normal" {
		t.Errorf("wrapping back twice gave %q, want normal", got)
	}
}

func TestScoreboardRuns(t *testing.T) {
	m := NewScoreboardModel(newFakeSource(), 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	m = next.(ScoreboardModel)

	rows := m.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d run rows, want 1", len(rows))
	}
	if rows[0][2] != storage.OutcomeLost || rows[0][4] != "31.5%" {
		t.Errorf("run row = %v", rows[0])
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("runs view missing title")
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(fakeSource{err: errors.New("db locked")}, 80, 24)

	if m.Mode() != "" || len(m.Rows()) != 0 {
		t.Fatal("expected an empty board")
	}
	view := m.View()
	for _, want := range []string{"Nothing recorded yet", "db locked"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit")
	}
}
