package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/fredjuma007/our-book-club-sub000/internal/core"
	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
	"github.com/fredjuma007/our-book-club-sub000/internal/tetris"
)

// fakeGame records what the host asks of it.
type fakeGame struct {
	resets   int
	resized  [2]int
	lastIn   []core.Action
	state    core.GameState
	commands []tetris.Command
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.lastIn = in.Clone().Actions
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (f *fakeGame) State() core.GameState   { return f.state }
func (f *fakeGame) Resize(w, h int)         { f.resized = [2]int{w, h} }

func (f *fakeGame) Run() replay.Run {
	return replay.Run{Seed: 1, StartLevel: 1, Commands: f.commands, Level: 1}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{"s", core.ActionDown},
		{" ", core.ActionDrop},
		{"w", core.ActionRotate},
		{"x", core.ActionRotate},
		{"z", core.ActionRotateBack},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"?", core.ActionNone},
		{"m", core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.key, got, tt.expected)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 12 {
		t.Errorf("FullHelp() lists %d bindings, expected 12", n)
	}
}

func TestModelForwardsActionsInOrder(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), "tester")
	m.Init()

	var model tea.Model = m
	for _, k := range []string{"left", "left", " "} {
		model, _ = model.Update(keyMsg(k))
	}
	model.Update(TickMsg{})

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionDrop}
	if len(g.lastIn) != len(want) {
		t.Fatalf("game saw %v, expected %v", g.lastIn, want)
	}
	for i := range want {
		if g.lastIn[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, g.lastIn[i], want[i])
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), "tester")

	model, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if model.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), "tester")
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(keyMsg("r"))
	model, _ = model.Update(TickMsg{})
	if g.resets != 1 {
		t.Errorf("resets = %d, restart applied to a running game", g.resets)
	}

	g.state.GameOver = true
	model, _ = model.Update(TickMsg{})
	model, _ = model.Update(keyMsg("r"))
	model.Update(TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected restart after game over", g.resets)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), "tester")
	m.Init()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, resize reset the game", g.resets)
	}
	if g.resized != [2]int{100, 40 - helpLines} {
		t.Errorf("Resize(%v), expected (100, %d)", g.resized, 40-helpLines)
	}
}

func TestModelRecordsOnceOnGameOver(t *testing.T) {
	store, err := replay.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{commands: []tetris.Command{tetris.CommandNewGame, tetris.CommandHardDrop}}
	m := NewModel(g, replay.NewRecorder(store, log.New(&strings.Builder{})), testConfig(), "tester")
	m.Init()

	var model tea.Model = m
	g.state.GameOver = true
	for i := 0; i < 5; i++ {
		model, _ = model.Update(TickMsg{})
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "tester" {
		t.Errorf("Player = %q, expected %q", runs[0].Player, "tester")
	}
	if !strings.Contains(model.View(), "replay #") {
		t.Error("status line does not mention the saved replay")
	}
}

func TestModelViewHasHelpLine(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), "tester")
	m.Init()

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("View() missing game output")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() missing help line")
	}
	if lines := strings.Count(view, "\n") + 1; lines != testConfig().ScreenH {
		t.Errorf("View() has %d lines, expected %d", lines, testConfig().ScreenH)
	}
}
