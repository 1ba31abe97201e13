package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopper/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	resets  int
	state   core.GameState
	restart bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Viewport() core.Viewport { return core.NewViewport(400, 300, 80, 30) }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "fake") }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	if in.Pointer != nil {
		p := *in.Pointer
		cp.Pointer = &p
	}
	g.frames = append(g.frames, cp)
	return core.StepResult{State: g.state, Restarted: g.restart}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionPointerDown},
		{"up", core.ActionPointerDown},
		{"w", core.ActionPointerDown},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
	if !km.IsScreenshot(keyMsg("ctrl+s")) {
		t.Error("ctrl+s should request a screenshot")
	}
}

func TestMapMouse(t *testing.T) {
	view := core.NewViewport(400, 300, 80, 30)

	f := core.NewInputFrame()
	press := tea.MouseMsg{X: 40, Y: 16, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !MapMouseToFrame(press, view, 1, &f) {
		t.Fatal("Left press should map")
	}
	if !f.Has(core.ActionPointerDown) || f.Pointer == nil {
		t.Fatal("Pointer-down not recorded")
	}
	if f.Pointer.X != 202.5 || f.Pointer.Y != 155 {
		t.Errorf("Pointer = %+v, expected (202.5, 155)", *f.Pointer)
	}

	f.Clear()
	for _, msg := range []tea.MouseMsg{
		{X: 40, Y: 16, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 40, Y: 16, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 40, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},  // banner row
		{X: 40, Y: 31, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, // footer row
	} {
		if MapMouseToFrame(msg, view, 1, &f) {
			t.Errorf("Mouse %+v should be ignored", msg)
		}
	}
}

func TestModelTickCarriesInput(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, core.DefaultConfig(), Options{ScreenshotDir: t.TempDir()})
	m.Init()

	if game.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", game.resets)
	}

	m.Update(keyMsg(" "))
	m.Update(keyMsg("enter"))
	m.Update(TickMsg{})
	m.Update(TickMsg{})

	if len(game.frames) != 2 {
		t.Fatalf("Steps = %d, expected 2", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionPointerDown) || !game.frames[0].Has(core.ActionConfirm) {
		t.Error("First tick should carry the queued actions")
	}
	if len(game.frames[1].Actions) != 0 {
		t.Error("Input should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, core.DefaultConfig(), Options{})
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	banner := NewBanner()
	banner.Show("BEST: 3")
	game := &fakeGame{}
	m := NewModel(game, core.DefaultConfig(), Options{Banner: banner})
	m.Init()

	out := m.View()
	if !strings.Contains(out, "BEST: 3") || !strings.Contains(out, "fake") {
		t.Errorf("View missing banner or game:\n%s", out)
	}
	if !strings.Contains(out, "jump") {
		t.Error("View missing help footer")
	}

	game.state.Paused = true
	m.Update(TickMsg{})
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("Paused overlay missing")
	}

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "too small") {
		t.Error("Small terminal warning missing")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	banner := NewBanner()
	banner.Show("BEST: 9")
	m := NewModel(&fakeGame{}, core.DefaultConfig(), Options{Banner: banner, ScreenshotDir: dir})
	m.Init()

	m.Update(keyMsg("ctrl+s"))

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one screenshot, got %v (%v)", entries, err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.HasPrefix(string(data), "BEST: 9\nfake") {
		t.Errorf("Screenshot content = %q", string(data)[:20])
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("Screenshot name = %s", entries[0].Name())
	}
}
