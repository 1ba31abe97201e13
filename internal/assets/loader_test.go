package assets

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/hopper/internal/core"
)

func TestDefaultAssetsLoad(t *testing.T) {
	l := NewLoader(Default())
	for _, name := range []string{"player", "enemy", "base", "bg", "life", "playBtn"} {
		l.Image(name, name+".txt")
	}
	l.Audio("ambience", "ambience.cue")
	l.Audio("jump", "jump.cue")

	if l.Pending() != 8 {
		t.Fatalf("Pending = %d, expected 8", l.Pending())
	}

	lib, err := l.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if l.Pending() != 0 {
		t.Error("Load() should clear the queue")
	}

	enemy, ok := lib.Image("enemy")
	if !ok {
		t.Fatal("enemy sprite missing")
	}
	if len(enemy.Frames) != 4 {
		t.Errorf("enemy frames = %d, expected 4", len(enemy.Frames))
	}
	if enemy.Color != core.ColorBrightRed {
		t.Errorf("enemy color = %v, expected bright red", enemy.Color)
	}

	if c := lib.AudioOr("jump"); c != CueBell {
		t.Errorf("jump cue = %q, expected bell", c)
	}
	if c := lib.AudioOr("ambience"); c != CueSilent {
		t.Errorf("ambience cue = %q, expected silent", c)
	}
}

func TestLoadCollectsErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.txt":  {Data: []byte("ab\ncd\n")},
		"bad.txt": {Data: []byte("!shade dark\nx\n")},
		"bad.cue": {Data: []byte("trumpet\n")},
	}

	l := NewLoader(fsys)
	l.Image("ok", "ok.txt")
	l.Image("bad", "bad.txt")
	l.Image("missing", "missing.txt")
	l.Audio("horn", "bad.cue")

	lib, err := l.Load()
	if err == nil {
		t.Fatal("Expected joined error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Joined error should wrap fs.ErrNotExist: %v", err)
	}

	if _, ok := lib.Image("ok"); !ok {
		t.Error("Valid image should still load")
	}
	if _, ok := lib.Image("bad"); ok {
		t.Error("Invalid image should not be in the library")
	}
	if lib.AudioOr("horn") != CueSilent {
		t.Error("Failed cue should fall back to silent")
	}

	ph := lib.ImageOr("missing", 4, 3)
	if ph.Width() != 4 || ph.Height() != 3 {
		t.Errorf("Placeholder size = %dx%d, expected 4x3", ph.Width(), ph.Height())
	}
}

func TestParseSpriteFrames(t *testing.T) {
	data := []byte("!color cyan\nab\nabc\n\n---\nx\n---\n")
	s, err := ParseSprite("t", data)
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	if len(s.Frames) != 2 {
		t.Fatalf("Frames = %d, expected 2", len(s.Frames))
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("Size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.Color != core.ColorCyan {
		t.Errorf("Color = %v, expected cyan", s.Color)
	}
	if s.Frame(3)[0] != "x" || s.Frame(-1)[0] != "x" {
		t.Error("Frame index should wrap")
	}
}

func TestParseSpriteErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "\n\n"},
		{"only separators", "---\n---\n"},
		{"bad color", "!color plaid\nx\n"},
		{"invalid utf8", "\xff\xfe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSprite(tc.name, []byte(tc.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestSpriteDrawTransparent(t *testing.T) {
	s, _ := ParseSprite("t", []byte("a b\n"))
	screen := core.NewScreen(5, 1)
	screen.DrawText(0, 0, ".....")

	s.Draw(screen, 1, 0, 0)

	if got := screen.String(); got != ".a.b." {
		t.Errorf("Draw = %q, expected %q", got, ".a.b.")
	}
}

func TestParseCue(t *testing.T) {
	c, err := ParseCue("x", []byte("# comment\n\n  bell  \n"))
	if err != nil || c != CueBell {
		t.Errorf("ParseCue = %q, %v", c, err)
	}
	if _, err := ParseCue("x", []byte("# nothing\n")); err == nil {
		t.Error("Expected error for empty cue")
	}
}
