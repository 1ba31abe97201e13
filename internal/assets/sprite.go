package assets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/hopper/internal/core"
)

// Transparent is the rune that leaves the underlying cell untouched.
const Transparent = ' '

// frameSeparator splits animation frames inside a sprite file.
const frameSeparator = "---"

// Frame is one image of a sprite, one string per row.
type Frame []string

// Sprite is a text image made of one or more frames.
type Sprite struct {
	Name   string
	Color  core.Color
	Frames []Frame
	width  int
	height int
}

// Width returns the widest row over all frames, in cells.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the tallest frame, in cells.
func (s *Sprite) Height() int {
	return s.height
}

// Frame returns frame i, wrapping around the frame count.
func (s *Sprite) Frame(i int) Frame {
	n := len(s.Frames)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.Frames[i]
}

// Draw paints frame i with its top-left corner at (x, y).
// Transparent cells are skipped.
func (s *Sprite) Draw(dst *core.Screen, x, y, frame int) {
	for row, line := range s.Frame(frame) {
		col := 0
		for _, r := range line {
			if r != Transparent {
				dst.SetColored(x+col, y+row, r, s.Color)
			}
			col++
		}
	}
}

// colorNames maps the names accepted by the !color directive.
var colorNames = map[string]core.Color{
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright-red":    core.ColorBrightRed,
	"bright-yellow": core.ColorBrightYellow,
	"bright-cyan":   core.ColorBrightCyan,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
	"brown":         core.ColorBrown,
}

// ParseSprite decodes a sprite file.
//
// Leading lines starting with '!' are directives (only "!color <name>" is
// known). The rest is the image; a line holding only "---" starts a new
// frame. Trailing blank lines of a frame are dropped.
func ParseSprite(name string, data []byte) (*Sprite, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("sprite %s: not valid UTF-8", name)
	}

	s := &Sprite{Name: name}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	i := 0
	for ; i < len(lines) && strings.HasPrefix(lines[i], "!"); i++ {
		fields := strings.Fields(strings.TrimPrefix(lines[i], "!"))
		if len(fields) != 2 || fields[0] != "color" {
			return nil, fmt.Errorf("sprite %s: line %d: unknown directive %q", name, i+1, lines[i])
		}
		c, ok := colorNames[fields[1]]
		if !ok {
			return nil, fmt.Errorf("sprite %s: line %d: unknown color %q", name, i+1, fields[1])
		}
		s.Color = c
	}

	var cur Frame
	flush := func() {
		for len(cur) > 0 && strings.TrimSpace(cur[len(cur)-1]) == "" {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			s.Frames = append(s.Frames, cur)
		}
		cur = nil
	}
	for _, line := range lines[i:] {
		if strings.TrimSpace(line) == frameSeparator {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()

	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("sprite %s: no frames", name)
	}

	for _, f := range s.Frames {
		s.height = core.Max(s.height, len(f))
		for _, row := range f {
			s.width = core.Max(s.width, utf8.RuneCountInString(row))
		}
	}
	return s, nil
}

// Placeholder returns a boxed sprite of the given size, used when an image
// failed to load.
func Placeholder(name string, w, h int) *Sprite {
	w = core.Max(w, 2)
	h = core.Max(h, 2)
	f := make(Frame, h)
	for y := range h {
		var sb strings.Builder
		for x := range w {
			switch {
			case (y == 0 || y == h-1) && (x == 0 || x == w-1):
				sb.WriteRune('+')
			case y == 0 || y == h-1:
				sb.WriteRune('-')
			case x == 0 || x == w-1:
				sb.WriteRune('|')
			default:
				sb.WriteRune(Transparent)
			}
		}
		f[y] = sb.String()
	}
	return &Sprite{Name: name, Color: core.ColorGray, Frames: []Frame{f}, width: w, height: h}
}
