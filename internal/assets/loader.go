// Package assets loads the images and sounds a scene refers to by logical
// name. Images are text sprites, sounds are cue descriptors.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed files
var embedded embed.FS

// Default returns the embedded asset files.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded files: %v", err))
	}
	return sub
}

// Cue describes how a sound is rendered on a terminal.
type Cue string

const (
	CueBell   Cue = "bell"   // Ring the terminal bell
	CueSilent Cue = "silent" // Track playback state only
)

// ParseCue decodes a cue file. Blank lines and '#' comments are ignored.
func ParseCue(name string, data []byte) (Cue, error) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch c := Cue(line); c {
		case CueBell, CueSilent:
			return c, nil
		default:
			return "", fmt.Errorf("audio %s: unknown cue %q", name, line)
		}
	}
	return "", fmt.Errorf("audio %s: empty cue file", name)
}

type kind int

const (
	kindImage kind = iota
	kindAudio
)

type request struct {
	name string
	path string
	kind kind
}

// Loader collects asset requests during a scene's preload phase and
// resolves them in one pass.
type Loader struct {
	fsys     fs.FS
	requests []request
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Image queues a sprite file under a logical name.
func (l *Loader) Image(name, path string) {
	l.requests = append(l.requests, request{name: name, path: path, kind: kindImage})
}

// Audio queues a cue file under a logical name.
func (l *Loader) Audio(name, path string) {
	l.requests = append(l.requests, request{name: name, path: path, kind: kindAudio})
}

// Pending returns the number of queued requests.
func (l *Loader) Pending() int {
	return len(l.requests)
}

// Load resolves every queued request and clears the queue.
// The returned library holds whatever loaded; the error joins every failure.
func (l *Loader) Load() (*Library, error) {
	lib := newLibrary()
	var errs []error

	for _, req := range l.requests {
		data, err := fs.ReadFile(l.fsys, req.path)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: %s: %w", req.name, err))
			continue
		}

		switch req.kind {
		case kindImage:
			s, err := ParseSprite(req.name, data)
			if err != nil {
				errs = append(errs, fmt.Errorf("assets: %w", err))
				continue
			}
			lib.images[req.name] = s
		case kindAudio:
			c, err := ParseCue(req.name, data)
			if err != nil {
				errs = append(errs, fmt.Errorf("assets: %w", err))
				continue
			}
			lib.audio[req.name] = c
		}
	}

	l.requests = nil
	return lib, errors.Join(errs...)
}

// Library holds loaded assets by logical name.
type Library struct {
	images map[string]*Sprite
	audio  map[string]Cue
}

func newLibrary() *Library {
	return &Library{
		images: make(map[string]*Sprite),
		audio:  make(map[string]Cue),
	}
}

// Image returns the sprite registered under name.
func (lib *Library) Image(name string) (*Sprite, bool) {
	if lib == nil {
		return nil, false
	}
	s, ok := lib.images[name]
	return s, ok
}

// ImageOr returns the sprite registered under name, or a w×h placeholder.
func (lib *Library) ImageOr(name string, w, h int) *Sprite {
	if s, ok := lib.Image(name); ok {
		return s
	}
	return Placeholder(name, w, h)
}

// Audio returns the cue registered under name.
func (lib *Library) Audio(name string) (Cue, bool) {
	if lib == nil {
		return "", false
	}
	c, ok := lib.audio[name]
	return c, ok
}

// AudioOr returns the cue registered under name, or CueSilent.
func (lib *Library) AudioOr(name string) Cue {
	if c, ok := lib.Audio(name); ok {
		return c
	}
	return CueSilent
}
