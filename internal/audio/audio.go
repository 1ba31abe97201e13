// Package audio plays scene sounds on a terminal. A terminal has no mixer,
// so a sound is a cue handed to a Backend plus the playback state the scene
// can query.
package audio

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/assets"
)

// Backend renders a cue.
type Backend interface {
	Play(cue assets.Cue, volume float64) error
}

// Bell rings the terminal bell for audible cues.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell backend writing BEL to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for a bell cue with a positive volume.
func (b *Bell) Play(cue assets.Cue, volume float64) error {
	if cue != assets.CueBell || volume <= 0 {
		return nil
	}
	_, err := b.w.Write([]byte{'\a'})
	return err
}

// Mute discards every cue.
type Mute struct{}

// Play does nothing.
func (Mute) Play(assets.Cue, float64) error { return nil }

// Options control how a sound plays.
type Options struct {
	Volume float64 // 0..1
	Loop   bool
}

// Sound is a named cue registered with a Manager.
type Sound struct {
	name    string
	cue     assets.Cue
	opts    Options
	playing bool
	mgr     *Manager
}

// Name returns the logical name of the sound.
func (s *Sound) Name() string {
	return s.name
}

// Play starts the sound. A looping sound stays playing until stopped;
// playing it again while it plays does nothing.
func (s *Sound) Play() {
	if s.opts.Loop && s.playing {
		return
	}
	if err := s.mgr.backend.Play(s.cue, s.opts.Volume); err != nil {
		s.mgr.logger.Debug("sound playback failed", "sound", s.name, "error", err)
	}
	s.playing = s.opts.Loop
}

// Stop stops the sound.
func (s *Sound) Stop() {
	s.playing = false
}

// IsPlaying reports whether a looping sound is currently playing.
func (s *Sound) IsPlaying() bool {
	return s.playing
}

// Manager owns the sounds of a scene.
type Manager struct {
	backend Backend
	logger  *log.Logger
	sounds  map[string]*Sound
}

// NewManager creates a manager over backend. A nil backend mutes all
// sounds; a nil logger discards playback errors.
func NewManager(backend Backend, logger *log.Logger) *Manager {
	if backend == nil {
		backend = Mute{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		backend: backend,
		logger:  logger,
		sounds:  make(map[string]*Sound),
	}
}

// Add registers a sound, replacing any previous one with the same name.
func (m *Manager) Add(name string, cue assets.Cue, opts Options) *Sound {
	if old, ok := m.sounds[name]; ok {
		old.Stop()
	}
	s := &Sound{name: name, cue: cue, opts: opts, mgr: m}
	m.sounds[name] = s
	return s
}

// Get returns the sound registered under name, or nil.
func (m *Manager) Get(name string) *Sound {
	return m.sounds[name]
}

// StopAll stops every sound.
func (m *Manager) StopAll() {
	for _, s := range m.sounds {
		s.Stop()
	}
}

// Playing returns the names of the sounds currently playing, sorted.
func (m *Manager) Playing() []string {
	var names []string
	for name, s := range m.sounds {
		if s.playing {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
