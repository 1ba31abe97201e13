// Package engine runs a scene through its lifecycle and owns the services
// a scene works with: physics, input, camera, assets and randomness.
package engine

import (
	"io"
	"io/fs"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/assets"
	"github.com/vovakirdan/hopper/internal/audio"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/physics"
	"github.com/vovakirdan/hopper/internal/storage"
)

// Scene is a game screen driven by a Runner.
//
// Lifecycle: Init, then Preload (queue assets), then Create once the assets
// are loaded. Update runs every tick after input and physics. A restart
// runs the whole lifecycle again with a fresh Context.
type Scene interface {
	// Key identifies the scene (e.g., "game"). Used by the CLI.
	Key() string

	// Title is the human-readable name.
	Title() string

	// Size returns the virtual canvas size in pixels.
	Size() core.Vec

	Init(ctx *Context)
	Preload(l *assets.Loader)
	Create(ctx *Context) error
	Update(ctx *Context, dt float64)

	// Render draws the scene. dst is cleared and the camera offset applied.
	Render(ctx *Context, dst *core.Screen)

	State() core.GameState
}

// Display shows text outside the game canvas.
type Display interface {
	Show(text string)
}

// Systems are the long-lived services injected into every scene.
type Systems struct {
	Store   storage.KV
	Audio   *audio.Manager
	Display Display
	Logger  *log.Logger
	Assets  fs.FS
}

type nopDisplay struct{}

func (nopDisplay) Show(string) {}

// withDefaults fills unset services with in-memory or silent versions.
func (s Systems) withDefaults() Systems {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Store == nil {
		s.Store = storage.NewMemory()
	}
	if s.Audio == nil {
		s.Audio = audio.NewManager(audio.Mute{}, s.Logger)
	}
	if s.Display == nil {
		s.Display = nopDisplay{}
	}
	if s.Assets == nil {
		s.Assets = assets.Default()
	}
	return s
}

// Context is a scene's view of the engine for one lifecycle.
type Context struct {
	Physics *physics.World
	Camera  *Camera
	Input   *Input
	Assets  *assets.Library
	Rand    *rand.Rand
	View    core.Viewport
	Sys     Systems
	Runtime core.RuntimeConfig

	// Frame counts the ticks since Create.
	Frame int

	restart bool
}

// Restart asks the runner to restart the scene at the end of the tick.
func (c *Context) Restart() {
	c.restart = true
}

// RestartRequested reports whether Restart was called.
func (c *Context) RestartRequested() bool {
	return c.restart
}

// NewContext builds a fresh context. Exported for scene tests.
func NewContext(sys Systems, runtime core.RuntimeConfig, size core.Vec, rng *rand.Rand) *Context {
	sys = sys.withDefaults()
	return &Context{
		Physics: physics.NewWorld(core.Vec{}),
		Camera:  NewCamera(size, rng),
		Input:   NewInput(),
		Assets:  nil,
		Rand:    rng,
		View:    core.NewViewport(size.X, size.Y, runtime.ScreenW, runtime.ScreenH),
		Sys:     sys,
		Runtime: runtime,
	}
}
