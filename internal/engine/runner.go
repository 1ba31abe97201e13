package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/hopper/internal/assets"
	"github.com/vovakirdan/hopper/internal/core"
)

// Runner drives a Scene. It satisfies registry.Game.
type Runner struct {
	scene    Scene
	sys      Systems
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	ctx      *Context
	paused   bool
	restarts int
}

// NewRunner creates a runner for scene. Unset systems get defaults.
func NewRunner(scene Scene, sys Systems) *Runner {
	return &Runner{scene: scene, sys: sys.withDefaults()}
}

// ID returns the scene key.
func (r *Runner) ID() string {
	return r.scene.Key()
}

// Title returns the scene title.
func (r *Runner) Title() string {
	return r.scene.Title()
}

// Scene returns the driven scene.
func (r *Runner) Scene() Scene {
	return r.scene
}

// Context returns the context of the current lifecycle.
func (r *Runner) Context() *Context {
	return r.ctx
}

// Restarts returns how many times the scene restarted since Reset.
func (r *Runner) Restarts() int {
	return r.restarts
}

// Reset starts the scene from scratch. A zero seed uses the current time.
func (r *Runner) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	r.runtime = runtime
	r.rng = rand.New(rand.NewSource(runtime.Seed))
	r.paused = false
	r.restarts = 0
	r.start()
}

// start runs Init, Preload and Create with a fresh context.
func (r *Runner) start() {
	ctx := NewContext(r.sys, r.runtime, r.scene.Size(), r.rng)
	logger := r.sys.Logger.With("scene", r.scene.Key())

	r.scene.Init(ctx)

	loader := assets.NewLoader(r.sys.Assets)
	r.scene.Preload(loader)
	lib, err := loader.Load()
	if err != nil {
		logger.Warn("some assets failed to load", "error", err)
	}
	ctx.Assets = lib

	if err := r.scene.Create(ctx); err != nil {
		logger.Error("scene create failed", "error", err)
	}
	r.ctx = ctx
}

// Step advances the scene by one tick: input, physics, camera, Update,
// then a restart if the scene asked for one.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		r.paused = !r.paused
	}
	if r.paused {
		return core.StepResult{State: r.State()}
	}

	dt := r.runtime.StepDuration()
	ctx := r.ctx

	ctx.Input.Dispatch(in)
	ctx.Physics.Step(dt)
	ctx.Camera.Update(dt)
	r.scene.Update(ctx, dt)
	ctx.Frame++

	restarted := false
	if ctx.RestartRequested() {
		r.restarts++
		r.start()
		restarted = true
	}

	return core.StepResult{State: r.State(), Restarted: restarted}
}

// Render draws the scene, shifted by the camera shake.
func (r *Runner) Render(dst *core.Screen) {
	dst.Clear()
	dx, dy := r.ctx.View.Span(r.ctx.Camera.Offset())
	dst.SetOffset(dx, dy)
	r.scene.Render(r.ctx, dst)
	dst.SetOffset(0, 0)
}

// State returns the scene state with the runner's pause flag.
func (r *Runner) State() core.GameState {
	s := r.scene.State()
	s.Paused = r.paused
	return s
}

// Viewport returns the pixel to cell mapping of the current lifecycle.
func (r *Runner) Viewport() core.Viewport {
	return r.ctx.View
}
