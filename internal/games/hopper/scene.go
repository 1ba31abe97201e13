// Package hopper implements the jump-over-the-enemy scene.
// The player stands on a ground strip while an enemy rolls in from the
// right; landing on the enemy scores, being pushed off the left edge costs
// a life.
package hopper

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/hopper/internal/assets"
	"github.com/vovakirdan/hopper/internal/audio"
	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/engine"
	"github.com/vovakirdan/hopper/internal/physics"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

// Key is the scene key used by the CLI.
const Key = "game"

// Logical asset names.
const (
	imgPlayer   = "player"
	imgEnemy    = "enemy"
	imgBase     = "base"
	imgBg       = "bg"
	imgLife     = "life"
	imgPlayBtn  = "playBtn"
	sndAmbience = "ambience"
	sndJump     = "jump"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register(Key, func(sys engine.Systems) registry.Game {
		cfg, err := loadConfig()
		s := New(cfg)
		s.cfgErr = err
		return engine.NewRunner(s, sys)
	})
}

// loadConfig reads the configuration chosen on the command line.
func loadConfig() (config.HopperConfig, error) {
	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}
	config.ApplyHopperPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Scene is the hopper game scene.
type Scene struct {
	cfg        config.HopperConfig
	cfgErr     error
	difficulty *config.DifficultyManager

	st     state
	runID  string
	logger *log.Logger
	ticks  int

	player, enemy, ground *physics.Body
	groundCollider        *physics.Collider

	lifeIcons []core.Vec
	button    *engine.Button
	ambience  *audio.Sound
	jumpSound *audio.Sound
	scoreText string

	bgScroll   float64
	enemyAngle float64
}

var _ engine.Scene = (*Scene)(nil)

// New creates the scene with the given configuration.
func New(cfg config.HopperConfig) *Scene {
	return &Scene{cfg: cfg}
}

// Key returns the scene key.
func (s *Scene) Key() string {
	return Key
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Hopper"
}

// Size returns the canvas size in pixels.
func (s *Scene) Size() core.Vec {
	return core.Vec{X: s.cfg.Playfield.Width, Y: s.cfg.Playfield.Height}
}

// Init loads the persisted progress. Missing values are written back with
// their defaults.
func (s *Scene) Init(ctx *engine.Context) {
	s.runID = uuid.NewString()
	s.logger = ctx.Sys.Logger.With("scene", Key, "run", s.runID)
	if s.cfgErr != nil {
		s.logger.Warn("using default config", "error", s.cfgErr)
		s.cfgErr = nil
	}

	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)

	p, err := storage.LoadProgress(ctx.Sys.Store, s.cfg.Lives.Max)
	if err != nil {
		s.logger.Warn("progress partly unavailable, using defaults", "error", err)
	}

	s.st = state{progress: p, score: p.LastScore}
	s.ticks = 0
	s.bgScroll = 0
	s.enemyAngle = 0
	s.button = nil
}

// Preload queues the scene's images and sounds.
func (s *Scene) Preload(l *assets.Loader) {
	for _, name := range []string{imgPlayer, imgEnemy, imgBase, imgBg, imgLife, imgPlayBtn} {
		l.Image(name, name+".txt")
	}
	l.Audio(sndAmbience, sndAmbience+".cue")
	l.Audio(sndJump, sndJump+".cue")
}

// Create builds the bodies, colliders, HUD and input handlers.
func (s *Scene) Create(ctx *engine.Context) error {
	cfg := s.cfg

	s.ambience = ctx.Sys.Audio.Add(sndAmbience, ctx.Assets.AudioOr(sndAmbience),
		audio.Options{Volume: cfg.Audio.AmbienceVolume, Loop: true})
	s.jumpSound = ctx.Sys.Audio.Add(sndJump, ctx.Assets.AudioOr(sndJump), audio.Options{Volume: 1})

	world := ctx.Physics
	world.Gravity = core.Vec{Y: cfg.Physics.Gravity}
	world.OverlapBias = cfg.Physics.OverlapBias
	world.SetBounds(core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Floor), physics.Faces{Down: true})

	s.ground = world.Add(physics.NewStaticBody(cfg.Ground.X, cfg.Ground.Y, cfg.Ground.Width, cfg.Ground.Height))

	s.player = world.Add(physics.NewBody(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height))
	s.player.Bounce = core.Vec{X: cfg.Player.Bounce, Y: cfg.Player.Bounce}

	s.enemy = world.Add(physics.NewBody(cfg.Enemy.SpawnX, cfg.Enemy.Y, cfg.Enemy.Width, cfg.Enemy.Height))
	s.enemy.CollideWorldBounds = true
	s.enemy.Immovable = true

	s.lifeIcons = s.lifeIcons[:0]
	for i := range s.st.progress.Lives {
		s.lifeIcons = append(s.lifeIcons, core.Vec{
			X: cfg.Lives.IconX + float64(i)*cfg.Lives.IconStep,
			Y: cfg.Lives.IconY,
		})
	}

	cell := ctx.View.CellSize()
	btn := ctx.Assets.ImageOr(imgPlayBtn, 16, 3)
	s.button = ctx.Input.AddButton(core.RectAround(cfg.HUD.ButtonX, cfg.HUD.ButtonY,
		float64(btn.Width())*cell.X, float64(btn.Height())*cell.Y), func() { s.start() })

	s.scoreText = fmt.Sprintf("SCORE: %d", s.st.score)

	// Order matters: the ground contact is resolved before the enemy contact.
	s.groundCollider = world.Collide(s.player, s.ground, nil)
	world.Collide(s.player, s.enemy, func(_, enemy *physics.Body) { s.hitEnemy(ctx, enemy) })

	ctx.Input.OnPointerDown(func(*core.Vec) { s.jump() })

	ctx.Sys.Display.Show(fmt.Sprintf("BEST: %d", s.st.progress.HighScore))

	s.logger.Info("scene created",
		"lives", s.st.progress.Lives,
		"score", s.st.score,
		"best", s.st.progress.HighScore,
	)
	return nil
}

// start begins the run. Bound to the start button.
func (s *Scene) start() {
	s.st.running = true
	s.enemy.SetVelocityX(s.cfg.Enemy.StartSpeed)
	s.ambience.Play()

	s.button.Off()
	s.button.Destroy()
	s.button = nil
	s.logger.Debug("run started")
}

// jump lifts the player if the run is active and the player stands on the
// ground. Standing on the enemy does not count.
func (s *Scene) jump() {
	if !s.st.running || !s.player.Touching.Down || !s.groundCollider.Colliding() {
		return
	}
	s.player.SetVelocityY(s.cfg.Physics.JumpVelocity)
	s.jumpSound.Play()
}

// hitEnemy scores once per contact on the enemy's top face.
func (s *Scene) hitEnemy(ctx *engine.Context, enemy *physics.Body) {
	if !enemy.Touching.Up || s.st.collided {
		return
	}
	s.st.score++
	s.scoreText = fmt.Sprintf("SCORE: %d", s.st.score)
	s.st.collided = true
	ctx.Camera.Shake(time.Duration(s.cfg.Camera.ShakeMS)*time.Millisecond, s.cfg.Camera.ShakeIntensity)
	s.logger.Debug("enemy stomped", "score", s.st.score)
}

// Update advances the run. Nothing moves by itself until the start button
// is pressed.
func (s *Scene) Update(ctx *engine.Context, _ float64) {
	if !s.st.running {
		return
	}
	s.ticks++

	s.bgScroll += s.cfg.Background.Scroll
	s.enemyAngle += s.cfg.Enemy.Spin

	s.recycleEnemy(ctx)

	if s.player.Center().X <= s.cfg.Player.DeathX {
		s.die(ctx)
		return
	}

	if !s.enemy.Touching.Up && s.st.collided {
		s.st.collided = false
	}
}

// recycleEnemy sends the enemy back to the right once it left the screen.
func (s *Scene) recycleEnemy(ctx *engine.Context) {
	e := s.cfg.Enemy
	if s.enemy.Right() > e.RecycleRight {
		return
	}
	s.enemy.SetCenter(e.RespawnX, e.Y)
	base := float64(between(ctx.Rand, e.MinSpeed, e.MaxSpeed))
	s.enemy.SetVelocityX(s.difficulty.Speed(base, s.st.score, s.ticks))
}

// die persists the outcome of the run and restarts the scene.
func (s *Scene) die(ctx *engine.Context) {
	ctx.Sys.Audio.StopAll()

	next := afterDeath(s.st.progress, s.st.score, s.cfg.Lives.Max)
	if err := storage.SaveProgress(ctx.Sys.Store, next); err != nil {
		s.logger.Error("failed to save progress", "error", err)
	}
	s.logger.Info("player died",
		"score", s.st.score,
		"lives_left", next.Lives,
		"best", next.HighScore,
	)
	ctx.Restart()
}

// State returns the current game state.
func (s *Scene) State() core.GameState {
	return core.GameState{
		Score:     s.st.score,
		HighScore: s.st.progress.HighScore,
		Lives:     s.st.progress.Lives,
		Running:   s.st.running,
	}
}
