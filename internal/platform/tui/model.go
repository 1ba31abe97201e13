package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
)

// bannerRows is the number of terminal rows above the game screen.
const bannerRows = 1

// viewporter is implemented by games that map a pixel canvas onto the screen.
type viewporter interface {
	Viewport() core.Viewport
}

// Options configures the host.
type Options struct {
	Banner        *Banner     // Header shown above the screen; nil for none
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // Defaults to ~/.hopper/screenshots
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	banner     *Banner
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	shotDir    string
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	status     string // One-shot footer message, e.g. screenshot path
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	if opts.Banner == nil {
		opts.Banner = NewBanner()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		banner:     opts.Banner,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     opts.Logger,
		shotDir:    opts.ScreenshotDir,
		inputFrame: core.NewInputFrame(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".hopper", "screenshots")
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, m.viewport(), bannerRows, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the input collected since the
// previous tick.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Restarted {
		m.status = ""
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// viewport returns the game's pixel mapping, or a 1:1 mapping of the screen.
func (m *Model) viewport() core.Viewport {
	if v, ok := m.game.(viewporter); ok {
		return v.Viewport()
	}
	return core.NewViewport(float64(m.config.ScreenW), float64(m.config.ScreenH), m.config.ScreenW, m.config.ScreenH)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := m.banner.Text() + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the banner, the game screen and the help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.config.ScreenW, m.config.ScreenH+bannerRows+1
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		drawOverlay(m.screen, "PAUSED", "Press P to resume")
	}

	var sb strings.Builder
	sb.WriteString(m.banner.View(m.config.ScreenW))
	sb.WriteByte('\n')
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteByte('\n')
	if m.status != "" {
		sb.WriteString(m.status)
	} else {
		sb.WriteString(m.help.View(m.keys.Keys()))
	}
	return sb.String()
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks become pointer-downs
	)

	_, err := p.Run()
	return err
}
