package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// saveTimeout bounds the best-effort run save on game over.
const saveTimeout = 2 * time.Second

// ModelOptions configures a game model.
type ModelOptions struct {
	Sprites    SpriteSource
	Recorder   RunRecorder // nil disables run history
	Logger     *log.Logger // nil discards
	Difficulty string
	Player     string
	// Embedded models return to their host on "b" instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for one survivor session.
type Model struct {
	game    *survivor.Game
	sprites SpriteSource
	screen  *core.Screen
	rec     RunRecorder
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    *KeyMapper

	difficulty string
	player     string
	embedded   bool

	// held counts the ticks each key-repeat action stays active.
	held      map[core.Action]int
	holdTicks int
	pressed   core.InputFrame
	mouseDown bool
	aim       core.Vec2

	state      core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
	lastRunID  string
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *survivor.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Typical terminal key-repeat delay is a quarter to half a second.
	hold := max(cfg.TickRate*2/5, 1)

	game.Reset(cfg)
	return Model{
		game:       game,
		sprites:    opts.Sprites,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		rec:        opts.Recorder,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		difficulty: opts.Difficulty,
		player:     opts.Player,
		embedded:   opts.Embedded,
		held:       make(map[core.Action]int),
		holdTicks:  hold,
		pressed:    core.NewInputFrame(),
		state:      game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		// The world has a fixed size, so resizing never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.embedded && (m.state.GameOver() || m.state.Run == core.StatePaused) {
			m.backToMenu = true
			return m, nil
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	if Held(action) {
		m.held[action] = m.holdTicks
		if o := opposite(action); o != core.ActionNone {
			delete(m.held, o)
		}
		return m, nil
	}
	m.pressed.Set(action)
	return m, nil
}

// handleMouse tracks the aim point while the left button is down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	firing, x, y := m.keys.MouseAim(msg)
	if msg.Button == tea.MouseButtonLeft || msg.Action == tea.MouseActionRelease {
		m.mouseDown = firing
	}
	if firing {
		world := m.game.Config().World
		vp := NewViewport(m.screen.Width(), m.screen.Height(), core.V(world.Width, world.Height))
		m.aim = vp.ToWorld(x, y)
	}
	return m, nil
}

// frame builds this tick's input from held keys, presses and the mouse.
func (m Model) frame() core.InputFrame {
	in := m.pressed.Clone()
	for a, n := range m.held {
		if n > 0 {
			in.Set(a)
		}
	}
	if m.mouseDown {
		in.FireAt(m.aim)
	}
	return in
}

// decay expires held keys that were not repeated.
func (m Model) decay() {
	for a := range m.held {
		m.held[a]--
		if m.held[a] <= 0 {
			delete(m.held, a)
		}
	}
	m.pressed.Clear()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	in := m.frame()

	if in.Has(core.ActionRestart) && m.state.GameOver() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.runSaved = false
		m.logger.Info("run restarted", "seed", m.config.Seed)
		m.decay()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.state = result.State
	m.logEvents(result.Events)

	if m.state.GameOver() && !m.runSaved {
		m.lastRunID = m.saveRun()
		m.runSaved = true
	}

	m.decay()
	return m, tickCmd(m.config.TickRate)
}

// logEvents writes notable game events to the log.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventEnemyKilled, core.EventWeaponDropped:
			m.logger.Debug(e.Kind.String(), "tick", e.Tick, "label", e.Label)
		case core.EventPlayerHit:
			m.logger.Debug(e.Kind.String(), "tick", e.Tick, "health", e.Value)
		default:
			m.logger.Info(e.Kind.String(), "tick", e.Tick, "value", e.Value, "label", e.Label)
		}
	}
}

// saveRun records the finished run. Failures are logged and ignored.
func (m Model) saveRun() string {
	if m.rec == nil || m.state.Ticks == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	id, err := m.rec.SaveRun(ctx, storage.Run{
		Player:         m.player,
		Difficulty:     m.difficulty,
		Score:          m.state.Score,
		Level:          m.state.Level,
		Kills:          m.state.Kills,
		BossesDefeated: m.state.BossesDefeated,
		Ticks:          m.state.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return ""
	}
	m.logger.Info("run saved", "id", id, "score", m.state.Score)
	return id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.game.Snapshot(), m.sprites)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".survivor", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawScene(m.screen, m.game.Snapshot(), m.sprites)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the id of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts a full-screen Bubble Tea program for the game.
func Run(game *survivor.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
