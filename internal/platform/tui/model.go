package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// helpHeight is the number of terminal rows reserved for the key help footer.
const helpHeight = 1

// Game is the simulation driven by the host. Update receives the wall-clock
// time of each frame and HandleInput receives actions as soon as keys arrive.
type Game interface {
	Update(dt time.Duration)
	HandleInput(a core.Action)
	State() core.GameState
}

// View draws a Game. It must not change the game.
type View interface {
	Render(dst *core.Screen)
	MinSize() (w, h int)
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	game      Game
	view      View
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	lastFrame time.Time // Zero until the first frame, and while the clock is stopped
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, view View, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		view:      view,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "screen", m.config.ScreenW, "rows", m.config.ScreenH, "fps", m.config.FrameRate)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey delivers input to the game immediately, independent of frame timing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.gameState.Score, "game_over", m.gameState.GameOver)
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.logger.Debug("input", "action", action)
	m.game.HandleInput(action)
	m.syncState()
	return m, nil
}

// handleResize processes window resize events. The grid is fixed, so the
// game is never reset here; only the drawing area changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleFrame feeds the elapsed time since the previous frame into the game.
// While the window is too small the clock is stopped so the snake does not
// move unseen.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.tooSmall() {
		m.lastFrame = time.Time{}
		return m, frameCmd(m.config.FrameRate)
	}

	var dt time.Duration
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	m.game.Update(dt)
	m.syncState()

	return m, frameCmd(m.config.FrameRate)
}

// syncState refreshes the cached game state and logs transitions.
func (m *Model) syncState() {
	prev := m.gameState
	m.gameState = m.game.State()

	switch {
	case !prev.GameOver && m.gameState.GameOver:
		m.logger.Info("game over", "score", m.gameState.Score, "reason", m.gameState.Reason)
	case prev.GameOver && !m.gameState.GameOver:
		m.logger.Info("restart", "previous_score", prev.Score)
	case m.gameState.Score > prev.Score:
		m.logger.Debug("food eaten", "score", m.gameState.Score)
	}

	m.keys.Restart.SetEnabled(m.gameState.GameOver)
}

func (m Model) tooSmall() bool {
	w, h := m.view.MinSize()
	return m.screen.Width() < w || m.screen.Height() < h
}

// State returns the last game state seen by the host.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, view View, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, view, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
