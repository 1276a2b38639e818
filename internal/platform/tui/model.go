package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/registry"
	"github.com/vovakirdan/number-quest/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game instance.
// It journals every finished round and can hand control back to a menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	session    storage.Session
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	rounds     int  // Rounds journaled by this model
	standalone bool // No menu to return to; back quits the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, session storage.Session, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		session:    session,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started",
		"session", m.session.ID,
		"operator", m.config.Param("operator"),
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The scene is anchored to the screen; a resize never restarts the round.
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves a paused or finished round; otherwise it pauses.
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		action = core.ActionPause
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished != nil {
		m.journal(*result.Finished)
		m.rounds++
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// journal records a finished round. Storage failures are logged and the
// game goes on.
func (m GameModel) journal(r core.RoundResult) {
	m.logger.Info("round finished",
		"session", m.session.ID,
		"round", r.Round,
		"operator", r.Operator,
		"won", r.Won,
		"lives", r.LivesLeft,
		"mistakes", r.Mistakes,
		"score", r.Score,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(m.session, r); err != nil {
		m.logger.Warn("could not journal round", "session", m.session.ID, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".numquest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Rounds returns how many rounds this model has journaled.
func (m GameModel) Rounds() int {
	return m.rounds
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays a single game in the current terminal until the player quits or
// goes back.
func Run(game registry.Game, store *storage.Store, session storage.Session, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, session, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
