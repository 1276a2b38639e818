package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/registry"
	"github.com/vovakirdan/number-quest/internal/storage"
)

// sessionStage is the screen a SessionModel is currently showing.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageGame
	stageHistory
)

// SessionModel manages one player's flow: menu -> game -> menu, with the
// history board reachable from the menu. It backs both the local menu
// command and every SSH session.
type SessionModel struct {
	store     *storage.Store
	session   storage.Session
	logger    *log.Logger
	config    core.RuntimeConfig
	stage     sessionStage
	menu      MenuModel
	history   HistoryModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session model. store and logger may be nil.
func NewSessionModel(store *storage.Store, session storage.Session, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		store:   store,
		session: session,
		logger:  logger,
		config:  cfg,
		menu:    NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageGame:
		return m.updateGame(msg)
	case stageHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.history = NewHistoryModel(m.store, m.session, m.config.ScreenW, m.config.ScreenH)
		m.stage = stageHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(m.session.GameID)
		if err != nil {
			m.logger.Error("cannot create game", "game", m.session.GameID, "error", err)
			m.quitting = true
			return m, tea.Quit
		}

		// Remember the choice so the menu reopens on it.
		m.config = selected.Apply(m.menu.Config())

		gameModel := NewGameModel(game, m.store, m.session, m.logger, m.config)
		m.gameModel = &gameModel
		m.stage = stageGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.logger.Debug("back to menu", "session", m.session.ID, "rounds", m.gameModel.Rounds())
		m.gameModel = nil
		m.stage = stageMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates when the history board is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.stage = stageMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stageHistory:
		return m.history.View()
	}

	return m.menu.View()
}

// IsQuitting returns true once the player has left the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Session returns the journal session this model writes to.
func (m SessionModel) Session() storage.Session {
	return m.session
}

// RunSession runs the menu-driven flow in the current terminal.
func RunSession(store *storage.Store, session storage.Session, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, session, logger, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
