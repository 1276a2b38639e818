package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
	"github.com/vovakirdan/number-quest/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the summary sidebar
	sidebarWidth       = 24  // Width of the summary sidebar
	maxRounds          = 100 // Max rounds to load
	leaderboardSize    = 10
)

// historyView selects which table the board shows.
type historyView int

const (
	viewRounds historyView = iota
	viewLeaderboard
)

// HistoryKeyMap defines the key bindings for the history board.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "rounds/leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows the rounds journaled for the current session, the
// session totals and the leaderboard of all sessions on this process.
type HistoryModel struct {
	store       *storage.Store
	session     storage.Session
	view        historyView
	rounds      []storage.RoundEntry
	board       []storage.SessionStats
	summary     *storage.SessionStats
	records     map[string]storage.OperatorRecord
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates the history board for a session. store may be nil.
func NewHistoryModel(store *storage.Store, session storage.Session, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		session:     session,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads everything the board shows from the store.
func (m *HistoryModel) load() {
	m.rounds, m.board, m.summary, m.records, m.loadErr = nil, nil, nil, nil, nil
	if m.store == nil {
		return
	}

	var err error
	if m.rounds, err = m.store.SessionRounds(m.session.ID, maxRounds); err != nil {
		m.loadErr = err
		return
	}
	if m.summary, err = m.store.SessionSummary(m.session.ID); err != nil {
		m.loadErr = err
		return
	}
	if m.records, err = m.store.OperatorRecords(m.session.ID); err != nil {
		m.loadErr = err
		return
	}
	if m.board, err = m.store.Leaderboard(m.session.GameID, leaderboardSize); err != nil {
		m.loadErr = err
	}
}

// tableWidth returns the width available to the table.
func (m *HistoryModel) tableWidth() int {
	w := m.width - 4 // Margins
	if m.showSidebar {
		w -= sidebarWidth + 3 // Sidebar + border + gap
	}
	return w
}

// createTable creates a table with columns for the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewLeaderboard:
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: 12},
			{Title: "Best", Width: 6},
			{Title: "Won", Width: 4},
			{Title: "Lost", Width: 5},
			{Title: "Last played", Width: 13},
		}
	default:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Operator", Width: 9},
			{Title: "Result", Width: 7},
			{Title: "Lives", Width: 5},
			{Title: "Errors", Width: 6},
			{Title: "Score", Width: 6},
			{Title: "Time", Width: 9},
		}
	}

	// Shrink the widest column on narrow terminals
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if over := used - m.tableWidth(); over > 0 {
		widest := 0
		for i, c := range columns {
			if c.Width > columns[widest].Width {
				widest = i
			}
		}
		columns[widest].Width = max(columns[widest].Width-over, 3)
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewLeaderboard:
		rows = make([]table.Row, len(m.board))
		for i, st := range m.board {
			player := st.Player
			if st.SessionID == m.session.ID {
				player += " *"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				player,
				fmt.Sprintf("%d", st.BestScore),
				fmt.Sprintf("%d", st.Wins),
				fmt.Sprintf("%d", st.Losses),
				st.LastPlayed.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.rounds))
		for i, r := range m.rounds {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.Round),
				operatorSymbol(r.Operator),
				resultLabel(r.Won),
				fmt.Sprintf("%d", r.LivesLeft),
				fmt.Sprintf("%d", r.Mistakes),
				fmt.Sprintf("%d", r.Score),
				r.CreatedAt.Format("15:04:05"),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// operatorSymbol renders an operator ID as "less (<)".
func operatorSymbol(id string) string {
	op, ok := round.ParseOperator(id)
	if !ok {
		return id
	}
	return fmt.Sprintf("%s %s", op.ID(), op.Symbol())
}

func resultLabel(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewRounds {
				m.view = viewLeaderboard
			} else {
				m.view = viewRounds
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SESSION HISTORY"
	if m.view == viewLeaderboard {
		title = "LEADERBOARD"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebarStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(sidebarWidth).
			Padding(0, 1)
		sidebar := sidebarStyle.Render(m.renderSummary())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSummary renders the session totals and per-operator record.
func (m HistoryModel) renderSummary() string {
	var sb strings.Builder
	sb.WriteString("This session\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.summary == nil || m.summary.Rounds == 0 {
		sb.WriteString("No rounds yet\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Rounds:   %d\n", m.summary.Rounds)
	fmt.Fprintf(&sb, "Won:      %d\n", m.summary.Wins)
	fmt.Fprintf(&sb, "Lost:     %d\n", m.summary.Losses)
	fmt.Fprintf(&sb, "Mistakes: %d\n", m.summary.Mistakes)
	fmt.Fprintf(&sb, "Score:    %d\n", m.summary.BestScore)
	sb.WriteString("\n")

	for _, op := range round.Operators {
		rec, ok := m.records[op.ID()]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s  %dW %dL\n", op.Symbol(), rec.Wins, rec.Losses)
	}
	return sb.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load the journal:\n" + m.loadErr.Error())
	}

	empty := len(m.rounds) == 0
	if m.view == viewLeaderboard {
		empty = len(m.board) == 0
	}
	if empty {
		return emptyStyle.Render("No rounds played yet.\nFinish a round to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history board on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, session storage.Session, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, session, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
