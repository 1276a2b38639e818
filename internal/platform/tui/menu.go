package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

// difficulties is the order the picker cycles through with left/right.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuSelection holds the player's choice from the operator picker.
type MenuSelection struct {
	Operator   round.Operator
	Difficulty config.DifficultyPreset
}

// Apply returns cfg with the selection as launch parameters.
func (s MenuSelection) Apply(cfg core.RuntimeConfig) core.RuntimeConfig {
	return cfg.WithParam("operator", s.Operator.ID()).WithParam("difficulty", string(s.Difficulty))
}

// MenuModel lets the player pick the starting operator and a difficulty.
type MenuModel struct {
	cursor      int // Index into round.Operators
	difficulty  int // Index into difficulties
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	selected    *MenuSelection
	wantHistory bool
	quitting    bool
}

// NewMenuModel creates the operator picker. The cursor starts on the
// operator named by the "operator" launch parameter.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	op, _ := round.ParseOperator(cfg.Param("operator"))
	diff := 1
	for i, d := range difficulties {
		if string(d) == cfg.Param("difficulty") {
			diff = i
		}
	}

	return MenuModel{
		cursor:     op.Index(),
		difficulty: diff,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(round.Operators)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		m.selected = &MenuSelection{
			Operator:   round.OperatorAt(m.cursor),
			Difficulty: difficulties[m.difficulty],
		}
		return m, tea.Quit

	case MenuActionHistory:
		m.wantHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("N U M B E R   Q U E S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose the comparison to start with:", m.width))
	b.WriteString("\n\n")

	for i, op := range round.Operators {
		line := "  " + op.Label()
		if i == m.cursor {
			line = activeStyle.Render("> " + op.Label())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", strings.ToUpper(string(difficulties[m.difficulty])))
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(dimStyle.Render("Win a round to move on to the next comparison."), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Operator  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil while the player is still choosing.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// WantsHistory returns true if the player asked for the session history.
func (m MenuModel) WantsHistory() bool {
	return m.wantHistory
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
