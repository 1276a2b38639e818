package numquest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

// Visual characters for rendering
const (
	GroundChar   = '▀'
	StepChar     = '█'
	ObstacleChar = '▓'
	BombChar     = '●'
	FlagPole     = '│'
	FlagCloth    = '▶'
	PlayerHead   = 'o'
	PlayerBody   = '█'
	LifeFull     = '★'
	LifeEmpty    = '☆'
	PopChar      = '*'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.scene.minScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Enlarge the terminal to %dx%d", minW, minH))
		return
	}

	ox := (dst.Width()-g.scene.width)/2 + g.fx.shakeOffset()
	oy := dst.Height() - g.scene.height

	g.drawScene(dst, ox, oy)
	g.drawPlayer(dst, ox, oy)
	g.drawHUD(dst)

	switch {
	case g.overlay == overlayLost:
		g.drawCenteredMessage(dst, core.ColorBrightRed, "YOU LOST", g.operator.Label(), "R: retry  |  Esc: menu")
	case g.overlay == overlayWon:
		g.drawCenteredMessage(dst, core.ColorBrightYellow, "YOU WON", g.operator.Label(), "Enter: next level  |  Esc: menu")
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorDefault, "PAUSED", "Press P to resume", "Esc: menu")
	}
}

func (g *Game) drawScene(dst *core.Screen, ox, oy int) {
	s := g.scene

	dst.DrawHLine(ox, oy+s.groundY, s.width, GroundChar)

	for _, st := range s.steps {
		dst.DrawRectColor(st.Translate(ox, oy), StepChar, core.ColorGreen)
	}

	if s.blocked {
		dst.DrawRectColor(s.obstacle.Translate(ox, oy), ObstacleChar, core.ColorOrange)
	}

	for _, t := range s.tiles {
		g.drawTile(dst, t.rect.Translate(ox, oy), t.Value, core.ColorBrightBlue)
	}

	// Pops are drawn only where no live tile sits, so a stale burst can not
	// cover the next round's tiles.
	for _, e := range g.fx.pops() {
		r := e.rect.Translate(ox, oy)
		if _, live := s.tileAt(e.rect.X, e.rect.Y); live {
			continue
		}
		spread := int(e.Progress() * float64(r.W))
		dst.SetColor(r.X-spread/2, r.Y-1, PopChar, core.ColorBrightYellow)
		dst.SetColor(r.Right()-1+spread/2, r.Y-1, PopChar, core.ColorBrightYellow)
		if e.Progress() < 0.5 {
			g.drawTile(dst, r, e.value, core.ColorBrightGreen)
		}
	}

	for _, b := range s.hazards {
		dst.SetColor(ox+b.x, oy+b.y, BombChar, core.ColorRed)
	}

	flag := s.flag.Translate(ox, oy)
	for y := flag.Y; y < flag.Bottom(); y++ {
		dst.SetColor(flag.X, y, FlagPole, core.ColorWhite)
	}
	dst.SetColor(flag.X+1, flag.Y, FlagCloth, core.ColorBrightYellow)
}

// drawTile renders a tile as its number in brackets, e.g. "[12]".
func (g *Game) drawTile(dst *core.Screen, r core.Rect, value int, c core.Color) {
	label := strconv.Itoa(value)
	inner := r.W - 2
	if inner < len(label) {
		dst.DrawTextColor(r.X, r.Y, label, c)
		return
	}
	pad := inner - len(label)
	text := "[" + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "]"
	dst.DrawTextColor(r.X, r.Y, text, c)
}

func (g *Game) drawPlayer(dst *core.Screen, ox, oy int) {
	color := core.ColorBrightWhite
	if positive, ok := g.fx.flashing(); ok {
		color = core.ColorBrightRed
		if positive {
			color = core.ColorBrightGreen
		}
	}

	r := g.player.rect().Translate(ox, oy)
	dst.SetColor(r.X, r.Y, PlayerHead, color)
	dst.SetColor(r.X, r.Y+1, PlayerBody, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	// Lives
	dst.DrawText(2, 0, "LIVES:")
	for i := 0; i < round.MaxLives; i++ {
		if i < g.lives {
			dst.SetColor(9+i*2, 0, LifeFull, core.ColorBrightYellow)
		} else {
			dst.SetColor(9+i*2, 0, LifeEmpty, core.ColorGray)
		}
	}

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(dst.Width()-len(scoreText)-2, 0, scoreText)

	dst.DrawTextCenteredColor(0, gameLabel(g.operator), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(1, objectiveText(g.operator, g.targets), core.ColorCyan)

	if g.machine.ObstaclePresent() && g.machine.State() == round.Playing {
		dst.DrawTextCenteredColor(2, "Step on the right number to open the wall", core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle), utf8.RuneCountInString(hint)) + 6
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColor(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle)
	dst.DrawTextCenteredColor(boxY+5, hint, core.ColorGray)
}

// gameLabel returns the HUD title for an operator, e.g. "GAME: LESS THAN (<)".
func gameLabel(op round.Operator) string {
	switch op {
	case round.GreaterThan:
		return "GAME: GREATER THAN (>)"
	case round.Equal:
		return "GAME: EQUAL TO (=)"
	default:
		return "GAME: LESS THAN (<)"
	}
}

// objectiveText tells the player which values are correct.
func objectiveText(op round.Operator, targets []int) string {
	if len(targets) == 0 {
		if op == round.Equal {
			return "Find EQUAL numbers"
		}
		return ""
	}

	values := make([]string, len(targets))
	for i, v := range targets {
		values[i] = strconv.Itoa(v)
	}

	switch op {
	case round.GreaterThan:
		return "Find the LARGEST number: " + values[0]
	case round.Equal:
		return "Find EQUAL numbers: " + strings.Join(values, ", ")
	default:
		return "Find the SMALLEST number: " + values[0]
	}
}
