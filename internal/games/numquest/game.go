// Package numquest hosts the number comparison round on a small grid
// platformer. The round package decides what is correct; this package
// only moves the player, reports contacts and executes the commands the
// round emits.
package numquest

import (
	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
	"github.com/vovakirdan/number-quest/internal/registry"
)

// GameID is the registry identifier of Number Quest.
const GameID = "numquest"

// overlay is the screen shown on top of the scene.
type overlay int

const (
	overlayNone overlay = iota
	overlayLost
	overlayWon
)

// Game implements registry.Game and round.Sink.
type Game struct {
	runtime core.RuntimeConfig
	base    config.NumQuestConfig // As loaded, before the difficulty preset
	loaded  bool
	cfg     config.NumQuestConfig

	machine *round.Machine
	hazards *HazardLayer
	scene   *scene
	player  player
	fx      effects

	operator round.Operator
	targets  []int
	lives    int
	score    int
	paused   bool
	overlay  overlay

	pending     *core.RoundResult // Round finished during this Step
	interrupted bool              // Scene was reset while contacts were dispatched
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names keep the config file values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// New creates a new Number Quest instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates an instance that skips config loading.
func NewWithConfig(cfg config.NumQuestConfig) *Game {
	return &Game{base: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Number Quest"
}

// Reset starts a new session. The "operator" launch parameter picks the
// first operator; unknown or missing values fall back to less-than. The
// "difficulty" parameter overrides the preset set with SetDifficultyPreset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		cfg, err := config.LoadNumQuest(configPath)
		if err != nil {
			cfg = config.DefaultNumQuestConfig()
		}
		g.base = cfg
		g.loaded = true
	}

	preset := difficultyPreset
	if p := config.ParseDifficultyPreset(runtime.Param("difficulty")); p != "" {
		preset = p
	}
	g.cfg = g.base
	config.ApplyPreset(&g.cfg, preset)

	op, _ := round.ParseOperator(runtime.Param("operator"))

	g.scene = newScene(g.cfg.Layout, g.cfg.Hazards.Bombs)
	g.fx.clear()
	g.score = 0
	g.paused = false
	g.pending = nil

	// NewMachine presents the first round before returning.
	g.machine = round.NewMachine(op, runtime.Seed, g)
	g.hazards = NewHazardLayer(g.machine)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pending = nil

	switch g.machine.State() {
	case round.Lost:
		if in.Has(core.ActionRestart) {
			//nolint:errcheck // State checked above
			g.machine.Retry()
		}
	case round.Won:
		if in.Has(core.ActionConfirm) {
			//nolint:errcheck // State checked above
			g.machine.Advance()
		}
	case round.Playing:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.simulate(in)
		}
	}

	if !g.paused {
		g.fx.step()
	}

	return core.StepResult{State: g.State(), Finished: g.pending}
}

// simulate moves the player and delivers the contacts of this tick.
func (g *Game) simulate(in core.InputFrame) {
	phys := g.cfg.Physics

	if in.Has(core.ActionLeft) {
		g.player.walk(-1, phys)
	}
	if in.Has(core.ActionRight) {
		g.player.walk(1, phys)
	}
	if in.Has(core.ActionJump) {
		g.player.jump(phys)
	}

	g.player.moveHorizontal(g.scene, phys)
	g.player.settle(g.scene)
	x, y, landed := g.player.moveVertical(g.scene, phys)

	g.interrupted = false
	for _, c := range g.contacts(x, y, landed) {
		g.hazards.Dispatch(c)
		if g.interrupted {
			break
		}
	}
}

// contacts collects what the player touched after moving.
func (g *Game) contacts(landX, landY int, landed bool) []Contact {
	var out []Contact

	if landed {
		if t, ok := g.scene.tileAt(landX, landY); ok {
			out = append(out, Contact{Kind: ContactTile, Tile: t.ID})
		}
	}

	body := g.player.rect()
	if g.scene.takeBomb(body) {
		out = append(out, Contact{Kind: ContactBomb})
	}
	if body.Intersects(g.scene.flag) {
		out = append(out, Contact{Kind: ContactGoal})
	}

	return out
}

// Present executes a command emitted by the round machine.
func (g *Game) Present(cmd round.Command) {
	switch c := cmd.(type) {
	case round.RegenerateRound:
		g.operator = c.Operator
		g.targets = c.Targets
		g.scene.build(c.Tiles)
		g.player.spawn(g.scene)
		g.fx.clear()
		g.overlay = overlayNone
		g.paused = false
		g.interrupted = true

	case round.LivesChanged:
		g.lives = c.Remaining

	case round.Flash:
		g.fx.flash(c.Positive, g.cfg.Effects.FlashTicks)
		if !c.Positive {
			g.fx.shake(g.cfg.Effects.ShakeTicks)
		}

	case round.RemoveTile:
		if t, ok := g.scene.removeTile(c.ID); ok {
			g.fx.pop(t, g.cfg.Effects.PopTicks)
			g.score += g.cfg.Scoring.CorrectTile
		}

	case round.RemoveObstacle:
		g.scene.blocked = false

	case round.ResetPlayer:
		g.player.spawn(g.scene)
		g.scene.resetHazards()
		g.interrupted = true

	case round.ShowLost:
		g.overlay = overlayLost
		g.finish(c.Operator, false)

	case round.ShowWon:
		g.score += g.cfg.Scoring.Win
		g.overlay = overlayWon
		g.finish(c.Operator, true)
	}
}

// finish records the result of the round that just ended.
func (g *Game) finish(op round.Operator, won bool) {
	g.pending = &core.RoundResult{
		Round:     g.machine.Stats().Round,
		Operator:  op.ID(),
		Won:       won,
		LivesLeft: g.lives,
		Mistakes:  g.machine.RoundMistakes(),
		Score:     g.score,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := false
	if g.machine != nil {
		over = g.machine.State() != round.Playing
	}
	return core.GameState{
		Score:    g.score,
		GameOver: over,
		Paused:   g.paused,
	}
}

// Operator returns the active comparison operator.
func (g *Game) Operator() round.Operator {
	return g.operator
}

// Stats returns the session counters of the round machine.
func (g *Game) Stats() round.Stats {
	return g.machine.Stats()
}

// MinScreen returns the smallest terminal size the scene fits in.
func (g *Game) MinScreen() (w, h int) {
	return g.scene.minScreen()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
