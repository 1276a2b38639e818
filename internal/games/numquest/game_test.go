package numquest

import (
	"strings"
	"testing"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

func newTestGame(t *testing.T, operator string) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultNumQuestConfig())
	cfg := core.DefaultConfig().WithParam("operator", operator)
	cfg.Seed = 12345
	g.Reset(cfg)
	return g
}

// findTile returns a tile whose correctness matches want, trying new rounds
// until one exists.
func findTile(t *testing.T, g *Game, want bool) sceneTile {
	t.Helper()
	for attempt := 0; attempt < 10; attempt++ {
		for _, tile := range g.scene.tiles {
			if round.IsCorrect(tile.Value, g.machine.Numbers(), g.operator) == want {
				return tile
			}
		}
		g.runtime.Seed++
		g.Reset(g.runtime)
	}
	t.Fatalf("no tile with correctness %v", want)
	return sceneTile{}
}

// dropOnto places the player in the air above a tile and steps until it lands.
func dropOnto(g *Game, tile sceneTile) core.StepResult {
	g.player.x = tile.rect.X
	g.player.y = float64(tile.rect.Y - 3)
	g.player.vel = 0
	g.player.grounded = false

	var res core.StepResult
	for i := 0; i < 60 && !g.player.grounded; i++ {
		res = g.Step(core.NewInputFrame())
	}
	return res
}

// standOn places the player at a cell and runs one tick.
func standOn(g *Game, x, feet int) core.StepResult {
	g.player.x = x
	g.player.y = float64(feet)
	g.player.vel = 0
	g.player.grounded = true
	return g.Step(core.NewInputFrame())
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetOperatorParam(t *testing.T) {
	tests := []struct {
		param string
		want  round.Operator
	}{
		{"less", round.LessThan},
		{"greater", round.GreaterThan},
		{"equal", round.Equal},
		{"mayor", round.GreaterThan},
		{"bogus", round.LessThan},
		{"", round.LessThan},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			g := newTestGame(t, tt.param)
			if g.Operator() != tt.want {
				t.Errorf("Operator() = %v, want %v", g.Operator(), tt.want)
			}
			if g.lives != round.MaxLives {
				t.Errorf("lives = %d, want %d", g.lives, round.MaxLives)
			}
			if len(g.scene.tiles) != round.SetSize {
				t.Errorf("tiles = %d, want %d", len(g.scene.tiles), round.SetSize)
			}
			if !g.scene.blocked {
				t.Error("obstacle should be present at round start")
			}
		})
	}
}

func TestResetDifficultyParam(t *testing.T) {
	tests := []struct {
		difficulty string
		bombs      int
	}{
		{"easy", 1},
		{"normal", 2},
		{"hard", 3},
		{"", 2},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			g := NewWithConfig(config.DefaultNumQuestConfig())
			g.Reset(core.DefaultConfig().WithParam("difficulty", tt.difficulty))
			if len(g.scene.hazards) != tt.bombs {
				t.Errorf("bombs = %d, want %d", len(g.scene.hazards), tt.bombs)
			}
		})
	}
}

func TestSceneFitsJump(t *testing.T) {
	g := newTestGame(t, "less")
	cfg := g.cfg
	jump := cfg.JumpHeight()

	if got := g.scene.obstacle.H; float64(got) <= jump {
		t.Errorf("obstacle height %d can be jumped (jump %.2f)", got, jump)
	}
	for i := 1; i < platformCount; i++ {
		rise := g.scene.steps[i].H - g.scene.steps[i-1].H
		if float64(rise) >= jump {
			t.Errorf("step %d rise %d is out of reach (jump %.2f)", i, rise, jump)
		}
	}
	w, h := g.MinScreen()
	if w > 80 || h > 24 {
		t.Errorf("MinScreen() = %dx%d, want to fit 80x24", w, h)
	}
}

func TestLandingOnCorrectTile(t *testing.T) {
	g := newTestGame(t, "less")
	tile := findTile(t, g, true)

	dropOnto(g, tile)

	if _, ok := g.scene.tileAt(tile.rect.X, tile.rect.Y); ok {
		t.Error("correct tile should be removed")
	}
	if g.scene.blocked {
		t.Error("obstacle should be removed after the first correct answer")
	}
	if g.lives != round.MaxLives {
		t.Errorf("lives = %d, want %d", g.lives, round.MaxLives)
	}
	if g.score != g.cfg.Scoring.CorrectTile {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Scoring.CorrectTile)
	}
	if len(g.fx.pops()) != 1 {
		t.Errorf("pops = %d, want 1", len(g.fx.pops()))
	}
	if positive, ok := g.fx.flashing(); !ok || !positive {
		t.Error("expected a positive flash")
	}

	// With the tile gone the player falls to the ground.
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.row() != g.scene.groundY-1 {
		t.Errorf("player row = %d, want ground %d", g.player.row(), g.scene.groundY-1)
	}
}

func TestLandingOnWrongTile(t *testing.T) {
	g := newTestGame(t, "greater")
	tile := findTile(t, g, false)

	dropOnto(g, tile)

	if g.lives != round.MaxLives-1 {
		t.Errorf("lives = %d, want %d", g.lives, round.MaxLives-1)
	}
	if _, ok := g.scene.tileAt(tile.rect.X, tile.rect.Y); !ok {
		t.Error("wrong tile should stay in place")
	}
	if !g.scene.blocked {
		t.Error("obstacle should stay after a wrong answer")
	}
	if g.player.x != startX || g.player.row() != g.scene.groundY-1 {
		t.Errorf("player at (%d,%d), want start", g.player.x, g.player.row())
	}
	if positive, ok := g.fx.flashing(); !ok || positive {
		t.Error("expected a negative flash")
	}
	if g.fx.shakeOffset() == 0 {
		t.Error("expected the scene to shake")
	}
}

func TestBombContact(t *testing.T) {
	g := newTestGame(t, "less")
	if len(g.scene.hazards) != g.cfg.Hazards.Bombs {
		t.Fatalf("bombs = %d, want %d", len(g.scene.hazards), g.cfg.Hazards.Bombs)
	}

	b := g.scene.hazards[0]
	standOn(g, b.x, b.y)

	if g.lives != round.MaxLives-1 {
		t.Errorf("lives = %d, want %d", g.lives, round.MaxLives-1)
	}
	if g.hazards.BombHits() != 1 {
		t.Errorf("BombHits() = %d, want 1", g.hazards.BombHits())
	}
	// ResetPlayer re-creates the bombs.
	if len(g.scene.hazards) != g.cfg.Hazards.Bombs {
		t.Errorf("bombs after reset = %d, want %d", len(g.scene.hazards), g.cfg.Hazards.Bombs)
	}
	if g.player.x != startX {
		t.Errorf("player x = %d, want %d", g.player.x, startX)
	}
}

func TestThreeMistakesLoseAndRetry(t *testing.T) {
	g := newTestGame(t, "equal")

	var res core.StepResult
	for i := 0; i < round.MaxLives; i++ {
		b := g.scene.hazards[0]
		res = standOn(g, b.x, b.y)
	}

	if g.machine.State() != round.Lost {
		t.Fatalf("state = %v, want lost", g.machine.State())
	}
	if !res.State.GameOver {
		t.Error("GameOver should be set when lost")
	}
	if res.Finished == nil {
		t.Fatal("Finished should report the lost round")
	}
	if res.Finished.Won || res.Finished.LivesLeft != 0 || res.Finished.Mistakes != 3 || res.Finished.Operator != "equal" {
		t.Errorf("Finished = %+v", *res.Finished)
	}
	if g.overlay != overlayLost {
		t.Error("expected the lost overlay")
	}

	// Controls are frozen
	x := g.player.x
	for i := 0; i < 10; i++ {
		if r := g.Step(input(core.ActionRight, core.ActionConfirm)); r.Finished != nil {
			t.Fatal("no round should finish while lost")
		}
	}
	if g.player.x != x || g.machine.State() != round.Lost {
		t.Error("input should be ignored while lost")
	}

	g.Step(input(core.ActionRestart))
	if g.machine.State() != round.Playing {
		t.Fatalf("state after retry = %v, want playing", g.machine.State())
	}
	if g.Operator() != round.Equal {
		t.Errorf("operator after retry = %v, want equal", g.Operator())
	}
	if g.lives != round.MaxLives || g.overlay != overlayNone {
		t.Errorf("lives = %d overlay = %v after retry", g.lives, g.overlay)
	}
	if len(g.fx.active) != 0 {
		t.Errorf("effects should be cleared on regeneration, got %d", len(g.fx.active))
	}
}

func TestGoalContactWinsAndAdvances(t *testing.T) {
	g := newTestGame(t, "less")

	res := standOn(g, g.scene.flag.X, g.scene.flag.Bottom()-1)

	if g.machine.State() != round.Won {
		t.Fatalf("state = %v, want won", g.machine.State())
	}
	if res.Finished == nil || !res.Finished.Won {
		t.Fatalf("Finished = %+v, want a won round", res.Finished)
	}
	if g.score != g.cfg.Scoring.Win {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Scoring.Win)
	}

	// Restart does nothing while won
	g.Step(input(core.ActionRestart))
	if g.machine.State() != round.Won {
		t.Fatal("restart should be ignored while won")
	}

	g.Step(input(core.ActionConfirm))
	if g.machine.State() != round.Playing {
		t.Fatalf("state after advance = %v", g.machine.State())
	}
	if g.Operator() != round.GreaterThan {
		t.Errorf("operator after advance = %v, want greater", g.Operator())
	}
	if g.score != g.cfg.Scoring.Win {
		t.Errorf("score should carry across rounds, got %d", g.score)
	}
}

func TestObstacleCannotBeJumped(t *testing.T) {
	g := newTestGame(t, "less")
	wall := g.scene.obstacle

	g.player.x = wall.X - 1
	for i := 0; i < 300; i++ {
		g.Step(input(core.ActionRight, core.ActionJump))
		if g.player.x >= wall.X {
			t.Fatalf("player passed the obstacle at tick %d", i)
		}
	}
}

func TestStepsLeadToGoal(t *testing.T) {
	g := newTestGame(t, "less")
	g.scene.blocked = false
	g.scene.bombs = 0
	g.scene.resetHazards()

	g.player.x = g.scene.obstacle.X

	// Walk right and jump only when a wall is ahead.
	var finished *core.RoundResult
	for i := 0; i < 1200 && finished == nil; i++ {
		in := input(core.ActionRight)
		if !g.player.fits(g.scene, g.player.x+1, g.player.row()) {
			in.Set(core.ActionJump)
		}
		finished = g.Step(in).Finished
	}
	if finished == nil || !finished.Won {
		t.Fatalf("player did not reach the flag, stopped at (%d,%d)", g.player.x, g.player.row())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, "less")

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	x := g.player.x
	for i := 0; i < 20; i++ {
		g.Step(input(core.ActionRight))
	}
	if g.player.x != x {
		t.Error("player moved while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestWalkOnePressMovesSeveralCells(t *testing.T) {
	g := newTestGame(t, "less")
	g.scene.blocked = false
	start := g.scene.obstacle.X
	g.player.x = start

	g.Step(input(core.ActionRight))
	if g.player.x != start+1 {
		t.Fatalf("x = %d after the press, want %d", g.player.x, start+1)
	}
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	// WalkTicks 12 with a step every 3 ticks
	want := start + 4
	if g.player.x != want {
		t.Errorf("x = %d, want %d", g.player.x, want)
	}
	if want >= g.scene.steps[0].X {
		t.Fatalf("test layout assumption broken: walk reaches the first step")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "less")
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "LIVES:") {
		t.Errorf("HUD missing lives: %q", hud)
	}
	if !strings.Contains(hud, "GAME: LESS THAN (<)") {
		t.Errorf("HUD missing game label: %q", hud)
	}
	if !strings.Contains(screen.Row(1), "Find the SMALLEST number:") {
		t.Errorf("HUD missing objective: %q", screen.Row(1))
	}
	if strings.Count(hud, string(LifeFull)) != round.MaxLives {
		t.Errorf("expected %d full lives in %q", round.MaxLives, hud)
	}

	small := core.NewScreen(40, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Enlarge the terminal") {
		t.Error("small screen should ask to enlarge the terminal")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, "greater")
	standOn(g, g.scene.flag.X, g.scene.flag.Bottom()-1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "YOU WON") || !strings.Contains(out, "GREATER THAN >") {
		t.Errorf("won overlay missing:\n%s", out)
	}
}

func TestObjectiveText(t *testing.T) {
	tests := []struct {
		op      round.Operator
		targets []int
		want    string
	}{
		{round.LessThan, []int{1}, "Find the SMALLEST number: 1"},
		{round.GreaterThan, []int{19}, "Find the LARGEST number: 19"},
		{round.Equal, []int{3, 7}, "Find EQUAL numbers: 3, 7"},
		{round.Equal, []int{}, "Find EQUAL numbers"},
	}

	for _, tt := range tests {
		if got := objectiveText(tt.op, tt.targets); got != tt.want {
			t.Errorf("objectiveText(%v, %v) = %q, want %q", tt.op, tt.targets, got, tt.want)
		}
	}
}

func TestHazardLayerIgnoresContactsOutsidePlaying(t *testing.T) {
	m := round.NewMachine(round.LessThan, 1, nil)
	h := NewHazardLayer(m)

	m.OnGoalContact()
	if h.Dispatch(Contact{Kind: ContactBomb}) {
		t.Error("Dispatch should drop contacts after a win")
	}
	if h.BombHits() != 0 || m.Lives() != round.MaxLives {
		t.Error("dropped contact changed state")
	}
}
