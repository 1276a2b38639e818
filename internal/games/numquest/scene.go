package numquest

import (
	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

// Scene layout constants (cells).
const (
	hudRows       = 3 // Rows reserved above the scene for the HUD
	playerH       = 2 // Player is one column wide and two rows tall
	startX        = 1
	tilesX        = 4
	obstacleW     = 2
	obstacleGapL  = 2 // Gap between the last tile and the obstacle
	obstacleGapR  = 3 // Gap between the obstacle and the first step
	flagH         = 3
	platformCount = 3
)

// sceneTile is a numbered tile placed on the ground.
type sceneTile struct {
	round.Tile
	rect core.Rect
}

// bomb sits on top of a step and costs a life when touched.
type bomb struct {
	x, y int
}

// scene holds the static geometry of one round in scene coordinates.
// The ground row is the lowest solid row; rows above it are air unless a
// tile, the obstacle or a step occupies them.
type scene struct {
	layout config.Layout
	bombs  int

	width, height int
	groundY       int

	tiles    []sceneTile
	obstacle core.Rect
	blocked  bool // Obstacle present
	steps    [platformCount]core.Rect
	hazards  []bomb
	flag     core.Rect
}

// newScene computes the geometry for the given layout. Tiles, obstacle and
// bombs are placed later by build and resetHazards.
func newScene(layout config.Layout, bombs int) *scene {
	s := &scene{layout: layout, bombs: bombs}

	tilesEnd := tilesX + round.SetSize*layout.TileWidth + (round.SetSize-1)*layout.TileGap
	obstacleX := tilesEnd + obstacleGapL
	stepsX := obstacleX + obstacleW + obstacleGapR

	s.width = stepsX + platformCount*layout.PlatformWidth // The goal step closes the scene
	// Air above the flag on the highest step, then the ground row and one row below it.
	s.height = 1 + flagH + platformCount*layout.PlatformRise + 2
	s.groundY = s.height - 2

	s.obstacle = core.NewRect(obstacleX, s.groundY-s.obstacleHeight(), obstacleW, s.obstacleHeight())
	for i := range s.steps {
		h := (i + 1) * layout.PlatformRise
		s.steps[i] = core.NewRect(stepsX+i*layout.PlatformWidth, s.groundY-h, layout.PlatformWidth, h)
	}
	top := s.steps[platformCount-1]
	s.flag = top.Above(top.CenterX(), 1, flagH)

	return s
}

// obstacleHeight returns the configured height clamped to the scene.
func (s *scene) obstacleHeight() int {
	return core.Clamp(s.layout.ObstacleHeight, 1, s.groundY)
}

// build places the tiles of a new round and restores the obstacle and bombs.
func (s *scene) build(tiles []round.Tile) {
	s.tiles = s.tiles[:0]
	for _, t := range tiles {
		x := tilesX + t.Slot*(s.layout.TileWidth+s.layout.TileGap)
		s.tiles = append(s.tiles, sceneTile{
			Tile: t,
			rect: core.NewRect(x, s.groundY-1, s.layout.TileWidth, 1),
		})
	}
	s.blocked = true
	s.resetHazards()
}

// resetHazards re-creates the bombs on the first steps.
func (s *scene) resetHazards() {
	s.hazards = s.hazards[:0]
	for i := 0; i < s.bombs && i < platformCount; i++ {
		step := s.steps[i]
		x := step.CenterX()
		if i == platformCount-1 {
			// Keep the goal step's bomb clear of the flag.
			x = step.X + 1
		}
		s.hazards = append(s.hazards, bomb{x: x, y: step.Y - 1})
	}
}

// removeTile deletes a tile from the scene and returns it. Unknown IDs are
// ignored.
func (s *scene) removeTile(id round.TileID) (sceneTile, bool) {
	for i, t := range s.tiles {
		if t.ID == id {
			s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
			return t, true
		}
	}
	return sceneTile{}, false
}

// tileAt returns the tile covering cell (x, y).
func (s *scene) tileAt(x, y int) (sceneTile, bool) {
	for _, t := range s.tiles {
		if t.rect.Contains(x, y) {
			return t, true
		}
	}
	return sceneTile{}, false
}

// solid reports whether the cell (x, y) blocks the player.
func (s *scene) solid(x, y int) bool {
	if x < 0 || x >= s.width || y >= s.groundY {
		return true
	}
	if y < 0 {
		return false
	}
	if s.blocked && s.obstacle.Contains(x, y) {
		return true
	}
	for _, st := range s.steps {
		if st.Contains(x, y) {
			return true
		}
	}
	_, ok := s.tileAt(x, y)
	return ok
}

// takeBomb removes and reports a bomb intersecting r.
func (s *scene) takeBomb(r core.Rect) bool {
	for i, b := range s.hazards {
		if r.Contains(b.x, b.y) {
			s.hazards = append(s.hazards[:i], s.hazards[i+1:]...)
			return true
		}
	}
	return false
}

// minScreen returns the smallest terminal that fits the scene and the HUD.
func (s *scene) minScreen() (w, h int) {
	return s.width, s.height + hudRows
}
