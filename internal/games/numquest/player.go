package numquest

import (
	"math"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/core"
)

// player is a one-column, two-row body moving on the scene grid.
// y is the feet row as a float so gravity can accumulate sub-cell motion.
type player struct {
	x        int
	y        float64
	vel      float64 // Rows per tick, negative = up
	grounded bool

	dir       int // -1 left, +1 right
	walkTicks int // Ticks of walking left from the last key press
	stepTimer int
	facing    int
}

// spawn places the player on the ground at the round start.
func (p *player) spawn(s *scene) {
	*p = player{
		x:        startX,
		y:        float64(s.groundY - 1),
		grounded: true,
		facing:   1,
	}
}

// row returns the feet row.
func (p *player) row() int {
	return int(math.Round(p.y))
}

// rect returns the player's collision rectangle.
func (p *player) rect() core.Rect {
	return core.NewRect(p.x, p.row()-playerH+1, 1, playerH)
}

// fits reports whether the body can occupy column x with feet at row.
func (p *player) fits(s *scene, x, row int) bool {
	for y := row - playerH + 1; y <= row; y++ {
		if s.solid(x, y) {
			return false
		}
	}
	return true
}

// walk starts or extends a walk in the given direction.
func (p *player) walk(dir int, phys config.Physics) {
	if dir != p.dir || p.walkTicks == 0 {
		p.stepTimer = 0 // Step on the same tick as the press
	}
	p.dir = dir
	p.facing = dir
	p.walkTicks = phys.WalkTicks
}

// jump applies the jump impulse when standing on something.
func (p *player) jump(phys config.Physics) {
	if !p.grounded {
		return
	}
	p.vel = phys.JumpImpulse
	p.grounded = false
}

// moveHorizontal advances the walk by one tick.
func (p *player) moveHorizontal(s *scene, phys config.Physics) {
	if p.walkTicks <= 0 {
		return
	}
	p.walkTicks--
	if p.stepTimer > 0 {
		p.stepTimer--
		return
	}
	p.stepTimer = phys.StepEvery - 1

	if nx := p.x + p.dir; p.fits(s, nx, p.row()) {
		p.x = nx
	}
	p.settle(s) // Walked off an edge
}

// settle drops a grounded player whose support disappeared.
func (p *player) settle(s *scene) {
	if p.grounded && p.fits(s, p.x, p.row()+1) {
		p.grounded = false
	}
}

// moveVertical applies gravity and returns the landing cell when the feet
// come to rest on a solid cell this tick.
func (p *player) moveVertical(s *scene, phys config.Physics) (landX, landY int, landed bool) {
	if p.grounded {
		return 0, 0, false
	}

	p.vel = math.Min(p.vel+phys.Gravity, phys.MaxFallSpeed)
	target := p.y + p.vel
	cur := p.row()
	next := int(math.Round(target))

	switch {
	case next > cur:
		for r := cur + 1; r <= next; r++ {
			if !p.fits(s, p.x, r) {
				p.y = float64(r - 1)
				p.vel = 0
				p.grounded = true
				return p.x, r, true
			}
		}
	case next < cur:
		for r := cur - 1; r >= next; r-- {
			if !p.fits(s, p.x, r) {
				// Head bump
				p.y = float64(r + 1)
				p.vel = 0
				return 0, 0, false
			}
		}
	}

	p.y = target
	return 0, 0, false
}
