package numquest

import (
	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

// effectKind identifies a cosmetic effect.
type effectKind int

const (
	effectFlash effectKind = iota // Player tint
	effectPop                     // Burst where a tile was removed
	effectShake                   // Horizontal scene jitter after damage
)

// effect is a cosmetic timer counted in ticks. Effects never feed back into
// the round logic.
type effect struct {
	kind     effectKind
	left     int
	total    int
	positive bool

	// Pop only
	tile  round.TileID
	rect  core.Rect
	value int
}

// Progress returns 0.0 at the start of the effect and 1.0 at its end.
func (e effect) Progress() float64 {
	if e.total == 0 {
		return 1
	}
	return 1 - float64(e.left)/float64(e.total)
}

// effects schedules cosmetic effects. A regeneration clears everything
// pending, so a timer started in one round never touches the next one.
type effects struct {
	active []effect
}

// flash starts a player tint, replacing any running one.
func (fx *effects) flash(positive bool, ticks int) {
	fx.remove(effectFlash)
	fx.add(effect{kind: effectFlash, positive: positive}, ticks)
}

// shake starts a scene jitter, replacing any running one.
func (fx *effects) shake(ticks int) {
	fx.remove(effectShake)
	fx.add(effect{kind: effectShake}, ticks)
}

// pop starts the removal burst of a tile. A second pop for the same tile is
// ignored.
func (fx *effects) pop(t sceneTile, ticks int) {
	for _, e := range fx.active {
		if e.kind == effectPop && e.tile == t.ID {
			return
		}
	}
	fx.add(effect{kind: effectPop, tile: t.ID, rect: t.rect, value: t.Value}, ticks)
}

func (fx *effects) add(e effect, ticks int) {
	if ticks <= 0 {
		return
	}
	e.left = ticks
	e.total = ticks
	fx.active = append(fx.active, e)
}

func (fx *effects) remove(kind effectKind) {
	kept := fx.active[:0]
	for _, e := range fx.active {
		if e.kind != kind {
			kept = append(kept, e)
		}
	}
	fx.active = kept
}

// step advances every effect by one tick and drops the finished ones.
func (fx *effects) step() {
	kept := fx.active[:0]
	for _, e := range fx.active {
		e.left--
		if e.left > 0 {
			kept = append(kept, e)
		}
	}
	fx.active = kept
}

// clear drops all pending effects.
func (fx *effects) clear() {
	fx.active = fx.active[:0]
}

// flashing reports the running player tint, if any.
func (fx *effects) flashing() (positive, ok bool) {
	for _, e := range fx.active {
		if e.kind == effectFlash {
			return e.positive, true
		}
	}
	return false, false
}

// shakeOffset returns the horizontal jitter for the current tick.
func (fx *effects) shakeOffset() int {
	for _, e := range fx.active {
		if e.kind == effectShake {
			if e.left%4 < 2 {
				return 1
			}
			return -1
		}
	}
	return 0
}

// pops returns the running tile bursts.
func (fx *effects) pops() []effect {
	var out []effect
	for _, e := range fx.active {
		if e.kind == effectPop {
			out = append(out, e)
		}
	}
	return out
}
