package numquest

import (
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

// ContactKind identifies what the player touched.
type ContactKind int

const (
	ContactTile ContactKind = iota // Landed on top of a tile
	ContactBomb                    // Touched a bomb
	ContactGoal                    // Touched the goal flag
)

// String returns a lowercase name for the contact kind.
func (k ContactKind) String() string {
	switch k {
	case ContactTile:
		return "tile"
	case ContactBomb:
		return "bomb"
	case ContactGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Contact is a collision reported by the scene.
type Contact struct {
	Kind ContactKind
	Tile round.TileID // Set for ContactTile
}

// HazardLayer turns scene contacts into round calls. It holds no state of
// its own besides a bomb counter for the HUD.
type HazardLayer struct {
	machine  *round.Machine
	bombHits int
}

// NewHazardLayer binds a hazard layer to a round machine.
func NewHazardLayer(m *round.Machine) *HazardLayer {
	return &HazardLayer{machine: m}
}

// Dispatch delivers one contact. Contacts arriving outside Playing are
// dropped and Dispatch reports false.
func (h *HazardLayer) Dispatch(c Contact) bool {
	if h.machine.State() != round.Playing {
		return false
	}
	switch c.Kind {
	case ContactTile:
		h.machine.OnTileContact(c.Tile)
	case ContactBomb:
		h.bombHits++
		h.machine.OnHazardContact()
	case ContactGoal:
		h.machine.OnGoalContact()
	default:
		return false
	}
	return true
}

// BombHits returns how many bombs the player touched this session.
func (h *HazardLayer) BombHits() int {
	return h.bombHits
}
