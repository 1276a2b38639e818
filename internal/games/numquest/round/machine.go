package round

import (
	"errors"
	"fmt"
	"sort"
)

// State is the phase of the current round.
type State int

const (
	Playing State = iota // Contacts are processed
	Lost                 // Out of lives; only Retry is accepted
	Won                  // Goal reached; only Advance is accepted
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned by Retry and Advance when called from a
// state that does not allow them.
var ErrInvalidTransition = errors.New("round: invalid transition")

// TileID identifies a tile. IDs are never reused within a Machine, so a stale
// ID from an earlier round can not address a tile of the current one.
type TileID int

// Tile is a numbered tile of the current round.
type Tile struct {
	ID    TileID
	Slot  int // Position in the row, 0..SetSize-1
	Value int
}

// Stats are session counters kept across rounds.
type Stats struct {
	Round        int // 1-based number of the current round
	CorrectTiles int
	Mistakes     int // Lives lost, to wrong tiles or hazards
	Wins         int
	Losses       int
}

// Machine owns one play session: the active operator, the current round and
// its lives. All entry points are synchronous and run on the caller's goroutine.
type Machine struct {
	pool  *NumberPool
	lives *LifeTracker
	sink  Sink

	state    State
	opIndex  int
	numbers  NumberSet
	targets  []int
	tiles    map[TileID]Tile
	nextID   TileID
	obstacle bool

	stats         Stats
	roundMistakes int
}

// NewMachine starts a session at the given operator and generates the first
// round. The sink receives the first round's RegenerateRound and LivesChanged
// before NewMachine returns. A nil sink discards commands.
func NewMachine(start Operator, seed int64, sink Sink) *Machine {
	if sink == nil {
		sink = SinkFunc(func(Command) {})
	}
	m := &Machine{
		pool:    NewNumberPool(seed),
		lives:   NewLifeTracker(),
		sink:    sink,
		opIndex: start.Index(),
	}
	m.startRound()
	return m
}

// State returns the current round state.
func (m *Machine) State() State {
	return m.state
}

// Operator returns the active operator.
func (m *Machine) Operator() Operator {
	return OperatorAt(m.opIndex)
}

// OperatorIndex returns the cursor into the operator cycle.
func (m *Machine) OperatorIndex() int {
	return m.opIndex
}

// Numbers returns the current round's number set.
func (m *Machine) Numbers() NumberSet {
	return m.numbers
}

// Targets returns the correct values of the current round.
func (m *Machine) Targets() []int {
	out := make([]int, len(m.targets))
	copy(out, m.targets)
	return out
}

// Lives returns the lives left in the current round.
func (m *Machine) Lives() int {
	return m.lives.Remaining()
}

// ObstaclePresent reports whether the blocking obstacle is still in place.
func (m *Machine) ObstaclePresent() bool {
	return m.obstacle
}

// Stats returns the session counters.
func (m *Machine) Stats() Stats {
	return m.stats
}

// RoundMistakes returns the lives lost in the current round.
func (m *Machine) RoundMistakes() int {
	return m.roundMistakes
}

// Tile looks up a live tile of the current round.
func (m *Machine) Tile(id TileID) (Tile, bool) {
	t, ok := m.tiles[id]
	return t, ok
}

// Tiles returns the live tiles of the current round ordered by slot.
func (m *Machine) Tiles() []Tile {
	out := make([]Tile, 0, len(m.tiles))
	for _, t := range m.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// OnTileContact handles the player touching a tile. Contacts outside Playing
// and contacts with removed or unknown tiles are ignored.
func (m *Machine) OnTileContact(id TileID) {
	if m.state != Playing {
		return
	}
	tile, ok := m.tiles[id]
	if !ok {
		return
	}

	if !IsCorrect(tile.Value, m.numbers, m.Operator()) {
		m.OnHazardContact()
		return
	}

	// Only the first correct answer of a round finds the obstacle still there.
	if m.obstacle {
		m.obstacle = false
		m.sink.Present(RemoveObstacle{})
	}
	delete(m.tiles, id)
	m.stats.CorrectTiles++
	m.sink.Present(RemoveTile{ID: id})
	m.sink.Present(Flash{Positive: true})
}

// OnHazardContact handles any contact that costs a life: a wrong tile or a bomb.
func (m *Machine) OnHazardContact() {
	if m.state != Playing {
		return
	}

	remaining := m.lives.Damage()
	m.stats.Mistakes++
	m.roundMistakes++
	m.sink.Present(LivesChanged{Remaining: remaining})
	m.sink.Present(Flash{Positive: false})

	if m.lives.IsExhausted() {
		m.state = Lost
		m.stats.Losses++
		m.sink.Present(ShowLost{Operator: m.Operator()})
		return
	}
	m.sink.Present(ResetPlayer{})
}

// OnGoalContact handles the player reaching the goal flag.
func (m *Machine) OnGoalContact() {
	if m.state != Playing {
		return
	}
	m.state = Won
	m.stats.Wins++
	m.sink.Present(ShowWon{Operator: m.Operator()})
}

// Retry restarts a lost round with the same operator and fresh numbers.
func (m *Machine) Retry() error {
	if m.state != Lost {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, m.state)
	}
	m.startRound()
	return nil
}

// Advance moves a won session to the next operator in the cycle and starts
// its first round.
func (m *Machine) Advance() error {
	if m.state != Won {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, m.state)
	}
	m.opIndex = (m.opIndex + 1) % len(Operators)
	m.startRound()
	return nil
}

// startRound generates numbers for the active operator and begins a round.
func (m *Machine) startRound() {
	m.beginRound(m.pool.Generate(m.Operator()))
}

// beginRound builds tiles for the given numbers and resets the per-round state.
func (m *Machine) beginRound(numbers NumberSet) {
	op := m.Operator()

	m.numbers = numbers
	m.targets = Targets(m.numbers, op)
	m.tiles = make(map[TileID]Tile, SetSize)
	tiles := make([]Tile, 0, SetSize)
	for slot, v := range m.numbers {
		t := Tile{ID: m.nextID, Slot: slot, Value: v}
		m.nextID++
		m.tiles[t.ID] = t
		tiles = append(tiles, t)
	}

	m.obstacle = true
	m.lives.Reset()
	m.state = Playing
	m.roundMistakes = 0
	m.stats.Round++

	m.sink.Present(RegenerateRound{
		Operator: op,
		Numbers:  m.numbers,
		Tiles:    tiles,
		Targets:  m.Targets(),
	})
	m.sink.Present(LivesChanged{Remaining: m.lives.Remaining()})
}
