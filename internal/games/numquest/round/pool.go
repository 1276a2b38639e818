package round

import "math/rand"

// Round shape. Every round shows SetSize tiles with values in [MinValue, MaxValue].
const (
	SetSize  = 5
	MinValue = 1
	MaxValue = 20
)

// NumberSet is the ordered list of values shown on a round's tiles.
type NumberSet [SetSize]int

// Values returns the set as a slice.
func (s NumberSet) Values() []int {
	return s[:]
}

// NumberPool draws the numbers for each round.
type NumberPool struct {
	rng *rand.Rand
}

// NewNumberPool creates a pool with the given RNG seed. Equal seeds produce
// equal sequences of rounds.
func NewNumberPool(seed int64) *NumberPool {
	return &NumberPool{rng: rand.New(rand.NewSource(seed))}
}

// Generate draws SetSize independent values in [MinValue, MaxValue].
// For Equal the second value is overwritten with the first, so an Equal round
// always has at least one duplicate pair to find.
func (p *NumberPool) Generate(op Operator) NumberSet {
	var set NumberSet
	for i := range set {
		set[i] = MinValue + p.rng.Intn(MaxValue-MinValue+1)
	}
	if op == Equal {
		set[1] = set[0]
	}
	return set
}
