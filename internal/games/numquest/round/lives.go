package round

// MaxLives is the number of lives at the start of every round.
const MaxLives = 3

// LifeTracker counts the lives left in a round.
// It has no notion of round state; the Machine decides when damage applies.
type LifeTracker struct {
	remaining int
}

// NewLifeTracker returns a tracker with MaxLives remaining.
func NewLifeTracker() *LifeTracker {
	return &LifeTracker{remaining: MaxLives}
}

// Damage removes one life, never going below zero, and returns what is left.
func (l *LifeTracker) Damage() int {
	if l.remaining > 0 {
		l.remaining--
	}
	return l.remaining
}

// Reset restores MaxLives.
func (l *LifeTracker) Reset() {
	l.remaining = MaxLives
}

// Remaining returns the current number of lives.
func (l *LifeTracker) Remaining() int {
	return l.remaining
}

// IsExhausted reports whether no lives are left.
func (l *LifeTracker) IsExhausted() bool {
	return l.remaining == 0
}
