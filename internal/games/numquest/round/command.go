package round

// Command is an instruction from the Machine to the presentation layer.
// The Machine never renders or waits; it emits commands and moves on.
type Command interface {
	command()
}

// Sink receives the commands a Machine emits, in emission order.
type Sink interface {
	Present(cmd Command)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(cmd Command)

// Present calls f(cmd).
func (f SinkFunc) Present(cmd Command) {
	f(cmd)
}

// LivesChanged reports the new life count for the life indicators.
type LivesChanged struct {
	Remaining int
}

func (LivesChanged) command() {}

// Flash asks for a short positive (correct) or negative (damage) tint.
type Flash struct {
	Positive bool
}

func (Flash) command() {}

// ShowLost asks for the loss overlay and frozen controls.
type ShowLost struct {
	Operator Operator
}

func (ShowLost) command() {}

// ShowWon asks for the win overlay and frozen controls.
type ShowWon struct {
	Operator Operator
}

func (ShowWon) command() {}

// RemoveTile removes a correctly answered tile from the scene.
type RemoveTile struct {
	ID TileID
}

func (RemoveTile) command() {}

// RemoveObstacle clears the obstacle blocking the way to the goal.
type RemoveObstacle struct{}

func (RemoveObstacle) command() {}

// ResetPlayer sends the player back to the round start. Hazards and platforms
// are rebuilt; tiles already removed stay removed.
type ResetPlayer struct{}

func (ResetPlayer) command() {}

// RegenerateRound replaces the whole scene with a fresh round.
type RegenerateRound struct {
	Operator Operator
	Numbers  NumberSet
	Tiles    []Tile
	Targets  []int
}

func (RegenerateRound) command() {}

// Recorder is a Sink that keeps every command. Useful for hosts that apply
// commands in batches and for tests.
type Recorder struct {
	Commands []Command
}

// Present appends cmd.
func (r *Recorder) Present(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Drain returns the recorded commands and forgets them.
func (r *Recorder) Drain() []Command {
	cmds := r.Commands
	r.Commands = nil
	return cmds
}
