package game

// Phase is the match-level state.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlaying
	PhaseFinished
)

func (that Phase) String() string {
	switch that {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Turns tracks whose turn it is among a fixed roster of seats 1..P and
// owns the phase transitions: Waiting -> Playing -> Finished, with
// Finished terminal for the match.
type Turns struct {
	players int
	phase   Phase
	current int
}

func NewTurns(players int) *Turns {
	return &Turns{
		players: players,
		phase:   PhaseWaiting,
	}
}

func (that *Turns) Phase() Phase {
	return that.phase
}

// CurrentSeat returns the seat index permitted to move, or 0 while no
// game is active.
func (that *Turns) CurrentSeat() int {
	return that.current
}

// Start moves Waiting to Playing and hands the first turn to seat 1. The
// starting seat is fixed, not random, so every match opens the same way.
func (that *Turns) Start() {
	if that.phase != PhaseWaiting {
		return
	}

	that.phase = PhasePlaying
	that.current = 1
}

// AdvanceTurn rotates the turn owner round-robin over 1..P. It is called
// exactly once per accepted move and never on a rejected one.
func (that *Turns) AdvanceTurn() {
	that.current = that.current%that.players + 1
}

// Finish freezes the match. The turn owner keeps its last value and is
// ignored from here on.
func (that *Turns) Finish() {
	that.phase = PhaseFinished
}
