package session

// State is a quiz session's lifecycle position.
type State string

const (
	StateCreated            State = "created"
	StateAwaitingGeneration State = "awaiting_generation"
	StateReady              State = "ready"
	StateAwaitingAnswers    State = "awaiting_answers"
	StateScored             State = "scored"
	StateClosed             State = "closed"
	StateFailed             State = "failed"
)

// transitions lists the legal next states. Scored sessions still close, so
// only Closed and Failed are truly terminal.
var transitions = map[State][]State{
	StateCreated:            {StateAwaitingGeneration},
	StateAwaitingGeneration: {StateReady, StateFailed, StateClosed},
	StateReady:              {StateAwaitingAnswers, StateClosed},
	StateAwaitingAnswers:    {StateScored, StateFailed, StateClosed},
	StateScored:             {StateClosed},
}

// CanTransition reports whether moving from s to next is legal.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the session can move no further.
func (s State) Terminal() bool {
	return s == StateClosed || s == StateFailed
}
