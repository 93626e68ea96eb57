package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionActive reports a second Start for a (student, topic) pair
	// that already has a live session.
	ErrSessionActive = errors.New("an active quiz session already exists for this student and topic")

	// ErrGenerationFailed wraps any quiz generation failure. The session is
	// Failed; nothing was persisted.
	ErrGenerationFailed = errors.New("quiz generation failed")

	// ErrInvalidTransition reports an operation called in the wrong state.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrAnswerCount reports a submission whose answer count does not match
	// the quiz's question count.
	ErrAnswerCount = errors.New("answer count does not match question count")
)

func transitionError(from, to State) error {
	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
}
