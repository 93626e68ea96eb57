// Package session orchestrates one quiz attempt from generation through
// scoring. Confidence is only ever written when a session reaches Scored;
// abandoned and failed sessions leave the store untouched.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/quizgen"
)

// Session is one student's quiz attempt on one topic.
type Session struct {
	ID        uuid.UUID
	StudentID int64
	Topic     content.TopicContext
	Quiz      quizgen.Quiz
	StartedAt time.Time

	// PriorScore is the confidence score when the session started, kept for
	// the summary shown after scoring.
	PriorScore float64

	mu      sync.Mutex
	state   State
	scoring bool
	summary *Summary
}

func newSession(studentID int64, topic content.TopicContext, priorScore float64) *Session {
	return &Session{
		ID:         uuid.New(),
		StudentID:  studentID,
		Topic:      topic,
		StartedAt:  time.Now().UTC(),
		PriorScore: priorScore,
		state:      StateCreated,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Summary returns the scoring result, or nil before the session is Scored.
func (s *Session) Summary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// claimScoring takes the session's single scoring slot, moving a Ready
// session to AwaitingAnswers first. Exactly one caller holds the claim at
// a time; a failed submission releases it, a scored one consumes it.
func (s *Session) claimScoring() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateReady {
		if err := s.transitionLocked(StateAwaitingAnswers); err != nil {
			return err
		}
	}
	if s.state != StateAwaitingAnswers {
		return transitionError(s.state, StateScored)
	}
	if s.scoring {
		return fmt.Errorf("%w: submission already in progress", ErrInvalidTransition)
	}
	s.scoring = true
	return nil
}

func (s *Session) releaseScoring() {
	s.mu.Lock()
	s.scoring = false
	s.mu.Unlock()
}

func (s *Session) transition(to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(to)
}

func (s *Session) transitionLocked(to State) error {
	if !s.state.CanTransition(to) {
		return transitionError(s.state, to)
	}
	s.state = to
	return nil
}
