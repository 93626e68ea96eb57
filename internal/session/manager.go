package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/quizgen"
)

const defaultGenerationTimeout = 2 * time.Minute

// HistoryWriter appends a scored quiz to the history log. Implemented by
// the store's history repo; nil disables logging.
type HistoryWriter interface {
	Append(ctx context.Context, studentID, topicID int64, score, total int, timeTaken *int64) error
}

// Config tunes manager behavior. Zero values fall back to defaults.
type Config struct {
	Policy            confidence.Policy
	QuestionCount     int
	GenerationTimeout time.Duration
	Logger            *slog.Logger
}

// Manager creates and drives quiz sessions. It enforces one live session
// per (student, topic) and owns the only code path that writes confidence.
type Manager struct {
	progress  confidence.Store
	contents  content.Repo
	generator quizgen.Generator
	history   HistoryWriter
	policy    confidence.Policy
	count     int
	timeout   time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	active map[activeKey]*Session
	byID   map[uuid.UUID]*Session
}

type activeKey struct {
	studentID int64
	topicID   int64
}

// NewManager wires a session manager. history may be nil.
func NewManager(progress confidence.Store, contents content.Repo, generator quizgen.Generator, history HistoryWriter, cfg Config) *Manager {
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = quizgen.DefaultQuestionCount
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = defaultGenerationTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Manager{
		progress:  progress,
		contents:  contents,
		generator: generator,
		history:   history,
		policy:    cfg.Policy,
		count:     cfg.QuestionCount,
		timeout:   cfg.GenerationTimeout,
		logger:    cfg.Logger,
		active:    make(map[activeKey]*Session),
		byID:      make(map[uuid.UUID]*Session),
	}
}

// Get returns a live session by ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	return s, ok
}

// Start creates a session for the topic and generates its quiz. On any
// generation failure the session ends Failed and nothing is persisted.
func (m *Manager) Start(ctx context.Context, studentID, topicID int64) (*Session, error) {
	tc, err := m.contents.TopicContext(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("resolve topic %d: %w", topicID, err)
	}

	rec, err := m.progress.Get(ctx, studentID, topicID)
	if errors.Is(err, confidence.ErrNotFound) {
		rec = confidence.NewRecord(studentID, topicID)
	} else if err != nil {
		return nil, err
	}

	books, err := m.contents.BooksBySubject(ctx, tc.Subject.ID)
	if err != nil {
		return nil, fmt.Errorf("load subject books: %w", err)
	}

	sess := newSession(studentID, tc, rec.Score)
	if err := m.register(sess); err != nil {
		return nil, err
	}

	if err := sess.transition(StateAwaitingGeneration); err != nil {
		m.unregister(sess)
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	quiz, err := m.generator.Generate(genCtx, quizgen.Input{
		Topic:      tc,
		Context:    quizgen.StudyContext(tc, books),
		Confidence: rec.Score,
		Count:      m.count,
	})
	if err != nil {
		m.fail(sess)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	sess.Quiz = quiz
	if err := sess.transition(StateReady); err != nil {
		m.fail(sess)
		return nil, err
	}

	m.logger.Info("quiz session ready",
		slog.String("session_id", sess.ID.String()),
		slog.Int64("student_id", studentID),
		slog.Int64("topic_id", topicID),
		slog.Int("questions", len(quiz.Questions)))

	return sess, nil
}

// SubmitAll scores the whole quiz in one submission, applies the confidence
// policy atomically through the store, and logs the attempt to history.
// Concurrent submissions race for the session's scoring claim, so the
// policy is applied at most once per session; losers get
// ErrInvalidTransition.
func (m *Manager) SubmitAll(ctx context.Context, sess *Session, answers []string) (*Summary, error) {
	if err := sess.claimScoring(); err != nil {
		return nil, err
	}

	questions := sess.Quiz.Questions
	if len(answers) != len(questions) {
		// The session stays answerable; the caller can resubmit.
		sess.releaseScoring()
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAnswerCount, len(answers), len(questions))
	}

	results := make([]QuestionResult, len(questions))
	outcome := confidence.Outcome{Results: make([]bool, len(questions))}
	for i, q := range questions {
		correct := q.Correct(answers[i])
		outcome.Results[i] = correct
		results[i] = QuestionResult{
			Question:      q.Question,
			Submitted:     answers[i],
			CorrectLetter: q.CorrectLetter(),
			Correct:       correct,
			Explanation:   q.Explanation,
		}
	}

	if outcome.Total() == 0 {
		sess.releaseScoring()
		return nil, fmt.Errorf("%w: quiz has no questions", ErrAnswerCount)
	}

	topicID := sess.Topic.Topic.ID
	updated, err := m.progress.Update(ctx, sess.StudentID, topicID, func(prior confidence.Record) (confidence.Record, error) {
		return m.policy.Apply(prior, outcome, time.Now().UTC())
	})
	if err != nil {
		// A storage failure leaves the session answerable; the same
		// answers can be resubmitted once the store recovers.
		sess.releaseScoring()
		return nil, err
	}

	if m.history != nil {
		elapsed := int64(time.Since(sess.StartedAt).Seconds())
		if herr := m.history.Append(ctx, sess.StudentID, topicID, outcome.Correct(), outcome.Total(), &elapsed); herr != nil {
			m.logger.Warn("quiz history append failed", slog.String("error", herr.Error()))
		}
	}

	summary := &Summary{
		SessionID:  sess.ID,
		StudentID:  sess.StudentID,
		TopicID:    topicID,
		TopicName:  sess.Topic.Topic.Name,
		Correct:    outcome.Correct(),
		Total:      outcome.Total(),
		PriorScore: sess.PriorScore,
		NewScore:   updated.Score,
		Results:    results,
	}

	sess.mu.Lock()
	sess.scoring = false
	if err := sess.transitionLocked(StateScored); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	sess.summary = summary
	sess.mu.Unlock()

	m.release(sess)

	m.logger.Info("quiz session scored",
		slog.String("session_id", sess.ID.String()),
		slog.Int("correct", summary.Correct),
		slog.Int("total", summary.Total),
		slog.Float64("prior_score", summary.PriorScore),
		slog.Float64("new_score", summary.NewScore))

	return summary, nil
}

// Abandon closes a session before scoring. Nothing is persisted and the
// student's confidence is untouched.
func (m *Manager) Abandon(sess *Session) error {
	return m.Close(sess)
}

// Close ends a session. Closing an already-terminal session is a no-op.
func (m *Manager) Close(sess *Session) error {
	sess.mu.Lock()
	if sess.state.Terminal() {
		sess.mu.Unlock()
		return nil
	}
	if err := sess.transitionLocked(StateClosed); err != nil {
		sess.mu.Unlock()
		return err
	}
	sess.mu.Unlock()

	m.unregister(sess)
	return nil
}

func (m *Manager) register(sess *Session) error {
	key := activeKey{sess.StudentID, sess.Topic.Topic.ID}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.active[key]; exists {
		return ErrSessionActive
	}
	m.active[key] = sess
	m.byID[sess.ID] = sess
	return nil
}

// release frees the (student, topic) slot but keeps the session reachable
// by ID so its summary can still be fetched.
func (m *Manager) release(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, activeKey{sess.StudentID, sess.Topic.Topic.ID})
}

func (m *Manager) unregister(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, activeKey{sess.StudentID, sess.Topic.Topic.ID})
	delete(m.byID, sess.ID)
}

func (m *Manager) fail(sess *Session) {
	sess.mu.Lock()
	if !sess.state.Terminal() {
		sess.state = StateFailed
	}
	sess.mu.Unlock()
	m.unregister(sess)
}
