package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/keikurono7/major-project/internal/confidence"
)

// ProgressRepo implements confidence.Store on the student_progress table.
type ProgressRepo struct {
	db *sqlx.DB
}

var _ confidence.Store = (*ProgressRepo)(nil)

const progressColumns = `student_id, topic_id, confidence_score, attempts,
	last_quiz_date, total_questions, correct_answers`

// Get returns the record for (studentID, topicID), or confidence.ErrNotFound.
func (r *ProgressRepo) Get(ctx context.Context, studentID, topicID int64) (confidence.Record, error) {
	var rec confidence.Record
	err := r.db.GetContext(ctx, &rec,
		`SELECT `+progressColumns+` FROM student_progress
		 WHERE student_id = ? AND topic_id = ?`, studentID, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return confidence.Record{}, confidence.ErrNotFound
	}
	if err != nil {
		return confidence.Record{}, &confidence.StorageError{Op: "get", Err: err}
	}
	if err := rec.Validate(); err != nil {
		return confidence.Record{}, &confidence.StorageError{Op: "get", Err: fmt.Errorf("corrupt record: %w", err)}
	}
	return rec, nil
}

// Upsert writes the record, replacing any existing row for its key.
func (r *ProgressRepo) Upsert(ctx context.Context, rec confidence.Record) error {
	if err := upsertTx(ctx, r.db, rec); err != nil {
		return &confidence.StorageError{Op: "upsert", Err: err}
	}
	return nil
}

// execer covers both *sqlx.DB and *sqlx.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertTx(ctx context.Context, e execer, rec confidence.Record) error {
	_, err := e.ExecContext(ctx,
		`INSERT INTO student_progress
			(student_id, topic_id, confidence_score, attempts, last_quiz_date, total_questions, correct_answers)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(student_id, topic_id) DO UPDATE SET
			confidence_score = excluded.confidence_score,
			attempts = excluded.attempts,
			last_quiz_date = excluded.last_quiz_date,
			total_questions = excluded.total_questions,
			correct_answers = excluded.correct_answers`,
		rec.StudentID, rec.TopicID, rec.Score, rec.Attempts,
		rec.LastQuizAt, rec.TotalQuestions, rec.CorrectAnswers)
	return err
}

// Update runs fn on the current record inside one transaction, persisting
// the result. A missing row hands fn a fresh default record, so a student
// who quizzes before enrollment still gets a well-formed first entry.
func (r *ProgressRepo) Update(ctx context.Context, studentID, topicID int64, fn func(confidence.Record) (confidence.Record, error)) (confidence.Record, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return confidence.Record{}, &confidence.StorageError{Op: "update", Err: err}
	}
	defer tx.Rollback()

	prior := confidence.NewRecord(studentID, topicID)
	err = tx.GetContext(ctx, &prior,
		`SELECT `+progressColumns+` FROM student_progress
		 WHERE student_id = ? AND topic_id = ?`, studentID, topicID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return confidence.Record{}, &confidence.StorageError{Op: "update", Err: err}
	}
	if err == nil {
		if verr := prior.Validate(); verr != nil {
			return confidence.Record{}, &confidence.StorageError{Op: "update", Err: fmt.Errorf("corrupt record: %w", verr)}
		}
	}

	next, err := fn(prior)
	if err != nil {
		// Not a storage failure: the caller's policy rejected the update.
		return confidence.Record{}, err
	}

	if err := upsertTx(ctx, tx, next); err != nil {
		return confidence.Record{}, &confidence.StorageError{Op: "update", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return confidence.Record{}, &confidence.StorageError{Op: "update", Err: err}
	}
	return next, nil
}

// InitializeForSyllabus creates a default record for every topic the student
// does not already have one for. Existing rows are untouched.
func (r *ProgressRepo) InitializeForSyllabus(ctx context.Context, studentID int64, topicIDs []int64, defaultScore float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return &confidence.StorageError{Op: "initialize", Err: err}
	}
	defer tx.Rollback()

	for _, topicID := range topicIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO student_progress (student_id, topic_id, confidence_score)
			 VALUES (?, ?, ?)`, studentID, topicID, defaultScore)
		if err != nil {
			return &confidence.StorageError{Op: "initialize", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &confidence.StorageError{Op: "initialize", Err: err}
	}
	return nil
}

// BySubject returns the student's records for the subject in syllabus order.
func (r *ProgressRepo) BySubject(ctx context.Context, studentID, subjectID int64) ([]confidence.Record, error) {
	var recs []confidence.Record
	err := r.db.SelectContext(ctx, &recs,
		`SELECT sp.student_id, sp.topic_id, sp.confidence_score, sp.attempts,
			sp.last_quiz_date, sp.total_questions, sp.correct_answers
		 FROM student_progress sp
		 JOIN topics t ON sp.topic_id = t.id
		 JOIN modules m ON t.module_id = m.id
		 WHERE sp.student_id = ? AND m.subject_id = ?
		 ORDER BY m.order_index, t.order_index`, studentID, subjectID)
	if err != nil {
		return nil, &confidence.StorageError{Op: "by-subject", Err: err}
	}
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			return nil, &confidence.StorageError{Op: "by-subject", Err: fmt.Errorf("corrupt record: %w", err)}
		}
	}
	return recs, nil
}
