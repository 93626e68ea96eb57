package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// HistoryEntry is one row of the append-only quiz log.
type HistoryEntry struct {
	ID             int64     `db:"id"`
	StudentID      int64     `db:"student_id"`
	TopicID        int64     `db:"topic_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	QuizDate       time.Time `db:"quiz_date"`
	TimeTaken      *int64    `db:"time_taken"`
}

// HistoryRepo appends to and reads the quiz_history table. The log is
// informational: writes are best-effort and never gate a confidence update.
type HistoryRepo struct {
	db *sqlx.DB
}

// Append records one completed quiz. timeTaken is in seconds; pass nil when
// unknown.
func (r *HistoryRepo) Append(ctx context.Context, studentID, topicID int64, score, total int, timeTaken *int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_history (student_id, topic_id, score, total_questions, quiz_date, time_taken)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		studentID, topicID, score, total, time.Now().UTC(), timeTaken)
	if err != nil {
		return fmt.Errorf("append quiz history: %w", err)
	}
	return nil
}

// Recent returns the student's most recent quiz log entries, newest first.
func (r *HistoryRepo) Recent(ctx context.Context, studentID int64, limit int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT id, student_id, topic_id, score, total_questions, quiz_date, time_taken
		 FROM quiz_history WHERE student_id = ?
		 ORDER BY quiz_date DESC, id DESC LIMIT ?`, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent quiz history: %w", err)
	}
	return entries, nil
}
