package store

import (
	"context"
	"fmt"
)

// ProgressRow is a confidence record joined with its topic name, shaped for
// display and export.
type ProgressRow struct {
	TopicID        int64   `db:"topic_id"`
	TopicName      string  `db:"topic_name"`
	ModuleName     string  `db:"module_name"`
	Score          float64 `db:"confidence_score"`
	Attempts       int     `db:"attempts"`
	TotalQuestions int     `db:"total_questions"`
	CorrectAnswers int     `db:"correct_answers"`
}

// InsightRow aggregates class performance on a topic for teacher review.
type InsightRow struct {
	TopicName     string  `db:"topic_name"`
	ModuleName    string  `db:"module_name"`
	SubjectName   string  `db:"subject_name"`
	AvgConfidence float64 `db:"avg_confidence"`
	StudentCount  int     `db:"student_count"`
}

// ProgressOverview returns the student's per-topic progress in a subject,
// in syllabus order, with topic and module names resolved.
func (r *ProgressRepo) ProgressOverview(ctx context.Context, studentID, subjectID int64) ([]ProgressRow, error) {
	var rows []ProgressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT sp.topic_id, t.name AS topic_name, m.name AS module_name,
			sp.confidence_score, sp.attempts, sp.total_questions, sp.correct_answers
		 FROM student_progress sp
		 JOIN topics t ON sp.topic_id = t.id
		 JOIN modules m ON t.module_id = m.id
		 WHERE sp.student_id = ? AND m.subject_id = ?
		 ORDER BY m.order_index, t.order_index`, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("progress overview: %w", err)
	}
	return rows, nil
}

// WeakestTopicsForTeacher returns the topics where the teacher's students
// struggle most: lowest average confidence first, restricted to topics at
// least minStudents students have records for.
func (r *ProgressRepo) WeakestTopicsForTeacher(ctx context.Context, teacherID int64, limit, minStudents int) ([]InsightRow, error) {
	var rows []InsightRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT t.name AS topic_name, m.name AS module_name, s.name AS subject_name,
			AVG(sp.confidence_score) AS avg_confidence,
			COUNT(sp.student_id) AS student_count
		 FROM student_progress sp
		 JOIN topics t ON sp.topic_id = t.id
		 JOIN modules m ON t.module_id = m.id
		 JOIN subjects s ON m.subject_id = s.id
		 WHERE s.teacher_id = ?
		 GROUP BY t.id
		 HAVING student_count >= ?
		 ORDER BY avg_confidence ASC
		 LIMIT ?`, teacherID, minStudents, limit)
	if err != nil {
		return nil, fmt.Errorf("weakest topics: %w", err)
	}
	return rows, nil
}
