package confidence

import (
	"fmt"
	"time"
)

// DefaultScore is the confidence assigned to a topic the student has never
// practiced. It sits at the midpoint of the scale so the first quiz outcome
// can move it in either direction.
const DefaultScore = 0.5

// Record is the persisted mastery estimate for one (student, topic) pair.
type Record struct {
	StudentID      int64      `db:"student_id"`
	TopicID        int64      `db:"topic_id"`
	Score          float64    `db:"confidence_score"`
	Attempts       int        `db:"attempts"`
	TotalQuestions int        `db:"total_questions"`
	CorrectAnswers int        `db:"correct_answers"`
	LastQuizAt     *time.Time `db:"last_quiz_date"`
}

// NewRecord returns a fresh record at the default score with no history.
func NewRecord(studentID, topicID int64) Record {
	return Record{
		StudentID: studentID,
		TopicID:   topicID,
		Score:     DefaultScore,
	}
}

// Accuracy returns the lifetime fraction of correct answers, or the default
// score when no questions have been answered yet.
func (r Record) Accuracy() float64 {
	if r.TotalQuestions == 0 {
		return DefaultScore
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}

// Validate checks the record invariants. Storage implementations call it on
// every read so a corrupted row is reported instead of silently propagated.
func (r Record) Validate() error {
	if r.Score < 0.0 || r.Score > 1.0 {
		return fmt.Errorf("confidence score %v outside [0.0, 1.0]", r.Score)
	}
	if r.Attempts < 0 {
		return fmt.Errorf("negative attempt count %d", r.Attempts)
	}
	if r.TotalQuestions < 0 || r.CorrectAnswers < 0 {
		return fmt.Errorf("negative question counters (%d/%d)", r.CorrectAnswers, r.TotalQuestions)
	}
	if r.CorrectAnswers > r.TotalQuestions {
		return fmt.Errorf("correct answers %d exceed total questions %d", r.CorrectAnswers, r.TotalQuestions)
	}
	return nil
}

// Outcome is the result of one completed quiz: per-question correctness in
// presentation order. It is consumed once by the update policy and discarded.
type Outcome struct {
	Results []bool
}

// Total returns the number of questions in the quiz.
func (o Outcome) Total() int { return len(o.Results) }

// Correct returns the number of correctly answered questions.
func (o Outcome) Correct() int {
	n := 0
	for _, ok := range o.Results {
		if ok {
			n++
		}
	}
	return n
}
