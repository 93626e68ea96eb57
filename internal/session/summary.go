package session

import "github.com/google/uuid"

// QuestionResult is one question's outcome in a scored session.
type QuestionResult struct {
	Question      string `json:"question"`
	Submitted     string `json:"submitted"`
	CorrectLetter string `json:"correct_letter"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// Summary is the result of a scored session: per-question outcomes plus the
// confidence movement the attempt produced.
type Summary struct {
	SessionID  uuid.UUID        `json:"session_id"`
	StudentID  int64            `json:"student_id"`
	TopicID    int64            `json:"topic_id"`
	TopicName  string           `json:"topic_name"`
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	PriorScore float64          `json:"prior_score"`
	NewScore   float64          `json:"new_score"`
	Results    []QuestionResult `json:"results"`
}
