package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/session"
)

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.contents.Subjects(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	subjectID, err := pathID(r, "subjectID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}
	topics, err := s.contents.TopicsBySubject(r.Context(), subjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}
	subjectID, err := pathID(r, "subjectID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}

	topics, err := s.contents.TopicsBySubject(r.Context(), subjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ids := make([]int64, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}

	if err := s.progress.InitializeForSyllabus(r.Context(), studentID, ids, confidence.DefaultScore); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"topics": len(ids)})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}
	subjectID, err := pathID(r, "subjectID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}

	rows, err := s.progress.ProgressOverview(r.Context(), studentID, subjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type nextTopicResponse struct {
	TopicID    int64   `json:"topic_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Difficulty string  `json:"difficulty"`
}

func (s *Server) handleNextTopic(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}
	subjectID, err := pathID(r, "subjectID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}

	topics, err := s.contents.TopicsBySubject(r.Context(), subjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ids := make([]int64, len(topics))
	names := make(map[int64]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
		names[t.ID] = t.Name
	}

	recs, err := s.progress.BySubject(r.Context(), studentID, subjectID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	scores := make(map[int64]float64, len(recs))
	for _, rec := range recs {
		scores[rec.TopicID] = rec.Score
	}

	topicID, err := confidence.SelectWeakest(ids, scores)
	if err != nil {
		s.writeError(w, err)
		return
	}

	score := confidence.DefaultScore
	if v, ok := scores[topicID]; ok {
		score = v
	}
	writeJSON(w, http.StatusOK, nextTopicResponse{
		TopicID:    topicID,
		Name:       names[topicID],
		Score:      score,
		Difficulty: string(confidence.DifficultyFor(score)),
	})
}

type startQuizRequest struct {
	StudentID int64 `json:"student_id"`
	TopicID   int64 `json:"topic_id"`
}

// quizQuestion is a question as presented to the student: no answer, no
// explanation.
type quizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type startQuizResponse struct {
	SessionID string         `json:"session_id"`
	TopicID   int64          `json:"topic_id"`
	TopicName string         `json:"topic_name"`
	Questions []quizQuestion `json:"questions"`
}

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	var req startQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.StudentID <= 0 || req.TopicID <= 0 {
		s.writeBadRequest(w, fmt.Errorf("student_id and topic_id are required"))
		return
	}

	sess, err := s.sessions.Start(r.Context(), req.StudentID, req.TopicID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	questions := make([]quizQuestion, len(sess.Quiz.Questions))
	for i, q := range sess.Quiz.Questions {
		questions[i] = quizQuestion{Question: q.Question, Options: q.Options}
	}
	writeJSON(w, http.StatusCreated, startQuizResponse{
		SessionID: sess.ID.String(),
		TopicID:   sess.Topic.Topic.ID,
		TopicName: sess.Topic.Topic.Name,
		Questions: questions,
	})
}

type submitQuizRequest struct {
	Answers []string `json:"answers"`
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req submitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, fmt.Errorf("decode request: %w", err))
		return
	}

	summary, err := s.sessions.SubmitAll(r.Context(), sess, req.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAbandonQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Abandon(sess); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	teacherID, err := pathID(r, "teacherID")
	if err != nil {
		s.writeBadRequest(w, err)
		return
	}

	rows, err := s.progress.WeakestTopicsForTeacher(r.Context(), teacherID, 10, 3)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// session resolves the sessionID path variable, writing the error response
// itself when the ID is malformed or unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(mux.Vars(r)["sessionID"])
	if err != nil {
		s.writeBadRequest(w, fmt.Errorf("invalid session id"))
		return nil, false
	}
	live, found := s.sessions.Get(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return nil, false
	}
	return live, true
}
