// Package httpapi exposes the quiz engine over REST: curriculum reads,
// progress, topic selection, the quiz session lifecycle, and teacher
// insights.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/session"
	"github.com/keikurono7/major-project/internal/store"
)

// Server routes API requests to the core packages.
type Server struct {
	progress *store.ProgressRepo
	contents content.Repo
	sessions *session.Manager
	logger   *slog.Logger
	router   *mux.Router
}

// NewServer wires the API over the given repos and session manager.
func NewServer(progress *store.ProgressRepo, contents content.Repo, sessions *session.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		progress: progress,
		contents: contents,
		sessions: sessions,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/subjects", s.handleListSubjects).Methods(http.MethodGet)
	api.HandleFunc("/subjects/{subjectID}/topics", s.handleListTopics).Methods(http.MethodGet)

	api.HandleFunc("/students/{studentID}/subjects/{subjectID}/enroll", s.handleEnroll).Methods(http.MethodPost)
	api.HandleFunc("/students/{studentID}/subjects/{subjectID}/progress", s.handleProgress).Methods(http.MethodGet)
	api.HandleFunc("/students/{studentID}/subjects/{subjectID}/next-topic", s.handleNextTopic).Methods(http.MethodGet)

	api.HandleFunc("/quiz", s.handleStartQuiz).Methods(http.MethodPost)
	api.HandleFunc("/quiz/{sessionID}/submit", s.handleSubmitQuiz).Methods(http.MethodPost)
	api.HandleFunc("/quiz/{sessionID}/abandon", s.handleAbandonQuiz).Methods(http.MethodPost)

	api.HandleFunc("/teachers/{teacherID}/insights", s.handleInsights).Methods(http.MethodGet)

	s.router = r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
