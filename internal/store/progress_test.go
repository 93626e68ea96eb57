package store

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/keikurono7/major-project/internal/confidence"
)

func TestProgressRepo_GetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, topicIDs := seedSyllabus(t, s, 1)

	_, err := s.ProgressRepo().Get(context.Background(), 42, topicIDs[0])
	if !errors.Is(err, confidence.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProgressRepo_UpsertRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, topicIDs := seedSyllabus(t, s, 1)
	repo := s.ProgressRepo()

	now := time.Now().UTC()
	rec := confidence.Record{
		StudentID: 42, TopicID: topicIDs[0],
		Score: 0.65, Attempts: 2, TotalQuestions: 6, CorrectAnswers: 4,
		LastQuizAt: &now,
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, 42, topicIDs[0])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 0.65 || got.Attempts != 2 || got.TotalQuestions != 6 || got.CorrectAnswers != 4 {
		t.Errorf("got %+v", got)
	}
	if got.LastQuizAt == nil {
		t.Error("LastQuizAt not persisted")
	}

	// Upsert on the same key replaces, not duplicates.
	rec.Score = 0.7
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.Get(ctx, 42, topicIDs[0])
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if got.Score != 0.7 {
		t.Errorf("Score = %v, want 0.7", got.Score)
	}
}

func TestProgressRepo_InitializeForSyllabusIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, topicIDs := seedSyllabus(t, s, 1)
	repo := s.ProgressRepo()

	if err := repo.InitializeForSyllabus(ctx, 42, topicIDs, confidence.DefaultScore); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	// Progress on one topic, then re-initialize: the earned score survives.
	rec, err := repo.Get(ctx, 42, topicIDs[1])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	rec.Score = 0.9
	rec.Attempts = 3
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.InitializeForSyllabus(ctx, 42, topicIDs, confidence.DefaultScore); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}

	got, err := repo.Get(ctx, 42, topicIDs[1])
	if err != nil {
		t.Fatalf("get after re-init: %v", err)
	}
	if got.Score != 0.9 || got.Attempts != 3 {
		t.Errorf("re-initialize overwrote record: %+v", got)
	}

	for _, id := range []int64{topicIDs[0], topicIDs[2]} {
		got, err := repo.Get(ctx, 42, id)
		if err != nil {
			t.Fatalf("get topic %d: %v", id, err)
		}
		if got.Score != confidence.DefaultScore {
			t.Errorf("topic %d score = %v, want default", id, got.Score)
		}
	}
}

func TestProgressRepo_UpdateAppliesPolicy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, topicIDs := seedSyllabus(t, s, 1)
	repo := s.ProgressRepo()

	policy := confidence.Policy{}
	outcome := confidence.Outcome{Results: []bool{true, true, false}}

	// No prior row: Update starts from the default record (lazy path).
	next, err := repo.Update(ctx, 42, topicIDs[0], func(prior confidence.Record) (confidence.Record, error) {
		if prior.Score != confidence.DefaultScore || prior.Attempts != 0 {
			t.Errorf("prior = %+v, want fresh default", prior)
		}
		return policy.Apply(prior, outcome, time.Now())
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := 0.5 + (2.0/3.0-0.5)*0.2
	if math.Abs(next.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", next.Score, want)
	}

	got, err := repo.Get(ctx, 42, topicIDs[0])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Attempts != 1 || got.TotalQuestions != 3 || got.CorrectAnswers != 2 {
		t.Errorf("persisted counters = %+v", got)
	}
}

func TestProgressRepo_UpdateRejectedLeavesRecordIntact(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, topicIDs := seedSyllabus(t, s, 1)
	repo := s.ProgressRepo()

	before := confidence.Record{StudentID: 42, TopicID: topicIDs[0], Score: 0.8, Attempts: 4, TotalQuestions: 12, CorrectAnswers: 10}
	if err := repo.Upsert(ctx, before); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	policy := confidence.Policy{}
	_, err := repo.Update(ctx, 42, topicIDs[0], func(prior confidence.Record) (confidence.Record, error) {
		return policy.Apply(prior, confidence.Outcome{}, time.Now())
	})
	if !errors.Is(err, confidence.ErrInvalidOutcome) {
		t.Fatalf("err = %v, want ErrInvalidOutcome", err)
	}

	got, err := repo.Get(ctx, 42, topicIDs[0])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != before.Score || got.Attempts != before.Attempts {
		t.Errorf("record changed after rejected update: %+v", got)
	}
}

func TestProgressRepo_BySubjectOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	subjectID, topicIDs := seedSyllabus(t, s, 1)
	repo := s.ProgressRepo()

	if err := repo.InitializeForSyllabus(ctx, 42, topicIDs, confidence.DefaultScore); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	recs, err := repo.BySubject(ctx, 42, subjectID)
	if err != nil {
		t.Fatalf("by subject: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	for i, want := range topicIDs {
		if recs[i].TopicID != want {
			t.Errorf("recs[%d].TopicID = %d, want %d", i, recs[i].TopicID, want)
		}
	}
}

func TestProgressRepo_WeakestTopicsForTeacher(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, topicIDs := seedSyllabus(t, s, 9)
	repo := s.ProgressRepo()

	// Three students struggle on topic 0, two on topic 1: only topic 0
	// clears the minStudents=3 bar.
	for student := int64(1); student <= 3; student++ {
		if err := repo.Upsert(ctx, confidence.Record{StudentID: student, TopicID: topicIDs[0], Score: 0.2}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	for student := int64(1); student <= 2; student++ {
		if err := repo.Upsert(ctx, confidence.Record{StudentID: student, TopicID: topicIDs[1], Score: 0.1}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	rows, err := repo.WeakestTopicsForTeacher(ctx, 9, 10, 3)
	if err != nil {
		t.Fatalf("weakest topics: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].TopicName != "Well-Posed Learning Problems" || rows[0].StudentCount != 3 {
		t.Errorf("row = %+v", rows[0])
	}
	if math.Abs(rows[0].AvgConfidence-0.2) > 1e-9 {
		t.Errorf("avg = %v, want 0.2", rows[0].AvgConfidence)
	}
}
