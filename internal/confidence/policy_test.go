package confidence

import (
	"errors"
	"math"
	"testing"
	"time"
)

func allCorrect(n int) Outcome {
	results := make([]bool, n)
	for i := range results {
		results[i] = true
	}
	return Outcome{Results: results}
}

func allWrong(n int) Outcome {
	return Outcome{Results: make([]bool, n)}
}

func TestApply_FirstAttemptUsesBootstrapGain(t *testing.T) {
	p := Policy{Mode: ModeLifetimeAccuracy}
	rec := NewRecord(1, 10)
	now := time.Now()

	// 3 questions, 2 correct: accuracy 2/3, adjustment (2/3 - 0.5) * 0.2.
	next, err := p.Apply(rec, Outcome{Results: []bool{true, true, false}}, now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := 0.5 + (2.0/3.0-0.5)*0.2
	if math.Abs(next.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", next.Score, want)
	}
	if next.Attempts != 1 || next.TotalQuestions != 3 || next.CorrectAnswers != 2 {
		t.Errorf("counters = (%d, %d, %d), want (1, 3, 2)",
			next.Attempts, next.TotalQuestions, next.CorrectAnswers)
	}
	if next.LastQuizAt == nil || !next.LastQuizAt.Equal(now) {
		t.Errorf("LastQuizAt = %v, want %v", next.LastQuizAt, now)
	}
}

func TestApply_SteadyStateUsesSmallerGain(t *testing.T) {
	p := Policy{Mode: ModeLifetimeAccuracy}
	now := time.Now()

	// Continue from the first-attempt state: a second quiz of 3, all correct.
	rec := Record{StudentID: 1, TopicID: 10, Score: 0.5 + (2.0/3.0-0.5)*0.2,
		Attempts: 1, TotalQuestions: 3, CorrectAnswers: 2}

	next, err := p.Apply(rec, allCorrect(3), now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := rec.Score + (5.0/6.0-0.5)*0.1
	if math.Abs(next.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", next.Score, want)
	}
	if next.TotalQuestions != 6 || next.CorrectAnswers != 5 {
		t.Errorf("counters = (%d, %d), want (6, 5)", next.TotalQuestions, next.CorrectAnswers)
	}
}

func TestApply_ScoreStaysInRange(t *testing.T) {
	p := Policy{Mode: ModeLifetimeAccuracy}
	now := time.Now()

	tests := []struct {
		name string
		rec  Record
		out  Outcome
	}{
		{"all correct at ceiling", Record{Score: 1.0, Attempts: 5, TotalQuestions: 50, CorrectAnswers: 50}, allCorrect(10)},
		{"all wrong at floor", Record{Score: 0.0, Attempts: 5, TotalQuestions: 50, CorrectAnswers: 0}, allWrong(10)},
		{"all correct from default", NewRecord(1, 1), allCorrect(10)},
		{"all wrong from default", NewRecord(1, 1), allWrong(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := p.Apply(tt.rec, tt.out, now)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if next.Score < 0.0 || next.Score > 1.0 {
				t.Errorf("Score = %v, outside [0.0, 1.0]", next.Score)
			}
		})
	}
}

func TestApply_MonotonicBounds(t *testing.T) {
	p := Policy{Mode: ModeLifetimeAccuracy}
	now := time.Now()

	for _, score := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		rec := Record{Score: score, Attempts: 2, TotalQuestions: 6, CorrectAnswers: 3}

		up, err := p.Apply(rec, allCorrect(3), now)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if up.Score < score {
			t.Errorf("all-correct decreased score %v -> %v", score, up.Score)
		}

		down, err := p.Apply(rec, allWrong(3), now)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if down.Score > score {
			t.Errorf("all-incorrect increased score %v -> %v", score, down.Score)
		}
	}
}

func TestApply_EmptyOutcomeRejected(t *testing.T) {
	for _, mode := range []Mode{ModeLifetimeAccuracy, ModePerQuestion} {
		p := Policy{Mode: mode}
		rec := Record{Score: 0.7, Attempts: 3, TotalQuestions: 9, CorrectAnswers: 6}

		got, err := p.Apply(rec, Outcome{}, time.Now())
		if !errors.Is(err, ErrInvalidOutcome) {
			t.Fatalf("mode %d: err = %v, want ErrInvalidOutcome", mode, err)
		}
		if got != rec {
			t.Errorf("mode %d: record changed on rejected outcome", mode)
		}
	}
}

func TestApply_PerQuestionMode(t *testing.T) {
	p := Policy{Mode: ModePerQuestion}
	rec := NewRecord(1, 10)

	// correct, correct, wrong: 0.5 + 0.1 + 0.1 - 0.1 = 0.6
	next, err := p.Apply(rec, Outcome{Results: []bool{true, true, false}}, time.Now())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if math.Abs(next.Score-0.6) > 1e-9 {
		t.Errorf("Score = %v, want 0.6", next.Score)
	}
	if next.Attempts != 1 || next.TotalQuestions != 3 || next.CorrectAnswers != 2 {
		t.Errorf("counters = (%d, %d, %d), want (1, 3, 2)",
			next.Attempts, next.TotalQuestions, next.CorrectAnswers)
	}
}

func TestApply_PerQuestionClampsEachStep(t *testing.T) {
	p := Policy{Mode: ModePerQuestion}
	rec := Record{Score: 1.0}

	// Two correct clamp at 1.0; the single wrong then lands at 0.9, not 1.1 - 0.1.
	next, err := p.Apply(rec, Outcome{Results: []bool{true, true, false}}, time.Now())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if math.Abs(next.Score-0.9) > 1e-9 {
		t.Errorf("Score = %v, want 0.9", next.Score)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	p := Policy{}
	rec := Record{Score: 0.5, Attempts: 1, TotalQuestions: 3, CorrectAnswers: 2}
	before := rec

	if _, err := p.Apply(rec, allCorrect(3), time.Now()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec != before {
		t.Error("input record was mutated")
	}
}
