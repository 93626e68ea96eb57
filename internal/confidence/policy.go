package confidence

import "time"

// Mode selects which confidence-update formula a Policy applies. The two
// formulas are not interchangeable mid-flight; a deployment picks one and
// keeps it for the lifetime of the store.
type Mode int

const (
	// ModeLifetimeAccuracy nudges the score toward the student's lifetime
	// accuracy on the topic. A single quiz moves the score by at most
	// gain * 0.5, so one bad day cannot erase an established mastery signal.
	ModeLifetimeAccuracy Mode = iota

	// ModePerQuestion applies a flat ±0.1 per question in order, clamping
	// after every step. Suited to lightweight deployments without durable
	// lifetime counters.
	ModePerQuestion
)

const (
	// bootstrapGain applies to a topic's very first attempt, when the score
	// is still the uninformed default and should react faster.
	bootstrapGain = 0.2

	// steadyGain applies once the topic has history.
	steadyGain = 0.1

	// stepDelta is the per-question adjustment in ModePerQuestion.
	stepDelta = 0.1
)

// Policy computes the successor of a confidence record after a quiz.
// The zero value uses ModeLifetimeAccuracy.
type Policy struct {
	Mode Mode
}

// Apply returns the updated record for the given outcome. The input record
// is never mutated. An outcome with zero questions is rejected with
// ErrInvalidOutcome and the caller must not persist anything.
func (p Policy) Apply(rec Record, out Outcome, now time.Time) (Record, error) {
	if out.Total() == 0 {
		return rec, ErrInvalidOutcome
	}

	next := rec
	switch p.Mode {
	case ModePerQuestion:
		for _, correct := range out.Results {
			if correct {
				next.Score = clamp(next.Score + stepDelta)
			} else {
				next.Score = clamp(next.Score - stepDelta)
			}
		}
	default:
		gain := steadyGain
		if rec.Attempts == 0 {
			gain = bootstrapGain
		}
		accuracy := float64(rec.CorrectAnswers+out.Correct()) / float64(rec.TotalQuestions+out.Total())
		next.Score = clamp(rec.Score + (accuracy-DefaultScore)*gain)
	}

	next.Attempts = rec.Attempts + 1
	next.TotalQuestions = rec.TotalQuestions + out.Total()
	next.CorrectAnswers = rec.CorrectAnswers + out.Correct()
	next.LastQuizAt = &now
	return next, nil
}

func clamp(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
