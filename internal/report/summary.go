// Package report shapes progress data for students and teachers and exports
// it to Excel workbooks.
package report

import (
	"github.com/samber/lo"

	"github.com/keikurono7/major-project/internal/store"
)

// StudentSummary condenses a student's standing in one subject.
type StudentSummary struct {
	WeakestTopic   string
	WeakestScore   float64
	StrongestTopic string
	StrongestScore float64
	AverageScore   float64
	TotalTopics    int
	Attempted      int
}

// Summarize folds per-topic progress rows into a summary. The second return
// is false when there are no rows to summarize.
func Summarize(rows []store.ProgressRow) (StudentSummary, bool) {
	if len(rows) == 0 {
		return StudentSummary{}, false
	}

	weakest := lo.MinBy(rows, func(a, b store.ProgressRow) bool { return a.Score < b.Score })
	strongest := lo.MaxBy(rows, func(a, b store.ProgressRow) bool { return a.Score > b.Score })
	total := lo.SumBy(rows, func(r store.ProgressRow) float64 { return r.Score })
	attempted := lo.CountBy(rows, func(r store.ProgressRow) bool { return r.Attempts > 0 })

	return StudentSummary{
		WeakestTopic:   weakest.TopicName,
		WeakestScore:   weakest.Score,
		StrongestTopic: strongest.TopicName,
		StrongestScore: strongest.Score,
		AverageScore:   total / float64(len(rows)),
		TotalTopics:    len(rows),
		Attempted:      attempted,
	}, true
}

// ByModule groups progress rows under their module names, preserving the
// syllabus order within each group.
func ByModule(rows []store.ProgressRow) map[string][]store.ProgressRow {
	return lo.GroupBy(rows, func(r store.ProgressRow) string { return r.ModuleName })
}

// Accuracy returns the lifetime answer accuracy for a row, or 0 when the
// topic is unattempted.
func Accuracy(r store.ProgressRow) float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}
