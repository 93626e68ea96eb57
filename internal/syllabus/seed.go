package syllabus

import (
	"context"
	"fmt"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/content"
)

// SeedResult reports what a seed run created. TopicIDs are in syllabus
// order, which is also the tie-break order for topic selection.
type SeedResult struct {
	SubjectID int64
	TopicIDs  []int64
}

// Seed writes the syllabus into the content store: one subject, its modules
// and topics, with order indexes following declaration order.
func Seed(ctx context.Context, repo content.Repo, f File, teacherID int64) (SeedResult, error) {
	subjectID, err := repo.CreateSubject(ctx, f.Subject, f.Description, teacherID)
	if err != nil {
		return SeedResult{}, fmt.Errorf("create subject %q: %w", f.Subject, err)
	}

	result := SeedResult{SubjectID: subjectID}
	for mi, m := range f.Modules {
		moduleID, err := repo.CreateModule(ctx, subjectID, m.Name, m.Description, mi)
		if err != nil {
			return SeedResult{}, fmt.Errorf("create module %q: %w", m.Name, err)
		}
		for ti, t := range m.Topics {
			topicID, err := repo.CreateTopic(ctx, moduleID, t.Name, t.Description, ti)
			if err != nil {
				return SeedResult{}, fmt.Errorf("create topic %q: %w", t.Name, err)
			}
			result.TopicIDs = append(result.TopicIDs, topicID)
		}
	}

	for _, b := range f.Books {
		if _, err := repo.AddBook(ctx, subjectID, b.Title, b.Author, b.Path); err != nil {
			return SeedResult{}, fmt.Errorf("add book %q: %w", b.Title, err)
		}
	}
	return result, nil
}

// Enroll initializes a student's confidence records for every topic in the
// seeded syllabus at the default score. Existing records are untouched, so
// re-enrolling never resets progress.
func Enroll(ctx context.Context, progress confidence.Store, studentID int64, topicIDs []int64) error {
	return progress.InitializeForSyllabus(ctx, studentID, topicIDs, confidence.DefaultScore)
}
