package confidence

import "context"

// Store persists confidence records, keyed by (student, topic).
type Store interface {
	// Get returns the record for the key, or ErrNotFound.
	Get(ctx context.Context, studentID, topicID int64) (Record, error)

	// Upsert writes the record, replacing any existing row for its key.
	// On failure the prior row is intact and a *StorageError is returned.
	Upsert(ctx context.Context, rec Record) error

	// Update runs fn on the current record (or a fresh default record if
	// none exists) and persists the result, all inside one transaction so
	// concurrent quiz submissions on the same key cannot lose counters.
	// If fn returns an error nothing is written and the error is returned
	// as-is.
	Update(ctx context.Context, studentID, topicID int64, fn func(Record) (Record, error)) (Record, error)

	// InitializeForSyllabus creates a record at defaultScore for every topic
	// the student does not already have one for. Existing records are never
	// overwritten; calling it twice is a no-op.
	InitializeForSyllabus(ctx context.Context, studentID int64, topicIDs []int64, defaultScore float64) error

	// BySubject returns the student's records for every topic in the
	// subject, in syllabus order (module order_index, then topic
	// order_index). Topics without a record are omitted.
	BySubject(ctx context.Context, studentID, subjectID int64) ([]Record, error)
}
