package confidence

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no record exists for the requested (student, topic).
var ErrNotFound = errors.New("confidence record not found")

// ErrInvalidOutcome indicates a quiz outcome with zero questions. The policy
// rejects it and leaves the record unchanged.
var ErrInvalidOutcome = errors.New("quiz outcome contains no questions")

// ErrNoTopics indicates topic selection was attempted over an empty syllabus
// scope. No default topic is invented.
var ErrNoTopics = errors.New("no topics to select from")

// StorageError wraps a persistence failure. Callers must treat the requested
// update as not applied: the prior record is intact.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("confidence storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
