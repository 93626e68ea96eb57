// Package content defines the curriculum domain: subjects own modules,
// modules own ordered topics, and subjects carry the books quizzes draw on.
package content

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a subject, module, or topic lookup that matched
// nothing.
var ErrNotFound = errors.New("not found")

// Subject is a course of study owned by one teacher.
type Subject struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	TeacherID   int64     `db:"teacher_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// Module is an ordered section within a subject.
type Module struct {
	ID          int64     `db:"id"`
	SubjectID   int64     `db:"subject_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	OrderIndex  int       `db:"order_index"`
	CreatedAt   time.Time `db:"created_at"`
}

// Topic is the unit confidence is tracked against and quizzes are generated
// for. OrderIndex within the module, combined with module order, gives the
// stable syllabus order used for deterministic topic selection.
type Topic struct {
	ID          int64     `db:"id"`
	ModuleID    int64     `db:"module_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	OrderIndex  int       `db:"order_index"`
	CreatedAt   time.Time `db:"created_at"`
}

// Book is study material attached to a subject.
type Book struct {
	ID         int64     `db:"id"`
	SubjectID  int64     `db:"subject_id"`
	Title      string    `db:"title"`
	Author     string    `db:"author"`
	FilePath   string    `db:"file_path"`
	IsActive   bool      `db:"is_active"`
	UploadedAt time.Time `db:"uploaded_at"`
}

// TopicContext carries everything the quiz generator prompt needs to know
// about where a topic sits in the curriculum.
type TopicContext struct {
	Topic   Topic
	Module  Module
	Subject Subject
}

// Repo is the content store boundary. The confidence core only reads from
// it; writes happen through syllabus seeding and teacher tooling.
type Repo interface {
	CreateSubject(ctx context.Context, name, description string, teacherID int64) (int64, error)
	Subjects(ctx context.Context) ([]Subject, error)
	SubjectByName(ctx context.Context, name string) (Subject, error)

	CreateModule(ctx context.Context, subjectID int64, name, description string, orderIndex int) (int64, error)
	ModulesBySubject(ctx context.Context, subjectID int64) ([]Module, error)

	CreateTopic(ctx context.Context, moduleID int64, name, description string, orderIndex int) (int64, error)
	// TopicsBySubject returns every topic in the subject in syllabus order:
	// module order_index first, then topic order_index.
	TopicsBySubject(ctx context.Context, subjectID int64) ([]Topic, error)
	TopicContext(ctx context.Context, topicID int64) (TopicContext, error)

	AddBook(ctx context.Context, subjectID int64, title, author, filePath string) (int64, error)
	BooksBySubject(ctx context.Context, subjectID int64) ([]Book, error)
}
