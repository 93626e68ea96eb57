package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/keikurono7/major-project/internal/content"
)

// ContentRepo implements content.Repo on the subjects/modules/topics/books
// tables.
type ContentRepo struct {
	db *sqlx.DB
}

var _ content.Repo = (*ContentRepo)(nil)

func (r *ContentRepo) CreateSubject(ctx context.Context, name, description string, teacherID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (name, description, teacher_id) VALUES (?, ?, ?)`,
		name, description, teacherID)
	if err != nil {
		return 0, fmt.Errorf("create subject: %w", err)
	}
	return res.LastInsertId()
}

func (r *ContentRepo) Subjects(ctx context.Context) ([]content.Subject, error) {
	var subjects []content.Subject
	err := r.db.SelectContext(ctx, &subjects,
		`SELECT id, name, description, teacher_id, created_at FROM subjects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (r *ContentRepo) SubjectByName(ctx context.Context, name string) (content.Subject, error) {
	var subject content.Subject
	err := r.db.GetContext(ctx, &subject,
		`SELECT id, name, description, teacher_id, created_at FROM subjects WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Subject{}, fmt.Errorf("subject %q: %w", name, content.ErrNotFound)
	}
	if err != nil {
		return content.Subject{}, fmt.Errorf("get subject: %w", err)
	}
	return subject, nil
}

func (r *ContentRepo) CreateModule(ctx context.Context, subjectID int64, name, description string, orderIndex int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO modules (subject_id, name, description, order_index) VALUES (?, ?, ?, ?)`,
		subjectID, name, description, orderIndex)
	if err != nil {
		return 0, fmt.Errorf("create module: %w", err)
	}
	return res.LastInsertId()
}

func (r *ContentRepo) ModulesBySubject(ctx context.Context, subjectID int64) ([]content.Module, error) {
	var modules []content.Module
	err := r.db.SelectContext(ctx, &modules,
		`SELECT id, subject_id, name, description, order_index, created_at
		 FROM modules WHERE subject_id = ? ORDER BY order_index`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (r *ContentRepo) CreateTopic(ctx context.Context, moduleID int64, name, description string, orderIndex int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO topics (module_id, name, description, order_index) VALUES (?, ?, ?, ?)`,
		moduleID, name, description, orderIndex)
	if err != nil {
		return 0, fmt.Errorf("create topic: %w", err)
	}
	return res.LastInsertId()
}

// TopicsBySubject returns every topic in the subject in syllabus order.
// This ordering is what makes weakest-topic selection deterministic.
func (r *ContentRepo) TopicsBySubject(ctx context.Context, subjectID int64) ([]content.Topic, error) {
	var topics []content.Topic
	err := r.db.SelectContext(ctx, &topics,
		`SELECT t.id, t.module_id, t.name, t.description, t.order_index, t.created_at
		 FROM topics t
		 JOIN modules m ON t.module_id = m.id
		 WHERE m.subject_id = ?
		 ORDER BY m.order_index, t.order_index`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (r *ContentRepo) TopicContext(ctx context.Context, topicID int64) (content.TopicContext, error) {
	var tc content.TopicContext

	err := r.db.GetContext(ctx, &tc.Topic,
		`SELECT id, module_id, name, description, order_index, created_at FROM topics WHERE id = ?`, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return content.TopicContext{}, fmt.Errorf("topic %d: %w", topicID, content.ErrNotFound)
	}
	if err != nil {
		return content.TopicContext{}, fmt.Errorf("get topic: %w", err)
	}

	err = r.db.GetContext(ctx, &tc.Module,
		`SELECT id, subject_id, name, description, order_index, created_at FROM modules WHERE id = ?`, tc.Topic.ModuleID)
	if err != nil {
		return content.TopicContext{}, fmt.Errorf("get module: %w", err)
	}

	err = r.db.GetContext(ctx, &tc.Subject,
		`SELECT id, name, description, teacher_id, created_at FROM subjects WHERE id = ?`, tc.Module.SubjectID)
	if err != nil {
		return content.TopicContext{}, fmt.Errorf("get subject: %w", err)
	}

	return tc, nil
}

func (r *ContentRepo) AddBook(ctx context.Context, subjectID int64, title, author, filePath string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO books (subject_id, title, author, file_path) VALUES (?, ?, ?, ?)`,
		subjectID, title, author, filePath)
	if err != nil {
		return 0, fmt.Errorf("add book: %w", err)
	}
	return res.LastInsertId()
}

func (r *ContentRepo) BooksBySubject(ctx context.Context, subjectID int64) ([]content.Book, error) {
	var books []content.Book
	err := r.db.SelectContext(ctx, &books,
		`SELECT id, subject_id, title, author, file_path, is_active, uploaded_at
		 FROM books WHERE subject_id = ? AND is_active = 1 ORDER BY title`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}
