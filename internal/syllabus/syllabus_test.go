package syllabus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/store"
)

const sampleYAML = `
subject: Machine Learning
description: Based on Tom Mitchell's textbook
modules:
  - module: MODULE-1
    topics:
      - name: Well-Posed Learning Problems
      - name: Find-S Algorithm
        description: Specific-to-general hypothesis search
  - module: MODULE-2
    topics:
      - name: Sequential Covering Algorithms
books:
  - title: Machine Learning
    author: Tom Mitchell
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Machine Learning", f.Subject)
	require.Len(t, f.Modules, 2)
	assert.Equal(t, "Specific-to-general hypothesis search", f.Modules[0].Topics[1].Description)
	assert.Equal(t, 3, f.TopicCount())
	require.Len(t, f.Books, 1)
	assert.Equal(t, "Tom Mitchell", f.Books[0].Author)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing subject", "modules:\n  - module: M1\n    topics:\n      - name: T1\n"},
		{"no modules", "subject: S\n"},
		{"unnamed module", "subject: S\nmodules:\n  - topics:\n      - name: T1\n"},
		{"module without topics", "subject: S\nmodules:\n  - module: M1\n"},
		{"unnamed topic", "subject: S\nmodules:\n  - module: M1\n    topics:\n      - description: d\n"},
		{"untitled book", "subject: S\nmodules:\n  - module: M1\n    topics:\n      - name: T1\nbooks:\n  - author: A\n"},
		{"unknown field", "subject: S\nchapters: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestSeedAndEnroll(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	f, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	ctx := context.Background()
	result, err := Seed(ctx, s.ContentRepo(), f, 1)
	require.NoError(t, err)
	require.Len(t, result.TopicIDs, 3)

	// Topics come back in declaration order.
	topics, err := s.ContentRepo().TopicsBySubject(ctx, result.SubjectID)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	wantNames := []string{"Well-Posed Learning Problems", "Find-S Algorithm", "Sequential Covering Algorithms"}
	for i, want := range wantNames {
		assert.Equal(t, want, topics[i].Name, "topics[%d]", i)
	}

	books, err := s.ContentRepo().BooksBySubject(ctx, result.SubjectID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Machine Learning", books[0].Title)
	assert.True(t, books[0].IsActive)

	require.NoError(t, Enroll(ctx, s.ProgressRepo(), 42, result.TopicIDs))
	for _, id := range result.TopicIDs {
		rec, err := s.ProgressRepo().Get(ctx, 42, id)
		require.NoError(t, err)
		assert.Equal(t, confidence.DefaultScore, rec.Score, "topic %d", id)
	}
}
