package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/llm"
)

func testInput() Input {
	return Input{
		Topic: content.TopicContext{
			Subject: content.Subject{Name: "Machine Learning"},
			Module:  content.Module{Name: "MODULE-1"},
			Topic:   content.Topic{Name: "Find-S Algorithm", Description: "Specific-to-general hypothesis search"},
		},
		Confidence: 0.35,
	}
}

func validQuizJSON(t *testing.T) json.RawMessage {
	t.Helper()
	quiz := Quiz{Questions: []Question{sampleQuestion(), sampleQuestion(), sampleQuestion()}}
	raw, err := json.Marshal(quiz)
	if err != nil {
		t.Fatalf("marshal quiz: %v", err)
	}
	return raw
}

func TestLLMGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t)})
	gen := NewLLMGenerator(mock)

	quiz, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(quiz.Questions))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "topic-quiz" {
		t.Errorf("request schema = %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"Machine Learning",
		"MODULE-1",
		`"Find-S Algorithm"`,
		"exactly 3 multiple-choice questions",
		"easy",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestLLMGenerator_CountOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t)})
	gen := NewLLMGenerator(mock)

	in := testInput()
	in.Count = 5
	if _, err := gen.Generate(context.Background(), in); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "exactly 5 multiple-choice questions") {
		t.Errorf("prompt does not request 5 questions:\n%s", prompt)
	}
}

func TestLLMGenerator_ContextIncluded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t)})
	gen := NewLLMGenerator(mock)

	in := testInput()
	in.Context = "Find-S starts with the most specific hypothesis."
	if _, err := gen.Generate(context.Background(), in); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, in.Context) {
		t.Errorf("prompt missing study context:\n%s", prompt)
	}
}

func TestLLMGenerator_ProviderErrorPassedThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := NewLLMGenerator(mock)

	_, err := gen.Generate(context.Background(), testInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want ErrProviderUnavailable", err)
	}
}

func TestLLMGenerator_RejectsStructurallyInvalidQuiz(t *testing.T) {
	// Valid JSON that passes decoding but carries a broken question.
	bad := `{"questions":[{"question":"Q?","options":["A) x","B) y"],"answer":"A","explanation":"e"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	gen := NewLLMGenerator(mock)

	_, err := gen.Generate(context.Background(), testInput())
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %T, want ErrInvalidResponse", err)
	}
}

func TestStudyContext(t *testing.T) {
	tc := content.TopicContext{
		Subject: content.Subject{Name: "Machine Learning", Description: "Mitchell-based course"},
		Module:  content.Module{Name: "MODULE-1"},
		Topic:   content.Topic{Name: "Find-S Algorithm"},
	}
	books := []content.Book{
		{Title: "Machine Learning", Author: "Tom Mitchell", IsActive: true},
		{Title: "Retired Notes", IsActive: false},
	}

	got := StudyContext(tc, books)
	if !strings.Contains(got, "Mitchell-based course") {
		t.Errorf("missing subject description: %q", got)
	}
	if !strings.Contains(got, `"Machine Learning" by Tom Mitchell`) {
		t.Errorf("missing active book: %q", got)
	}
	if strings.Contains(got, "Retired Notes") {
		t.Errorf("inactive book included: %q", got)
	}
}
