package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keikurono7/major-project/internal/llm"
)

const generateMaxTokens = 2048

// Generator produces a quiz for a topic.
type Generator interface {
	Generate(ctx context.Context, in Input) (Quiz, error)
}

// LLMGenerator generates quizzes through an LLM provider with schema-bound
// structured output.
type LLMGenerator struct {
	provider llm.Provider
}

var _ Generator = (*LLMGenerator)(nil)

// NewLLMGenerator wraps a provider as a quiz Generator.
func NewLLMGenerator(p llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: p}
}

func (g *LLMGenerator) Generate(ctx context.Context, in Input) (Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-generation")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(in)},
		},
		Schema:      quizSchema,
		MaxTokens:   generateMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Quiz{}, err
	}

	var quiz Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return Quiz{}, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("decode quiz: %w", err),
		}
	}

	// The JSON schema constrains shape; this catches what it cannot, like
	// answers pointing at blank options.
	if err := quiz.Validate(); err != nil {
		return Quiz{}, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     err,
		}
	}

	return quiz, nil
}
