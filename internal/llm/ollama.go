package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server.
// Ollama has no native JSON-schema output, so the schema is appended to
// the prompt and the response is validated after the fact.
type OllamaProvider struct {
	client *ollama.LLM
	model  string
}

// NewOllamaProvider creates a provider for a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}

	return &OllamaProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	content := buildOllamaMessages(req)

	callOpts := []llms.CallOption{
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Schema != nil {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	result, err := p.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(result.Choices) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no choices in Ollama response"),
		}
	}

	choice := result.Choices[0]
	raw := json.RawMessage(extractJSON(choice.Content))

	if req.Schema != nil {
		if err := validateResponse(req.Schema, raw); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    raw,
		Usage:      mapOllamaUsage(choice.GenerationInfo),
		Model:      p.model,
		StopReason: mapOllamaStopReason(choice.StopReason),
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

func buildOllamaMessages(req Request) []llms.MessageContent {
	var out []llms.MessageContent

	system := req.System
	// Small local models need the schema spelled out in the prompt.
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			system += "\n\nRespond with a single JSON object conforming to this JSON Schema:\n" + string(def)
		}
	}
	if system != "" {
		out = append(out, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}

	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		out = append(out, llms.TextParts(role, m.Content))
	}

	return out
}

// extractJSON strips any prose a chatty model wraps around the JSON body,
// keeping everything between the first and last brace or bracket.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return s
	}
	return s[start : end+1]
}

func mapOllamaUsage(info map[string]any) Usage {
	var u Usage
	if n, ok := info["PromptTokens"].(int); ok {
		u.InputTokens = n
	}
	if n, ok := info["CompletionTokens"].(int); ok {
		u.OutputTokens = n
	}
	if n, ok := info["TotalTokens"].(int); ok {
		u.TotalTokens = n
	} else {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}

func mapOllamaStopReason(reason string) string {
	switch reason {
	case "length":
		return "max_tokens"
	default:
		return "end"
	}
}
