package quizgen

import (
	"fmt"
	"strings"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/content"
)

const systemPrompt = "You are creating quiz questions for engineering students based on the provided academic content."

// Input carries everything the generator needs for one quiz.
type Input struct {
	Topic content.TopicContext

	// Context is caller-assembled study material relevant to the topic.
	// May be empty, in which case the model works from the curriculum
	// placement alone.
	Context string

	// Confidence is the student's current score on the topic. It sets the
	// difficulty tier of the generated questions.
	Confidence float64

	// Count is the number of questions to generate. Zero means
	// DefaultQuestionCount.
	Count int
}

func (in Input) count() int {
	if in.Count <= 0 {
		return DefaultQuestionCount
	}
	return in.Count
}

// buildPrompt renders the generation prompt for one topic.
func buildPrompt(in Input) string {
	var b strings.Builder

	if in.Context != "" {
		fmt.Fprintf(&b, "Context from course material:\n%s\n\n", in.Context)
	}

	fmt.Fprintf(&b, "Subject: %s\n", in.Topic.Subject.Name)
	fmt.Fprintf(&b, "Module: %s\n", in.Topic.Module.Name)
	fmt.Fprintf(&b, "Topic: %s\n", in.Topic.Topic.Name)
	if desc := in.Topic.Topic.Description; desc != "" {
		fmt.Fprintf(&b, "Topic Description: %s\n", desc)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Create exactly %d multiple-choice questions about %q.\n", in.count(), in.Topic.Topic.Name)
	b.WriteString("Focus specifically on the topic within the context of the module and subject.\n\n")

	b.WriteString("Requirements:\n")
	b.WriteString("- Each question must have exactly 4 options (A, B, C, D)\n")
	b.WriteString("- Only one option should be correct\n")
	b.WriteString("- Prefix each option with its letter, e.g. \"A) First option\"\n")
	b.WriteString("- Provide a clear explanation for each correct answer\n")
	b.WriteString("- Cover different aspects of the topic\n")
	fmt.Fprintf(&b, "- Difficulty: %s (the student's confidence on this topic is %.2f on a 0.0-1.0 scale)\n",
		confidence.DifficultyFor(in.Confidence), in.Confidence)

	return b.String()
}

// StudyContext assembles a plain-text stand-in for retrieved course
// material from the curriculum metadata and the subject's book list.
func StudyContext(tc content.TopicContext, books []content.Book) string {
	var b strings.Builder

	if d := tc.Subject.Description; d != "" {
		fmt.Fprintf(&b, "%s: %s\n", tc.Subject.Name, d)
	}
	if d := tc.Module.Description; d != "" {
		fmt.Fprintf(&b, "%s: %s\n", tc.Module.Name, d)
	}

	for _, book := range books {
		if !book.IsActive {
			continue
		}
		if book.Author != "" {
			fmt.Fprintf(&b, "Reference: %q by %s\n", book.Title, book.Author)
		} else {
			fmt.Fprintf(&b, "Reference: %q\n", book.Title)
		}
	}

	return strings.TrimSpace(b.String())
}
