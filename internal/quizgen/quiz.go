// Package quizgen produces multiple-choice quizzes for syllabus topics and
// scores submitted answers against them.
package quizgen

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultQuestionCount is how many questions a quiz carries unless the
	// caller asks for a different count.
	DefaultQuestionCount = 3

	// OptionsPerQuestion is fixed: every question offers choices A through D.
	OptionsPerQuestion = 4
)

var optionLetters = [OptionsPerQuestion]string{"A", "B", "C", "D"}

// ErrNoQuestions reports a generated quiz with an empty question list.
var ErrNoQuestions = errors.New("quiz has no questions")

// Question is a single multiple-choice question. Options carry their letter
// prefix ("A) First option") exactly as the generator emits them; Answer is
// the correct option's letter, though full option text is also accepted.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions on one topic.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Validate checks the structural contract: at least one question, exactly
// four options each, and an answer that resolves to one of them.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return ErrNoQuestions
	}
	for i, question := range q.Questions {
		if err := question.validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func (q Question) validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("has %d options, want %d", len(q.Options), OptionsPerQuestion)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %s is empty", optionLetters[i])
		}
	}
	if q.answerIndex(q.Answer) < 0 {
		return fmt.Errorf("answer %q does not resolve to an option", q.Answer)
	}
	return nil
}

// Correct reports whether a submitted answer picks the correct option.
// Students and models alike answer in different shapes ("B", "b", "B) Second
// option", or the bare option text), so both sides are normalized to an
// option index before comparing.
func (q Question) Correct(submitted string) bool {
	want := q.answerIndex(q.Answer)
	got := q.answerIndex(submitted)
	return want >= 0 && want == got
}

// CorrectLetter returns the letter of the correct option, or "" when the
// answer does not resolve.
func (q Question) CorrectLetter() string {
	i := q.answerIndex(q.Answer)
	if i < 0 {
		return ""
	}
	return optionLetters[i]
}

// answerIndex resolves an answer string to an option index, or -1.
func (q Question) answerIndex(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}

	if letter, ok := leadingLetter(s); ok {
		if i := int(letter - 'A'); i < len(q.Options) {
			return i
		}
		return -1
	}

	for i, opt := range q.Options {
		if strings.EqualFold(s, strings.TrimSpace(opt)) || strings.EqualFold(s, optionText(opt)) {
			return i
		}
	}
	return -1
}

// leadingLetter extracts an option letter from answers like "B", "b)",
// "(C)", or "D) Fourth option". A word that merely starts with an option
// letter ("Backpropagation") is not a letter answer.
func leadingLetter(s string) (byte, bool) {
	s = strings.TrimPrefix(s, "(")
	if s == "" {
		return 0, false
	}

	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'A'+OptionsPerQuestion-1 {
		return 0, false
	}
	if len(s) == 1 {
		return c, true
	}
	switch s[1] {
	case ')', '.', ':':
		return c, true
	}
	return 0, false
}

// optionText strips the letter prefix from an option, so "B) Second option"
// compares as "Second option".
func optionText(opt string) string {
	opt = strings.TrimSpace(opt)
	if _, ok := leadingLetter(opt); ok {
		for _, sep := range []string{")", ".", ":"} {
			if i := strings.Index(opt, sep); i == 1 || (i == 2 && opt[0] == '(') {
				return strings.TrimSpace(opt[i+1:])
			}
		}
	}
	return opt
}
