package content

import "testing"

func sampleTopics() []Topic {
	return []Topic{
		{ID: 1, Name: "Well-Posed Learning Problems"},
		{ID: 2, Name: "Find-S Algorithm"},
		{ID: 3, Name: "Version Spaces and Candidate-Elimination Algorithm"},
		{ID: 4, Name: "Inductive Bias"},
	}
}

func TestResolveTopic_ExactMatchWins(t *testing.T) {
	got, err := ResolveTopic(sampleTopics(), "inductive bias")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != 4 {
		t.Errorf("resolved topic %d, want 4", got.ID)
	}
}

func TestResolveTopic_FuzzyMatch(t *testing.T) {
	got, err := ResolveTopic(sampleTopics(), "find-s")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("resolved topic %d, want 2", got.ID)
	}
}

func TestResolveTopic_NoMatch(t *testing.T) {
	if _, err := ResolveTopic(sampleTopics(), "quantum chromodynamics"); err == nil {
		t.Error("expected error for unmatched query")
	}
}

func TestResolveTopic_EmptyQuery(t *testing.T) {
	if _, err := ResolveTopic(sampleTopics(), "  "); err == nil {
		t.Error("expected error for empty query")
	}
}
