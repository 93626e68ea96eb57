package content

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTopic finds the topic whose name best matches the query. Exact
// (case-insensitive) matches win outright; otherwise the closest fuzzy match
// is returned so "find-s" resolves to "Find-S Algorithm" on the CLI.
func ResolveTopic(topics []Topic, query string) (Topic, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Topic{}, fmt.Errorf("empty topic query")
	}

	for _, t := range topics {
		if strings.EqualFold(t.Name, query) {
			return t, nil
		}
	}

	best := -1
	bestRank := -1
	for i, t := range topics {
		rank := fuzzy.RankMatchNormalizedFold(query, t.Name)
		if rank < 0 {
			continue
		}
		if best == -1 || rank < bestRank {
			best, bestRank = i, rank
		}
	}
	if best == -1 {
		return Topic{}, fmt.Errorf("no topic matches %q: %w", query, ErrNotFound)
	}
	return topics[best], nil
}
