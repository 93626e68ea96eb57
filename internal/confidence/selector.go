package confidence

// Difficulty is the hint passed to the quiz generator.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyFor maps a confidence score to a generation difficulty tier.
func DifficultyFor(score float64) Difficulty {
	switch {
	case score < 0.5:
		return DifficultyEasy
	case score < 0.8:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// SelectWeakest returns the topic with the lowest confidence score.
//
// topicIDs defines the iteration order (syllabus declaration order in
// practice); on a tie the earlier topic wins, so repeated calls over the
// same state always recommend the same topic. Topics absent from scores are
// treated as unattempted and count at the default score. An empty topic
// list yields ErrNoTopics.
func SelectWeakest(topicIDs []int64, scores map[int64]float64) (int64, error) {
	if len(topicIDs) == 0 {
		return 0, ErrNoTopics
	}

	weakest := topicIDs[0]
	lowest := scoreOrDefault(scores, weakest)
	for _, id := range topicIDs[1:] {
		if s := scoreOrDefault(scores, id); s < lowest {
			weakest, lowest = id, s
		}
	}
	return weakest, nil
}

func scoreOrDefault(scores map[int64]float64, topicID int64) float64 {
	if s, ok := scores[topicID]; ok {
		return s
	}
	return DefaultScore
}
