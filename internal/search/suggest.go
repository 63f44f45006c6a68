package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/tessro/stepwise/internal/core"
)

// MaxSuggestions caps the number of did-you-mean candidates.
const MaxSuggestions = 3

// topicSource adapts a topic slice to fuzzy.Source. Each topic is matched
// on its id and title joined together.
type topicSource []core.Topic

func (s topicSource) String(i int) string {
	return s[i].ID + " " + s[i].Title
}

func (s topicSource) Len() int {
	return len(s)
}

// Suggest returns the ids of the topics that most closely resemble a missed
// id, best match first.
func Suggest(missed string, topics []core.Topic) []string {
	if missed == "" || len(topics) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(missed, topicSource(topics))
	ids := make([]string, 0, MaxSuggestions)
	for _, m := range matches {
		ids = append(ids, topics[m.Index].ID)
		if len(ids) == MaxSuggestions {
			break
		}
	}
	return ids
}
