package core

import (
	"fmt"

	"github.com/tessro/stepwise/internal/errors"
)

// SuggestionCount is how many leading topics are offered when there is
// nothing to search for.
const SuggestionCount = 6

// Corpus is the read-only, ordered collection of topics. It is built once
// and passed explicitly to whatever needs it; it is never mutated.
type Corpus struct {
	topics []Topic
}

// NewCorpus builds a corpus from topics, preserving their order.
func NewCorpus(topics []Topic) *Corpus {
	c := &Corpus{topics: make([]Topic, len(topics))}
	copy(c.topics, topics)
	return c
}

// Len returns the number of topics.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.topics)
}

// IsEmpty returns true if the corpus has no topics.
func (c *Corpus) IsEmpty() bool {
	return c.Len() == 0
}

// Topics returns a copy of the topics in corpus order.
func (c *Corpus) Topics() []Topic {
	if c == nil {
		return nil
	}
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// At returns the i-th topic.
func (c *Corpus) At(i int) (Topic, bool) {
	if c == nil || i < 0 || i >= len(c.topics) {
		return Topic{}, false
	}
	return c.topics[i], true
}

// IDs returns every topic id in corpus order.
func (c *Corpus) IDs() []string {
	ids := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		ids = append(ids, c.topics[i].ID)
	}
	return ids
}

// Suggestions returns the first n topics.
func (c *Corpus) Suggestions(n int) []Topic {
	if n > c.Len() {
		n = c.Len()
	}
	if n <= 0 {
		return nil
	}
	out := make([]Topic, n)
	copy(out, c.topics[:n])
	return out
}

// Resolve finds the topic whose id equals id exactly. The second result is
// false when no topic matches.
func (c *Corpus) Resolve(id string) (Topic, bool) {
	for i := 0; i < c.Len(); i++ {
		if c.topics[i].ID == id {
			return c.topics[i], true
		}
	}
	return Topic{}, false
}

// Lookup is Resolve for callers that want an error on a miss.
func (c *Corpus) Lookup(id string) (Topic, error) {
	t, ok := c.Resolve(id)
	if !ok {
		return Topic{}, fmt.Errorf("%w: %q", errors.ErrTopicNotFound, id)
	}
	return t, nil
}
