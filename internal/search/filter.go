// Package search filters the topic corpus for the search overlay and keeps
// track of the keyboard-selected result.
package search

import (
	"strconv"
	"strings"

	"github.com/tessro/stepwise/internal/core"
)

// MaxResults caps the number of topics Filter returns.
const MaxResults = 8

type options struct {
	conceptCount bool
	limit        int
}

// Option configures Filter.
type Option func(*options)

// WithConceptCount also matches the query against each topic's concept
// count rendered as a decimal string, so "12" finds a topic with 12
// concepts even if no text field contains "12".
func WithConceptCount() Option {
	return func(o *options) {
		o.conceptCount = true
	}
}

// WithLimit overrides MaxResults. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// Filter returns the topics matching query, in corpus order, capped at
// MaxResults. A topic matches when the lowercased query is a substring of
// its lowercased title, description, any tag, or difficulty label. A blank
// query matches nothing.
func Filter(query string, topics []core.Topic, opts ...Option) []core.Topic {
	o := options{limit: MaxResults}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)

	var results []core.Topic
	for _, t := range topics {
		if !matches(q, t, o) {
			continue
		}
		results = append(results, t)
		if len(results) == o.limit {
			break
		}
	}
	return results
}

// Matches reports whether a single topic matches query under the same rules
// as Filter.
func Matches(query string, t core.Topic, opts ...Option) bool {
	o := options{limit: MaxResults}
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(query) == "" {
		return false
	}
	return matches(strings.ToLower(query), t, o)
}

func matches(q string, t core.Topic, o options) bool {
	if contains(t.Title, q) || contains(t.Description, q) || contains(string(t.Difficulty), q) {
		return true
	}
	for _, tag := range t.Tags {
		if contains(tag, q) {
			return true
		}
	}
	if o.conceptCount && strings.Contains(strconv.Itoa(t.Concepts), q) {
		return true
	}
	return false
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
