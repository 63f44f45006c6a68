package cli

import (
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/render"
)

// Table provides a simple table formatter.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTable creates a table writing to out with the given headers.
func NewTable(out io.Writer, headers ...string) *Table {
	t := &Table{
		w:       tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
		headers: headers,
	}
	if len(headers) > 0 {
		_, _ = t.w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// topicSummary is the JSON shape for topic listings.
type topicSummary struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Difficulty    core.Difficulty `json:"difficulty"`
	EstimatedTime string          `json:"estimated_time,omitempty"`
	Concepts      int             `json:"concepts"`
	Problems      int             `json:"problems"`
	Tags          []string        `json:"tags"`
	Description   string          `json:"description"`
}

func summarize(topics []core.Topic) []topicSummary {
	out := make([]topicSummary, len(topics))
	for i, t := range topics {
		problems := t.Problems
		if problems == 0 {
			problems = len(t.ProblemSet)
		}
		out[i] = topicSummary{
			ID:            t.ID,
			Title:         t.Title,
			Difficulty:    t.Difficulty,
			EstimatedTime: t.EstimatedTime,
			Concepts:      t.Concepts,
			Problems:      problems,
			Tags:          t.Tags,
			Description:   t.Description,
		}
	}
	return out
}

// topicTable prints topics as a table.
func topicTable(out io.Writer, topics []core.Topic) {
	table := NewTable(out, "ID", "TITLE", "DIFFICULTY", "TIME", "TAGS")
	for _, t := range topics {
		table.Row(
			t.ID,
			render.Truncate(t.Title, 32),
			string(t.Difficulty),
			t.EstimatedTime,
			render.Truncate(strings.Join(t.Tags, ", "), 30),
		)
	}
	table.Flush()
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
