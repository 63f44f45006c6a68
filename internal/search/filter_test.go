package search

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/tessro/stepwise/internal/core"
)

func sampleTopics() []core.Topic {
	return []core.Topic{
		{ID: "arrays", Title: "Arrays", Description: "Contiguous memory", Tags: []string{"Basics", "Indexing"}, Difficulty: core.DifficultyBeginner, Concepts: 12},
		{ID: "linked-lists", Title: "Linked Lists", Description: "Nodes and pointers", Tags: []string{"Pointers"}, Difficulty: core.DifficultyBeginner, Concepts: 8},
		{ID: "trees", Title: "Trees", Description: "Hierarchical data", Tags: []string{"Recursion", "BST"}, Difficulty: core.DifficultyIntermediate, Concepts: 15},
		{ID: "graphs", Title: "Graphs", Description: "Vertices and edges", Tags: []string{"BFS", "DFS"}, Difficulty: core.DifficultyAdvanced, Concepts: 20},
	}
}

func ids(topics []core.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	topics := sampleTopics()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"title", "tree", []string{"trees"}},
		{"case insensitive", "ARRAY", []string{"arrays"}},
		{"description", "pointers", []string{"linked-lists"}},
		{"tag", "bfs", []string{"graphs"}},
		{"difficulty", "beginner", []string{"arrays", "linked-lists"}},
		{"corpus order", "s", []string{"arrays", "linked-lists", "trees", "graphs"}},
		{"no match", "heap", nil},
		{"concept count excluded", "12", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(tt.query, topics))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterConceptCount(t *testing.T) {
	got := ids(Filter("12", sampleTopics(), WithConceptCount()))
	if len(got) != 1 || got[0] != "arrays" {
		t.Errorf("Filter(12, WithConceptCount) = %v, want [arrays]", got)
	}
}

func TestFilterCap(t *testing.T) {
	var topics []core.Topic
	for i := 0; i < 20; i++ {
		topics = append(topics, core.Topic{ID: fmt.Sprintf("t%d", i), Title: "Sorting"})
	}

	got := Filter("sort", topics)
	if len(got) != MaxResults {
		t.Fatalf("len = %d, want %d", len(got), MaxResults)
	}
	for i, topic := range got {
		if topic.ID != fmt.Sprintf("t%d", i) {
			t.Errorf("got[%d] = %s, want t%d", i, topic.ID, i)
		}
	}

	if got := Filter("sort", topics, WithLimit(3)); len(got) != 3 {
		t.Errorf("WithLimit(3): len = %d", len(got))
	}
}

func TestMatches(t *testing.T) {
	topic := sampleTopics()[2]
	if !Matches("recur", topic) {
		t.Error("Matches(recur) = false")
	}
	if Matches(" ", topic) {
		t.Error("Matches(blank) = true")
	}
}

// genTopic draws topics from a small alphabet so queries hit often.
func genTopic(t *rapid.T, i int) core.Topic {
	word := rapid.StringMatching(`[abcAB ]{0,6}`)
	return core.Topic{
		ID:          fmt.Sprintf("t%d", i),
		Title:       word.Draw(t, "title"),
		Description: word.Draw(t, "description"),
		Tags:        rapid.SliceOfN(word, 0, 3).Draw(t, "tags"),
		Difficulty:  rapid.SampledFrom([]core.Difficulty{core.DifficultyBeginner, core.DifficultyIntermediate, core.DifficultyAdvanced}).Draw(t, "difficulty"),
		Concepts:    rapid.IntRange(0, 200).Draw(t, "concepts"),
	}
}

func TestFilterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		topics := make([]core.Topic, n)
		for i := range topics {
			topics[i] = genTopic(t, i)
		}
		query := rapid.StringMatching(`[abcAB 1]{0,3}`).Draw(t, "query")

		got := Filter(query, topics)

		if len(got) > MaxResults {
			t.Fatalf("len = %d > %d", len(got), MaxResults)
		}
		if strings.TrimSpace(query) == "" && len(got) != 0 {
			t.Fatalf("blank query returned %d results", len(got))
		}

		// Every result contains the query in some text field.
		q := strings.ToLower(query)
		for _, topic := range got {
			fields := append([]string{topic.Title, topic.Description, string(topic.Difficulty)}, topic.Tags...)
			found := false
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f), q) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("result %s does not contain %q", topic.ID, query)
			}
		}

		// Results are the first matches in corpus order.
		var want []string
		for _, topic := range topics {
			if Matches(query, topic) && len(want) < MaxResults {
				want = append(want, topic.ID)
			}
		}
		if strings.Join(ids(got), ",") != strings.Join(want, ",") {
			t.Fatalf("Filter = %v, want %v", ids(got), want)
		}
	})
}
