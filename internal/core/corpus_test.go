package core

import (
	"errors"
	"testing"

	swerrors "github.com/tessro/stepwise/internal/errors"
)

func testCorpus() *Corpus {
	return NewCorpus([]Topic{
		{ID: "arrays", Title: "Arrays", Difficulty: DifficultyBeginner},
		{ID: "trees", Title: "Trees", Difficulty: DifficultyIntermediate},
	})
}

func TestResolve(t *testing.T) {
	c := testCorpus()

	topic, ok := c.Resolve("trees")
	if !ok {
		t.Fatal("Resolve(trees) ok = false, want true")
	}
	if topic.Title != "Trees" {
		t.Errorf("Title = %q, want %q", topic.Title, "Trees")
	}

	if _, ok := c.Resolve("graphs"); ok {
		t.Error("Resolve(graphs) ok = true, want false")
	}
}

func TestResolveIsExact(t *testing.T) {
	c := testCorpus()
	for _, id := range []string{"Trees", "tree", " trees", "trees/", ""} {
		if _, ok := c.Resolve(id); ok {
			t.Errorf("Resolve(%q) ok = true, want false", id)
		}
	}
}

func TestLookupWrapsNotFound(t *testing.T) {
	c := testCorpus()
	_, err := c.Lookup("graphs")
	if !errors.Is(err, swerrors.ErrTopicNotFound) {
		t.Errorf("Lookup() error = %v, want ErrTopicNotFound", err)
	}
	if _, err := c.Lookup("arrays"); err != nil {
		t.Errorf("Lookup(arrays) error = %v", err)
	}
}

func TestCorpusIsolatedFromInput(t *testing.T) {
	topics := []Topic{{ID: "arrays", Title: "Arrays"}}
	c := NewCorpus(topics)
	topics[0].Title = "Mutated"

	got, _ := c.Resolve("arrays")
	if got.Title != "Arrays" {
		t.Errorf("Title = %q, want %q", got.Title, "Arrays")
	}

	out := c.Topics()
	out[0].Title = "Mutated again"
	got, _ = c.Resolve("arrays")
	if got.Title != "Arrays" {
		t.Errorf("Title after Topics() mutation = %q, want %q", got.Title, "Arrays")
	}
}

func TestSuggestions(t *testing.T) {
	c := testCorpus()
	if got := len(c.Suggestions(SuggestionCount)); got != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", got)
	}
	if got := c.Suggestions(1); len(got) != 1 || got[0].ID != "arrays" {
		t.Errorf("Suggestions(1) = %+v", got)
	}
	var empty *Corpus
	if got := empty.Suggestions(3); got != nil {
		t.Errorf("nil corpus Suggestions = %+v, want nil", got)
	}
}

func TestTopicAccessors(t *testing.T) {
	topic := Topic{
		CodeExamples: []CodeExample{{Title: "one"}},
		ProblemSet:   []Problem{{Title: "Two Sum"}},
	}
	if _, ok := topic.Example(1); ok {
		t.Error("Example(1) ok = true, want false")
	}
	if ex, ok := topic.Example(0); !ok || ex.Title != "one" {
		t.Errorf("Example(0) = %+v, %v", ex, ok)
	}
	if p, ok := topic.Problem(0); !ok || p.Title != "Two Sum" {
		t.Errorf("Problem(0) = %+v, %v", p, ok)
	}
	if topic.HasSteps() {
		t.Error("HasSteps() = true, want false")
	}
}
