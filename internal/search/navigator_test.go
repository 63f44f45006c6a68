package search

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/tessro/stepwise/internal/core"
)

func TestNavigatorWraps(t *testing.T) {
	nav := NewNavigator(sampleTopics()[:3])
	if nav.Index() != NoSelection {
		t.Fatalf("Index() = %d, want %d", nav.Index(), NoSelection)
	}
	if _, ok := nav.Selected(); ok {
		t.Error("Selected() ok = true with no selection")
	}

	nav.Down()
	if nav.Index() != 0 {
		t.Errorf("Down from none: Index() = %d, want 0", nav.Index())
	}
	nav.Down()
	nav.Down()
	nav.Down()
	if nav.Index() != 0 {
		t.Errorf("Down past end: Index() = %d, want 0", nav.Index())
	}
	nav.Up()
	if nav.Index() != 2 {
		t.Errorf("Up from 0: Index() = %d, want 2", nav.Index())
	}

	topic, ok := nav.Selected()
	if !ok || topic.ID != "trees" {
		t.Errorf("Selected() = %s, %v", topic.ID, ok)
	}
}

func TestNavigatorUpFromNone(t *testing.T) {
	nav := NewNavigator(sampleTopics())
	nav.Up()
	if nav.Index() != 3 {
		t.Errorf("Index() = %d, want 3", nav.Index())
	}
}

func TestNavigatorSetResultsResets(t *testing.T) {
	nav := NewNavigator(sampleTopics())
	nav.Down()
	nav.Down()

	nav.SetResults(sampleTopics()[:2])
	if nav.Index() != NoSelection {
		t.Errorf("Index() = %d after SetResults", nav.Index())
	}
}

func TestNavigatorEmpty(t *testing.T) {
	nav := NewNavigator(nil)
	nav.Down()
	nav.Up()
	if nav.Index() != NoSelection {
		t.Errorf("Index() = %d, want %d", nav.Index(), NoSelection)
	}
}

func TestNavigatorProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, MaxResults).Draw(t, "n")
		nav := NewNavigator(make([]core.Topic, n))

		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		for _, down := range moves {
			if down {
				nav.Down()
			} else {
				nav.Up()
			}
			i := nav.Index()
			if n == 0 && i != NoSelection {
				t.Fatalf("empty results selected %d", i)
			}
			if n > 0 && (i < 0 || i >= n) {
				t.Fatalf("Index() = %d out of [0, %d)", i, n)
			}
		}
	})
}
