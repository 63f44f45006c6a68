package components

import (
	"strings"
	"testing"
	"time"

	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/history"
	"github.com/tessro/stepwise/internal/player"
)

func TestStepsRenderEmpty(t *testing.T) {
	out := NewSteps("Walkthrough").Render(player.Snapshot{}, 60, 12, true)
	if !strings.Contains(out, "No steps") {
		t.Errorf("Render() = %q, want empty message", out)
	}
}

func TestStepsRenderStep(t *testing.T) {
	snap := player.Snapshot{
		Index: 1,
		Len:   3,
		State: player.StatePaused,
		Step:  core.DetailedStep(1, "Shift", "Move every element right", "Start from the end"),
	}
	out := NewSteps("Walkthrough").Render(snap, 70, 16, false)

	for _, want := range []string{"Shift", "Move every element right", "Start from the end", "2/3", "Paused"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestDots(t *testing.T) {
	if got := Dots(player.Snapshot{}); got != "" {
		t.Errorf("Dots(empty) = %q, want empty", got)
	}
	got := Dots(player.Snapshot{Index: 1, Len: 4})
	if n := strings.Count(got, "●"); n != 2 {
		t.Errorf("filled dots = %d, want 2", n)
	}
	if n := strings.Count(got, "○"); n != 2 {
		t.Errorf("open dots = %d, want 2", n)
	}
	if got := Dots(player.Snapshot{Len: maxDots + 1}); got != "" {
		t.Errorf("Dots(long) = %q, want empty", got)
	}
}

func sampleTopics(n int) []core.Topic {
	topics := make([]core.Topic, n)
	for i := range topics {
		topics[i] = core.Topic{
			ID:          "t" + string(rune('a'+i)),
			Title:       "Topic " + string(rune('A'+i)),
			Difficulty:  core.DifficultyBeginner,
			Description: "About " + string(rune('A'+i)),
		}
	}
	return topics
}

func TestTopicListSelection(t *testing.T) {
	l := NewTopicList()
	l.SelectPrev()
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", l.Selected())
	}
	l.SelectNext(3)
	l.SelectNext(3)
	l.SelectNext(3)
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", l.Selected())
	}
	l.Clamp(1)
	if l.Selected() != 0 {
		t.Errorf("Selected() after Clamp = %d, want 0", l.Selected())
	}
}

func TestTopicListScrollsToSelection(t *testing.T) {
	topics := sampleTopics(20)
	l := NewTopicList()
	for i := 0; i < 15; i++ {
		l.SelectNext(len(topics))
	}
	out := l.Render(topics, 60, 14, true)
	if !strings.Contains(out, "Topic P") {
		t.Errorf("selected topic not visible: %q", out)
	}
	if strings.Contains(out, "Topic A ") {
		t.Errorf("first topic should have scrolled out: %q", out)
	}
	if !strings.Contains(out, "more") {
		t.Errorf("missing more indicator: %q", out)
	}
}

func TestHistoryRender(t *testing.T) {
	h := NewHistory()
	if out := h.Render(nil, 40, 8, false); !strings.Contains(out, "No history yet") {
		t.Errorf("Render(nil) = %q", out)
	}
	entries := []history.Entry{{TopicID: "arrays", Title: "Arrays", ViewedAt: time.Now().Add(-2 * time.Hour)}}
	out := h.Render(entries, 50, 8, false)
	if !strings.Contains(out, "Arrays") || !strings.Contains(out, "2 hours ago") {
		t.Errorf("Render() = %q", out)
	}
}

func TestProblemsExpand(t *testing.T) {
	probs := []core.Problem{
		{Title: "Two Sum", Difficulty: core.DifficultyEasy, Hints: []string{"Use a map"}},
		{Title: "Three Sum", Difficulty: core.DifficultyMedium},
	}
	p := NewProblems()
	if out := p.Render(probs, "notty", 60); strings.Contains(out, "Use a map") {
		t.Errorf("collapsed render shows hints: %q", out)
	}
	p.ToggleExpanded()
	if out := p.Render(probs, "notty", 60); !strings.Contains(out, "Use a map") {
		t.Errorf("expanded render missing hints: %q", out)
	}
	p.SelectNext(len(probs))
	if p.Expanded() {
		t.Error("moving the selection should collapse")
	}
	p.SelectNext(len(probs))
	if p.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", p.Selected())
	}
}

func TestPatternsMarkdown(t *testing.T) {
	if got := PatternsMarkdown(nil); !strings.Contains(got, "No patterns") {
		t.Errorf("PatternsMarkdown(nil) = %q", got)
	}
	got := PatternsMarkdown([]core.Pattern{{
		Name:           "Two Pointers",
		Difficulty:     core.DifficultyEasy,
		WhenToUse:      []string{"Sorted input"},
		TimeComplexity: "O(n)",
	}})
	for _, want := range []string{"## Two Pointers (Easy)", "- Sorted input", "**Time:** O(n)  **Space:** -"} {
		if !strings.Contains(got, want) {
			t.Errorf("PatternsMarkdown() missing %q in %q", want, got)
		}
	}
}

func TestTopicMarkdown(t *testing.T) {
	topic := core.Topic{
		Title:         "Arrays",
		Difficulty:    core.DifficultyBeginner,
		EstimatedTime: "30 min",
		Concepts:      4,
		Tags:          []string{"linear"},
		ProblemSet:    []core.Problem{{Title: "x"}},
	}
	got := TopicMarkdown(topic)
	if !strings.Contains(got, "_Beginner · 30 min · 4 concepts · 1 problem_") {
		t.Errorf("TopicMarkdown() = %q", got)
	}
	if !strings.Contains(got, "`linear`") {
		t.Errorf("TopicMarkdown() missing tags: %q", got)
	}
}
