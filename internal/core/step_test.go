package core

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestStepSequenceYAMLMixed(t *testing.T) {
	src := `
- Create array with 5 elements
- title: Access
  description: Read index 0 directly
  tip: O(1) time
- description: Untitled but described
- title: Missing description
`
	var steps StepSequence
	if err := yaml.Unmarshal([]byte(src), &steps); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("len = %d, want 4", len(steps))
	}

	if steps[0].Kind != StepPlain {
		t.Errorf("steps[0].Kind = %v, want plain", steps[0].Kind)
	}
	if steps[0].Title != "Step 1" {
		t.Errorf("steps[0].Title = %q, want %q", steps[0].Title, "Step 1")
	}
	if steps[0].Description != "Create array with 5 elements" {
		t.Errorf("steps[0].Description = %q", steps[0].Description)
	}

	if steps[1].Kind != StepDetailed || steps[1].Title != "Access" || !steps[1].HasTip() {
		t.Errorf("steps[1] = %+v, want detailed step with tip", steps[1])
	}

	if steps[2].Title != "Step 3" {
		t.Errorf("steps[2].Title = %q, want %q", steps[2].Title, "Step 3")
	}
	if steps[2].Kind != StepDetailed {
		t.Errorf("steps[2].Kind = %v, want detailed", steps[2].Kind)
	}

	// A record without a description is malformed; the raw value becomes
	// the description under a fallback title.
	if steps[3].Title != "Step 4" {
		t.Errorf("steps[3].Title = %q, want %q", steps[3].Title, "Step 4")
	}
	if steps[3].Description != "title: Missing description" {
		t.Errorf("steps[3].Description = %q", steps[3].Description)
	}
}

func TestStepSequenceYAMLNotAList(t *testing.T) {
	var steps StepSequence
	if err := yaml.Unmarshal([]byte(`title: nope`), &steps); err == nil {
		t.Error("Unmarshal() error = nil, want error for mapping")
	}
}

func TestStepSequenceJSONMixed(t *testing.T) {
	src := `["first", {"title": "Second", "description": "two", "tip": "t"}, 42, {"title": "bad"}]`

	var steps StepSequence
	if err := json.Unmarshal([]byte(src), &steps); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("len = %d, want 4", len(steps))
	}
	if steps[0].Title != "Step 1" || steps[0].Description != "first" {
		t.Errorf("steps[0] = %+v", steps[0])
	}
	if steps[1].Title != "Second" || steps[1].Tip != "t" {
		t.Errorf("steps[1] = %+v", steps[1])
	}
	if steps[2].Title != "Step 3" || steps[2].Description != "42" {
		t.Errorf("steps[2] = %+v", steps[2])
	}
	if steps[3].Title != "Step 4" || !strings.Contains(steps[3].Description, `"bad"`) {
		t.Errorf("steps[3] = %+v", steps[3])
	}
}

func TestDetailedStepFallbackTitle(t *testing.T) {
	s := DetailedStep(4, "  ", "desc", "")
	if s.Title != "Step 5" {
		t.Errorf("Title = %q, want %q", s.Title, "Step 5")
	}
	if s.HasTip() {
		t.Error("HasTip() = true, want false")
	}
}
