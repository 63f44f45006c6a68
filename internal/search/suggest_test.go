package search

import "testing"

func TestSuggest(t *testing.T) {
	got := Suggest("grph", sampleTopics())
	if len(got) == 0 || got[0] != "graphs" {
		t.Errorf("Suggest(grph) = %v, want graphs first", got)
	}

	if got := Suggest("", sampleTopics()); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
	if got := Suggest("zzzz", sampleTopics()); len(got) != 0 {
		t.Errorf("Suggest(zzzz) = %v, want none", got)
	}
	if got := Suggest("s", sampleTopics()); len(got) > MaxSuggestions {
		t.Errorf("len = %d > %d", len(got), MaxSuggestions)
	}
}
