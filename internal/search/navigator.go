package search

import "github.com/tessro/stepwise/internal/core"

// NoSelection is the Navigator index when nothing is highlighted.
const NoSelection = -1

// Navigator tracks the highlighted entry in a result list. Movement wraps
// around in both directions.
type Navigator struct {
	results  []core.Topic
	selected int
}

// NewNavigator returns a navigator over results with nothing selected.
func NewNavigator(results []core.Topic) *Navigator {
	n := &Navigator{}
	n.SetResults(results)
	return n
}

// SetResults replaces the result list and clears the selection.
func (n *Navigator) SetResults(results []core.Topic) {
	n.results = results
	n.selected = NoSelection
}

// Results returns the current result list.
func (n *Navigator) Results() []core.Topic {
	return n.results
}

// Len returns the number of results.
func (n *Navigator) Len() int {
	return len(n.results)
}

// Index returns the selected position, or NoSelection.
func (n *Navigator) Index() int {
	return n.selected
}

// Down moves the selection one entry down, wrapping from the last entry
// (or from no selection) to the first.
func (n *Navigator) Down() {
	if len(n.results) == 0 {
		return
	}
	if n.selected == NoSelection || n.selected >= len(n.results)-1 {
		n.selected = 0
		return
	}
	n.selected++
}

// Up moves the selection one entry up, wrapping from the first entry (or
// from no selection) to the last.
func (n *Navigator) Up() {
	if len(n.results) == 0 {
		return
	}
	if n.selected <= 0 {
		n.selected = len(n.results) - 1
		return
	}
	n.selected--
}

// Selected returns the highlighted topic. ok is false when nothing is
// selected, in which case confirming should do nothing.
func (n *Navigator) Selected() (core.Topic, bool) {
	if n.selected < 0 || n.selected >= len(n.results) {
		return core.Topic{}, false
	}
	return n.results[n.selected], true
}

// Reset clears the selection without touching the results.
func (n *Navigator) Reset() {
	n.selected = NoSelection
}
