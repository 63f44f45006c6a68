package player

import "time"

// State represents the playback state of a step sequence.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Default auto-play intervals for the two presentation surfaces.
const (
	DefaultExplanationInterval = 4 * time.Second
	DefaultCodeInterval        = 3 * time.Second
)

// DefaultHighlights returns the step -> line table used for code
// walkthroughs when the content does not supply its own. Only the first
// five steps are mapped; later steps highlight nothing.
func DefaultHighlights() map[int][]int {
	return map[int][]int{
		0: {0, 1},
		1: {2, 3},
		2: {4, 5},
		3: {6, 7},
		4: {8, 9},
	}
}
