package player

import "github.com/tessro/stepwise/internal/core"

// Snapshot is a point-in-time view of a Player.
type Snapshot struct {
	Index      int
	Len        int
	State      State
	Step       core.Step
	Highlights []int
}

// HasStep returns true if the sequence is non-empty.
func (s Snapshot) HasStep() bool {
	return s.Len > 0
}

// Progress returns (index+1)/len, or 0 for an empty sequence.
func (s Snapshot) Progress() float64 {
	if s.Len == 0 {
		return 0
	}
	return float64(s.Index+1) / float64(s.Len)
}

// IsFirst returns true at the first step.
func (s Snapshot) IsFirst() bool {
	return s.Index == 0
}

// IsLast returns true at the last step.
func (s Snapshot) IsLast() bool {
	return s.Len > 0 && s.Index == s.Len-1
}

// Visited returns true if step i is at or before the current step.
func (s Snapshot) Visited(i int) bool {
	return i <= s.Index
}

// Highlighted returns true if line (zero-based) is in the highlight set.
func (s Snapshot) Highlighted(line int) bool {
	for _, l := range s.Highlights {
		if l == line {
			return true
		}
	}
	return false
}
