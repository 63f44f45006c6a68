// Package player drives a fixed sequence of steps forward, backward, or
// automatically on a timer.
//
// A Player owns at most one pending timer. Every transition that leaves
// StatePlaying cancels it, as do SetSteps and Close, and a generation
// counter makes a callback that was already in flight a no-op. Once Stop,
// SetSteps or Close returns, no further advancement can be observed.
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tessro/stepwise/internal/core"
)

// ErrStepOutOfRange is returned by Select for an index outside the sequence.
var ErrStepOutOfRange = errors.New("step index out of range")

// Option configures a Player.
type Option func(*Player)

// WithClock sets the clock used to schedule auto-play ticks.
func WithClock(c Clock) Option {
	return func(p *Player) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithHighlights attaches a step -> line-number table for code walkthroughs.
func WithHighlights(table map[int][]int) Option {
	return func(p *Player) {
		p.highlights = make(map[int][]int, len(table))
		for k, v := range table {
			p.highlights[k] = append([]int(nil), v...)
		}
	}
}

// WithOnChange sets a callback invoked after every transition. It runs
// outside the player's lock, on the goroutine that caused the transition
// (the timer's goroutine for auto-play ticks).
func WithOnChange(fn func(Snapshot)) Option {
	return func(p *Player) {
		p.onChange = fn
	}
}

// Player is the step-playback state machine.
type Player struct {
	mu         sync.Mutex
	steps      core.StepSequence
	interval   time.Duration
	index      int
	state      State
	clock      Clock
	timer      Timer
	gen        uint64
	highlights map[int][]int
	onChange   func(Snapshot)
	closed     bool
}

// New creates a stopped player positioned at the first step.
func New(steps core.StepSequence, interval time.Duration, opts ...Option) *Player {
	if interval <= 0 {
		interval = DefaultCodeInterval
	}
	p := &Player{
		steps:    append(core.StepSequence(nil), steps...),
		interval: interval,
		clock:    SystemClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Interval returns the auto-play interval.
func (p *Player) Interval() time.Duration {
	return p.interval
}

// Play starts auto-play. At the last step it rewinds to the first.
func (p *Player) Play() {
	p.mutate(func() bool {
		if len(p.steps) == 0 {
			return false
		}
		atEnd := p.index == len(p.steps)-1
		if p.state == StatePlaying && !atEnd {
			return false
		}
		if atEnd {
			p.index = 0
		}
		p.state = StatePlaying
		p.arm()
		return true
	})
}

// Pause freezes auto-play at the current step.
func (p *Player) Pause() {
	p.mutate(func() bool {
		if p.state != StatePlaying {
			return false
		}
		p.disarm()
		p.state = StatePaused
		return true
	})
}

// Resume continues a paused auto-play from the current step.
func (p *Player) Resume() {
	p.mutate(func() bool {
		if p.state != StatePaused {
			return false
		}
		p.state = StatePlaying
		p.arm()
		return true
	})
}

// Toggle pauses when playing, resumes when paused, and plays otherwise.
func (p *Player) Toggle() {
	p.mutate(func() bool {
		if len(p.steps) == 0 {
			return false
		}
		switch p.state {
		case StatePlaying:
			p.disarm()
			p.state = StatePaused
		case StatePaused:
			p.state = StatePlaying
			p.arm()
		default:
			if p.index == len(p.steps)-1 {
				p.index = 0
			}
			p.state = StatePlaying
			p.arm()
		}
		return true
	})
}

// Stop halts auto-play and rewinds to the first step.
func (p *Player) Stop() {
	p.mutate(func() bool {
		p.disarm()
		changed := p.state != StateStopped || p.index != 0
		p.state = StateStopped
		p.index = 0
		return changed
	})
}

// Next moves one step forward, clamped at the last step.
func (p *Player) Next() {
	p.mutate(func() bool {
		if p.index >= len(p.steps)-1 {
			return false
		}
		p.index++
		return true
	})
}

// Previous moves one step back, clamped at the first step.
func (p *Player) Previous() {
	p.mutate(func() bool {
		if p.index <= 0 {
			return false
		}
		p.index--
		return true
	})
}

// Select jumps to step i. Selecting while playing pauses.
func (p *Player) Select(i int) error {
	var err error
	p.mutate(func() bool {
		if i < 0 || i >= len(p.steps) {
			err = fmt.Errorf("%w: %d not in [0, %d)", ErrStepOutOfRange, i, len(p.steps))
			return false
		}
		p.index = i
		if p.state == StatePlaying {
			p.disarm()
			p.state = StatePaused
		}
		return true
	})
	return err
}

// SetSteps swaps in a new sequence, cancelling auto-play and rewinding.
func (p *Player) SetSteps(steps core.StepSequence) {
	p.mutate(func() bool {
		p.disarm()
		p.steps = append(core.StepSequence(nil), steps...)
		p.state = StateStopped
		p.index = 0
		return true
	})
}

// Close releases the timer. The player ignores transitions afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disarm()
	if p.state == StatePlaying {
		p.state = StatePaused
	}
	p.closed = true
}

// State returns the current play state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Index returns the current step index.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Current returns the step at the current index.
func (p *Player) Current() (core.Step, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.steps) == 0 {
		return core.Step{}, false
	}
	return p.steps[p.index], true
}

// Snapshot returns a consistent view of the player.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// mutate runs fn under the lock and notifies the observer if fn reports
// a change.
func (p *Player) mutate(fn func() bool) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	changed := fn()
	snap := p.snapshotLocked()
	cb := p.onChange
	p.mu.Unlock()

	if changed && cb != nil {
		cb(snap)
	}
}

// arm schedules the next tick. Must hold mu.
func (p *Player) arm() {
	p.disarm()
	gen := p.gen
	p.timer = p.clock.AfterFunc(p.interval, func() {
		p.tick(gen)
	})
}

// disarm cancels any pending tick. Must hold mu.
func (p *Player) disarm() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
}

func (p *Player) tick(gen uint64) {
	p.mutate(func() bool {
		if gen != p.gen || p.state != StatePlaying {
			return false
		}
		p.timer = nil
		if p.index >= len(p.steps)-1 {
			p.gen++
			p.state = StateStopped
			return true
		}
		p.index++
		p.arm()
		return true
	})
}

func (p *Player) snapshotLocked() Snapshot {
	s := Snapshot{
		Index: p.index,
		Len:   len(p.steps),
		State: p.state,
	}
	if len(p.steps) > 0 {
		s.Step = p.steps[p.index]
	}
	if hl, ok := p.highlights[p.index]; ok {
		s.Highlights = append([]int(nil), hl...)
	}
	return s
}
