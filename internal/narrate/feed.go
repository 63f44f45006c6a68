// Package narrate turns a player's transitions into a stream of printable
// events for plain terminals.
package narrate

import (
	"context"
	"time"

	"github.com/tessro/stepwise/internal/player"
)

// EventType represents the kind of player transition.
type EventType int

const (
	EventStart EventType = iota
	EventStep
	EventPause
	EventResume
	EventFinish
	EventStop
)

// Event is one observed transition.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  *player.Snapshot
	Current   player.Snapshot
}

// Feed receives player snapshots and emits events. Wire Observe into the
// player with player.WithOnChange.
type Feed struct {
	snaps  chan player.Snapshot
	events chan Event
	done   chan struct{}
	now    func() time.Time
}

// NewFeed creates a feed.
func NewFeed() *Feed {
	return &Feed{
		snaps:  make(chan player.Snapshot, 16),
		events: make(chan Event, 16),
		done:   make(chan struct{}),
		now:    time.Now,
	}
}

// Observe queues a snapshot. It blocks while the buffer is full and
// returns immediately once the feed has stopped.
func (f *Feed) Observe(s player.Snapshot) {
	select {
	case f.snaps <- s:
	case <-f.done:
	}
}

// Events returns the channel of events. It is closed when Run returns.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Run converts queued snapshots into events until ctx is cancelled or
// Stop is called. initial is the player's state before the first
// transition.
func (f *Feed) Run(ctx context.Context, initial player.Snapshot) error {
	defer close(f.events)

	prev := initial
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.done:
			return nil
		case curr := <-f.snaps:
			for _, e := range diffSnapshots(prev, curr, f.now()) {
				select {
				case f.events <- e:
				case <-ctx.Done():
					return ctx.Err()
				case <-f.done:
					return nil
				}
			}
			prev = curr
		}
	}
}

// Stop stops the feed.
func (f *Feed) Stop() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

// diffSnapshots compares two snapshots and returns detected events.
func diffSnapshots(prev, curr player.Snapshot, now time.Time) []Event {
	ev := func(t EventType) Event {
		p := prev
		return Event{Type: t, Timestamp: now, Previous: &p, Current: curr}
	}

	var events []Event

	switch {
	case prev.State != player.StatePlaying && curr.State == player.StatePlaying:
		if prev.State == player.StatePaused && prev.Index == curr.Index {
			events = append(events, ev(EventResume))
		} else {
			events = append(events, ev(EventStart))
			// Start always announces the first step it shows.
			events = append(events, ev(EventStep))
			return events
		}
	case prev.State == player.StatePlaying && curr.State == player.StatePaused:
		events = append(events, ev(EventPause))
	case prev.State.IsActive() && curr.State == player.StateStopped:
		// Running off the end halts in place; Stop rewinds.
		if curr.IsLast() && prev.Index == curr.Index {
			events = append(events, ev(EventFinish))
		} else {
			events = append(events, ev(EventStop))
		}
		return events
	}

	if prev.Index != curr.Index || prev.Len != curr.Len {
		events = append(events, ev(EventStep))
	}
	return events
}
