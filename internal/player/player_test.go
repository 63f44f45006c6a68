package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tessro/stepwise/internal/core"
)

// fakeClock records scheduled callbacks so tests can fire them by hand.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// last returns the most recently scheduled timer.
func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

// pending counts timers that have not been stopped or fired.
func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// fire runs the latest live timer as if its delay had elapsed.
func (c *fakeClock) fire(t *testing.T) {
	t.Helper()
	tm := c.last()
	if tm == nil || tm.stopped {
		t.Fatal("fire: no pending timer")
	}
	tm.stopped = true
	tm.f()
}

func steps(n int) core.StepSequence {
	seq := make(core.StepSequence, n)
	for i := range seq {
		seq[i] = core.PlainStep(i, "step")
	}
	return seq
}

func newTestPlayer(n int, opts ...Option) (*Player, *fakeClock) {
	clk := &fakeClock{}
	opts = append([]Option{WithClock(clk)}, opts...)
	return New(steps(n), time.Second, opts...), clk
}

func TestPlayRunsToEndAndStops(t *testing.T) {
	p, clk := newTestPlayer(3)

	p.Play()
	if p.State() != StatePlaying || p.Index() != 0 {
		t.Fatalf("after Play: state=%v index=%d", p.State(), p.Index())
	}
	if got := clk.last().d; got != time.Second {
		t.Errorf("scheduled delay = %v, want 1s", got)
	}

	clk.fire(t)
	clk.fire(t)
	if p.Index() != 2 || p.State() != StatePlaying {
		t.Fatalf("after two ticks: state=%v index=%d", p.State(), p.Index())
	}

	clk.fire(t)
	if p.State() != StateStopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}
}

func TestPlayAtEndRewinds(t *testing.T) {
	p, _ := newTestPlayer(3)
	if err := p.Select(2); err != nil {
		t.Fatal(err)
	}

	p.Play()
	if p.Index() != 0 {
		t.Errorf("Index() = %d, want 0", p.Index())
	}
	if p.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", p.State())
	}
}

func TestPlayWhilePlayingIsNoop(t *testing.T) {
	p, clk := newTestPlayer(3)
	p.Play()
	clk.fire(t)
	before := len(clk.timers)

	p.Play()
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
	if len(clk.timers) != before {
		t.Errorf("Play while playing scheduled a new timer")
	}
}

func TestStopRewindsAndCancels(t *testing.T) {
	p, clk := newTestPlayer(4)
	p.Play()
	clk.fire(t)

	p.Stop()
	if p.State() != StateStopped || p.Index() != 0 {
		t.Errorf("after Stop: state=%v index=%d", p.State(), p.Index())
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}
}

func TestStaleCallbackIsIgnored(t *testing.T) {
	p, clk := newTestPlayer(4)
	p.Play()
	stale := clk.last()

	p.Stop()
	// Simulate a callback that was already running when Stop cancelled it.
	stale.f()

	if p.Index() != 0 || p.State() != StateStopped {
		t.Errorf("stale tick advanced player: state=%v index=%d", p.State(), p.Index())
	}
}

func TestStaleCallbackAfterPauseResume(t *testing.T) {
	p, clk := newTestPlayer(5)
	p.Play()
	stale := clk.last()

	p.Pause()
	p.Resume()
	stale.f()

	if p.Index() != 0 {
		t.Errorf("Index() = %d, want 0", p.Index())
	}
	if clk.pending() != 1 {
		t.Errorf("pending timers = %d, want 1", clk.pending())
	}
}

func TestPauseResume(t *testing.T) {
	p, clk := newTestPlayer(3)

	p.Pause()
	if p.State() != StateStopped {
		t.Errorf("Pause from Stopped changed state to %v", p.State())
	}
	p.Resume()
	if p.State() != StateStopped {
		t.Errorf("Resume from Stopped changed state to %v", p.State())
	}

	p.Play()
	clk.fire(t)
	p.Pause()
	if p.State() != StatePaused || p.Index() != 1 {
		t.Errorf("after Pause: state=%v index=%d", p.State(), p.Index())
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}

	p.Resume()
	if p.State() != StatePlaying || p.Index() != 1 {
		t.Errorf("after Resume: state=%v index=%d", p.State(), p.Index())
	}
	clk.fire(t)
	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
}

func TestToggle(t *testing.T) {
	p, _ := newTestPlayer(3)

	want := []State{StatePlaying, StatePaused, StatePlaying}
	for i, w := range want {
		p.Toggle()
		if got := p.State(); got != w {
			t.Errorf("toggle %d: State() = %v, want %v", i, got, w)
		}
	}
}

func TestToggleAfterHalt(t *testing.T) {
	var got []Snapshot
	p, clk := newTestPlayer(2, WithOnChange(func(s Snapshot) {
		got = append(got, s)
	}))

	p.Play()
	clk.fire(t)
	clk.fire(t)
	if p.State() != StateStopped || p.Index() != 1 {
		t.Fatalf("after halt: state=%v index=%d", p.State(), p.Index())
	}

	got = nil
	p.Toggle()
	if p.State() != StatePlaying || p.Index() != 0 {
		t.Errorf("after Toggle: state=%v index=%d, want Playing at 0", p.State(), p.Index())
	}
	if clk.pending() != 1 {
		t.Errorf("pending timers = %d, want 1", clk.pending())
	}
	if len(got) != 1 || got[0].State != StatePlaying {
		t.Errorf("notifications = %+v, want one Playing snapshot", got)
	}
}

func TestNextPreviousClamp(t *testing.T) {
	p, _ := newTestPlayer(3)

	p.Previous()
	if p.Index() != 0 {
		t.Errorf("Previous at 0: Index() = %d", p.Index())
	}
	p.Next()
	p.Next()
	p.Next()
	if p.Index() != 2 {
		t.Errorf("Next past end: Index() = %d, want 2", p.Index())
	}
	p.Previous()
	if p.Index() != 1 {
		t.Errorf("Index() = %d, want 1", p.Index())
	}
}

func TestNextKeepsPlaying(t *testing.T) {
	p, clk := newTestPlayer(4)
	p.Play()
	p.Next()
	if p.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", p.State())
	}
	clk.fire(t)
	if p.Index() != 2 {
		t.Errorf("Index() = %d, want 2", p.Index())
	}
}

func TestSelect(t *testing.T) {
	p, clk := newTestPlayer(5)

	if err := p.Select(3); err != nil {
		t.Fatalf("Select(3) error = %v", err)
	}
	if p.Index() != 3 || p.State() != StateStopped {
		t.Errorf("after Select: state=%v index=%d", p.State(), p.Index())
	}

	p.Play()
	if err := p.Select(1); err != nil {
		t.Fatalf("Select(1) error = %v", err)
	}
	if p.State() != StatePaused || p.Index() != 1 {
		t.Errorf("Select while playing: state=%v index=%d", p.State(), p.Index())
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}

	for _, i := range []int{-1, 5, 99} {
		err := p.Select(i)
		if !errors.Is(err, ErrStepOutOfRange) {
			t.Errorf("Select(%d) error = %v, want ErrStepOutOfRange", i, err)
		}
	}
	if p.Index() != 1 {
		t.Errorf("out-of-range Select moved index to %d", p.Index())
	}
}

func TestSetStepsResets(t *testing.T) {
	p, clk := newTestPlayer(3)
	p.Play()
	clk.fire(t)

	p.SetSteps(steps(6))
	snap := p.Snapshot()
	if snap.State != StateStopped || snap.Index != 0 || snap.Len != 6 {
		t.Errorf("after SetSteps: %+v", snap)
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}
}

func TestClose(t *testing.T) {
	p, clk := newTestPlayer(3)
	p.Play()
	stale := clk.last()

	p.Close()
	stale.f()
	p.Next()
	p.Play()

	if p.Index() != 0 {
		t.Errorf("Index() = %d, want 0", p.Index())
	}
	if p.State() == StatePlaying {
		t.Error("State() = Playing after Close")
	}
	if clk.pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clk.pending())
	}
}

func TestEmptySequence(t *testing.T) {
	p, clk := newTestPlayer(0)

	p.Play()
	p.Next()
	p.Previous()
	p.Toggle()
	if err := p.Select(0); err == nil {
		t.Error("Select(0) on empty sequence returned nil error")
	}

	snap := p.Snapshot()
	if snap.State != StateStopped || snap.Index != 0 || snap.HasStep() {
		t.Errorf("empty snapshot = %+v", snap)
	}
	if snap.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", snap.Progress())
	}
	if _, ok := p.Current(); ok {
		t.Error("Current() ok = true on empty sequence")
	}
	if len(clk.timers) != 0 {
		t.Errorf("scheduled %d timers for empty sequence", len(clk.timers))
	}
}

func TestSingleStep(t *testing.T) {
	p, clk := newTestPlayer(1)
	p.Play()
	clk.fire(t)
	if p.State() != StateStopped || p.Index() != 0 {
		t.Errorf("state=%v index=%d", p.State(), p.Index())
	}
}

func TestHighlights(t *testing.T) {
	p, _ := newTestPlayer(7, WithHighlights(DefaultHighlights()))

	tests := []struct {
		index int
		want  []int
	}{
		{0, []int{0, 1}},
		{2, []int{4, 5}},
		{4, []int{8, 9}},
		{5, nil},
		{6, nil},
	}
	for _, tt := range tests {
		if err := p.Select(tt.index); err != nil {
			t.Fatal(err)
		}
		got := p.Snapshot().Highlights
		if len(got) != len(tt.want) {
			t.Errorf("step %d: Highlights = %v, want %v", tt.index, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("step %d: Highlights = %v, want %v", tt.index, got, tt.want)
			}
		}
	}
}

func TestOnChange(t *testing.T) {
	var got []Snapshot
	p, clk := newTestPlayer(2, WithOnChange(func(s Snapshot) {
		got = append(got, s)
	}))

	p.Previous() // no-op, no notification
	p.Play()
	clk.fire(t)
	clk.fire(t)

	if len(got) != 3 {
		t.Fatalf("notifications = %d, want 3", len(got))
	}
	if got[0].State != StatePlaying || got[1].Index != 1 || got[2].State != StateStopped {
		t.Errorf("notifications = %+v", got)
	}
}

func TestOnChangeMayCallBack(t *testing.T) {
	var p *Player
	var seen int
	p, _ = newTestPlayer(3, WithOnChange(func(s Snapshot) {
		// Reading from the callback must not deadlock.
		seen = p.Index()
	}))
	p.Next()
	if seen != 1 {
		t.Errorf("seen = %d, want 1", seen)
	}
}

func TestSnapshotHelpers(t *testing.T) {
	s := Snapshot{Index: 1, Len: 4}
	if s.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", s.Progress())
	}
	if s.IsFirst() || s.IsLast() {
		t.Error("IsFirst/IsLast true at index 1 of 4")
	}
	if !s.Visited(0) || !s.Visited(1) || s.Visited(2) {
		t.Error("Visited() wrong")
	}
	s.Index = 3
	if !s.IsLast() || s.Progress() != 1 {
		t.Errorf("at end: IsLast=%v Progress=%v", s.IsLast(), s.Progress())
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	p := New(steps(2), 0)
	if p.Interval() != DefaultCodeInterval {
		t.Errorf("Interval() = %v, want %v", p.Interval(), DefaultCodeInterval)
	}
}

func TestSystemClockStops(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := SystemClock().AfterFunc(time.Hour, func() { fired <- struct{}{} })
	if !tm.Stop() {
		t.Error("Stop() = false for pending timer")
	}
	select {
	case <-fired:
		t.Error("stopped timer fired")
	default:
	}
}
