package player

import (
	"testing"

	"pgregory.net/rapid"
)

// fireLive runs the newest pending timer, if any.
func (c *fakeClock) fireLive() bool {
	tm := c.last()
	if tm == nil || tm.stopped {
		return false
	}
	tm.stopped = true
	tm.f()
	return true
}

func TestPlayerInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "steps")
		p, clk := newTestPlayer(n)

		ops := rapid.SliceOfN(rapid.IntRange(0, 9), 1, 60).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				p.Play()
			case 1:
				p.Pause()
			case 2:
				p.Resume()
			case 3:
				p.Stop()
			case 4:
				p.Next()
			case 5:
				p.Previous()
			case 6:
				_ = p.Select(rapid.IntRange(-1, n).Draw(t, "select"))
			case 7:
				p.Toggle()
			default:
				clk.fireLive()
			}

			snap := p.Snapshot()
			if n == 0 {
				if snap.Index != 0 || snap.State != StateStopped {
					t.Fatalf("empty player moved: %+v", snap)
				}
			} else if snap.Index < 0 || snap.Index >= n {
				t.Fatalf("index %d out of [0, %d)", snap.Index, n)
			}

			live := clk.pending()
			if live > 1 {
				t.Fatalf("%d pending timers", live)
			}
			if (snap.State == StatePlaying) != (live == 1) {
				t.Fatalf("state %v with %d pending timers", snap.State, live)
			}
		}
	})
}

func TestStopHaltsAdvancement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "steps")
		ticks := rapid.IntRange(0, n).Draw(t, "ticks")
		p, clk := newTestPlayer(n)

		p.Play()
		for i := 0; i < ticks; i++ {
			clk.fireLive()
		}
		p.Stop()

		// Every callback ever scheduled, stale or not, must be inert now.
		for _, tm := range clk.timers {
			tm.f()
		}
		if p.Index() != 0 || p.State() != StateStopped {
			t.Fatalf("advanced after Stop: index=%d state=%v", p.Index(), p.State())
		}
	})
}
