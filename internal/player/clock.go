package player

import "time"

// Timer is a cancellable scheduled task.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The player asks it for at most one pending
// task at a time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by the runtime timer.
func SystemClock() Clock {
	return systemClock{}
}
