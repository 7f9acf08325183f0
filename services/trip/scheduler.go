package trip

import "time"

// Scheduler defers a task by a fixed delay. It stands in for the "assistant
// is typing" pause so tests can fire pending tasks deterministically instead
// of sleeping.
type Scheduler interface {
	// After runs fn once the delay has elapsed and returns a cancel func.
	After(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
