package clock

import (
	"sync"
	"time"
)

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Cancel stops a scheduled activity. It is safe to call more than once,
// including from inside the scheduled callback.
type Cancel func()

// Scheduler runs callbacks on a timer so lock sessions can be driven by a
// fake in tests.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
	After(delay time.Duration, fn func()) Cancel
}

type SystemScheduler struct{}

func (SystemScheduler) Every(interval time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (SystemScheduler) After(delay time.Duration, fn func()) Cancel {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}
