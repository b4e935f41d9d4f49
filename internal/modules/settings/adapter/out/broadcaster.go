package out

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"focuslock/internal/modules/settings/domain"
	settingsout "focuslock/internal/modules/settings/port/out"
)

// Listener receives settings-changed events. Returning an error only marks
// that listener as failed; other listeners still run.
type Listener func(ctx context.Context, event domain.ChangeEvent) error

// Broadcaster fans a change event out to every subscribed page context.
type Broadcaster struct {
	mu        sync.RWMutex
	next      int
	listeners map[int]Listener
}

var _ settingsout.ChangeNotifier = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: map[int]Listener{}}
}

// Subscribe registers fn and returns a func that removes it.
func (b *Broadcaster) Subscribe(fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.listeners[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

func (b *Broadcaster) Notify(ctx context.Context, event domain.ChangeEvent) error {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.RUnlock()

	var errs []error
	for _, fn := range listeners {
		if err := notifyOne(ctx, fn, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func notifyOne(ctx context.Context, fn Listener, event domain.ChangeEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("settings listener panicked: %v", r)
		}
	}()
	return fn(ctx, event)
}
