package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"
)

// Handler receives a committed change.
type Handler func(ctx context.Context, e entities.ChangeEvent) error

type subscription struct {
	name    string
	handler Handler
}

// EventBus fans change events out to its subscribers synchronously and in
// subscription order. A failing subscriber does not stop the others.
type EventBus struct {
	mu   sync.RWMutex
	subs []subscription
}

var _ interfaces.INotifier = (*EventBus)(nil)

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers handler under name; name only shows up in logs and errors.
func (b *EventBus) Subscribe(name string, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, handler: handler})
}

// Len reports the number of subscribers.
func (b *EventBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Notify delivers e to every subscriber and joins their errors.
func (b *EventBus) Notify(ctx context.Context, e entities.ChangeEvent) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if err := deliver(ctx, s, e); err != nil {
			log.Printf("[events][bus] subscriber failed name=%s type=%s event_id=%s err=%v", s.name, e.Type, e.ID, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

func deliver(ctx context.Context, s subscription, e entities.ChangeEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.handler(ctx, e)
}
