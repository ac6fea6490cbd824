package cache

import (
	"context"
	"errors"
	"log"

	"cleaning_coop/internal/domain/entities"
)

// Invalidator retires cached views touched by a change event. It bumps the
// target's generation first, so a rendering started before the event is
// stored under a key no later read asks for, then drops the old keys.
type Invalidator struct {
	store  Store
	prefix string
}

func NewInvalidator(store Store, prefix string) *Invalidator {
	return &Invalidator{store: store, prefix: prefix}
}

// Handle is an events.Handler.
func (i *Invalidator) Handle(ctx context.Context, e entities.ChangeEvent) error {
	var errs []error
	for _, t := range Targets(e) {
		genKey := GenerationKey(i.prefix, t.View, t.Scope)
		if _, err := i.store.Incr(ctx, genKey); err != nil {
			log.Printf("[cache][invalidator] bump failed key=%s event_id=%s err=%v", genKey, e.ID, err)
			errs = append(errs, err)
		}

		p := Pattern(i.prefix, t.View, t.Scope)
		n, err := i.store.DeleteMatching(ctx, p)
		if err != nil {
			log.Printf("[cache][invalidator] delete failed pattern=%s event_id=%s err=%v", p, e.ID, err)
			errs = append(errs, err)
			continue
		}
		if n > 0 {
			log.Printf("[cache][invalidator] dropped keys=%d pattern=%s type=%s", n, p, e.Type)
		}
	}
	return errors.Join(errs...)
}
