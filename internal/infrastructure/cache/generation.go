package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cleaning_coop/internal/domain/entities"
)

// CurrentGeneration reads the counters new renderings of view within scope
// are keyed under. Missing counters read as zero.
func CurrentGeneration(ctx context.Context, store Store, prefix string, view entities.View, scope string) (Generation, error) {
	v, err := readCounter(ctx, store, GenerationKey(prefix, view, ""))
	if err != nil {
		return Generation{}, err
	}
	s, err := readCounter(ctx, store, GenerationKey(prefix, view, scope))
	if err != nil {
		return Generation{}, err
	}
	return Generation{View: v, Scope: s}, nil
}

func readCounter(ctx context.Context, store Store, key string) (int64, error) {
	bs, err := store.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(bs), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("generation %s: %w", key, err)
	}
	return n, nil
}
