package interfaces

import (
	"context"

	"cleaning_coop/internal/domain/entities"
)

// INotifier receives change events after a mutation has committed. An error
// never rolls back the mutation.
type INotifier interface {
	Notify(ctx context.Context, event entities.ChangeEvent) error
}
