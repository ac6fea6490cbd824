package interfaces

import (
	"context"

	"cleaning_coop/internal/domain/entities"
)

// IEstimateRenderer abstracts the external PDF rendering service.
type IEstimateRenderer interface {
	Render(ctx context.Context, requestID int64, estimate entities.Estimate) ([]byte, error)
}
