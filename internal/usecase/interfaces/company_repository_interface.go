package interfaces

import (
	"context"
	"time"

	"cleaning_coop/internal/domain/entities"
)

// ICompanyRepository abstracts DynamoDB persistence for Company.
// GetByID returns a zero-value company when nothing is stored.
type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id int64) (entities.Company, error)
	List(ctx context.Context, status entities.CompanyStatus) ([]entities.Company, error)
	UpdateStatus(ctx context.Context, id int64, status entities.CompanyStatus, at time.Time) (entities.Company, error)
}
