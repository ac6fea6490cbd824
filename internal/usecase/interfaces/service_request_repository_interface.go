package interfaces

import (
	"context"
	"errors"
	"time"

	"cleaning_coop/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when an optimistic guard
// (expected status, expected current assignment, not cancelled) does not hold
// at write time. Nothing was written.
var ErrConditionFailed = errors.New("repository condition failed")

// RequestFilter narrows ServiceRequest listings. A zero value lists everything.
type RequestFilter struct {
	Status entities.RequestStatus
}

// StatusChange is a guarded status write: it only applies while the stored
// status still equals From. ReleaseAssignment drops the current assignment
// pointer; the assignment itself stays in history.
type StatusChange struct {
	From              entities.RequestStatus
	To                entities.RequestStatus
	CancelMemo        string
	CancelledAt       *time.Time
	ReleaseAssignment bool
	At                time.Time
}

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Reads return a zero-value request (ID == 0) when nothing is stored and
// resolve CurrentAssignment from CurrentAssignmentID. Field updates other than
// UpdateStatus are rejected with ErrConditionFailed on cancelled requests.
type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, change StatusChange) (entities.ServiceRequest, error)
	UpdateRegions(ctx context.Context, id int64, regions []entities.Region, at time.Time) (entities.ServiceRequest, error)
	UpdateSeniorRows(ctx context.Context, id int64, rows []entities.SeniorWorkRow, at time.Time) (entities.ServiceRequest, error)
	UpdateEstimate(ctx context.Context, id int64, estimate entities.Estimate, at time.Time) (entities.ServiceRequest, error)
}
