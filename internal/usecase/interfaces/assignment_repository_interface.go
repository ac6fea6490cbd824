package interfaces

import (
	"context"

	"cleaning_coop/internal/domain/entities"
)

// AssignmentGuard is the request snapshot an assignment write was decided on.
type AssignmentGuard struct {
	RequestStatus       entities.RequestStatus
	CurrentAssignmentID int64
	// NextRequestStatus is written together with the assignment.
	NextRequestStatus entities.RequestStatus
}

// IAssignmentRepository abstracts DynamoDB persistence for Assignment.
//
// CreateForRequest stores the assignment, points the request's current
// assignment at it and writes NextRequestStatus in one transaction. It fails
// with ErrConditionFailed when the request no longer matches the guard.
// UpdateStatus only applies while the stored assignment has status from, is
// still the request's current assignment and the request is not cancelled.
type IAssignmentRepository interface {
	CreateForRequest(ctx context.Context, a entities.Assignment, guard AssignmentGuard) (entities.Assignment, error)
	GetByID(ctx context.Context, id int64) (entities.Assignment, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Assignment, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]entities.Assignment, error)
	UpdateStatus(ctx context.Context, a entities.Assignment, from entities.AssignmentStatus) (entities.Assignment, error)
}
