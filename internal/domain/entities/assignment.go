package entities

import (
	"fmt"
	"strings"
	"time"
)

// AssignmentStatus is the state of the link between a request and a company.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "PENDING"
	AssignmentStatusAccepted   AssignmentStatus = "ACCEPTED"
	AssignmentStatusInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentStatusDeclined   AssignmentStatus = "DECLINED"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusInProgress, AssignmentStatusDeclined:
		return true
	}
	return false
}

func ParseAssignmentStatus(v string) (AssignmentStatus, error) {
	s := AssignmentStatus(strings.ToUpper(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown assignment status %q", ErrInvalidInput, v)
	}
	return s, nil
}

var assignmentTransitions = map[AssignmentStatus]map[AssignmentStatus]struct{}{
	AssignmentStatusPending: {
		AssignmentStatusAccepted: {},
		AssignmentStatusDeclined: {},
	},
	AssignmentStatusAccepted: {
		AssignmentStatusInProgress: {},
	},
}

func (s AssignmentStatus) CanTransition(to AssignmentStatus) bool {
	_, ok := assignmentTransitions[s][to]
	return ok
}

// IsActive reports whether an assignment in this state blocks creating another
// one for the same request.
func (s AssignmentStatus) IsActive() bool {
	return s != AssignmentStatusDeclined
}

// Assignment links a ServiceRequest to a Company.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI request_id-index: request_id
//   - GSI company_id-index: company_id
type Assignment struct {
	ID        int64            `json:"id"`
	RequestID int64            `json:"request_id"`
	CompanyID int64            `json:"company_id"`
	Status    AssignmentStatus `json:"status"`
	Memo      string           `json:"memo,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Transition returns the assignment moved to next, or a TransitionError.
func (a Assignment) Transition(next AssignmentStatus, memo string, now time.Time) (Assignment, error) {
	if !a.Status.CanTransition(next) {
		return Assignment{}, &TransitionError{
			Entity: "assignment",
			ID:     a.ID,
			From:   string(a.Status),
			To:     string(next),
		}
	}
	a.Status = next
	if memo != "" {
		a.Memo = memo
	}
	a.UpdatedAt = now
	return a, nil
}
