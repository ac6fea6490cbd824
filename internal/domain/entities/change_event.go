package entities

import "time"

// View names a cached read model that must be refreshed after a mutation.
type View string

const (
	ViewRequestList   View = "request_list"
	ViewRequestDetail View = "request_detail"
	ViewCompanyQueue  View = "company_queue"
)

type ChangeType string

const (
	ChangeRequestCreated          ChangeType = "request.created"
	ChangeRequestStatusChanged    ChangeType = "request.status_changed"
	ChangeRegionsApplied          ChangeType = "request.regions_applied"
	ChangeWorkRowsSaved           ChangeType = "request.work_rows_saved"
	ChangeEstimateSaved           ChangeType = "request.estimate_saved"
	ChangeAssignmentCreated       ChangeType = "assignment.created"
	ChangeAssignmentStatusChanged ChangeType = "assignment.status_changed"
	ChangeCompanyUpdated          ChangeType = "company.updated"
)

// ChangeEvent is published after a mutation commits.
type ChangeEvent struct {
	ID         string     `json:"id"`
	Type       ChangeType `json:"type"`
	RequestID  int64      `json:"request_id,omitempty"`
	CompanyID  int64      `json:"company_id,omitempty"`
	Views      []View     `json:"views"`
	Status     string     `json:"status,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Touches reports whether the event invalidates v.
func (e ChangeEvent) Touches(v View) bool {
	for _, x := range e.Views {
		if x == v {
			return true
		}
	}
	return false
}
