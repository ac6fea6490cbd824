package entities

import (
	"fmt"
	"strings"
	"time"
)

// RequestStatus is the top-level lifecycle of a service request.
type RequestStatus string

const (
	RequestStatusWait       RequestStatus = "WAIT"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusDone       RequestStatus = "DONE"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
)

// ServiceTypeOther is the service tag that requires OtherDescription.
const ServiceTypeOther = "기타"

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusWait, RequestStatusInProgress, RequestStatusDone, RequestStatusCancelled:
		return true
	}
	return false
}

func ParseRequestStatus(v string) (RequestStatus, error) {
	s := RequestStatus(strings.ToUpper(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown request status %q", ErrInvalidInput, v)
	}
	return s, nil
}

var requestTransitions = map[RequestStatus]map[RequestStatus]struct{}{
	RequestStatusWait: {
		RequestStatusInProgress: {},
		RequestStatusCancelled:  {},
	},
	RequestStatusInProgress: {
		RequestStatusDone:      {},
		RequestStatusCancelled: {},
	},
}

// Reachable only through an explicit administrative override.
var requestOverrideTransitions = map[RequestStatus]map[RequestStatus]struct{}{
	RequestStatusCancelled: {
		RequestStatusWait: {},
	},
}

// CanTransition reports whether the normal workflow allows from -> to.
// With override the CANCELLED -> WAIT reopen path is also allowed.
func (s RequestStatus) CanTransition(to RequestStatus, override bool) bool {
	if _, ok := requestTransitions[s][to]; ok {
		return true
	}
	if override {
		_, ok := requestOverrideTransitions[s][to]
		return ok
	}
	return false
}

// IsTerminal reports whether no normal transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	return len(requestTransitions[s]) == 0
}

type Attachment struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// ServiceRequest is a client's request for cleaning service.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - Estimate and SeniorRows are embedded documents, replaced wholesale.
//   - current_assignment_id points to the assignments table; the repository
//     resolves it into CurrentAssignment on read.
type ServiceRequest struct {
	ID               int64           `json:"id"`
	OrganizationName string          `json:"organization_name"`
	ContactName      string          `json:"contact_name"`
	ContactEmail     string          `json:"contact_email"`
	ContactPhone     string          `json:"contact_phone"`
	OfficeTel        string          `json:"office_tel"`
	DesiredDate      string          `json:"desired_date"`
	Notes            string          `json:"notes"`
	ServiceTypes     []string        `json:"service_types"`
	OtherDescription string          `json:"other_description,omitempty"`
	Attachments      []Attachment    `json:"attachments"`
	SeniorRows       []SeniorWorkRow `json:"senior_rows"`
	SelectedRegions  []Region        `json:"selected_regions"`
	Estimate         *Estimate       `json:"estimate,omitempty"`

	CurrentAssignmentID int64       `json:"current_assignment_id,omitempty"`
	CurrentAssignment   *Assignment `json:"current_assignment,omitempty"`

	Status      RequestStatus `json:"status"`
	CancelMemo  string        `json:"cancel_memo,omitempty"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (r ServiceRequest) IsCancelled() bool {
	return r.Status == RequestStatusCancelled
}

// EnsureMutable rejects domain mutations on cancelled requests.
func (r ServiceRequest) EnsureMutable(action string) error {
	if r.IsCancelled() {
		return &TransitionError{
			Entity: "service_request",
			ID:     r.ID,
			From:   string(r.Status),
			To:     string(r.Status),
			Reason: action + " rejected on cancelled request",
		}
	}
	return nil
}

// HasActiveAssignment reports whether the current assignment still blocks a new one.
func (r ServiceRequest) HasActiveAssignment() bool {
	return r.CurrentAssignment != nil && r.CurrentAssignment.Status.IsActive()
}

// HasRegionSelection reports whether the admin applied a region selection.
func (r ServiceRequest) HasRegionSelection() bool {
	return len(r.SelectedRegions) > 0
}

// NormalizeServiceTypes trims and deduplicates tags and reports whether the
// Other tag is present.
func NormalizeServiceTypes(tags []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	hasOther := false
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if t == ServiceTypeOther {
			hasOther = true
		}
		out = append(out, t)
	}
	return out, hasOther
}
