package response

import (
	"time"

	"cleaning_coop/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID                int64                    `json:"id"`
	OrganizationName  string                   `json:"organization_name"`
	ContactName       string                   `json:"contact_name"`
	ContactEmail      string                   `json:"contact_email,omitempty"`
	ContactPhone      string                   `json:"contact_phone,omitempty"`
	OfficeTel         string                   `json:"office_tel,omitempty"`
	DesiredDate       string                   `json:"desired_date,omitempty"`
	Notes             string                   `json:"notes,omitempty"`
	ServiceTypes      []string                 `json:"service_types"`
	OtherDescription  string                   `json:"other_description,omitempty"`
	Attachments       []entities.Attachment    `json:"attachments"`
	SeniorRows        []entities.SeniorWorkRow `json:"senior_rows"`
	RegionsApplied    bool                     `json:"regions_applied"`
	SelectedRegions   []RegionResponse         `json:"selected_regions"`
	CurrentAssignment *AssignmentResponse      `json:"current_assignment,omitempty"`
	Estimate          *EstimateResponse        `json:"estimate,omitempty"`
	Status            string                   `json:"status"`
	CancelMemo        string                   `json:"cancel_memo,omitempty"`
	CancelledAt       *time.Time               `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	res := ServiceRequestResponse{
		ID:               r.ID,
		OrganizationName: r.OrganizationName,
		ContactName:      r.ContactName,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		OfficeTel:        r.OfficeTel,
		DesiredDate:      r.DesiredDate,
		Notes:            r.Notes,
		ServiceTypes:     nonNil(r.ServiceTypes),
		OtherDescription: r.OtherDescription,
		Attachments:      nonNil(r.Attachments),
		SeniorRows:       nonNil(r.SeniorRows),
		RegionsApplied:   r.HasRegionSelection(),
		SelectedRegions:  FromRegions(r.SelectedRegions),
		Status:           string(r.Status),
		CancelMemo:       r.CancelMemo,
		CancelledAt:      r.CancelledAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.CurrentAssignment != nil {
		a := FromAssignment(*r.CurrentAssignment)
		res.CurrentAssignment = &a
	}
	if r.Estimate != nil {
		e := FromEstimate(*r.Estimate)
		res.Estimate = &e
	}
	return res
}

func FromServiceRequests(items []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
