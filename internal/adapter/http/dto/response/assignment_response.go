package response

import (
	"time"

	"cleaning_coop/internal/domain/entities"
)

type AssignmentResponse struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	CompanyID int64     `json:"company_id"`
	Status    string    `json:"status"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAssignment(a entities.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		RequestID: a.RequestID,
		CompanyID: a.CompanyID,
		Status:    string(a.Status),
		Memo:      a.Memo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromAssignments(items []entities.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAssignment(a))
	}
	return out
}
