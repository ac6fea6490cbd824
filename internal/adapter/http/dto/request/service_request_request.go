package request

import (
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase"
)

type AttachmentRequest struct {
	Name     string `json:"name" binding:"required"`
	URL      string `json:"url" binding:"required"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type SeniorWorkRowRequest struct {
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
	WorkDate     string `json:"work_date"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

// CreateServiceRequestRequest is a client submission.
type CreateServiceRequestRequest struct {
	OrganizationName string                 `json:"organization_name" binding:"required"`
	ContactName      string                 `json:"contact_name" binding:"required"`
	ContactEmail     string                 `json:"contact_email"`
	ContactPhone     string                 `json:"contact_phone"`
	OfficeTel        string                 `json:"office_tel"`
	DesiredDate      string                 `json:"desired_date"`
	Notes            string                 `json:"notes"`
	ServiceTypes     []string               `json:"service_types"`
	OtherDescription string                 `json:"other_description"`
	Attachments      []AttachmentRequest    `json:"attachments" binding:"dive"`
	SeniorRows       []SeniorWorkRowRequest `json:"senior_rows"`
}

func (r CreateServiceRequestRequest) ToInput() usecase.CreateServiceRequestInput {
	attachments := make([]entities.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, entities.Attachment{Name: a.Name, URL: a.URL, MimeType: a.MimeType, Size: a.Size})
	}
	return usecase.CreateServiceRequestInput{
		OrganizationName: r.OrganizationName,
		ContactName:      r.ContactName,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		OfficeTel:        r.OfficeTel,
		DesiredDate:      r.DesiredDate,
		Notes:            r.Notes,
		ServiceTypes:     r.ServiceTypes,
		OtherDescription: r.OtherDescription,
		Attachments:      attachments,
		SeniorRows:       toSeniorRows(r.SeniorRows),
	}
}

// ChangeStatusRequest is an admin status change. Override unlocks CANCELLED -> WAIT.
type ChangeStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	CancelMemo string `json:"cancel_memo"`
	Override   bool   `json:"override"`
}

func (r ChangeStatusRequest) ToInput() (usecase.ChangeStatusInput, error) {
	status, err := entities.ParseRequestStatus(r.Status)
	if err != nil {
		return usecase.ChangeStatusInput{}, err
	}
	return usecase.ChangeStatusInput{Status: status, CancelMemo: r.CancelMemo, Override: r.Override}, nil
}

// SaveSeniorWorkRowsRequest replaces all rows; row ids are reassigned 1..n.
type SaveSeniorWorkRowsRequest struct {
	Rows []SeniorWorkRowRequest `json:"rows"`
}

func (r SaveSeniorWorkRowsRequest) ToRows() []entities.SeniorWorkRow {
	return toSeniorRows(r.Rows)
}

func toSeniorRows(in []SeniorWorkRowRequest) []entities.SeniorWorkRow {
	out := make([]entities.SeniorWorkRow, 0, len(in))
	for _, row := range in {
		out = append(out, entities.SeniorWorkRow{
			LocationName: row.LocationName,
			Address:      row.Address,
			WorkDate:     row.WorkDate,
			Description:  row.Description,
			Status:       entities.WorkRowStatus(row.Status),
		})
	}
	return out
}
