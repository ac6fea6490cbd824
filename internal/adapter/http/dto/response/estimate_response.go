package response

import (
	"time"

	"cleaning_coop/internal/domain/entities"
)

type EstimateItemResponse struct {
	Name      string   `json:"name"`
	Detail    string   `json:"detail,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	UnitPrice *int64   `json:"unit_price,omitempty"`
	Amount    int64    `json:"amount"`
	Note      string   `json:"note,omitempty"`
}

type EstimateResponse struct {
	Title       string                 `json:"title"`
	IssueDate   string                 `json:"issue_date"`
	ValidUntil  string                 `json:"valid_until,omitempty"`
	Supplier    entities.Party         `json:"supplier"`
	Client      entities.Party         `json:"client"`
	Items       []EstimateItemResponse `json:"items"`
	Subtotal    int64                  `json:"subtotal"`
	VATRate     float64                `json:"vat_rate"`
	VAT         int64                  `json:"vat"`
	Total       int64                  `json:"total"`
	VATIncluded bool                   `json:"vat_included"`
	Memo        string                 `json:"memo,omitempty"`
	SavedAt     time.Time              `json:"saved_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]EstimateItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, EstimateItemResponse{
			Name:      it.Name,
			Detail:    it.Detail,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			Amount:    it.Amount,
			Note:      it.Note,
		})
	}
	return EstimateResponse{
		Title:       e.Title,
		IssueDate:   e.IssueDate,
		ValidUntil:  e.ValidUntil,
		Supplier:    e.Supplier,
		Client:      e.Client,
		Items:       items,
		Subtotal:    e.Subtotal,
		VATRate:     e.VATRate,
		VAT:         e.VAT,
		Total:       e.Total,
		VATIncluded: e.VATIncluded,
		Memo:        e.Memo,
		SavedAt:     e.SavedAt,
	}
}
