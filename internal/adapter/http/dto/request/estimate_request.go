package request

import (
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/vat"
)

type PartyRequest struct {
	Name                 string `json:"name"`
	BusinessRegistration string `json:"business_registration_number"`
	Representative       string `json:"representative"`
	ContactPerson        string `json:"contact_person"`
	Contact              string `json:"contact"`
	Email                string `json:"email"`
	Address              string `json:"address"`
}

// EstimateItemRequest requires amount to be present; an explicit 0 is a
// valid line.
type EstimateItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	Detail    string   `json:"detail"`
	Quantity  *float64 `json:"quantity"`
	Unit      string   `json:"unit"`
	UnitPrice *int64   `json:"unit_price"`
	Amount    *int64   `json:"amount" binding:"required"`
	Note      string   `json:"note"`
}

// EstimateRequest is the body of both estimate save and preview.
// Totals are never accepted from clients.
type EstimateRequest struct {
	Title       string                `json:"title"`
	IssueDate   string                `json:"issue_date"`
	ValidUntil  string                `json:"valid_until"`
	Supplier    PartyRequest          `json:"supplier"`
	Client      PartyRequest          `json:"client"`
	Items       []EstimateItemRequest `json:"items" binding:"dive"`
	VATRate     *float64              `json:"vat_rate"`
	VATIncluded bool                  `json:"vat_included"`
	Memo        string                `json:"memo"`
}

// ResolveVATRate defaults an omitted rate to the standard 10%.
func (r EstimateRequest) ResolveVATRate() float64 {
	if r.VATRate == nil {
		return float64(vat.RateStandard)
	}
	return *r.VATRate
}

func (r EstimateRequest) ToDraft() entities.EstimateDraft {
	items := make([]entities.EstimateItem, 0, len(r.Items))
	for _, it := range r.Items {
		var amount int64
		if it.Amount != nil {
			amount = *it.Amount
		}
		items = append(items, entities.EstimateItem{
			Name:      it.Name,
			Detail:    it.Detail,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			Amount:    amount,
			Note:      it.Note,
		})
	}
	return entities.EstimateDraft{
		Title:       r.Title,
		IssueDate:   r.IssueDate,
		ValidUntil:  r.ValidUntil,
		Supplier:    r.Supplier.toParty(),
		Client:      r.Client.toParty(),
		Items:       items,
		VATRate:     r.ResolveVATRate(),
		VATIncluded: r.VATIncluded,
		Memo:        r.Memo,
	}
}

func (p PartyRequest) toParty() entities.Party {
	return entities.Party{
		Name:                 p.Name,
		BusinessRegistration: p.BusinessRegistration,
		Representative:       p.Representative,
		ContactPerson:        p.ContactPerson,
		Contact:              p.Contact,
		Email:                p.Email,
		Address:              p.Address,
	}
}
