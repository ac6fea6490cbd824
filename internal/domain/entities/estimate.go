package entities

import "time"

// Party is the supplier or client block of an estimate. All fields are free text.
type Party struct {
	Name                 string `json:"name" dynamodbav:"name,omitempty"`
	BusinessRegistration string `json:"business_registration_number" dynamodbav:"business_registration_number,omitempty"`
	Representative       string `json:"representative" dynamodbav:"representative,omitempty"`
	ContactPerson        string `json:"contact_person" dynamodbav:"contact_person,omitempty"`
	Contact              string `json:"contact" dynamodbav:"contact,omitempty"`
	Email                string `json:"email" dynamodbav:"email,omitempty"`
	Address              string `json:"address" dynamodbav:"address,omitempty"`
}

// EstimateItem is one quotation line. Amount is authoritative; Quantity and
// UnitPrice are descriptive and nil when not entered.
type EstimateItem struct {
	Name      string   `json:"name" dynamodbav:"name"`
	Detail    string   `json:"detail,omitempty" dynamodbav:"detail,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
	Unit      string   `json:"unit,omitempty" dynamodbav:"unit,omitempty"`
	UnitPrice *int64   `json:"unit_price,omitempty" dynamodbav:"unit_price,omitempty"`
	Amount    int64    `json:"amount" dynamodbav:"amount"`
	Note      string   `json:"note,omitempty" dynamodbav:"note,omitempty"`
}

// EstimateDraft is what a company submits; totals are never taken from input.
type EstimateDraft struct {
	Title       string
	IssueDate   string
	ValidUntil  string
	Supplier    Party
	Client      Party
	Items       []EstimateItem
	VATRate     float64
	VATIncluded bool
	Memo        string
}

// Estimate is the quotation document owned by one ServiceRequest.
// Subtotal/VAT/Total are always derived from Items by the VAT calculator.
type Estimate struct {
	Title       string         `json:"title" dynamodbav:"title"`
	IssueDate   string         `json:"issue_date" dynamodbav:"issue_date"`
	ValidUntil  string         `json:"valid_until,omitempty" dynamodbav:"valid_until,omitempty"`
	Supplier    Party          `json:"supplier" dynamodbav:"supplier"`
	Client      Party          `json:"client" dynamodbav:"client"`
	Items       []EstimateItem `json:"items" dynamodbav:"items"`
	Subtotal    int64          `json:"subtotal" dynamodbav:"subtotal"`
	VATRate     float64        `json:"vat_rate" dynamodbav:"vat_rate"`
	VAT         int64          `json:"vat" dynamodbav:"vat"`
	Total       int64          `json:"total" dynamodbav:"total"`
	VATIncluded bool           `json:"vat_included" dynamodbav:"vat_included"`
	Memo        string         `json:"memo,omitempty" dynamodbav:"memo,omitempty"`
	SavedAt     time.Time      `json:"saved_at" dynamodbav:"saved_at"`
}

// Amounts returns the line amounts in item order.
func Amounts(items []EstimateItem) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Amount
	}
	return out
}
