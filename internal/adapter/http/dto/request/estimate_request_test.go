package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func ptr[T any](v T) *T { return &v }

func TestEstimateRequest_ResolveVATRate(t *testing.T) {
	if got := (EstimateRequest{}).ResolveVATRate(); got != 0.10 {
		t.Fatalf("expected default 0.10, got %v", got)
	}
	zero := 0.0
	if got := (EstimateRequest{VATRate: &zero}).ResolveVATRate(); got != 0 {
		t.Fatalf("expected explicit 0, got %v", got)
	}
}

func TestEstimateRequest_ToDraft(t *testing.T) {
	qty := 2.0
	price := int64(50000)
	r := EstimateRequest{
		Title:      "정기 청소",
		IssueDate:  "2025-03-01",
		ValidUntil: "2025-03-31",
		Supplier:   PartyRequest{Name: "깨끗한협동조합", BusinessRegistration: "123-45-67890"},
		Client:     PartyRequest{Name: "행복노인복지관", ContactPerson: "김담당"},
		Items: []EstimateItemRequest{
			{Name: "바닥 청소", Quantity: &qty, Unit: "회", UnitPrice: &price, Amount: ptr(int64(100000))},
			{Name: "유리창", Amount: ptr(int64(50000))},
		},
		VATIncluded: true,
		Memo:        "주말 작업",
	}

	d := r.ToDraft()
	if d.VATRate != 0.10 || !d.VATIncluded {
		t.Fatalf("unexpected vat mode: rate=%v included=%v", d.VATRate, d.VATIncluded)
	}
	if len(d.Items) != 2 || d.Items[0].Amount != 100000 || *d.Items[0].Quantity != 2 || *d.Items[0].UnitPrice != 50000 {
		t.Fatalf("unexpected items: %+v", d.Items)
	}
	if d.Supplier.BusinessRegistration != "123-45-67890" || d.Client.ContactPerson != "김담당" {
		t.Fatalf("unexpected parties: %+v / %+v", d.Supplier, d.Client)
	}
	if d.IssueDate != "2025-03-01" || d.ValidUntil != "2025-03-31" || d.Memo != "주말 작업" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestEstimateRequest_AmountRequired(t *testing.T) {
	t.Run("missing amount is rejected", func(t *testing.T) {
		r := EstimateRequest{Items: []EstimateItemRequest{{Name: "청소"}}}
		if err := binding.Validator.ValidateStruct(r); err == nil {
			t.Fatalf("expected validation error for missing amount")
		}
	})

	t.Run("explicit zero and negative are accepted", func(t *testing.T) {
		r := EstimateRequest{Items: []EstimateItemRequest{
			{Name: "무상 점검", Amount: ptr(int64(0))},
			{Name: "할인", Amount: ptr(int64(-10000))},
		}}
		if err := binding.Validator.ValidateStruct(r); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		d := r.ToDraft()
		if d.Items[0].Amount != 0 || d.Items[1].Amount != -10000 {
			t.Fatalf("unexpected amounts: %+v", d.Items)
		}
	})
}
