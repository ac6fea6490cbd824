package request

import (
	"errors"
	"testing"

	"cleaning_coop/internal/domain/entities"
)

func TestRegionRequest_ToRegion(t *testing.T) {
	t.Run("pair", func(t *testing.T) {
		r, err := RegionRequest{Province: " 서울 ", District: "강남구"}.ToRegion()
		if err != nil || r.Key() != "서울>강남구" {
			t.Fatalf("unexpected region %v err=%v", r, err)
		}
	})

	t.Run("key", func(t *testing.T) {
		r, err := RegionRequest{Key: "부산>해운대구"}.ToRegion()
		if err != nil || r.Province != "부산" || r.District != "해운대구" {
			t.Fatalf("unexpected region %v err=%v", r, err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := (RegionRequest{Province: "서울"}).ToRegion(); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if _, err := (RegionRequest{Key: "서울"}).ToRegion(); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestApplyRegionsRequest_ToRegions(t *testing.T) {
	regions, err := ApplyRegionsRequest{Regions: []RegionRequest{{Key: "서울>강남구"}, {Province: "서울", District: "서초구"}}}.ToRegions()
	if err != nil || len(regions) != 2 {
		t.Fatalf("unexpected regions %v err=%v", regions, err)
	}

	empty, err := ApplyRegionsRequest{}.ToRegions()
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty selection, got %v err=%v", empty, err)
	}

	_, err = MatchCompaniesRequest{Regions: []RegionRequest{{Key: "서울>강남구"}, {Key: ">"}}}.ToRegions()
	if !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChangeStatusRequest_ToInput(t *testing.T) {
	in, err := ChangeStatusRequest{Status: "cancelled", CancelMemo: "고객 요청", Override: false}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status != entities.RequestStatusCancelled || in.CancelMemo != "고객 요청" {
		t.Fatalf("unexpected input %+v", in)
	}

	if _, err := (ChangeStatusRequest{Status: "PAUSED"}).ToInput(); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateServiceRequestRequest_ToInput(t *testing.T) {
	in := CreateServiceRequestRequest{
		OrganizationName: "행복노인복지관",
		ContactName:      "김담당",
		DesiredDate:      "2025-04-01",
		ServiceTypes:     []string{"정기청소", "기타"},
		OtherDescription: "방역",
		Attachments:      []AttachmentRequest{{Name: "floor.pdf", URL: "https://files/floor.pdf", Size: 1024}},
		SeniorRows:       []SeniorWorkRowRequest{{LocationName: "1층 식당", Status: "wait"}},
	}.ToInput()

	if in.OrganizationName != "행복노인복지관" || len(in.ServiceTypes) != 2 || in.OtherDescription != "방역" {
		t.Fatalf("unexpected input %+v", in)
	}
	if len(in.Attachments) != 1 || in.Attachments[0].Size != 1024 {
		t.Fatalf("unexpected attachments %+v", in.Attachments)
	}
	if len(in.SeniorRows) != 1 || in.SeniorRows[0].Status != "wait" {
		t.Fatalf("unexpected rows %+v", in.SeniorRows)
	}
}

func TestRegisterCompanyRequest_ToInput(t *testing.T) {
	in, err := RegisterCompanyRequest{
		Name:     "깨끗한협동조합",
		Location: &GeoPointRequest{Lat: 37.5, Lng: 127.03},
		Regions:  []RegionRequest{{Key: "서울>강남구"}},
	}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Location == nil || in.Location.Lat != 37.5 || len(in.Regions) != 1 {
		t.Fatalf("unexpected input %+v", in)
	}

	if _, err := (RegisterCompanyRequest{Name: "x", Regions: []RegionRequest{{Province: "서울"}}}).ToInput(); err == nil {
		t.Fatalf("expected invalid region error")
	}
}

func TestSetApprovalRequest_ResolveStatus(t *testing.T) {
	s, err := SetApprovalRequest{Status: "approved"}.ResolveStatus()
	if err != nil || s != entities.CompanyStatusApproved {
		t.Fatalf("expected APPROVED, got %q err=%v", s, err)
	}
	if _, err := (SetApprovalRequest{Status: "maybe"}).ResolveStatus(); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
