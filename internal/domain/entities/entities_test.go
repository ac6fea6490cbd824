package entities

import (
	"errors"
	"testing"
	"time"
)

func TestRequestStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from     RequestStatus
		to       RequestStatus
		override bool
		want     bool
	}{
		{RequestStatusWait, RequestStatusInProgress, false, true},
		{RequestStatusWait, RequestStatusCancelled, false, true},
		{RequestStatusWait, RequestStatusDone, false, false},
		{RequestStatusWait, RequestStatusWait, false, false},
		{RequestStatusInProgress, RequestStatusDone, false, true},
		{RequestStatusInProgress, RequestStatusCancelled, false, true},
		{RequestStatusInProgress, RequestStatusWait, false, false},
		{RequestStatusInProgress, RequestStatusWait, true, false},
		{RequestStatusDone, RequestStatusCancelled, false, false},
		{RequestStatusDone, RequestStatusInProgress, false, false},
		{RequestStatusCancelled, RequestStatusDone, false, false},
		{RequestStatusCancelled, RequestStatusDone, true, false},
		{RequestStatusCancelled, RequestStatusWait, false, false},
		{RequestStatusCancelled, RequestStatusWait, true, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to, tc.override); got != tc.want {
			t.Fatalf("%s -> %s (override=%v): expected %v, got %v", tc.from, tc.to, tc.override, tc.want, got)
		}
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	if !RequestStatusCancelled.IsTerminal() || !RequestStatusDone.IsTerminal() {
		t.Fatalf("expected CANCELLED and DONE to be terminal")
	}
	if RequestStatusWait.IsTerminal() || RequestStatusInProgress.IsTerminal() {
		t.Fatalf("expected WAIT and IN_PROGRESS to be non-terminal")
	}
}

func TestParseRequestStatus(t *testing.T) {
	if s, err := ParseRequestStatus(" in_progress "); err != nil || s != RequestStatusInProgress {
		t.Fatalf("unexpected: %v %v", s, err)
	}
	if _, err := ParseRequestStatus("CLOSED"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceRequest_EnsureMutable(t *testing.T) {
	r := ServiceRequest{ID: 7, Status: RequestStatusCancelled}
	err := r.EnsureMutable("save estimate")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.ID != 7 || te.From != "CANCELLED" {
		t.Fatalf("unexpected transition error: %+v", te)
	}

	r.Status = RequestStatusInProgress
	if err := r.EnsureMutable("save estimate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssignment_Transition(t *testing.T) {
	now := time.Now().UTC()
	a := Assignment{ID: 1, Status: AssignmentStatusPending}

	accepted, err := a.Transition(AssignmentStatusAccepted, "", now)
	if err != nil || accepted.Status != AssignmentStatusAccepted || !accepted.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected: %+v %v", accepted, err)
	}
	if a.Status != AssignmentStatusPending {
		t.Fatalf("receiver must not be mutated")
	}

	started, err := accepted.Transition(AssignmentStatusInProgress, "", now)
	if err != nil || started.Status != AssignmentStatusInProgress {
		t.Fatalf("unexpected: %+v %v", started, err)
	}

	declined, err := a.Transition(AssignmentStatusDeclined, "일정 불가", now)
	if err != nil || declined.Memo != "일정 불가" {
		t.Fatalf("unexpected: %+v %v", declined, err)
	}

	for _, bad := range []struct {
		from, to AssignmentStatus
	}{
		{AssignmentStatusPending, AssignmentStatusInProgress},
		{AssignmentStatusAccepted, AssignmentStatusDeclined},
		{AssignmentStatusDeclined, AssignmentStatusAccepted},
		{AssignmentStatusInProgress, AssignmentStatusPending},
	} {
		_, err := Assignment{ID: 2, Status: bad.from}.Transition(bad.to, "", now)
		var te *TransitionError
		if !errors.As(err, &te) || te.From != string(bad.from) || te.To != string(bad.to) {
			t.Fatalf("%s -> %s: expected transition error, got %v", bad.from, bad.to, err)
		}
	}
}

func TestAssignmentStatus_IsActive(t *testing.T) {
	for _, s := range []AssignmentStatus{AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusInProgress} {
		if !s.IsActive() {
			t.Fatalf("expected %s active", s)
		}
	}
	if AssignmentStatusDeclined.IsActive() {
		t.Fatalf("declined must not be active")
	}
}
func TestRegion(t *testing.T) {
	r := Region{Province: "서울", District: "강남구"}
	if r.Key() != "서울>강남구" {
		t.Fatalf("unexpected key %q", r.Key())
	}
	parsed, err := ParseRegion("서울>강남구")
	if err != nil || parsed != r {
		t.Fatalf("unexpected parse: %+v %v", parsed, err)
	}
	for _, bad := range []string{"서울", ">강남구", "서울>", "a>b>c"} {
		if _, err := ParseRegion(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", bad, err)
		}
	}

	set := NewRegionSet(r)
	if !set.Intersects([]Region{{Province: "부산", District: "해운대구"}, r}) {
		t.Fatalf("expected intersection")
	}
	if set.Intersects([]Region{{Province: "서울", District: "서초구"}}) {
		t.Fatalf("expected no intersection")
	}
}

func TestNormalizeRegions(t *testing.T) {
	r := Region{Province: "서울", District: "강남구"}
	out, err := NormalizeRegions([]Region{r, r, {Province: "부산", District: "해운대구"}})
	if err != nil || len(out) != 2 || out[0] != r {
		t.Fatalf("unexpected: %+v %v", out, err)
	}
	if _, err := NormalizeRegions([]Region{{Province: "서울"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeServiceTypes(t *testing.T) {
	tags, hasOther := NormalizeServiceTypes([]string{" 청소 ", "방역", "청소", "", ServiceTypeOther})
	if len(tags) != 3 || tags[0] != "청소" || !hasOther {
		t.Fatalf("unexpected: %v %v", tags, hasOther)
	}
	_, hasOther = NormalizeServiceTypes([]string{"청소"})
	if hasOther {
		t.Fatalf("expected no other tag")
	}
}

func TestNormalizeSeniorRows(t *testing.T) {
	rows, err := NormalizeSeniorRows([]SeniorWorkRow{
		{RowID: 9, LocationName: "행복경로당", WorkDate: "2026-05-01"},
		{RowID: 9, LocationName: "사랑경로당", Status: "done"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].RowID != 1 || rows[1].RowID != 2 {
		t.Fatalf("expected renumbered rows: %+v", rows)
	}
	if rows[0].Status != WorkRowStatusWait || rows[1].Status != WorkRowStatusDone {
		t.Fatalf("unexpected statuses: %+v", rows)
	}

	if _, err := NormalizeSeniorRows([]SeniorWorkRow{{Status: "CANCELLED"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := NormalizeSeniorRows([]SeniorWorkRow{{WorkDate: "2026/05/01"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}

	empty, err := NormalizeSeniorRows(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("unexpected: %+v %v", empty, err)
	}
}

func TestChangeEvent_Touches(t *testing.T) {
	e := ChangeEvent{Views: []View{ViewRequestList, ViewRequestDetail}}
	if !e.Touches(ViewRequestDetail) || e.Touches(ViewCompanyQueue) {
		t.Fatalf("unexpected touches result")
	}
}
