package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"
	mock_interfaces "cleaning_coop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceRequestUseCase_Create(t *testing.T) {
	t.Run("missing organization", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceRequestInput{ContactName: "김담당"})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("other tag without description", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceRequestInput{
			OrganizationName: "행복복지관",
			ContactName:      "김담당",
			ServiceTypes:     []string{"청소", entities.ServiceTypeOther},
		})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid desired date", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceRequestInput{
			OrganizationName: "행복복지관",
			ContactName:      "김담당",
			DesiredDate:      "05/01/2026",
		})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("id allocation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewServiceRequestUseCase(nil, ids, nil)

		ids.EXPECT().NextID(gomock.Any(), sequenceServiceRequest).Return(int64(0), errors.New("dynamo down"))

		_, err := uc.Create(context.Background(), CreateServiceRequestInput{OrganizationName: "행복복지관", ContactName: "김담당"})
		if !errors.Is(err, entities.ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})

	t.Run("success starts in WAIT", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, ids, notifier)

		ids.EXPECT().NextID(gomock.Any(), sequenceServiceRequest).Return(int64(12), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID != 12 || r.Status != entities.RequestStatusWait || r.OrganizationName != "행복복지관" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.OtherDescription != "" {
					t.Fatalf("expected other description to be dropped, got %q", r.OtherDescription)
				}
				if len(r.SeniorRows) != 1 || r.SeniorRows[0].RowID != 1 || r.SeniorRows[0].Status != entities.WorkRowStatusWait {
					t.Fatalf("expected normalized rows, got %+v", r.SeniorRows)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ChangeEvent) error {
				if e.Type != entities.ChangeRequestCreated || e.RequestID != 12 || e.ID == "" || !e.Touches(entities.ViewRequestList) {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), CreateServiceRequestInput{
			OrganizationName: " 행복복지관 ",
			ContactName:      "김담당",
			ServiceTypes:     []string{"청소"},
			OtherDescription: "ignored",
			SeniorRows:       []entities.SeniorWorkRow{{RowID: 5, LocationName: "행복경로당"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 12 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceRequestUseCase_ChangeStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.ChangeStatus(context.Background(), 1, ChangeStatusInput{Status: "CLOSED"})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.ChangeStatus(context.Background(), 0, ChangeStatusInput{Status: entities.RequestStatusDone})
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{}, nil)

		_, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusDone})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("wait to done is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusWait}, nil)

		_, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusDone})
		var te *entities.TransitionError
		if !errors.As(err, &te) || te.From != "WAIT" || te.To != "DONE" || te.Reason != "" {
			t.Fatalf("expected WAIT->DONE transition error, got %v", err)
		}
	})

	t.Run("cancelled stays cancelled without override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusCancelled}, nil).Times(3)

		for _, to := range []entities.RequestStatus{entities.RequestStatusWait, entities.RequestStatusInProgress, entities.RequestStatusDone} {
			_, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: to})
			var te *entities.TransitionError
			if !errors.As(err, &te) || te.Reason != "terminal status" {
				t.Fatalf("CANCELLED -> %s: expected terminal transition error, got %v", to, err)
			}
		}
	})

	t.Run("cancel records memo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, notifier)

		cur := &entities.Assignment{ID: 9, CompanyID: 4, Status: entities.AssignmentStatusAccepted}
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusInProgress}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), gomock.AssignableToTypeOf(interfaces.StatusChange{})).DoAndReturn(
			func(_ context.Context, _ int64, c interfaces.StatusChange) (entities.ServiceRequest, error) {
				if c.From != entities.RequestStatusInProgress || c.To != entities.RequestStatusCancelled {
					t.Fatalf("unexpected change: %+v", c)
				}
				if c.CancelMemo != "기관 사정" || c.CancelledAt == nil {
					t.Fatalf("expected memo and cancelled_at: %+v", c)
				}
				return entities.ServiceRequest{ID: 3, Status: c.To, CancelMemo: c.CancelMemo, CancelledAt: c.CancelledAt, CurrentAssignment: cur, CurrentAssignmentID: 9}, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ChangeEvent) error {
				if e.CompanyID != 4 || !e.Touches(entities.ViewCompanyQueue) || e.Status != "CANCELLED" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			},
		)

		res, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusCancelled, CancelMemo: " 기관 사정 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled || res.CancelMemo != "기관 사정" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("reopen with override keeps memo out of the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusCancelled, CancelMemo: "기관 사정"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, c interfaces.StatusChange) (entities.ServiceRequest, error) {
				if c.To != entities.RequestStatusWait || c.CancelMemo != "" || c.CancelledAt != nil || c.ReleaseAssignment {
					t.Fatalf("unexpected change: %+v", c)
				}
				return entities.ServiceRequest{ID: 3, Status: c.To, CancelMemo: "기관 사정"}, nil
			},
		)

		res, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusWait, Override: true})
		if err != nil || res.Status != entities.RequestStatusWait {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("reopen releases the current assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, notifier)

		pending := &entities.Assignment{ID: 40, RequestID: 3, CompanyID: 7, Status: entities.AssignmentStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{
			ID:                  3,
			Status:              entities.RequestStatusCancelled,
			CurrentAssignmentID: 40,
			CurrentAssignment:   pending,
		}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, c interfaces.StatusChange) (entities.ServiceRequest, error) {
				if !c.ReleaseAssignment {
					t.Fatalf("expected assignment release, got %+v", c)
				}
				return entities.ServiceRequest{ID: 3, Status: c.To}, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.ChangeEvent) error {
			if e.CompanyID != 7 || !e.Touches(entities.ViewCompanyQueue) {
				t.Fatalf("expected old company queue invalidated, got %+v", e)
			}
			return nil
		})

		res, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusWait, Override: true})
		if err != nil || res.CurrentAssignment != nil {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("concurrent change loses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusInProgress}, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), gomock.Any()).Return(entities.ServiceRequest{}, interfaces.ErrConditionFailed),
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusCancelled}, nil),
		)

		_, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusDone})
		var te *entities.TransitionError
		if !errors.As(err, &te) || te.From != "CANCELLED" {
			t.Fatalf("expected transition error from CANCELLED, got %v", err)
		}
	})

	t.Run("notify failure does not fail the change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusInProgress}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), gomock.Any()).Return(entities.ServiceRequest{ID: 3, Status: entities.RequestStatusDone}, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := uc.ChangeStatus(context.Background(), 3, ChangeStatusInput{Status: entities.RequestStatusDone})
		if err != nil || res.Status != entities.RequestStatusDone {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})
}

func TestServiceRequestUseCase_ApplyRegions(t *testing.T) {
	gangnam := entities.Region{Province: "서울", District: "강남구"}

	t.Run("invalid region", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.ApplyRegions(context.Background(), 1, []entities.Region{{Province: "서울"}})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("cancelled request is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusCancelled}, nil)

		_, err := uc.ApplyRegions(context.Background(), 1, []entities.Region{gangnam})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("dedupes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait}, nil)
		repo.EXPECT().UpdateRegions(gomock.Any(), int64(1), []entities.Region{gangnam}, gomock.Any()).
			Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait, SelectedRegions: []entities.Region{gangnam}}, nil)

		res, err := uc.ApplyRegions(context.Background(), 1, []entities.Region{gangnam, gangnam})
		if err != nil || len(res.SelectedRegions) != 1 {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("invalidates list and detail views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait}, nil)
		repo.EXPECT().UpdateRegions(gomock.Any(), int64(1), []entities.Region{gangnam}, gomock.Any()).
			Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait, SelectedRegions: []entities.Region{gangnam}}, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.ChangeEvent) error {
			if e.Type != entities.ChangeRegionsApplied {
				t.Fatalf("expected %s, got %s", entities.ChangeRegionsApplied, e.Type)
			}
			if !e.Touches(entities.ViewRequestList) || !e.Touches(entities.ViewRequestDetail) {
				t.Fatalf("expected list and detail views, got %v", e.Views)
			}
			return nil
		})

		if _, err := uc.ApplyRegions(context.Background(), 1, []entities.Region{gangnam}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty list clears selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait, SelectedRegions: []entities.Region{gangnam}}, nil)
		repo.EXPECT().UpdateRegions(gomock.Any(), int64(1), gomock.Len(0), gomock.Any()).
			Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait}, nil)

		res, err := uc.ApplyRegions(context.Background(), 1, nil)
		if err != nil || res.HasRegionSelection() {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})
}

func TestServiceRequestUseCase_SaveSeniorWorkRows(t *testing.T) {
	t.Run("invalid row status", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.SaveSeniorWorkRows(context.Background(), 1, []entities.SeniorWorkRow{{Status: "CANCELLED"}})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("request status is not derived from rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusInProgress}, nil)
		repo.EXPECT().UpdateSeniorRows(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, rows []entities.SeniorWorkRow, _ time.Time) (entities.ServiceRequest, error) {
				if len(rows) != 2 || rows[0].RowID != 1 || rows[1].RowID != 2 {
					t.Fatalf("expected renumbered rows, got %+v", rows)
				}
				return entities.ServiceRequest{ID: 1, Status: entities.RequestStatusInProgress, SeniorRows: rows}, nil
			},
		)

		res, err := uc.SaveSeniorWorkRows(context.Background(), 1, []entities.SeniorWorkRow{
			{RowID: 4, LocationName: "행복경로당", Status: entities.WorkRowStatusDone},
			{RowID: 4, LocationName: "사랑경로당", Status: entities.WorkRowStatusDone},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusInProgress {
			t.Fatalf("expected request status untouched, got %s", res.Status)
		}
	})

	t.Run("cancelled in between", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusInProgress}, nil),
			repo.EXPECT().UpdateSeniorRows(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, interfaces.ErrConditionFailed),
			repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusCancelled}, nil),
		)

		_, err := uc.SaveSeniorWorkRows(context.Background(), 1, []entities.SeniorWorkRow{{LocationName: "행복경로당"}})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.ServiceRequest{ID: 1, Status: entities.RequestStatusWait}, nil)
		repo.EXPECT().UpdateSeniorRows(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, errors.New("throttled"))

		_, err := uc.SaveSeniorWorkRows(context.Background(), 1, nil)
		if !errors.Is(err, entities.ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})
}

func TestServiceRequestUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	uc := NewServiceRequestUseCase(repo, nil, nil)

	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any(), interfaces.RequestFilter{Status: entities.RequestStatusWait}).Return([]entities.ServiceRequest{
		{ID: 1, CreatedAt: t0},
		{ID: 2, CreatedAt: t0.Add(time.Hour)},
	}, nil)

	res, err := uc.List(context.Background(), interfaces.RequestFilter{Status: entities.RequestStatusWait})
	if err != nil || len(res) != 2 || res[0].ID != 2 {
		t.Fatalf("expected newest first, got %+v %v", res, err)
	}

	if _, err := uc.List(context.Background(), interfaces.RequestFilter{Status: "OPEN"}); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
