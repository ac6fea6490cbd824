package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/matching"
	"cleaning_coop/internal/usecase/interfaces"
)

// IAssignmentUseCase links requests to companies.
//
//   - admin "배정" => Create(): eligibility check, then assignment + WAIT->IN_PROGRESS
//     committed together
//   - company queue actions => Accept(), Decline(), Start()
type IAssignmentUseCase interface {
	Create(ctx context.Context, requestID, companyID int64) (entities.Assignment, error)
	Accept(ctx context.Context, id int64) (entities.Assignment, error)
	Decline(ctx context.Context, id int64, memo string) (entities.Assignment, error)
	Start(ctx context.Context, id int64) (entities.Assignment, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Assignment, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]entities.Assignment, error)
}

type AssignmentUseCase struct {
	repo        interfaces.IAssignmentRepository
	requestRepo interfaces.IServiceRequestRepository
	companyRepo interfaces.ICompanyRepository
	ids         interfaces.IIDGenerator
	notifier    interfaces.INotifier
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	repo interfaces.IAssignmentRepository,
	requestRepo interfaces.IServiceRequestRepository,
	companyRepo interfaces.ICompanyRepository,
	ids interfaces.IIDGenerator,
	notifier interfaces.INotifier,
) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo, requestRepo: requestRepo, companyRepo: companyRepo, ids: ids, notifier: notifier}
}

func (u *AssignmentUseCase) Create(ctx context.Context, requestID, companyID int64) (entities.Assignment, error) {
	log.Printf("[assignment][usecase] create start request_id=%d company_id=%d", requestID, companyID)
	if companyID <= 0 {
		return entities.Assignment{}, ErrInvalidCompanyID
	}

	req, err := loadRequest(ctx, u.requestRepo, requestID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if err := req.EnsureMutable("assign company"); err != nil {
		return entities.Assignment{}, err
	}
	if req.HasActiveAssignment() {
		cur := req.CurrentAssignment
		log.Printf("[assignment][usecase] already assigned request_id=%d assignment_id=%d company_id=%d status=%s", requestID, cur.ID, cur.CompanyID, cur.Status)
		return entities.Assignment{}, alreadyAssigned(requestID, cur)
	}

	company, err := loadCompany(ctx, u.companyRepo, companyID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if err := matching.Eligible(company, req.SelectedRegions); err != nil {
		log.Printf("[assignment][usecase] ineligible request_id=%d company_id=%d err=%v", requestID, companyID, err)
		return entities.Assignment{}, err
	}

	id, err := u.ids.NextID(ctx, sequenceAssignment)
	if err != nil {
		return entities.Assignment{}, dependencyError("allocate assignment id", err)
	}

	next := req.Status
	if next == entities.RequestStatusWait {
		next = entities.RequestStatusInProgress
	}
	ts := now()
	a := entities.Assignment{
		ID:        id,
		RequestID: requestID,
		CompanyID: companyID,
		Status:    entities.AssignmentStatusPending,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	created, err := u.repo.CreateForRequest(ctx, a, interfaces.AssignmentGuard{
		RequestStatus:       req.Status,
		CurrentAssignmentID: req.CurrentAssignmentID,
		NextRequestStatus:   next,
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[assignment][usecase] concurrent assignment request_id=%d company_id=%d", requestID, companyID)
		return entities.Assignment{}, u.conflict(ctx, requestID)
	}
	if err != nil {
		log.Printf("[assignment][usecase] create failed request_id=%d company_id=%d err=%v", requestID, companyID, err)
		return entities.Assignment{}, dependencyError("create assignment", err)
	}
	log.Printf("[assignment][usecase] create success request_id=%d assignment_id=%d request_status=%s", requestID, created.ID, next)

	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeAssignmentCreated,
		RequestID: requestID,
		CompanyID: companyID,
		Views:     []entities.View{entities.ViewRequestList, entities.ViewRequestDetail, entities.ViewCompanyQueue},
		Status:    string(created.Status),
	})
	return created, nil
}

// conflict explains a lost assignment race. A concurrent cancellation wins
// over AlreadyAssigned.
func (u *AssignmentUseCase) conflict(ctx context.Context, requestID int64) error {
	latest, err := loadRequest(ctx, u.requestRepo, requestID)
	if err != nil {
		return err
	}
	if err := latest.EnsureMutable("assign company"); err != nil {
		return err
	}
	return alreadyAssigned(requestID, latest.CurrentAssignment)
}

func alreadyAssigned(requestID int64, cur *entities.Assignment) error {
	if cur == nil {
		return fmt.Errorf("%w: request %d was assigned concurrently", entities.ErrAlreadyAssigned, requestID)
	}
	return fmt.Errorf("%w: request %d has assignment %d (company %d, %s)", entities.ErrAlreadyAssigned, requestID, cur.ID, cur.CompanyID, cur.Status)
}

func (u *AssignmentUseCase) Accept(ctx context.Context, id int64) (entities.Assignment, error) {
	return u.transition(ctx, id, entities.AssignmentStatusAccepted, "")
}

func (u *AssignmentUseCase) Decline(ctx context.Context, id int64, memo string) (entities.Assignment, error) {
	return u.transition(ctx, id, entities.AssignmentStatusDeclined, strings.TrimSpace(memo))
}

func (u *AssignmentUseCase) Start(ctx context.Context, id int64) (entities.Assignment, error) {
	return u.transition(ctx, id, entities.AssignmentStatusInProgress, "")
}

func (u *AssignmentUseCase) transition(ctx context.Context, id int64, next entities.AssignmentStatus, memo string) (entities.Assignment, error) {
	log.Printf("[assignment][usecase] transition start assignment_id=%d to=%s", id, next)
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}

	req, err := loadRequest(ctx, u.requestRepo, current.RequestID)
	if err != nil {
		return entities.Assignment{}, err
	}
	if err := req.EnsureMutable("change assignment"); err != nil {
		return entities.Assignment{}, err
	}
	if req.CurrentAssignmentID != current.ID {
		return entities.Assignment{}, &entities.TransitionError{
			Entity: "assignment",
			ID:     id,
			From:   string(current.Status),
			To:     string(next),
			Reason: "assignment is history, not the request's current assignment",
		}
	}

	moved, err := current.Transition(next, memo, now())
	if err != nil {
		log.Printf("[assignment][usecase] invalid transition assignment_id=%d from=%s to=%s", id, current.Status, next)
		return entities.Assignment{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, moved, current.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		latest, lerr := u.load(ctx, id)
		if lerr != nil {
			return entities.Assignment{}, lerr
		}
		return entities.Assignment{}, &entities.TransitionError{
			Entity: "assignment",
			ID:     id,
			From:   string(latest.Status),
			To:     string(next),
			Reason: "assignment or request changed concurrently",
		}
	}
	if err != nil {
		log.Printf("[assignment][usecase] transition failed assignment_id=%d err=%v", id, err)
		return entities.Assignment{}, dependencyError("update assignment status", err)
	}
	log.Printf("[assignment][usecase] transition success assignment_id=%d from=%s to=%s", id, current.Status, updated.Status)

	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeAssignmentStatusChanged,
		RequestID: updated.RequestID,
		CompanyID: updated.CompanyID,
		Views:     []entities.View{entities.ViewRequestList, entities.ViewRequestDetail, entities.ViewCompanyQueue},
		Status:    string(updated.Status),
	})
	return updated, nil
}

func (u *AssignmentUseCase) load(ctx context.Context, id int64) (entities.Assignment, error) {
	if id <= 0 {
		return entities.Assignment{}, ErrInvalidAssignmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assignment{}, dependencyError("load assignment", err)
	}
	if a.ID == 0 {
		return entities.Assignment{}, fmt.Errorf("%w: assignment %d", entities.ErrNotFound, id)
	}
	return a, nil
}

func (u *AssignmentUseCase) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Assignment, error) {
	if _, err := loadRequest(ctx, u.requestRepo, requestID); err != nil {
		return nil, err
	}
	items, err := u.repo.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, dependencyError("list request assignments", err)
	}
	sortNewestFirst(items)
	return items, nil
}

func (u *AssignmentUseCase) ListByCompanyID(ctx context.Context, companyID int64) ([]entities.Assignment, error) {
	if _, err := loadCompany(ctx, u.companyRepo, companyID); err != nil {
		return nil, err
	}
	items, err := u.repo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, dependencyError("list company assignments", err)
	}
	sortNewestFirst(items)
	return items, nil
}

func sortNewestFirst(items []entities.Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}
