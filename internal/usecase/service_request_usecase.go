package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"
)

// CreateServiceRequestInput is a client submission.
type CreateServiceRequestInput struct {
	OrganizationName string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	OfficeTel        string
	DesiredDate      string
	Notes            string
	ServiceTypes     []string
	OtherDescription string
	Attachments      []entities.Attachment
	SeniorRows       []entities.SeniorWorkRow
}

// ChangeStatusInput is an administrator status change. Callers confirm
// CANCELLED and reopen transitions before calling; Override unlocks
// CANCELLED -> WAIT.
type ChangeStatusInput struct {
	Status     entities.RequestStatus
	CancelMemo string
	Override   bool
}

// IServiceRequestUseCase covers the request lifecycle:
//   - client intake => Create()
//   - admin status changes, including cancel with memo => ChangeStatus()
//   - admin region selection used by matching/assignment => ApplyRegions()
//   - per-location work rows (wholesale replace) => SaveSeniorWorkRows()
type IServiceRequestUseCase interface {
	Create(ctx context.Context, in CreateServiceRequestInput) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error)
	List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.ServiceRequest, error)
	ChangeStatus(ctx context.Context, id int64, in ChangeStatusInput) (entities.ServiceRequest, error)
	ApplyRegions(ctx context.Context, id int64, regions []entities.Region) (entities.ServiceRequest, error)
	SaveSeniorWorkRows(ctx context.Context, id int64, rows []entities.SeniorWorkRow) (entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo     interfaces.IServiceRequestRepository
	ids      interfaces.IIDGenerator
	notifier interfaces.INotifier
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, ids interfaces.IIDGenerator, notifier interfaces.INotifier) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, ids: ids, notifier: notifier}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, in CreateServiceRequestInput) (entities.ServiceRequest, error) {
	r, err := buildServiceRequest(in)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	id, err := u.ids.NextID(ctx, sequenceServiceRequest)
	if err != nil {
		log.Printf("[request][usecase] id allocation failed err=%v", err)
		return entities.ServiceRequest{}, dependencyError("allocate request id", err)
	}
	ts := now()
	r.ID = id
	r.Status = entities.RequestStatusWait
	r.CreatedAt = ts
	r.UpdatedAt = ts

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed request_id=%d err=%v", id, err)
		return entities.ServiceRequest{}, dependencyError("create request", err)
	}
	log.Printf("[request][usecase] created request_id=%d organization=%q", created.ID, created.OrganizationName)

	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeRequestCreated,
		RequestID: created.ID,
		Views:     []entities.View{entities.ViewRequestList},
		Status:    string(created.Status),
	})
	return created, nil
}

func buildServiceRequest(in CreateServiceRequestInput) (entities.ServiceRequest, error) {
	org := strings.TrimSpace(in.OrganizationName)
	if org == "" {
		return entities.ServiceRequest{}, fmt.Errorf("%w: organization_name is required", entities.ErrInvalidInput)
	}
	contact := strings.TrimSpace(in.ContactName)
	if contact == "" {
		return entities.ServiceRequest{}, fmt.Errorf("%w: contact_name is required", entities.ErrInvalidInput)
	}
	desired := strings.TrimSpace(in.DesiredDate)
	if desired != "" {
		if _, err := entities.ParseDate(desired); err != nil {
			return entities.ServiceRequest{}, err
		}
	}

	tags, hasOther := entities.NormalizeServiceTypes(in.ServiceTypes)
	other := strings.TrimSpace(in.OtherDescription)
	if hasOther && other == "" {
		return entities.ServiceRequest{}, fmt.Errorf("%w: other_description is required when %q is selected", entities.ErrInvalidInput, entities.ServiceTypeOther)
	}
	if !hasOther {
		other = ""
	}

	rows, err := entities.NormalizeSeniorRows(in.SeniorRows)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	attachments := make([]entities.Attachment, len(in.Attachments))
	copy(attachments, in.Attachments)

	return entities.ServiceRequest{
		OrganizationName: org,
		ContactName:      contact,
		ContactEmail:     strings.TrimSpace(in.ContactEmail),
		ContactPhone:     strings.TrimSpace(in.ContactPhone),
		OfficeTel:        strings.TrimSpace(in.OfficeTel),
		DesiredDate:      desired,
		Notes:            in.Notes,
		ServiceTypes:     tags,
		OtherDescription: other,
		Attachments:      attachments,
		SeniorRows:       rows,
		SelectedRegions:  []entities.Region{},
	}, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error) {
	return loadRequest(ctx, u.repo, id)
}

func (u *ServiceRequestUseCase) List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.ServiceRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", entities.ErrInvalidInput, filter.Status)
	}
	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, dependencyError("list requests", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (u *ServiceRequestUseCase) ChangeStatus(ctx context.Context, id int64, in ChangeStatusInput) (entities.ServiceRequest, error) {
	log.Printf("[request][usecase] change-status start request_id=%d to=%s override=%v", id, in.Status, in.Override)
	if !in.Status.Valid() {
		return entities.ServiceRequest{}, fmt.Errorf("%w: unknown request status %q", entities.ErrInvalidInput, in.Status)
	}

	current, err := loadRequest(ctx, u.repo, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !current.Status.CanTransition(in.Status, in.Override) {
		log.Printf("[request][usecase] invalid transition request_id=%d from=%s to=%s", id, current.Status, in.Status)
		te := &entities.TransitionError{
			Entity: "service_request",
			ID:     id,
			From:   string(current.Status),
			To:     string(in.Status),
		}
		if current.Status.IsTerminal() {
			te.Reason = "terminal status"
		}
		return entities.ServiceRequest{}, te
	}

	ts := now()
	change := interfaces.StatusChange{From: current.Status, To: in.Status, At: ts}
	if in.Status == entities.RequestStatusCancelled {
		change.CancelMemo = strings.TrimSpace(in.CancelMemo)
		change.CancelledAt = &ts
	}
	// Reopening starts matching over; the old assignment is history.
	if current.Status == entities.RequestStatusCancelled && in.Status == entities.RequestStatusWait {
		change.ReleaseAssignment = current.CurrentAssignmentID != 0 || current.CurrentAssignment != nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, change)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ServiceRequest{}, u.staleTransition(ctx, id, in.Status)
	}
	if err != nil {
		log.Printf("[request][usecase] change-status failed request_id=%d err=%v", id, err)
		return entities.ServiceRequest{}, dependencyError("update request status", err)
	}
	if updated.ID == 0 {
		return entities.ServiceRequest{}, fmt.Errorf("%w: service request %d", entities.ErrNotFound, id)
	}
	log.Printf("[request][usecase] change-status success request_id=%d from=%s to=%s", id, current.Status, updated.Status)

	views, companyID := requestViews(updated)
	if change.ReleaseAssignment {
		views, companyID = requestViews(current)
	}
	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeRequestStatusChanged,
		RequestID: id,
		CompanyID: companyID,
		Views:     views,
		Status:    string(updated.Status),
	})
	return updated, nil
}

// staleTransition reports a guarded write that lost against a concurrent one.
func (u *ServiceRequestUseCase) staleTransition(ctx context.Context, id int64, to entities.RequestStatus) error {
	latest, err := loadRequest(ctx, u.repo, id)
	if err != nil {
		return err
	}
	log.Printf("[request][usecase] concurrent status change request_id=%d now=%s to=%s", id, latest.Status, to)
	return &entities.TransitionError{
		Entity: "service_request",
		ID:     id,
		From:   string(latest.Status),
		To:     string(to),
		Reason: "status changed concurrently",
	}
}

func (u *ServiceRequestUseCase) ApplyRegions(ctx context.Context, id int64, regions []entities.Region) (entities.ServiceRequest, error) {
	normalized, err := entities.NormalizeRegions(regions)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	current, err := loadRequest(ctx, u.repo, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := current.EnsureMutable("apply regions"); err != nil {
		return entities.ServiceRequest{}, err
	}

	updated, err := u.repo.UpdateRegions(ctx, id, normalized, now())
	if err != nil {
		return entities.ServiceRequest{}, guardedMutationError(ctx, u.repo, id, "apply regions", err)
	}
	log.Printf("[request][usecase] regions applied request_id=%d count=%d", id, len(normalized))

	views, companyID := requestViews(updated)
	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeRegionsApplied,
		RequestID: id,
		CompanyID: companyID,
		Views:     views,
	})
	return updated, nil
}

func (u *ServiceRequestUseCase) SaveSeniorWorkRows(ctx context.Context, id int64, rows []entities.SeniorWorkRow) (entities.ServiceRequest, error) {
	normalized, err := entities.NormalizeSeniorRows(rows)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	current, err := loadRequest(ctx, u.repo, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := current.EnsureMutable("save work rows"); err != nil {
		return entities.ServiceRequest{}, err
	}

	updated, err := u.repo.UpdateSeniorRows(ctx, id, normalized, now())
	if err != nil {
		return entities.ServiceRequest{}, guardedMutationError(ctx, u.repo, id, "save work rows", err)
	}
	log.Printf("[request][usecase] work rows saved request_id=%d rows=%d", id, len(normalized))

	views, companyID := requestViews(updated)
	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeWorkRowsSaved,
		RequestID: id,
		CompanyID: companyID,
		Views:     views,
	})
	return updated, nil
}

// guardedMutationError resolves a failed guarded field update: a request
// cancelled in between is reported as such, anything else as a dependency failure.
func guardedMutationError(ctx context.Context, repo interfaces.IServiceRequestRepository, id int64, action string, err error) error {
	if !errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[request][usecase] %s failed request_id=%d err=%v", action, id, err)
		return dependencyError(action, err)
	}
	latest, lerr := loadRequest(ctx, repo, id)
	if lerr != nil {
		return lerr
	}
	if merr := latest.EnsureMutable(action); merr != nil {
		return merr
	}
	return dependencyError(action, err)
}
