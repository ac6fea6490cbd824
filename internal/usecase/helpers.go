package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	sequenceServiceRequest = "service_request"
	sequenceAssignment     = "assignment"
	sequenceCompany        = "company"
)

var (
	ErrInvalidRequestID    = fmt.Errorf("%w: invalid request id", entities.ErrInvalidInput)
	ErrInvalidCompanyID    = fmt.Errorf("%w: invalid company id", entities.ErrInvalidInput)
	ErrInvalidAssignmentID = fmt.Errorf("%w: invalid assignment id", entities.ErrInvalidInput)
)

var domainErrors = []error{
	entities.ErrInvalidTransition,
	entities.ErrIneligible,
	entities.ErrAlreadyAssigned,
	entities.ErrInvalidVatConfiguration,
	entities.ErrNotFound,
	entities.ErrDependencyUnavailable,
	entities.ErrInvalidInput,
}

// dependencyError leaves domain errors untouched and wraps everything else
// (store, renderer, broker failures) as ErrDependencyUnavailable.
func dependencyError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, de := range domainErrors {
		if errors.Is(err, de) {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %v", entities.ErrDependencyUnavailable, op, err)
}

func now() time.Time {
	return time.Now().UTC()
}

// publish stamps and hands the event to the notifier. Failures are logged only.
func publish(ctx context.Context, n interfaces.INotifier, e entities.ChangeEvent) {
	if n == nil {
		return
	}
	e.ID = uuid.NewString()
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now()
	}
	if err := n.Notify(ctx, e); err != nil {
		log.Printf("[events][usecase] notify failed type=%s request_id=%d company_id=%d err=%v", e.Type, e.RequestID, e.CompanyID, err)
	}
}

func requestViews(r entities.ServiceRequest) ([]entities.View, int64) {
	views := []entities.View{entities.ViewRequestList, entities.ViewRequestDetail}
	if r.CurrentAssignment != nil {
		return append(views, entities.ViewCompanyQueue), r.CurrentAssignment.CompanyID
	}
	return views, 0
}

func loadRequest(ctx context.Context, repo interfaces.IServiceRequestRepository, id int64) (entities.ServiceRequest, error) {
	if id <= 0 {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, dependencyError("load request", err)
	}
	if r.ID == 0 {
		return entities.ServiceRequest{}, fmt.Errorf("%w: service request %d", entities.ErrNotFound, id)
	}
	return r, nil
}

func loadCompany(ctx context.Context, repo interfaces.ICompanyRepository, id int64) (entities.Company, error) {
	if id <= 0 {
		return entities.Company{}, ErrInvalidCompanyID
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, dependencyError("load company", err)
	}
	if c.ID == 0 {
		return entities.Company{}, fmt.Errorf("%w: company %d", entities.ErrNotFound, id)
	}
	return c, nil
}
