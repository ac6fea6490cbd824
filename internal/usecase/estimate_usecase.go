package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/vat"
	"cleaning_coop/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound = fmt.Errorf("%w: estimate not saved", entities.ErrNotFound)
	ErrInvalidEstimate  = fmt.Errorf("%w: invalid estimate", entities.ErrInvalidInput)
)

// IEstimateUseCase exposes quotation authoring for the assigned company.
//
//   - "견적 저장" => Save(): wholesale replace, totals always recomputed
//   - "미리보기" => Preview(): same validation, rendered to PDF, never stored
type IEstimateUseCase interface {
	Save(ctx context.Context, requestID int64, draft entities.EstimateDraft) (entities.Estimate, error)
	Preview(ctx context.Context, requestID int64, draft entities.EstimateDraft) ([]byte, error)
	GetByRequestID(ctx context.Context, requestID int64) (entities.Estimate, error)
}

type EstimateUseCase struct {
	requestRepo interfaces.IServiceRequestRepository
	renderer    interfaces.IEstimateRenderer
	notifier    interfaces.INotifier
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(requestRepo interfaces.IServiceRequestRepository, renderer interfaces.IEstimateRenderer, notifier interfaces.INotifier) *EstimateUseCase {
	return &EstimateUseCase{requestRepo: requestRepo, renderer: renderer, notifier: notifier}
}

// BuildEstimate validates a draft and derives its totals. It is pure.
func BuildEstimate(draft entities.EstimateDraft) (entities.Estimate, error) {
	rate, err := vat.ParseRate(draft.VATRate)
	if err != nil {
		return entities.Estimate{}, err
	}

	issue := strings.TrimSpace(draft.IssueDate)
	if issue == "" {
		issue = now().Format(entities.DateLayout)
	}
	issueDate, err := entities.ParseDate(issue)
	if err != nil {
		return entities.Estimate{}, err
	}
	validUntil := strings.TrimSpace(draft.ValidUntil)
	if validUntil != "" {
		until, err := entities.ParseDate(validUntil)
		if err != nil {
			return entities.Estimate{}, err
		}
		if until.Before(issueDate) {
			return entities.Estimate{}, fmt.Errorf("%w: valid_until %s is before issue_date %s", ErrInvalidEstimate, validUntil, issue)
		}
	}

	items := make([]entities.EstimateItem, len(draft.Items))
	for i, it := range draft.Items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return entities.Estimate{}, fmt.Errorf("%w: item %d has no name", ErrInvalidEstimate, i+1)
		}
		items[i] = it
	}

	totals, err := vat.Calculate(entities.Amounts(items), rate, draft.VATIncluded)
	if err != nil {
		return entities.Estimate{}, err
	}

	return entities.Estimate{
		Title:       strings.TrimSpace(draft.Title),
		IssueDate:   issue,
		ValidUntil:  validUntil,
		Supplier:    draft.Supplier,
		Client:      draft.Client,
		Items:       items,
		Subtotal:    totals.Subtotal,
		VATRate:     float64(rate),
		VAT:         totals.VAT,
		Total:       totals.Total,
		VATIncluded: totals.VATIncluded,
		Memo:        draft.Memo,
	}, nil
}

func (u *EstimateUseCase) Save(ctx context.Context, requestID int64, draft entities.EstimateDraft) (entities.Estimate, error) {
	log.Printf("[estimate][usecase] save start request_id=%d items=%d vat_rate=%v vat_included=%v", requestID, len(draft.Items), draft.VATRate, draft.VATIncluded)
	estimate, err := BuildEstimate(draft)
	if err != nil {
		log.Printf("[estimate][usecase] invalid draft request_id=%d err=%v", requestID, err)
		return entities.Estimate{}, err
	}

	req, err := loadRequest(ctx, u.requestRepo, requestID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := req.EnsureMutable("save estimate"); err != nil {
		return entities.Estimate{}, err
	}

	ts := now()
	estimate.SavedAt = ts
	updated, err := u.requestRepo.UpdateEstimate(ctx, requestID, estimate, ts)
	if err != nil {
		return entities.Estimate{}, guardedMutationError(ctx, u.requestRepo, requestID, "save estimate", err)
	}
	if updated.Estimate == nil {
		return entities.Estimate{}, dependencyError("save estimate", errors.New("stored request has no estimate"))
	}
	log.Printf("[estimate][usecase] save success request_id=%d subtotal=%d vat=%d total=%d", requestID, estimate.Subtotal, estimate.VAT, estimate.Total)

	views, companyID := requestViews(updated)
	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeEstimateSaved,
		RequestID: requestID,
		CompanyID: companyID,
		Views:     views,
	})
	return *updated.Estimate, nil
}

func (u *EstimateUseCase) Preview(ctx context.Context, requestID int64, draft entities.EstimateDraft) ([]byte, error) {
	estimate, err := BuildEstimate(draft)
	if err != nil {
		return nil, err
	}
	if _, err := loadRequest(ctx, u.requestRepo, requestID); err != nil {
		return nil, err
	}
	if u.renderer == nil {
		return nil, dependencyError("render estimate", errors.New("pdf renderer not configured"))
	}

	pdf, err := u.renderer.Render(ctx, requestID, estimate)
	if err != nil {
		log.Printf("[estimate][usecase] preview render failed request_id=%d err=%v", requestID, err)
		return nil, dependencyError("render estimate", err)
	}
	log.Printf("[estimate][usecase] preview rendered request_id=%d bytes=%d", requestID, len(pdf))
	return pdf, nil
}

func (u *EstimateUseCase) GetByRequestID(ctx context.Context, requestID int64) (entities.Estimate, error) {
	req, err := loadRequest(ctx, u.requestRepo, requestID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if req.Estimate == nil {
		return entities.Estimate{}, fmt.Errorf("%w for request %d", ErrEstimateNotFound, requestID)
	}
	return *req.Estimate, nil
}
