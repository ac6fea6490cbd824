package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/matching"
	"cleaning_coop/internal/usecase/interfaces"
)

// RegisterCompanyInput is a company joining the pool; it starts PENDING.
type RegisterCompanyInput struct {
	Name                 string
	CEOName              string
	BusinessRegistration string
	Tel                  string
	Email                string
	Homepage             string
	Address              string
	Location             *entities.GeoPoint
	Regions              []entities.Region
	Certifications       []string
}

// ICompanyUseCase serves the company pool.
//
// Match() is the pure region query the admin runs while editing a selection;
// MatchForRequest() runs it with the request's applied selection.
type ICompanyUseCase interface {
	Register(ctx context.Context, in RegisterCompanyInput) (entities.Company, error)
	GetByID(ctx context.Context, id int64) (entities.Company, error)
	List(ctx context.Context, status entities.CompanyStatus) ([]entities.Company, error)
	SetApproval(ctx context.Context, id int64, status entities.CompanyStatus) (entities.Company, error)
	Match(ctx context.Context, regions []entities.Region, order matching.Order) (matching.Result, error)
	MatchForRequest(ctx context.Context, requestID int64, order matching.Order) (matching.Result, error)
}

type CompanyUseCase struct {
	repo        interfaces.ICompanyRepository
	requestRepo interfaces.IServiceRequestRepository
	ids         interfaces.IIDGenerator
	notifier    interfaces.INotifier
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository, requestRepo interfaces.IServiceRequestRepository, ids interfaces.IIDGenerator, notifier interfaces.INotifier) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, requestRepo: requestRepo, ids: ids, notifier: notifier}
}

func (u *CompanyUseCase) Register(ctx context.Context, in RegisterCompanyInput) (entities.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Company{}, fmt.Errorf("%w: company name is required", entities.ErrInvalidInput)
	}
	regions, err := entities.NormalizeRegions(in.Regions)
	if err != nil {
		return entities.Company{}, err
	}

	id, err := u.ids.NextID(ctx, sequenceCompany)
	if err != nil {
		return entities.Company{}, dependencyError("allocate company id", err)
	}
	ts := now()
	c := entities.Company{
		ID:                   id,
		Name:                 name,
		CEOName:              strings.TrimSpace(in.CEOName),
		BusinessRegistration: strings.TrimSpace(in.BusinessRegistration),
		Tel:                  strings.TrimSpace(in.Tel),
		Email:                strings.TrimSpace(in.Email),
		Homepage:             strings.TrimSpace(in.Homepage),
		Address:              strings.TrimSpace(in.Address),
		Location:             in.Location,
		Regions:              regions,
		Certifications:       append([]string{}, in.Certifications...),
		Status:               entities.CompanyStatusPending,
		CreatedAt:            ts,
		UpdatedAt:            ts,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[company][usecase] register failed company_id=%d err=%v", id, err)
		return entities.Company{}, dependencyError("create company", err)
	}
	log.Printf("[company][usecase] registered company_id=%d regions=%d", created.ID, len(created.Regions))
	return created, nil
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id int64) (entities.Company, error) {
	return loadCompany(ctx, u.repo, id)
}

func (u *CompanyUseCase) List(ctx context.Context, status entities.CompanyStatus) ([]entities.Company, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown company status %q", entities.ErrInvalidInput, status)
	}
	items, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, dependencyError("list companies", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (u *CompanyUseCase) SetApproval(ctx context.Context, id int64, status entities.CompanyStatus) (entities.Company, error) {
	if !status.Valid() {
		return entities.Company{}, fmt.Errorf("%w: unknown company status %q", entities.ErrInvalidInput, status)
	}
	if _, err := loadCompany(ctx, u.repo, id); err != nil {
		return entities.Company{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, now())
	if err != nil {
		log.Printf("[company][usecase] set-approval failed company_id=%d err=%v", id, err)
		return entities.Company{}, dependencyError("update company status", err)
	}
	if updated.ID == 0 {
		return entities.Company{}, fmt.Errorf("%w: company %d", entities.ErrNotFound, id)
	}
	log.Printf("[company][usecase] set-approval success company_id=%d status=%s", id, updated.Status)

	publish(ctx, u.notifier, entities.ChangeEvent{
		Type:      entities.ChangeCompanyUpdated,
		CompanyID: id,
		Views:     []entities.View{entities.ViewCompanyQueue},
		Status:    string(updated.Status),
	})
	return updated, nil
}

func (u *CompanyUseCase) Match(ctx context.Context, regions []entities.Region, order matching.Order) (matching.Result, error) {
	selected, err := entities.NormalizeRegions(regions)
	if err != nil {
		return matching.Result{}, err
	}
	if len(selected) == 0 {
		return matching.Match(nil, nil, order), nil
	}

	pool, err := u.repo.List(ctx, entities.CompanyStatusApproved)
	if err != nil {
		return matching.Result{}, dependencyError("load company pool", err)
	}
	return matching.Match(selected, pool, order), nil
}

func (u *CompanyUseCase) MatchForRequest(ctx context.Context, requestID int64, order matching.Order) (matching.Result, error) {
	req, err := loadRequest(ctx, u.requestRepo, requestID)
	if err != nil {
		return matching.Result{}, err
	}
	return u.Match(ctx, req.SelectedRegions, order)
}
