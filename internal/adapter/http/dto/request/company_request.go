package request

import (
	"fmt"
	"strings"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase"
)

type GeoPointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RegisterCompanyRequest struct {
	Name                 string           `json:"name" binding:"required"`
	CEOName              string           `json:"ceo_name"`
	BusinessRegistration string           `json:"business_registration_number"`
	Tel                  string           `json:"tel"`
	Email                string           `json:"email"`
	Homepage             string           `json:"homepage"`
	Address              string           `json:"address"`
	Location             *GeoPointRequest `json:"location"`
	Regions              []RegionRequest  `json:"regions"`
	Certifications       []string         `json:"certifications"`
}

func (r RegisterCompanyRequest) ToInput() (usecase.RegisterCompanyInput, error) {
	regions, err := toRegions(r.Regions)
	if err != nil {
		return usecase.RegisterCompanyInput{}, err
	}
	var loc *entities.GeoPoint
	if r.Location != nil {
		loc = &entities.GeoPoint{Lat: r.Location.Lat, Lng: r.Location.Lng}
	}
	return usecase.RegisterCompanyInput{
		Name:                 r.Name,
		CEOName:              r.CEOName,
		BusinessRegistration: r.BusinessRegistration,
		Tel:                  r.Tel,
		Email:                r.Email,
		Homepage:             r.Homepage,
		Address:              r.Address,
		Location:             loc,
		Regions:              regions,
		Certifications:       r.Certifications,
	}, nil
}

type SetApprovalRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r SetApprovalRequest) ResolveStatus() (entities.CompanyStatus, error) {
	s := strings.ToUpper(strings.TrimSpace(r.Status))
	status, err := entities.ParseCompanyStatus(s)
	if err != nil {
		return "", fmt.Errorf("approval: %w", err)
	}
	return status, nil
}
