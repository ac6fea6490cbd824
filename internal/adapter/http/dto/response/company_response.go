package response

import (
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/matching"
)

type CompanyResponse struct {
	ID                   int64              `json:"id"`
	Name                 string             `json:"name"`
	CEOName              string             `json:"ceo_name,omitempty"`
	BusinessRegistration string             `json:"business_registration_number,omitempty"`
	Tel                  string             `json:"tel,omitempty"`
	Email                string             `json:"email,omitempty"`
	Homepage             string             `json:"homepage,omitempty"`
	Address              string             `json:"address,omitempty"`
	Location             *entities.GeoPoint `json:"location,omitempty"`
	Regions              []RegionResponse   `json:"regions"`
	Certifications       []string           `json:"certifications"`
	Status               string             `json:"status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		CEOName:              c.CEOName,
		BusinessRegistration: c.BusinessRegistration,
		Tel:                  c.Tel,
		Email:                c.Email,
		Homepage:             c.Homepage,
		Address:              c.Address,
		Location:             c.Location,
		Regions:              FromRegions(c.Regions),
		Certifications:       nonNil(c.Certifications),
		Status:               string(c.Status),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func FromCompanies(items []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCompany(c))
	}
	return out
}

// MatchResponse keeps "not yet applied" (applied=false) apart from
// "applied, nothing matched" (applied=true, count=0).
type MatchResponse struct {
	Applied   bool              `json:"applied"`
	Selected  []RegionResponse  `json:"selected"`
	Companies []CompanyResponse `json:"companies"`
	Count     int               `json:"count"`
}

func FromMatchResult(r matching.Result) MatchResponse {
	return MatchResponse{
		Applied:   r.Applied,
		Selected:  FromRegions(r.Selected),
		Companies: FromCompanies(r.Companies),
		Count:     len(r.Companies),
	}
}
