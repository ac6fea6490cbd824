package entities

import (
	"fmt"
	"time"
)

// CompanyStatus is the approval state maintained by the admin approval workflow.
type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "PENDING"
	CompanyStatusApproved CompanyStatus = "APPROVED"
	CompanyStatusRejected CompanyStatus = "REJECTED"
)

func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyStatusPending, CompanyStatusApproved, CompanyStatusRejected:
		return true
	}
	return false
}

func ParseCompanyStatus(v string) (CompanyStatus, error) {
	s := CompanyStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown company status %q", ErrInvalidInput, v)
	}
	return s, nil
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Company is a service company that can be matched and assigned to requests.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - regions stored as a string set of "province>district"
type Company struct {
	ID                   int64         `json:"id"`
	Name                 string        `json:"name"`
	CEOName              string        `json:"ceo_name"`
	BusinessRegistration string        `json:"business_registration_number"`
	Tel                  string        `json:"tel"`
	Email                string        `json:"email"`
	Homepage             string        `json:"homepage"`
	Address              string        `json:"address"`
	Location             *GeoPoint     `json:"location,omitempty"`
	Regions              []Region      `json:"regions"`
	Certifications       []string      `json:"certifications"`
	Status               CompanyStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (c Company) IsApproved() bool {
	return c.Status == CompanyStatusApproved
}

// ServesAny reports whether the company covers at least one selected region.
func (c Company) ServesAny(selected RegionSet) bool {
	return selected.Intersects(c.Regions)
}
