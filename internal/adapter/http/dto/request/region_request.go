package request

import (
	"fmt"
	"strings"

	"cleaning_coop/internal/domain/entities"
)

// RegionRequest accepts either {"province","district"} or {"key":"서울>강남구"}.
type RegionRequest struct {
	Province string `json:"province"`
	District string `json:"district"`
	Key      string `json:"key"`
}

func (r RegionRequest) ToRegion() (entities.Region, error) {
	if k := strings.TrimSpace(r.Key); k != "" {
		return entities.ParseRegion(k)
	}
	region := entities.Region{Province: strings.TrimSpace(r.Province), District: strings.TrimSpace(r.District)}
	if err := region.Validate(); err != nil {
		return entities.Region{}, err
	}
	return region, nil
}

func toRegions(in []RegionRequest) ([]entities.Region, error) {
	out := make([]entities.Region, 0, len(in))
	for i, r := range in {
		region, err := r.ToRegion()
		if err != nil {
			return nil, fmt.Errorf("regions[%d]: %w", i, err)
		}
		out = append(out, region)
	}
	return out, nil
}

// ApplyRegionsRequest replaces the committed selection. An empty list clears it.
type ApplyRegionsRequest struct {
	Regions []RegionRequest `json:"regions"`
}

func (r ApplyRegionsRequest) ToRegions() ([]entities.Region, error) {
	return toRegions(r.Regions)
}

// MatchCompaniesRequest is a speculative match against an uncommitted selection.
type MatchCompaniesRequest struct {
	Regions []RegionRequest `json:"regions"`
	Order   string          `json:"order"`
}

func (r MatchCompaniesRequest) ToRegions() ([]entities.Region, error) {
	return toRegions(r.Regions)
}
