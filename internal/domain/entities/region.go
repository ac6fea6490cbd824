package entities

import (
	"fmt"
	"strings"
)

const regionSeparator = ">"

// Region is a (province, district) eligibility tag. Two regions are equal
// only when both components match exactly.
type Region struct {
	Province string `json:"province"`
	District string `json:"district"`
}

// Key is the canonical "{province}>{district}" form.
func (r Region) Key() string {
	return r.Province + regionSeparator + r.District
}

func (r Region) String() string {
	return r.Key()
}

// Validate rejects empty components and components containing the separator.
func (r Region) Validate() error {
	if r.Province == "" || r.District == "" {
		return fmt.Errorf("%w: region %q has empty component", ErrInvalidInput, r.Key())
	}
	if strings.Contains(r.Province, regionSeparator) || strings.Contains(r.District, regionSeparator) {
		return fmt.Errorf("%w: region %q contains %q", ErrInvalidInput, r.Key(), regionSeparator)
	}
	return nil
}

// ParseRegion parses the canonical form. Components are taken verbatim.
func ParseRegion(key string) (Region, error) {
	province, district, ok := strings.Cut(key, regionSeparator)
	if !ok {
		return Region{}, fmt.Errorf("%w: region %q is not in province>district form", ErrInvalidInput, key)
	}
	r := Region{Province: province, District: district}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// RegionSet is an unordered set of regions keyed by canonical form.
type RegionSet map[string]Region

func NewRegionSet(regions ...Region) RegionSet {
	s := make(RegionSet, len(regions))
	for _, r := range regions {
		s[r.Key()] = r
	}
	return s
}

func (s RegionSet) Contains(r Region) bool {
	_, ok := s[r.Key()]
	return ok
}

// Intersects reports whether any of regions is in s.
func (s RegionSet) Intersects(regions []Region) bool {
	for _, r := range regions {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

// NormalizeRegions validates regions and drops duplicates, keeping first
// occurrence order.
func NormalizeRegions(regions []Region) ([]Region, error) {
	seen := make(map[string]struct{}, len(regions))
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}
