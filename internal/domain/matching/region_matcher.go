package matching

import (
	"fmt"
	"sort"
	"strings"

	"cleaning_coop/internal/domain/entities"
)

// Order controls the result ordering of Match.
type Order string

const (
	OrderNewest Order = "newest"
	OrderOldest Order = "oldest"
	OrderName   Order = "name"
)

func ParseOrder(v string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(v))); o {
	case "":
		return OrderNewest, nil
	case OrderNewest, OrderOldest, OrderName:
		return o, nil
	}
	return "", fmt.Errorf("%w: unknown order %q", entities.ErrInvalidInput, v)
}

// Result distinguishes "no regions selected yet" (Applied=false) from
// "selection applied, nothing matched" (Applied=true, empty Companies).
type Result struct {
	Applied   bool
	Selected  []entities.Region
	Companies []entities.Company
}

// Match returns the approved companies serving at least one selected region.
// It never mutates its inputs.
func Match(selected []entities.Region, pool []entities.Company, order Order) Result {
	if len(selected) == 0 {
		return Result{Applied: false}
	}

	set := entities.NewRegionSet(selected...)
	out := make([]entities.Company, 0)
	for _, c := range pool {
		if c.IsApproved() && c.ServesAny(set) {
			out = append(out, c)
		}
	}
	sortCompanies(out, order)

	sel := make([]entities.Region, len(selected))
	copy(sel, selected)
	return Result{Applied: true, Selected: sel, Companies: out}
}

// Eligible reports whether company may be assigned under the selected regions.
func Eligible(company entities.Company, selected []entities.Region) error {
	if !company.IsApproved() {
		return fmt.Errorf("%w: company %d has status %s", entities.ErrIneligible, company.ID, company.Status)
	}
	if len(selected) == 0 {
		return fmt.Errorf("%w: no regions selected", entities.ErrIneligible)
	}
	if !company.ServesAny(entities.NewRegionSet(selected...)) {
		return fmt.Errorf("%w: company %d serves none of %s", entities.ErrIneligible, company.ID, joinRegions(selected))
	}
	return nil
}

func sortCompanies(cs []entities.Company, order Order) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		switch order {
		case OrderOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		case OrderName:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	})
}

func joinRegions(rs []entities.Region) string {
	keys := make([]string, len(rs))
	for i, r := range rs {
		keys[i] = r.Key()
	}
	return "[" + strings.Join(keys, ", ") + "]"
}
