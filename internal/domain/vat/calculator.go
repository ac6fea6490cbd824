// Package vat computes estimate totals from line amounts in whole KRW.
//
// Rounding:
//   - tax-exclusive amounts: vat = floor(sum * rate), subtotal = sum
//   - tax-inclusive amounts: subtotal = round(total / (1 + rate)) half away
//     from zero, vat = total - subtotal
//
// Both modes keep subtotal + vat == total exactly.
package vat

import (
	"fmt"

	"cleaning_coop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Rate is a VAT rate. Only RateNone and RateStandard are accepted.
type Rate float64

const (
	RateNone     Rate = 0
	RateStandard Rate = 0.10
)

// ParseRate accepts exactly 0 or 0.10.
func ParseRate(v float64) (Rate, error) {
	switch Rate(v) {
	case RateNone, RateStandard:
		return Rate(v), nil
	}
	return 0, fmt.Errorf("%w: vat_rate %v not in {0, 0.10}", entities.ErrInvalidVatConfiguration, v)
}

func (r Rate) decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(r))
}

// Totals is the calculator output.
type Totals struct {
	Subtotal int64
	VAT      int64
	Total    int64
	// VATIncluded is the effective mode after coercion (false when rate is 0).
	VATIncluded bool
}

// Calculate sums amounts and splits the sum into subtotal / vat / total.
// Negative amounts are neither rejected nor clamped.
func Calculate(amounts []int64, rate Rate, vatIncluded bool) (Totals, error) {
	if _, err := ParseRate(float64(rate)); err != nil {
		return Totals{}, err
	}

	var sum int64
	for _, a := range amounts {
		sum += a
	}

	if rate == RateNone {
		return Totals{Subtotal: sum, VAT: 0, Total: sum}, nil
	}

	s := decimal.NewFromInt(sum)
	if !vatIncluded {
		tax := s.Mul(rate.decimal()).Floor().IntPart()
		return Totals{Subtotal: sum, VAT: tax, Total: sum + tax}, nil
	}

	subtotal := s.DivRound(decimal.NewFromInt(1).Add(rate.decimal()), 0).IntPart()
	return Totals{Subtotal: subtotal, VAT: sum - subtotal, Total: sum, VATIncluded: true}, nil
}
