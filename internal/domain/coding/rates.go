package coding

import (
	"strings"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RateScope is the tenancy triple a rate applies within.
type RateScope struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
}

func (s RateScope) validate() error {
	if s.CompanyCode == "" {
		return shared.NewDomainError("INVALID_SCOPE", "Company code is required")
	}
	if s.LocationCode == "" {
		return shared.NewDomainError("INVALID_SCOPE", "Location code is required")
	}
	if s.YearCode == "" {
		return shared.NewDomainError("INVALID_SCOPE", "Financial year code is required")
	}
	return nil
}

// DiscountRate is a percentage discount configured per item within a
// tenancy scope.
type DiscountRate struct {
	shared.BaseEntity
	RateScope
	HSCode string
	Rate   decimal.Decimal
}

// NewDiscountRate creates a discount rate after validating the percentage.
func NewDiscountRate(scope RateScope, hsCode string, rate decimal.Decimal) (*DiscountRate, error) {
	if err := scope.validate(); err != nil {
		return nil, err
	}
	hsCode = strings.TrimSpace(hsCode)
	if hsCode == "" {
		return nil, shared.NewDomainError("INVALID_HS_CODE", "HS code cannot be empty")
	}
	if err := validatePercent(rate); err != nil {
		return nil, err
	}

	return &DiscountRate{
		BaseEntity: shared.NewBaseEntity(),
		RateScope:  scope,
		HSCode:     hsCode,
		Rate:       rate,
	}, nil
}

// SetRate replaces the percentage.
func (d *DiscountRate) SetRate(rate decimal.Decimal) error {
	if err := validatePercent(rate); err != nil {
		return err
	}
	d.Rate = rate
	return nil
}

// TaxRate is a percentage tax configured per item within a tenancy scope.
type TaxRate struct {
	shared.BaseEntity
	RateScope
	HSCode string
	Rate   decimal.Decimal
}

// NewTaxRate creates a tax rate after validating the percentage.
func NewTaxRate(scope RateScope, hsCode string, rate decimal.Decimal) (*TaxRate, error) {
	if err := scope.validate(); err != nil {
		return nil, err
	}
	hsCode = strings.TrimSpace(hsCode)
	if hsCode == "" {
		return nil, shared.NewDomainError("INVALID_HS_CODE", "HS code cannot be empty")
	}
	if err := validatePercent(rate); err != nil {
		return nil, err
	}

	return &TaxRate{
		BaseEntity: shared.NewBaseEntity(),
		RateScope:  scope,
		HSCode:     hsCode,
		Rate:       rate,
	}, nil
}

// SetRate replaces the percentage.
func (t *TaxRate) SetRate(rate decimal.Decimal) error {
	if err := validatePercent(rate); err != nil {
		return err
	}
	t.Rate = rate
	return nil
}

func validatePercent(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Rate cannot be negative")
	}
	if rate.GreaterThan(hundred) {
		return shared.NewDomainError("INVALID_RATE", "Rate cannot exceed 100 percent")
	}
	return nil
}
