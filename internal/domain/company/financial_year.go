package company

import (
	"strings"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
)

// MinYearSpanDays is the shortest span a financial year may cover.
const MinYearSpanDays = 30

// FinancialYear is an accounting period belonging to one company. At
// most one financial year per company may be the default; the
// persistence layer clears sibling defaults whenever a default year is
// saved.
type FinancialYear struct {
	shared.BaseEntity
	CompanyCode string
	Code        string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	IsDefault   bool
	IsActive    bool
}

// NewFinancialYear creates a financial year after validating the date
// span. Dates are normalized to noon UTC so that timezone conversion on
// the way in or out can never shift them across a day boundary.
func NewFinancialYear(companyCode, code, title string, startDate, endDate time.Time) (*FinancialYear, error) {
	companyCode = FormatCode(companyCode)
	if err := validateCompanyCode(companyCode); err != nil {
		return nil, err
	}
	code = FormatCode(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_YEAR_CODE", "Financial year code cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_YEAR_TITLE", "Financial year title cannot be empty")
	}

	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)
	if err := validateYearSpan(start, end); err != nil {
		return nil, err
	}

	return &FinancialYear{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyCode: companyCode,
		Code:        code,
		Title:       title,
		StartDate:   start,
		EndDate:     end,
		IsActive:    true,
	}, nil
}

// Retitle changes the financial year's display title.
func (fy *FinancialYear) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_YEAR_TITLE", "Financial year title cannot be empty")
	}
	fy.Title = title
	return nil
}

// SetDates replaces the period after revalidating the span.
func (fy *FinancialYear) SetDates(startDate, endDate time.Time) error {
	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)
	if err := validateYearSpan(start, end); err != nil {
		return err
	}
	fy.StartDate = start
	fy.EndDate = end
	return nil
}

// SetDefault flags this year as the company default. The singleton
// guarantee is enforced at save time, not here.
func (fy *FinancialYear) SetDefault(isDefault bool) {
	fy.IsDefault = isDefault
}

// Activate marks the financial year active.
func (fy *FinancialYear) Activate() {
	fy.IsActive = true
}

// Deactivate soft-disables the financial year.
func (fy *FinancialYear) Deactivate() {
	fy.IsActive = false
}

// Period renders the span as "YYYY-MM-DD to YYYY-MM-DD".
func (fy *FinancialYear) Period() string {
	return fy.StartDate.Format("2006-01-02") + " to " + fy.EndDate.Format("2006-01-02")
}

// Contains reports whether the given date falls inside the year's span.
func (fy *FinancialYear) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(fy.StartDate) && !d.After(fy.EndDate)
}

// NormalizeDate pins a date to noon UTC, discarding the original clock
// time and zone.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}

func validateYearSpan(start, end time.Time) error {
	if !end.After(start) {
		return shared.NewDomainError("INVALID_YEAR_SPAN", "End date must be after start date")
	}
	if end.Sub(start) < MinYearSpanDays*24*time.Hour {
		return shared.NewDomainError("INVALID_YEAR_SPAN", "Financial year must span at least 30 days")
	}
	return nil
}
