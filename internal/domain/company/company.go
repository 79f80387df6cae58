package company

import (
	"regexp"
	"strings"

	"github.com/finbooks/backend/internal/domain/shared"
)

// Company is the tenant root. Every location, financial year and
// accounting record in the system is scoped to exactly one company code.
type Company struct {
	shared.BaseEntity
	Code     string
	Name     string
	Address  string
	City     string
	Phone    string
	Email    string
	NTN      string
	STN      string
	FBRToken string
	IsActive bool
}

// NewCompany creates a company with its code normalized to canonical form.
func NewCompany(code, name string) (*Company, error) {
	code = FormatCode(code)
	if err := validateCompanyCode(code); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}

	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		IsActive:   true,
	}, nil
}

// Rename changes the company name.
func (c *Company) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	c.Name = name
	return nil
}

// SetContact updates the company's address and contact fields.
func (c *Company) SetContact(address, city, phone, email string) {
	c.Address = strings.TrimSpace(address)
	c.City = strings.TrimSpace(city)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
}

// SetTaxIdentifiers updates the national and sales tax numbers.
func (c *Company) SetTaxIdentifiers(ntn, stn string) {
	c.NTN = strings.TrimSpace(ntn)
	c.STN = strings.TrimSpace(stn)
}

// SetFBRToken stores the opaque credential used against the external
// revenue-board API. The token is never validated here.
func (c *Company) SetFBRToken(token string) {
	c.FBRToken = token
}

// Activate marks the company active.
func (c *Company) Activate() {
	c.IsActive = true
}

// Deactivate soft-disables the company without touching its records.
func (c *Company) Deactivate() {
	c.IsActive = false
}

var companyCodeRegex = regexp.MustCompile(`^[0-9]{2}$`)

func validateCompanyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_COMPANY_CODE", "Company code cannot be empty")
	}
	if !companyCodeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_COMPANY_CODE", "Company code must be exactly two digits")
	}
	return nil
}
