package company

import (
	"regexp"
	"strings"

	"github.com/finbooks/backend/internal/domain/shared"
)

// Location is a physical or logical site belonging to one company.
// Its code is unique within the company, never globally.
type Location struct {
	shared.BaseEntity
	CompanyCode  string
	Code         string
	Name         string
	Address      string
	Phone        string
	IsDefault    bool
	IsHeadOffice bool
	IsActive     bool
}

// NewLocation creates a location under the given company. The location
// code must already be in canonical two-digit form; callers assigning
// codes automatically should pass the result of NextCode.
func NewLocation(companyCode, code, name string) (*Location, error) {
	companyCode = FormatCode(companyCode)
	if err := validateCompanyCode(companyCode); err != nil {
		return nil, err
	}
	code = FormatCode(code)
	if err := validateLocationCode(code); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot exceed 200 characters")
	}

	return &Location{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyCode: companyCode,
		Code:        code,
		Name:        name,
		IsActive:    true,
	}, nil
}

// Rename changes the location name.
func (l *Location) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot exceed 200 characters")
	}
	l.Name = name
	return nil
}

// SetContact updates the location's address and phone.
func (l *Location) SetContact(address, phone string) {
	l.Address = strings.TrimSpace(address)
	l.Phone = strings.TrimSpace(phone)
}

// MarkHeadOffice flags this location as the company's head office.
func (l *Location) MarkHeadOffice(isHO bool) {
	l.IsHeadOffice = isHO
}

// Activate marks the location active.
func (l *Location) Activate() {
	l.IsActive = true
}

// Deactivate soft-disables the location.
func (l *Location) Deactivate() {
	l.IsActive = false
}

var locationCodeRegex = regexp.MustCompile(`^[0-9]{2}$`)

func validateLocationCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_LOCATION_CODE", "Location code cannot be empty")
	}
	if !locationCodeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_LOCATION_CODE", "Location code must be exactly two digits")
	}
	return nil
}
