// Package coding holds the company-scoped coding data: HS item codes,
// product rate configuration, the chart of accounts and the vouchers
// that hang off the tenancy hierarchy.
package coding

import (
	"strings"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
)

// ItemDescriptionCode maps an HS code to its description within one
// company. (CompanyCode, HSCode) is unique.
type ItemDescriptionCode struct {
	shared.BaseEntity
	CompanyCode string
	HSCode      string
	Description string
}

// NewItemDescriptionCode creates an item description code.
func NewItemDescriptionCode(companyCode, hsCode, description string) (*ItemDescriptionCode, error) {
	companyCode = company.FormatCode(companyCode)
	hsCode = strings.TrimSpace(hsCode)
	if hsCode == "" {
		return nil, shared.NewDomainError("INVALID_HS_CODE", "HS code cannot be empty")
	}
	if len(hsCode) > 20 {
		return nil, shared.NewDomainError("INVALID_HS_CODE", "HS code cannot exceed 20 characters")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	return &ItemDescriptionCode{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyCode: companyCode,
		HSCode:      hsCode,
		Description: description,
	}, nil
}

// SetDescription replaces the description.
func (i *ItemDescriptionCode) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	i.Description = description
	return nil
}
