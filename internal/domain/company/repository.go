package company

import (
	"context"

	"github.com/finbooks/backend/internal/domain/shared"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, c *Company) error

	// Update updates an existing company
	Update(ctx context.Context, c *Company) error

	// Delete deletes a company by ID
	Delete(ctx context.Context, id string) error

	// FindByID finds a company by ID
	FindByID(ctx context.Context, id string) (*Company, error)

	// FindByCode finds a company by its canonical code
	FindByCode(ctx context.Context, code string) (*Company, error)

	// FindAll returns companies with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]*Company, int64, error)

	// ListCodes returns every company code in the system
	ListCodes(ctx context.Context) ([]string, error)

	// ExistsByCode checks whether a company code is already taken
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// LocationRepository defines the interface for location persistence
type LocationRepository interface {
	// Create creates a new location
	Create(ctx context.Context, l *Location) error

	// Update updates an existing location
	Update(ctx context.Context, l *Location) error

	// Delete deletes a location by ID
	Delete(ctx context.Context, id string) error

	// FindByID finds a location by ID
	FindByID(ctx context.Context, id string) (*Location, error)

	// FindByCode finds a location by its compound natural key
	FindByCode(ctx context.Context, companyCode, code string) (*Location, error)

	// FindByCompany returns the company's locations with pagination
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*Location, int64, error)

	// ListCodes returns every location code used within the company
	ListCodes(ctx context.Context, companyCode string) ([]string, error)

	// ExistsByCode checks whether (companyCode, code) is already taken
	ExistsByCode(ctx context.Context, companyCode, code string) (bool, error)
}

// FinancialYearRepository defines the interface for financial year
// persistence. Save operations must clear sibling defaults in the same
// transaction whenever the record being written has IsDefault set.
type FinancialYearRepository interface {
	// Create creates a new financial year
	Create(ctx context.Context, fy *FinancialYear) error

	// Update updates an existing financial year
	Update(ctx context.Context, fy *FinancialYear) error

	// Delete deletes a financial year by ID
	Delete(ctx context.Context, id string) error

	// FindByID finds a financial year by ID
	FindByID(ctx context.Context, id string) (*FinancialYear, error)

	// FindByCode finds a financial year by its compound natural key
	FindByCode(ctx context.Context, companyCode, code string) (*FinancialYear, error)

	// FindByCompany returns the company's financial years with pagination
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*FinancialYear, int64, error)

	// FindDefault returns the company's default financial year, or
	// shared.ErrNotFound when none is flagged
	FindDefault(ctx context.Context, companyCode string) (*FinancialYear, error)

	// ListCodes returns every financial year code used within the company
	ListCodes(ctx context.Context, companyCode string) ([]string, error)

	// ExistsByCode checks whether (companyCode, code) is already taken
	ExistsByCode(ctx context.Context, companyCode, code string) (bool, error)
}
