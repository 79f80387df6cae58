package company

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/domain/shared"
)

// CompanyService handles company management operations
type CompanyService struct {
	companyRepo company.CompanyRepository
	guard       *refguard.Registry
	logger      *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo company.CompanyRepository,
	guard *refguard.Registry,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		guard:       guard,
		logger:      logger,
	}
}

// CreateCompanyInput contains input for creating a company
type CreateCompanyInput struct {
	Code     string
	Name     string
	Address  string
	City     string
	Phone    string
	Email    string
	NTN      string
	STN      string
	FBRToken string
}

// UpdateCompanyInput contains input for updating a company
type UpdateCompanyInput struct {
	ID       string
	Name     *string
	Address  *string
	City     *string
	Phone    *string
	Email    *string
	NTN      *string
	STN      *string
	FBRToken *string
}

// NextCode returns the code the next company would receive
func (s *CompanyService) NextCode(ctx context.Context) (string, error) {
	codes, err := s.companyRepo.ListCodes(ctx)
	if err != nil {
		s.logger.Error("failed to list company codes", zap.Error(err))
		return "", err
	}
	return company.NextCode(codes), nil
}

// Create creates a new company. An empty code auto-assigns the next one
// in sequence; an explicit code is normalized and checked for conflicts.
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*CompanyDTO, error) {
	code := input.Code
	if code == "" {
		next, err := s.NextCode(ctx)
		if err != nil {
			return nil, err
		}
		code = next
	} else {
		code = company.FormatCode(code)
	}

	exists, err := s.companyRepo.ExistsByCode(ctx, code)
	if err != nil {
		s.logger.Error("failed to check company code", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("COMPANY_EXISTS", "Company code already in use")
	}

	c, err := company.NewCompany(code, input.Name)
	if err != nil {
		return nil, err
	}
	c.SetContact(input.Address, input.City, input.Phone, input.Email)
	c.SetTaxIdentifiers(input.NTN, input.STN)
	c.SetFBRToken(input.FBRToken)

	if err := s.companyRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create company", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("code", c.Code),
		zap.String("name", c.Name))
	return toCompanyDTO(c), nil
}

// Update updates an existing company. The code is immutable.
func (s *CompanyService) Update(ctx context.Context, input UpdateCompanyInput) (*CompanyDTO, error) {
	c, err := s.companyRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := c.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	address, city, phone, email := c.Address, c.City, c.Phone, c.Email
	if input.Address != nil {
		address = *input.Address
	}
	if input.City != nil {
		city = *input.City
	}
	if input.Phone != nil {
		phone = *input.Phone
	}
	if input.Email != nil {
		email = *input.Email
	}
	c.SetContact(address, city, phone, email)

	ntn, stn := c.NTN, c.STN
	if input.NTN != nil {
		ntn = *input.NTN
	}
	if input.STN != nil {
		stn = *input.STN
	}
	c.SetTaxIdentifiers(ntn, stn)

	if input.FBRToken != nil {
		c.SetFBRToken(*input.FBRToken)
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		s.logger.Error("failed to update company", zap.String("id", c.ID), zap.Error(err))
		return nil, err
	}
	return toCompanyDTO(c), nil
}

// Get returns a company by ID
func (s *CompanyService) Get(ctx context.Context, id string) (*CompanyDTO, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyDTO(c), nil
}

// GetByCode returns a company by its code
func (s *CompanyService) GetByCode(ctx context.Context, code string) (*CompanyDTO, error) {
	c, err := s.companyRepo.FindByCode(ctx, company.FormatCode(code))
	if err != nil {
		return nil, err
	}
	return toCompanyDTO(c), nil
}

// List returns companies with pagination
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) (*ListResult[*CompanyDTO], error) {
	filter.Normalize()
	companies, total, err := s.companyRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list companies", zap.Error(err))
		return nil, err
	}

	dtos := make([]*CompanyDTO, len(companies))
	for i, c := range companies {
		dtos[i] = toCompanyDTO(c)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// Delete deletes a company after confirming nothing still references it
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	key := refguard.Key{CompanyCode: c.Code}
	if err := s.guard.Check(ctx, refguard.ParentCompany, "company", key); err != nil {
		s.logger.Warn("company delete blocked by references",
			zap.String("code", c.Code), zap.Error(err))
		return err
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete company", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("company deleted", zap.String("code", c.Code))
	return nil
}

// SetActive activates or deactivates a company
func (s *CompanyService) SetActive(ctx context.Context, id string, active bool) (*CompanyDTO, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCompanyDTO(c), nil
}
