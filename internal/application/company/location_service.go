package company

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/domain/shared"
)

// LocationService handles location management within a company
type LocationService struct {
	locationRepo company.LocationRepository
	companyRepo  company.CompanyRepository
	guard        *refguard.Registry
	logger       *zap.Logger
}

// NewLocationService creates a new location service
func NewLocationService(
	locationRepo company.LocationRepository,
	companyRepo company.CompanyRepository,
	guard *refguard.Registry,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		companyRepo:  companyRepo,
		guard:        guard,
		logger:       logger,
	}
}

// CreateLocationInput contains input for creating a location
type CreateLocationInput struct {
	CompanyCode  string
	Code         string
	Name         string
	Address      string
	Phone        string
	IsHeadOffice bool
}

// UpdateLocationInput contains input for updating a location
type UpdateLocationInput struct {
	ID           string
	Name         *string
	Address      *string
	Phone        *string
	IsHeadOffice *bool
}

// NextCode returns the code the next location of the company would receive
func (s *LocationService) NextCode(ctx context.Context, companyCode string) (string, error) {
	codes, err := s.locationRepo.ListCodes(ctx, companyCode)
	if err != nil {
		s.logger.Error("failed to list location codes",
			zap.String("company_code", companyCode), zap.Error(err))
		return "", err
	}
	return company.NextCode(codes), nil
}

// Create creates a new location under an existing company
func (s *LocationService) Create(ctx context.Context, input CreateLocationInput) (*LocationDTO, error) {
	companyCode := company.FormatCode(input.CompanyCode)
	if _, err := s.companyRepo.FindByCode(ctx, companyCode); err != nil {
		return nil, err
	}

	code := input.Code
	if code == "" {
		next, err := s.NextCode(ctx, companyCode)
		if err != nil {
			return nil, err
		}
		code = next
	} else {
		code = company.FormatCode(code)
	}

	exists, err := s.locationRepo.ExistsByCode(ctx, companyCode, code)
	if err != nil {
		s.logger.Error("failed to check location code", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("LOCATION_EXISTS", "Location code already in use within the company")
	}

	l, err := company.NewLocation(companyCode, code, input.Name)
	if err != nil {
		return nil, err
	}
	l.SetContact(input.Address, input.Phone)
	l.MarkHeadOffice(input.IsHeadOffice)

	if err := s.locationRepo.Create(ctx, l); err != nil {
		s.logger.Error("failed to create location",
			zap.String("company_code", companyCode),
			zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("location created",
		zap.String("company_code", l.CompanyCode),
		zap.String("code", l.Code))
	return toLocationDTO(l), nil
}

// Update updates an existing location. Codes are immutable.
func (s *LocationService) Update(ctx context.Context, input UpdateLocationInput) (*LocationDTO, error) {
	l, err := s.locationRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := l.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	address, phone := l.Address, l.Phone
	if input.Address != nil {
		address = *input.Address
	}
	if input.Phone != nil {
		phone = *input.Phone
	}
	l.SetContact(address, phone)

	if input.IsHeadOffice != nil {
		l.MarkHeadOffice(*input.IsHeadOffice)
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		s.logger.Error("failed to update location", zap.String("id", l.ID), zap.Error(err))
		return nil, err
	}
	return toLocationDTO(l), nil
}

// Get returns a location by ID
func (s *LocationService) Get(ctx context.Context, id string) (*LocationDTO, error) {
	l, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLocationDTO(l), nil
}

// List returns the company's locations with pagination
func (s *LocationService) List(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*LocationDTO], error) {
	filter.Normalize()
	locations, total, err := s.locationRepo.FindByCompany(ctx, company.FormatCode(companyCode), filter)
	if err != nil {
		s.logger.Error("failed to list locations",
			zap.String("company_code", companyCode), zap.Error(err))
		return nil, err
	}

	dtos := make([]*LocationDTO, len(locations))
	for i, l := range locations {
		dtos[i] = toLocationDTO(l)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// Delete deletes a location after confirming nothing still references
// its (company_code, code) pair
func (s *LocationService) Delete(ctx context.Context, id string) error {
	l, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	key := refguard.Key{CompanyCode: l.CompanyCode, LocationCode: l.Code}
	if err := s.guard.Check(ctx, refguard.ParentLocation, "location", key); err != nil {
		s.logger.Warn("location delete blocked by references",
			zap.String("company_code", l.CompanyCode),
			zap.String("code", l.Code), zap.Error(err))
		return err
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete location", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("location deleted",
		zap.String("company_code", l.CompanyCode),
		zap.String("code", l.Code))
	return nil
}

// SetActive activates or deactivates a location
func (s *LocationService) SetActive(ctx context.Context, id string, active bool) (*LocationDTO, error) {
	l, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		l.Activate()
	} else {
		l.Deactivate()
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLocationDTO(l), nil
}
