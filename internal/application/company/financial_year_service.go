package company

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/domain/shared"
)

// FinancialYearService handles financial year management within a company
type FinancialYearService struct {
	yearRepo    company.FinancialYearRepository
	companyRepo company.CompanyRepository
	guard       *refguard.Registry
	logger      *zap.Logger
}

// NewFinancialYearService creates a new financial year service
func NewFinancialYearService(
	yearRepo company.FinancialYearRepository,
	companyRepo company.CompanyRepository,
	guard *refguard.Registry,
	logger *zap.Logger,
) *FinancialYearService {
	return &FinancialYearService{
		yearRepo:    yearRepo,
		companyRepo: companyRepo,
		guard:       guard,
		logger:      logger,
	}
}

// CreateFinancialYearInput contains input for creating a financial year
type CreateFinancialYearInput struct {
	CompanyCode string
	Code        string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	IsDefault   bool
}

// UpdateFinancialYearInput contains input for updating a financial year
type UpdateFinancialYearInput struct {
	ID        string
	Title     *string
	StartDate *time.Time
	EndDate   *time.Time
	IsDefault *bool
}

// NextCode returns the code the next financial year of the company would receive
func (s *FinancialYearService) NextCode(ctx context.Context, companyCode string) (string, error) {
	codes, err := s.yearRepo.ListCodes(ctx, companyCode)
	if err != nil {
		s.logger.Error("failed to list financial year codes",
			zap.String("company_code", companyCode), zap.Error(err))
		return "", err
	}
	return company.NextCode(codes), nil
}

// Create creates a new financial year under an existing company. The
// first year of a company becomes the default automatically.
func (s *FinancialYearService) Create(ctx context.Context, input CreateFinancialYearInput) (*FinancialYearDTO, error) {
	companyCode := company.FormatCode(input.CompanyCode)
	if _, err := s.companyRepo.FindByCode(ctx, companyCode); err != nil {
		return nil, err
	}

	codes, err := s.yearRepo.ListCodes(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	code := input.Code
	if code == "" {
		code = company.NextCode(codes)
	} else {
		code = company.FormatCode(code)
	}

	exists, err := s.yearRepo.ExistsByCode(ctx, companyCode, code)
	if err != nil {
		s.logger.Error("failed to check financial year code", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("FINANCIAL_YEAR_EXISTS", "Financial year code already in use within the company")
	}

	fy, err := company.NewFinancialYear(companyCode, code, input.Title, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	fy.SetDefault(input.IsDefault || len(codes) == 0)

	if err := s.yearRepo.Create(ctx, fy); err != nil {
		s.logger.Error("failed to create financial year",
			zap.String("company_code", companyCode),
			zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("financial year created",
		zap.String("company_code", fy.CompanyCode),
		zap.String("code", fy.Code),
		zap.String("period", fy.Period()),
		zap.Bool("is_default", fy.IsDefault))
	return toFinancialYearDTO(fy), nil
}

// Update updates an existing financial year. Codes are immutable;
// flagging the year as default demotes any sibling default.
func (s *FinancialYearService) Update(ctx context.Context, input UpdateFinancialYearInput) (*FinancialYearDTO, error) {
	fy, err := s.yearRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := fy.Retitle(*input.Title); err != nil {
			return nil, err
		}
	}

	if input.StartDate != nil || input.EndDate != nil {
		start, end := fy.StartDate, fy.EndDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		if input.EndDate != nil {
			end = *input.EndDate
		}
		if err := fy.SetDates(start, end); err != nil {
			return nil, err
		}
	}

	if input.IsDefault != nil {
		fy.SetDefault(*input.IsDefault)
	}

	if err := s.yearRepo.Update(ctx, fy); err != nil {
		s.logger.Error("failed to update financial year", zap.String("id", fy.ID), zap.Error(err))
		return nil, err
	}
	return toFinancialYearDTO(fy), nil
}

// SetDefault flags a financial year as the company's working default
func (s *FinancialYearService) SetDefault(ctx context.Context, id string) (*FinancialYearDTO, error) {
	fy, err := s.yearRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fy.SetDefault(true)
	if err := s.yearRepo.Update(ctx, fy); err != nil {
		return nil, err
	}

	s.logger.Info("financial year set as default",
		zap.String("company_code", fy.CompanyCode),
		zap.String("code", fy.Code))
	return toFinancialYearDTO(fy), nil
}

// Get returns a financial year by ID
func (s *FinancialYearService) Get(ctx context.Context, id string) (*FinancialYearDTO, error) {
	fy, err := s.yearRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFinancialYearDTO(fy), nil
}

// GetDefault returns the company's default financial year
func (s *FinancialYearService) GetDefault(ctx context.Context, companyCode string) (*FinancialYearDTO, error) {
	fy, err := s.yearRepo.FindDefault(ctx, company.FormatCode(companyCode))
	if err != nil {
		return nil, err
	}
	return toFinancialYearDTO(fy), nil
}

// List returns the company's financial years with pagination
func (s *FinancialYearService) List(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*FinancialYearDTO], error) {
	filter.Normalize()
	years, total, err := s.yearRepo.FindByCompany(ctx, company.FormatCode(companyCode), filter)
	if err != nil {
		s.logger.Error("failed to list financial years",
			zap.String("company_code", companyCode), zap.Error(err))
		return nil, err
	}

	dtos := make([]*FinancialYearDTO, len(years))
	for i, fy := range years {
		dtos[i] = toFinancialYearDTO(fy)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// Delete deletes a financial year after confirming nothing still
// references its (company_code, code) pair
func (s *FinancialYearService) Delete(ctx context.Context, id string) error {
	fy, err := s.yearRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	key := refguard.Key{CompanyCode: fy.CompanyCode, YearCode: fy.Code}
	if err := s.guard.Check(ctx, refguard.ParentFinancialYear, "financial_year", key); err != nil {
		s.logger.Warn("financial year delete blocked by references",
			zap.String("company_code", fy.CompanyCode),
			zap.String("code", fy.Code), zap.Error(err))
		return err
	}

	if err := s.yearRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete financial year", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("financial year deleted",
		zap.String("company_code", fy.CompanyCode),
		zap.String("code", fy.Code))
	return nil
}
