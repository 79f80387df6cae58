package coding

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
)

// RateService handles discount and tax rate configuration within a
// (company, location, financial year) scope
type RateService struct {
	discountRepo coding.DiscountRateRepository
	taxRepo      coding.TaxRateRepository
	logger       *zap.Logger
}

// NewRateService creates a new rate service
func NewRateService(
	discountRepo coding.DiscountRateRepository,
	taxRepo coding.TaxRateRepository,
	logger *zap.Logger,
) *RateService {
	return &RateService{
		discountRepo: discountRepo,
		taxRepo:      taxRepo,
		logger:       logger,
	}
}

// CreateRateInput contains input for creating a rate
type CreateRateInput struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
	HSCode       string
	Rate         decimal.Decimal
}

func (input CreateRateInput) scope() coding.RateScope {
	return coding.RateScope{
		CompanyCode:  input.CompanyCode,
		LocationCode: input.LocationCode,
		YearCode:     input.YearCode,
	}
}

// CreateDiscountRate creates a new discount rate
func (s *RateService) CreateDiscountRate(ctx context.Context, input CreateRateInput) (*RateDTO, error) {
	rate, err := coding.NewDiscountRate(input.scope(), input.HSCode, input.Rate)
	if err != nil {
		return nil, err
	}

	if err := s.discountRepo.Create(ctx, rate); err != nil {
		s.logger.Error("failed to create discount rate",
			zap.String("hs_code", input.HSCode), zap.Error(err))
		return nil, err
	}
	return toDiscountRateDTO(rate), nil
}

// UpdateDiscountRate changes a discount rate's percentage
func (s *RateService) UpdateDiscountRate(ctx context.Context, id string, value decimal.Decimal) (*RateDTO, error) {
	rate, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rate.SetRate(value); err != nil {
		return nil, err
	}
	if err := s.discountRepo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return toDiscountRateDTO(rate), nil
}

// ListDiscountRates returns the scope's discount rates with pagination
func (s *RateService) ListDiscountRates(ctx context.Context, scope coding.RateScope, filter shared.Filter) (*ListResult[*RateDTO], error) {
	filter.Normalize()
	rates, total, err := s.discountRepo.FindByScope(ctx, scope, filter)
	if err != nil {
		s.logger.Error("failed to list discount rates", zap.Error(err))
		return nil, err
	}

	dtos := make([]*RateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = toDiscountRateDTO(r)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// DeleteDiscountRate deletes a discount rate by ID
func (s *RateService) DeleteDiscountRate(ctx context.Context, id string) error {
	return s.discountRepo.Delete(ctx, id)
}

// CreateTaxRate creates a new tax rate
func (s *RateService) CreateTaxRate(ctx context.Context, input CreateRateInput) (*RateDTO, error) {
	rate, err := coding.NewTaxRate(input.scope(), input.HSCode, input.Rate)
	if err != nil {
		return nil, err
	}

	if err := s.taxRepo.Create(ctx, rate); err != nil {
		s.logger.Error("failed to create tax rate",
			zap.String("hs_code", input.HSCode), zap.Error(err))
		return nil, err
	}
	return toTaxRateDTO(rate), nil
}

// UpdateTaxRate changes a tax rate's percentage
func (s *RateService) UpdateTaxRate(ctx context.Context, id string, value decimal.Decimal) (*RateDTO, error) {
	rate, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rate.SetRate(value); err != nil {
		return nil, err
	}
	if err := s.taxRepo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return toTaxRateDTO(rate), nil
}

// ListTaxRates returns the scope's tax rates with pagination
func (s *RateService) ListTaxRates(ctx context.Context, scope coding.RateScope, filter shared.Filter) (*ListResult[*RateDTO], error) {
	filter.Normalize()
	rates, total, err := s.taxRepo.FindByScope(ctx, scope, filter)
	if err != nil {
		s.logger.Error("failed to list tax rates", zap.Error(err))
		return nil, err
	}

	dtos := make([]*RateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = toTaxRateDTO(r)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// DeleteTaxRate deletes a tax rate by ID
func (s *RateService) DeleteTaxRate(ctx context.Context, id string) error {
	return s.taxRepo.Delete(ctx, id)
}
