package coding

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
)

// ItemCodeService handles HS item description code management
type ItemCodeService struct {
	itemRepo coding.ItemDescriptionCodeRepository
	logger   *zap.Logger
}

// NewItemCodeService creates a new item code service
func NewItemCodeService(itemRepo coding.ItemDescriptionCodeRepository, logger *zap.Logger) *ItemCodeService {
	return &ItemCodeService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// CreateItemCodeInput contains input for creating an item code
type CreateItemCodeInput struct {
	CompanyCode string
	HSCode      string
	Description string
}

// Create creates a new item description code
func (s *ItemCodeService) Create(ctx context.Context, input CreateItemCodeInput) (*ItemCodeDTO, error) {
	exists, err := s.itemRepo.ExistsByHSCode(ctx, input.CompanyCode, input.HSCode)
	if err != nil {
		s.logger.Error("failed to check hs code", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ITEM_CODE_EXISTS", "HS code already registered for the company")
	}

	item, err := coding.NewItemDescriptionCode(input.CompanyCode, input.HSCode, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create item code",
			zap.String("company_code", input.CompanyCode),
			zap.String("hs_code", input.HSCode), zap.Error(err))
		return nil, err
	}
	return toItemCodeDTO(item), nil
}

// UpdateDescription changes an item code's description. The HS code
// itself is immutable.
func (s *ItemCodeService) UpdateDescription(ctx context.Context, id, description string) (*ItemCodeDTO, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.SetDescription(description); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("failed to update item code", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toItemCodeDTO(item), nil
}

// Get returns an item code by ID
func (s *ItemCodeService) Get(ctx context.Context, id string) (*ItemCodeDTO, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemCodeDTO(item), nil
}

// List returns the company's item codes with pagination
func (s *ItemCodeService) List(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*ItemCodeDTO], error) {
	filter.Normalize()
	items, total, err := s.itemRepo.FindByCompany(ctx, companyCode, filter)
	if err != nil {
		s.logger.Error("failed to list item codes",
			zap.String("company_code", companyCode), zap.Error(err))
		return nil, err
	}

	dtos := make([]*ItemCodeDTO, len(items))
	for i, item := range items {
		dtos[i] = toItemCodeDTO(item)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// Delete deletes an item code by ID
func (s *ItemCodeService) Delete(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete item code", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
