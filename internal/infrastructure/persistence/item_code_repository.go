package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormItemCodeRepository implements coding.ItemDescriptionCodeRepository using GORM
type GormItemCodeRepository struct {
	db *Database
}

// NewGormItemCodeRepository creates a new GORM-based item code repository
func NewGormItemCodeRepository(db *Database) *GormItemCodeRepository {
	return &GormItemCodeRepository{db: db}
}

// Create creates a new item description code
func (r *GormItemCodeRepository) Create(ctx context.Context, item *coding.ItemDescriptionCode) error {
	model := models.ItemDescriptionCodeModelFromDomain(item)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing item description code
func (r *GormItemCodeRepository) Update(ctx context.Context, item *coding.ItemDescriptionCode) error {
	model := models.ItemDescriptionCodeModelFromDomain(item)
	result := r.db.DB.WithContext(ctx).Model(&models.ItemDescriptionCodeModel{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an item description code by ID
func (r *GormItemCodeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ItemDescriptionCodeModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an item description code by ID
func (r *GormItemCodeRepository) FindByID(ctx context.Context, id string) (*coding.ItemDescriptionCode, error) {
	var model models.ItemDescriptionCodeModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByHSCode finds an item description code by its compound natural key
func (r *GormItemCodeRepository) FindByHSCode(ctx context.Context, companyCode, hsCode string) (*coding.ItemDescriptionCode, error) {
	var model models.ItemDescriptionCodeModel
	err := r.db.DB.WithContext(ctx).
		First(&model, "company_code = ? AND hs_code = ?", companyCode, hsCode).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's item description codes with pagination
func (r *GormItemCodeRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*coding.ItemDescriptionCode, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.ItemDescriptionCodeModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("hs_code LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, ItemCodeSortFields, "hs_code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.ItemDescriptionCodeModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]*coding.ItemDescriptionCode, len(modelList))
	for i := range modelList {
		items[i] = modelList[i].ToDomain()
	}
	return items, total, nil
}

// ExistsByHSCode checks whether (companyCode, hsCode) is already taken
func (r *GormItemCodeRepository) ExistsByHSCode(ctx context.Context, companyCode, hsCode string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.ItemDescriptionCodeModel{}).
		Where("company_code = ? AND hs_code = ?", companyCode, hsCode).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
