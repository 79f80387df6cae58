package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormDiscountRateRepository implements coding.DiscountRateRepository using GORM
type GormDiscountRateRepository struct {
	db *Database
}

// NewGormDiscountRateRepository creates a new GORM-based discount rate repository
func NewGormDiscountRateRepository(db *Database) *GormDiscountRateRepository {
	return &GormDiscountRateRepository{db: db}
}

// Create creates a new discount rate
func (r *GormDiscountRateRepository) Create(ctx context.Context, rate *coding.DiscountRate) error {
	model := models.DiscountRateModelFromDomain(rate)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing discount rate
func (r *GormDiscountRateRepository) Update(ctx context.Context, rate *coding.DiscountRate) error {
	model := models.DiscountRateModelFromDomain(rate)
	result := r.db.DB.WithContext(ctx).Model(&models.DiscountRateModel{}).
		Where("id = ?", rate.ID).
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

// Delete deletes a discount rate by ID
func (r *GormDiscountRateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.DiscountRateModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a discount rate by ID
func (r *GormDiscountRateRepository) FindByID(ctx context.Context, id string) (*coding.DiscountRate, error) {
	var model models.DiscountRateModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByScope returns the scope's discount rates with pagination
func (r *GormDiscountRateRepository) FindByScope(ctx context.Context, scope coding.RateScope, filter shared.Filter) ([]*coding.DiscountRate, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.DiscountRateModel{}).
		Where("company_code = ? AND location_code = ? AND year_code = ?",
			scope.CompanyCode, scope.LocationCode, scope.YearCode)
	if filter.Search != "" {
		query = query.Where("hs_code LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "hs_code": true, "rate": true,
	}, "hs_code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.DiscountRateModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	rates := make([]*coding.DiscountRate, len(modelList))
	for i := range modelList {
		rates[i] = modelList[i].ToDomain()
	}
	return rates, total, nil
}

// CountByLocation counts discount rates referencing (companyCode, locationCode)
func (r *GormDiscountRateRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.DiscountRateModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts discount rates referencing (companyCode, yearCode)
func (r *GormDiscountRateRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.DiscountRateModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts discount rates referencing companyCode
func (r *GormDiscountRateRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.DiscountRateModel{},
		"company_code = ?", companyCode)
}

// GormTaxRateRepository implements coding.TaxRateRepository using GORM
type GormTaxRateRepository struct {
	db *Database
}

// NewGormTaxRateRepository creates a new GORM-based tax rate repository
func NewGormTaxRateRepository(db *Database) *GormTaxRateRepository {
	return &GormTaxRateRepository{db: db}
}

// Create creates a new tax rate
func (r *GormTaxRateRepository) Create(ctx context.Context, rate *coding.TaxRate) error {
	model := models.TaxRateModelFromDomain(rate)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing tax rate
func (r *GormTaxRateRepository) Update(ctx context.Context, rate *coding.TaxRate) error {
	model := models.TaxRateModelFromDomain(rate)
	result := r.db.DB.WithContext(ctx).Model(&models.TaxRateModel{}).
		Where("id = ?", rate.ID).
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

// Delete deletes a tax rate by ID
func (r *GormTaxRateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.TaxRateModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a tax rate by ID
func (r *GormTaxRateRepository) FindByID(ctx context.Context, id string) (*coding.TaxRate, error) {
	var model models.TaxRateModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByScope returns the scope's tax rates with pagination
func (r *GormTaxRateRepository) FindByScope(ctx context.Context, scope coding.RateScope, filter shared.Filter) ([]*coding.TaxRate, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.TaxRateModel{}).
		Where("company_code = ? AND location_code = ? AND year_code = ?",
			scope.CompanyCode, scope.LocationCode, scope.YearCode)
	if filter.Search != "" {
		query = query.Where("hs_code LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "hs_code": true, "rate": true,
	}, "hs_code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.TaxRateModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	rates := make([]*coding.TaxRate, len(modelList))
	for i := range modelList {
		rates[i] = modelList[i].ToDomain()
	}
	return rates, total, nil
}

// CountByLocation counts tax rates referencing (companyCode, locationCode)
func (r *GormTaxRateRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.TaxRateModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts tax rates referencing (companyCode, yearCode)
func (r *GormTaxRateRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.TaxRateModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts tax rates referencing companyCode
func (r *GormTaxRateRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.TaxRateModel{},
		"company_code = ?", companyCode)
}

// countScoped counts rows of the given model matching the scope condition.
func countScoped(ctx context.Context, db *Database, model interface{}, condition string, args ...interface{}) (int64, error) {
	var count int64
	err := db.DB.WithContext(ctx).Model(model).
		Where(condition, args...).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
