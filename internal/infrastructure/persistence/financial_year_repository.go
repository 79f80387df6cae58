package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormFinancialYearRepository implements company.FinancialYearRepository
// using GORM. Writes that flag a year as the default clear every sibling
// default inside the same transaction, so the company never holds two
// defaults at once.
type GormFinancialYearRepository struct {
	db *Database
}

// NewGormFinancialYearRepository creates a new GORM-based financial year repository
func NewGormFinancialYearRepository(db *Database) *GormFinancialYearRepository {
	return &GormFinancialYearRepository{db: db}
}

// Create creates a new financial year
func (r *GormFinancialYearRepository) Create(ctx context.Context, fy *company.FinancialYear) error {
	model := models.FinancialYearModelFromDomain(fy)
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fy.IsDefault {
			if err := clearSiblingDefaults(tx, fy.CompanyCode, fy.ID); err != nil {
				return err
			}
		}
		return tx.Create(model).Error
	})
	return translateError(err)
}

// Update updates an existing financial year
func (r *GormFinancialYearRepository) Update(ctx context.Context, fy *company.FinancialYear) error {
	model := models.FinancialYearModelFromDomain(fy)
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fy.IsDefault {
			if err := clearSiblingDefaults(tx, fy.CompanyCode, fy.ID); err != nil {
				return err
			}
		}
		result := tx.Model(&models.FinancialYearModel{}).
			Where("id = ?", fy.ID).
			Select("*").
			Omit("id", "created_at", "created_by").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

func clearSiblingDefaults(tx *gorm.DB, companyCode, excludeID string) error {
	return tx.Model(&models.FinancialYearModel{}).
		Where("company_code = ? AND id <> ? AND is_default = ?", companyCode, excludeID, true).
		Update("is_default", false).Error
}

// Delete deletes a financial year by ID
func (r *GormFinancialYearRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.FinancialYearModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a financial year by ID
func (r *GormFinancialYearRepository) FindByID(ctx context.Context, id string) (*company.FinancialYear, error) {
	var model models.FinancialYearModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a financial year by its compound natural key
func (r *GormFinancialYearRepository) FindByCode(ctx context.Context, companyCode, code string) (*company.FinancialYear, error) {
	var model models.FinancialYearModel
	err := r.db.DB.WithContext(ctx).
		First(&model, "company_code = ? AND code = ?", companyCode, code).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's financial years with pagination
func (r *GormFinancialYearRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*company.FinancialYear, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.FinancialYearModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR title LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, FinancialYearSortFields, "code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.FinancialYearModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	years := make([]*company.FinancialYear, len(modelList))
	for i := range modelList {
		years[i] = modelList[i].ToDomain()
	}
	return years, total, nil
}

// FindDefault returns the company's default financial year
func (r *GormFinancialYearRepository) FindDefault(ctx context.Context, companyCode string) (*company.FinancialYear, error) {
	var model models.FinancialYearModel
	err := r.db.DB.WithContext(ctx).
		First(&model, "company_code = ? AND is_default = ?", companyCode, true).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ListCodes returns every financial year code used within the company
func (r *GormFinancialYearRepository) ListCodes(ctx context.Context, companyCode string) ([]string, error) {
	var codes []string
	err := r.db.DB.WithContext(ctx).Model(&models.FinancialYearModel{}).
		Where("company_code = ?", companyCode).
		Order("code ASC").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, translateError(err)
	}
	return codes, nil
}

// ExistsByCode checks whether (companyCode, code) is already taken
func (r *GormFinancialYearRepository) ExistsByCode(ctx context.Context, companyCode, code string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.FinancialYearModel{}).
		Where("company_code = ? AND code = ?", companyCode, code).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
