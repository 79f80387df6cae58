package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements company.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *Database
}

// NewGormCompanyRepository creates a new GORM-based company repository
func NewGormCompanyRepository(db *Database) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company
func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := models.CompanyModelFromDomain(c)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing company
func (r *GormCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := models.CompanyModelFromDomain(c)
	result := r.db.DB.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("id = ?", c.ID).
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

// Delete deletes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a company by its canonical code
func (r *GormCompanyRepository) FindByCode(ctx context.Context, code string) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.DB.WithContext(ctx).First(&model, "code = ?", code).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns companies with pagination
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*company.Company, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.CompanyModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, CompanySortFields, "code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.CompanyModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	companies := make([]*company.Company, len(modelList))
	for i := range modelList {
		companies[i] = modelList[i].ToDomain()
	}
	return companies, total, nil
}

// ListCodes returns every company code in the system
func (r *GormCompanyRepository) ListCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.DB.WithContext(ctx).Model(&models.CompanyModel{}).
		Order("code ASC").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, translateError(err)
	}
	return codes, nil
}

// ExistsByCode checks whether a company code is already taken
func (r *GormCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
