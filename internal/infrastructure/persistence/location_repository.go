package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormLocationRepository implements company.LocationRepository using GORM
type GormLocationRepository struct {
	db *Database
}

// NewGormLocationRepository creates a new GORM-based location repository
func NewGormLocationRepository(db *Database) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Create creates a new location
func (r *GormLocationRepository) Create(ctx context.Context, l *company.Location) error {
	model := models.LocationModelFromDomain(l)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing location
func (r *GormLocationRepository) Update(ctx context.Context, l *company.Location) error {
	model := models.LocationModelFromDomain(l)
	result := r.db.DB.WithContext(ctx).Model(&models.LocationModel{}).
		Where("id = ?", l.ID).
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

// Delete deletes a location by ID
func (r *GormLocationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a location by ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id string) (*company.Location, error) {
	var model models.LocationModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCode finds a location by its compound natural key
func (r *GormLocationRepository) FindByCode(ctx context.Context, companyCode, code string) (*company.Location, error) {
	var model models.LocationModel
	err := r.db.DB.WithContext(ctx).
		First(&model, "company_code = ? AND code = ?", companyCode, code).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's locations with pagination
func (r *GormLocationRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*company.Location, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.LocationModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, LocationSortFields, "code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.LocationModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	locations := make([]*company.Location, len(modelList))
	for i := range modelList {
		locations[i] = modelList[i].ToDomain()
	}
	return locations, total, nil
}

// ListCodes returns every location code used within the company
func (r *GormLocationRepository) ListCodes(ctx context.Context, companyCode string) ([]string, error) {
	var codes []string
	err := r.db.DB.WithContext(ctx).Model(&models.LocationModel{}).
		Where("company_code = ?", companyCode).
		Order("code ASC").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, translateError(err)
	}
	return codes, nil
}

// ExistsByCode checks whether (companyCode, code) is already taken
func (r *GormLocationRepository) ExistsByCode(ctx context.Context, companyCode, code string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.LocationModel{}).
		Where("company_code = ? AND code = ?", companyCode, code).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
