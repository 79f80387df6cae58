package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormAccountRepository implements coding.AccountRepository using GORM
type GormAccountRepository struct {
	db *Database
}

// NewGormAccountRepository creates a new GORM-based account repository
func NewGormAccountRepository(db *Database) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create creates a new account
func (r *GormAccountRepository) Create(ctx context.Context, account *coding.Account) error {
	model := models.AccountModelFromDomain(account)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing account
func (r *GormAccountRepository) Update(ctx context.Context, account *coding.Account) error {
	model := models.AccountModelFromDomain(account)
	result := r.db.DB.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", account.ID).
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

// Delete deletes an account by ID
func (r *GormAccountRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id string) (*coding.Account, error) {
	var model models.AccountModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByLevel returns the accounts of one hierarchy level with pagination
func (r *GormAccountRepository) FindByLevel(ctx context.Context, companyCode, yearCode string, level int, filter shared.Filter) ([]*coding.Account, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.AccountModel{}).
		Where("company_code = ? AND year_code = ? AND level = ?", companyCode, yearCode, level)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR title LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "code": true, "title": true,
	}, "code")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.AccountModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	accounts := make([]*coding.Account, len(modelList))
	for i := range modelList {
		accounts[i] = modelList[i].ToDomain()
	}
	return accounts, total, nil
}

// FindChildren returns the direct children of a parent account code
func (r *GormAccountRepository) FindChildren(ctx context.Context, companyCode, yearCode, parentCode string) ([]*coding.Account, error) {
	var modelList []models.AccountModel
	err := r.db.DB.WithContext(ctx).
		Where("company_code = ? AND year_code = ? AND parent_code = ?", companyCode, yearCode, parentCode).
		Order("code ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, translateError(err)
	}

	accounts := make([]*coding.Account, len(modelList))
	for i := range modelList {
		accounts[i] = modelList[i].ToDomain()
	}
	return accounts, nil
}

// CountByLevelAndFinancialYear counts accounts of one level referencing (companyCode, yearCode)
func (r *GormAccountRepository) CountByLevelAndFinancialYear(ctx context.Context, level int, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.AccountModel{},
		"level = ? AND company_code = ? AND year_code = ?", level, companyCode, yearCode)
}

// CountByLevelAndCompany counts accounts of one level referencing companyCode
func (r *GormAccountRepository) CountByLevelAndCompany(ctx context.Context, level int, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.AccountModel{},
		"level = ? AND company_code = ?", level, companyCode)
}
