package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormBankAccountRepository implements coding.BankAccountRepository using GORM
type GormBankAccountRepository struct {
	db *Database
}

// NewGormBankAccountRepository creates a new GORM-based bank account repository
func NewGormBankAccountRepository(db *Database) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

// Create creates a new bank account
func (r *GormBankAccountRepository) Create(ctx context.Context, account *coding.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing bank account
func (r *GormBankAccountRepository) Update(ctx context.Context, account *coding.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	result := r.db.DB.WithContext(ctx).Model(&models.BankAccountModel{}).
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

// Delete deletes a bank account by ID
func (r *GormBankAccountRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.BankAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a bank account by ID
func (r *GormBankAccountRepository) FindByID(ctx context.Context, id string) (*coding.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's bank accounts with pagination
func (r *GormBankAccountRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*coding.BankAccount, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.BankAccountModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("bank_name LIKE ? OR account_title LIKE ? OR account_number LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"bank_name": true, "account_title": true, "account_number": true,
	}, "bank_name")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.BankAccountModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	accounts := make([]*coding.BankAccount, len(modelList))
	for i := range modelList {
		accounts[i] = modelList[i].ToDomain()
	}
	return accounts, total, nil
}

// CountByLocation counts bank accounts referencing (companyCode, locationCode)
func (r *GormBankAccountRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.BankAccountModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts bank accounts referencing (companyCode, yearCode)
func (r *GormBankAccountRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.BankAccountModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts bank accounts referencing companyCode
func (r *GormBankAccountRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.BankAccountModel{},
		"company_code = ?", companyCode)
}

// GormCashAccountRepository implements coding.CashAccountRepository using GORM
type GormCashAccountRepository struct {
	db *Database
}

// NewGormCashAccountRepository creates a new GORM-based cash account repository
func NewGormCashAccountRepository(db *Database) *GormCashAccountRepository {
	return &GormCashAccountRepository{db: db}
}

// Create creates a new cash account
func (r *GormCashAccountRepository) Create(ctx context.Context, account *coding.CashAccount) error {
	model := models.CashAccountModelFromDomain(account)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing cash account
func (r *GormCashAccountRepository) Update(ctx context.Context, account *coding.CashAccount) error {
	model := models.CashAccountModelFromDomain(account)
	result := r.db.DB.WithContext(ctx).Model(&models.CashAccountModel{}).
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

// Delete deletes a cash account by ID
func (r *GormCashAccountRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.CashAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a cash account by ID
func (r *GormCashAccountRepository) FindByID(ctx context.Context, id string) (*coding.CashAccount, error) {
	var model models.CashAccountModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's cash accounts with pagination
func (r *GormCashAccountRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*coding.CashAccount, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.CashAccountModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "title": true,
	}, "title")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.CashAccountModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	accounts := make([]*coding.CashAccount, len(modelList))
	for i := range modelList {
		accounts[i] = modelList[i].ToDomain()
	}
	return accounts, total, nil
}

// CountByLocation counts cash accounts referencing (companyCode, locationCode)
func (r *GormCashAccountRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.CashAccountModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts cash accounts referencing (companyCode, yearCode)
func (r *GormCashAccountRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.CashAccountModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts cash accounts referencing companyCode
func (r *GormCashAccountRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.CashAccountModel{},
		"company_code = ?", companyCode)
}
