package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormSalesVoucherRepository implements coding.SalesVoucherRepository using GORM
type GormSalesVoucherRepository struct {
	db *Database
}

// NewGormSalesVoucherRepository creates a new GORM-based sales voucher repository
func NewGormSalesVoucherRepository(db *Database) *GormSalesVoucherRepository {
	return &GormSalesVoucherRepository{db: db}
}

// Create creates a new sales voucher
func (r *GormSalesVoucherRepository) Create(ctx context.Context, voucher *coding.SalesVoucher) error {
	model := models.SalesVoucherModelFromDomain(voucher)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Delete deletes a sales voucher by ID
func (r *GormSalesVoucherRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.SalesVoucherModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a sales voucher by ID
func (r *GormSalesVoucherRepository) FindByID(ctx context.Context, id string) (*coding.SalesVoucher, error) {
	var model models.SalesVoucherModel
	if err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's sales vouchers with pagination
func (r *GormSalesVoucherRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*coding.SalesVoucher, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.SalesVoucherModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("voucher_no LIKE ? OR customer_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"voucher_no": true, "voucher_date": true, "customer_name": true,
	}, "voucher_date")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.SalesVoucherModel
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	vouchers := make([]*coding.SalesVoucher, len(modelList))
	for i := range modelList {
		vouchers[i] = modelList[i].ToDomain()
	}
	return vouchers, total, nil
}

// CountByLocation counts sales vouchers referencing (companyCode, locationCode)
func (r *GormSalesVoucherRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.SalesVoucherModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts sales vouchers referencing (companyCode, yearCode)
func (r *GormSalesVoucherRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.SalesVoucherModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts sales vouchers referencing companyCode
func (r *GormSalesVoucherRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.SalesVoucherModel{},
		"company_code = ?", companyCode)
}
