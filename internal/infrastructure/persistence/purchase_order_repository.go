package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormPurchaseOrderRepository implements coding.PurchaseOrderRepository
// using GORM. Order lines are replaced wholesale on update; the order
// aggregate owns them.
type GormPurchaseOrderRepository struct {
	db *Database
}

// NewGormPurchaseOrderRepository creates a new GORM-based purchase order repository
func NewGormPurchaseOrderRepository(db *Database) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// Create creates a new purchase order with its lines
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, order *coding.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing purchase order, replacing its lines
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, order *coding.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PurchaseOrderModel{}).
			Where("id = ?", order.ID).
			Select("*").
			Omit("id", "created_at", "created_by", "Lines").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Delete(&models.PurchaseOrderLineModel{}, "order_id = ?", order.ID).Error; err != nil {
			return err
		}
		if len(model.Lines) == 0 {
			return nil
		}
		for i := range model.Lines {
			model.Lines[i].OrderID = order.ID
		}
		return tx.Create(&model.Lines).Error
	})
	return translateError(err)
}

// Delete deletes a purchase order and its lines by ID
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseOrderLineModel{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseOrderModel{}, "id = ?", id)
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

// FindByID finds a purchase order by ID, lines included
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id string) (*coding.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	err := r.db.DB.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByCompany returns the company's purchase orders with pagination
func (r *GormPurchaseOrderRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*coding.PurchaseOrder, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Where("company_code = ?", companyCode)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_no LIKE ? OR supplier_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, PurchaseOrderSortFields, "order_date")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.PurchaseOrderModel
	err := query.
		Preload("Lines").
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	orders := make([]*coding.PurchaseOrder, len(modelList))
	for i := range modelList {
		orders[i] = modelList[i].ToDomain()
	}
	return orders, total, nil
}

// CountByLocation counts purchase orders referencing (companyCode, locationCode)
func (r *GormPurchaseOrderRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.PurchaseOrderModel{},
		"company_code = ? AND location_code = ?", companyCode, locationCode)
}

// CountByFinancialYear counts purchase orders referencing (companyCode, yearCode)
func (r *GormPurchaseOrderRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.PurchaseOrderModel{},
		"company_code = ? AND year_code = ?", companyCode, yearCode)
}

// CountByCompany counts purchase orders referencing companyCode
func (r *GormPurchaseOrderRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	return countScoped(ctx, r.db, &models.PurchaseOrderModel{},
		"company_code = ?", companyCode)
}
