package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements identity.UserRepository using GORM.
// Every read except FindByUsernameWithHash omits the password_hash
// column so the hash never leaves the login path.
type GormUserRepository struct {
	db *Database
}

// NewGormUserRepository creates a new GORM-based user repository
func NewGormUserRepository(db *Database) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	update := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at", "created_by")
	// An empty hash means the caller loaded the user through a hashless
	// read; leave the stored credential untouched.
	if user.PasswordHash == "" {
		update = update.Omit("password_hash")
	}
	result := update.Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a user by ID, without the password hash
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	var model models.UserModel
	err := r.db.DB.WithContext(ctx).
		Omit("password_hash").
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username, without the password hash
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	err := r.db.DB.WithContext(ctx).
		Omit("password_hash").
		First(&model, "username = ?", username).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByUsernameWithHash loads a user including the password hash
func (r *GormUserRepository) FindByUsernameWithHash(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	err := r.db.DB.WithContext(ctx).
		First(&model, "username = ?", username).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns users with pagination
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, int64, error) {
	filter.Normalize()

	query := r.db.DB.WithContext(ctx).Model(&models.UserModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username LIKE ? OR full_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	sortField := ValidateSortField(filter.SortBy, UserSortFields, "username")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var modelList []models.UserModel
	err := query.
		Omit("password_hash").
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	users := make([]*identity.User, len(modelList))
	for i := range modelList {
		users[i] = modelList[i].ToDomain()
	}
	return users, total, nil
}

// ExistsByUsername checks if a username already exists
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// CountByLocation counts users referencing (companyCode, locationCode)
func (r *GormUserRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("company_code = ? AND location_code = ?", companyCode, locationCode).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CountByFinancialYear counts users referencing (companyCode, yearCode)
func (r *GormUserRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("company_code = ? AND year_code = ?", companyCode, yearCode).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CountByCompany counts users referencing companyCode
func (r *GormUserRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("company_code = ?", companyCode).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
