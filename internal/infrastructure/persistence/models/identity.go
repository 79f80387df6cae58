package models

import (
	"encoding/json"

	"github.com/finbooks/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
// AccessibleMenus is stored as a JSON text column.
type UserModel struct {
	BaseModel
	Username        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	FullName        string `gorm:"type:varchar(200)"`
	Role            string `gorm:"type:varchar(20);not null;default:'user'"`
	PasswordHash    string `gorm:"type:varchar(255);not null"`
	CompanyCode     string `gorm:"type:varchar(10);index:idx_users_scope"`
	LocationCode    string `gorm:"type:varchar(10);index:idx_users_scope"`
	YearCode        string `gorm:"type:varchar(10);index:idx_users_scope"`
	IsAllowed       bool   `gorm:"not null;default:true"`
	AccessibleMenus string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	menus := make([]string, 0)
	if m.AccessibleMenus != "" {
		// A malformed column value yields an empty menu list rather
		// than a load failure.
		_ = json.Unmarshal([]byte(m.AccessibleMenus), &menus)
	}

	return &identity.User{
		BaseEntity:      m.BaseModel.ToDomain(),
		Username:        m.Username,
		FullName:        m.FullName,
		Role:            identity.Role(m.Role),
		PasswordHash:    m.PasswordHash,
		CompanyCode:     m.CompanyCode,
		LocationCode:    m.LocationCode,
		YearCode:        m.YearCode,
		IsAllowed:       m.IsAllowed,
		AccessibleMenus: menus,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.FullName = u.FullName
	m.Role = string(u.Role)
	m.PasswordHash = u.PasswordHash
	m.CompanyCode = u.CompanyCode
	m.LocationCode = u.LocationCode
	m.YearCode = u.YearCode
	m.IsAllowed = u.IsAllowed

	menus := u.AccessibleMenus
	if menus == nil {
		menus = make([]string, 0)
	}
	encoded, err := json.Marshal(menus)
	if err != nil {
		encoded = []byte("[]")
	}
	m.AccessibleMenus = string(encoded)
}

// UserModelFromDomain creates a new persistence model from a domain entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
