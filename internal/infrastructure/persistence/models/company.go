package models

import (
	"time"

	"github.com/finbooks/backend/internal/domain/company"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Code     string `gorm:"type:varchar(10);not null;uniqueIndex:idx_companies_code"`
	Name     string `gorm:"type:varchar(200);not null"`
	Address  string `gorm:"type:varchar(500)"`
	City     string `gorm:"type:varchar(100)"`
	Phone    string `gorm:"type:varchar(50)"`
	Email    string `gorm:"type:varchar(200)"`
	NTN      string `gorm:"type:varchar(50)"`
	STN      string `gorm:"type:varchar(50)"`
	FBRToken string `gorm:"type:text"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *company.Company {
	return &company.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		Address:    m.Address,
		City:       m.City,
		Phone:      m.Phone,
		Email:      m.Email,
		NTN:        m.NTN,
		STN:        m.STN,
		FBRToken:   m.FBRToken,
		IsActive:   m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *company.Company) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Code = c.Code
	m.Name = c.Name
	m.Address = c.Address
	m.City = c.City
	m.Phone = c.Phone
	m.Email = c.Email
	m.NTN = c.NTN
	m.STN = c.STN
	m.FBRToken = c.FBRToken
	m.IsActive = c.IsActive
}

// CompanyModelFromDomain creates a new persistence model from a domain entity.
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// LocationModel is the persistence model for the Location domain entity.
// (company_code, code) carries the compound unique index.
type LocationModel struct {
	BaseModel
	CompanyCode  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_locations_company_code"`
	Code         string `gorm:"type:varchar(10);not null;uniqueIndex:idx_locations_company_code"`
	Name         string `gorm:"type:varchar(200);not null"`
	Address      string `gorm:"type:varchar(500)"`
	Phone        string `gorm:"type:varchar(50)"`
	IsDefault    bool   `gorm:"not null;default:false"`
	IsHeadOffice bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts the persistence model to a domain Location entity.
func (m *LocationModel) ToDomain() *company.Location {
	return &company.Location{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyCode:  m.CompanyCode,
		Code:         m.Code,
		Name:         m.Name,
		Address:      m.Address,
		Phone:        m.Phone,
		IsDefault:    m.IsDefault,
		IsHeadOffice: m.IsHeadOffice,
		IsActive:     m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Location entity.
func (m *LocationModel) FromDomain(l *company.Location) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.CompanyCode = l.CompanyCode
	m.Code = l.Code
	m.Name = l.Name
	m.Address = l.Address
	m.Phone = l.Phone
	m.IsDefault = l.IsDefault
	m.IsHeadOffice = l.IsHeadOffice
	m.IsActive = l.IsActive
}

// LocationModelFromDomain creates a new persistence model from a domain entity.
func LocationModelFromDomain(l *company.Location) *LocationModel {
	m := &LocationModel{}
	m.FromDomain(l)
	return m
}

// FinancialYearModel is the persistence model for the FinancialYear
// domain entity. (company_code, code) carries the compound unique index.
type FinancialYearModel struct {
	BaseModel
	CompanyCode string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_financial_years_company_code"`
	Code        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_financial_years_company_code"`
	Title       string    `gorm:"type:varchar(200);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	IsDefault   bool      `gorm:"not null;default:false"`
	IsActive    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (FinancialYearModel) TableName() string {
	return "financial_years"
}

// ToDomain converts the persistence model to a domain FinancialYear entity.
func (m *FinancialYearModel) ToDomain() *company.FinancialYear {
	return &company.FinancialYear{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyCode: m.CompanyCode,
		Code:        m.Code,
		Title:       m.Title,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain FinancialYear entity.
func (m *FinancialYearModel) FromDomain(fy *company.FinancialYear) {
	m.FromDomainBaseEntity(fy.BaseEntity)
	m.CompanyCode = fy.CompanyCode
	m.Code = fy.Code
	m.Title = fy.Title
	m.StartDate = fy.StartDate
	m.EndDate = fy.EndDate
	m.IsDefault = fy.IsDefault
	m.IsActive = fy.IsActive
}

// FinancialYearModelFromDomain creates a new persistence model from a domain entity.
func FinancialYearModelFromDomain(fy *company.FinancialYear) *FinancialYearModel {
	m := &FinancialYearModel{}
	m.FromDomain(fy)
	return m
}
