package company

import (
	"time"

	"github.com/finbooks/backend/internal/domain/company"
)

// CompanyDTO represents company data returned to callers
type CompanyDTO struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	NTN       string    `json:"ntn,omitempty"`
	STN       string    `json:"stn,omitempty"`
	FBRToken  string    `json:"fbr_token,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCompanyDTO(c *company.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		Phone:     c.Phone,
		Email:     c.Email,
		NTN:       c.NTN,
		STN:       c.STN,
		FBRToken:  c.FBRToken,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// LocationDTO represents location data returned to callers
type LocationDTO struct {
	ID           string    `json:"id"`
	CompanyCode  string    `json:"company_code"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	IsDefault    bool      `json:"is_default"`
	IsHeadOffice bool      `json:"is_head_office"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toLocationDTO(l *company.Location) *LocationDTO {
	return &LocationDTO{
		ID:           l.ID,
		CompanyCode:  l.CompanyCode,
		Code:         l.Code,
		Name:         l.Name,
		Address:      l.Address,
		Phone:        l.Phone,
		IsDefault:    l.IsDefault,
		IsHeadOffice: l.IsHeadOffice,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// FinancialYearDTO represents financial year data returned to callers
type FinancialYearDTO struct {
	ID          string    `json:"id"`
	CompanyCode string    `json:"company_code"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Period      string    `json:"period"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toFinancialYearDTO(fy *company.FinancialYear) *FinancialYearDTO {
	return &FinancialYearDTO{
		ID:          fy.ID,
		CompanyCode: fy.CompanyCode,
		Code:        fy.Code,
		Title:       fy.Title,
		StartDate:   fy.StartDate,
		EndDate:     fy.EndDate,
		Period:      fy.Period(),
		IsDefault:   fy.IsDefault,
		IsActive:    fy.IsActive,
		CreatedAt:   fy.CreatedAt,
		UpdatedAt:   fy.UpdatedAt,
	}
}

// ListResult wraps a page of DTOs with its pagination totals
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func newListResult[T any](items []T, total int64, page, pageSize int) *ListResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &ListResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
