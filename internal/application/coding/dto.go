package coding

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/backend/internal/domain/coding"
)

// ItemCodeDTO represents an HS item description code
type ItemCodeDTO struct {
	ID          string    `json:"id"`
	CompanyCode string    `json:"company_code"`
	HSCode      string    `json:"hs_code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toItemCodeDTO(i *coding.ItemDescriptionCode) *ItemCodeDTO {
	return &ItemCodeDTO{
		ID:          i.ID,
		CompanyCode: i.CompanyCode,
		HSCode:      i.HSCode,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// RateDTO represents a discount or tax rate within a tenancy scope
type RateDTO struct {
	ID           string          `json:"id"`
	CompanyCode  string          `json:"company_code"`
	LocationCode string          `json:"location_code"`
	YearCode     string          `json:"year_code"`
	HSCode       string          `json:"hs_code"`
	Rate         decimal.Decimal `json:"rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toDiscountRateDTO(r *coding.DiscountRate) *RateDTO {
	return &RateDTO{
		ID:           r.ID,
		CompanyCode:  r.CompanyCode,
		LocationCode: r.LocationCode,
		YearCode:     r.YearCode,
		HSCode:       r.HSCode,
		Rate:         r.Rate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toTaxRateDTO(r *coding.TaxRate) *RateDTO {
	return &RateDTO{
		ID:           r.ID,
		CompanyCode:  r.CompanyCode,
		LocationCode: r.LocationCode,
		YearCode:     r.YearCode,
		HSCode:       r.HSCode,
		Rate:         r.Rate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// AccountDTO represents a chart-of-accounts node
type AccountDTO struct {
	ID          string    `json:"id"`
	CompanyCode string    `json:"company_code"`
	YearCode    string    `json:"year_code"`
	Level       int       `json:"level"`
	Code        string    `json:"code"`
	ParentCode  string    `json:"parent_code,omitempty"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAccountDTO(a *coding.Account) *AccountDTO {
	return &AccountDTO{
		ID:          a.ID,
		CompanyCode: a.CompanyCode,
		YearCode:    a.YearCode,
		Level:       a.Level,
		Code:        a.Code,
		ParentCode:  a.ParentCode,
		Title:       a.Title,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// BankAccountDTO represents a bank account
type BankAccountDTO struct {
	ID            string          `json:"id"`
	CompanyCode   string          `json:"company_code"`
	LocationCode  string          `json:"location_code"`
	YearCode      string          `json:"year_code"`
	BankName      string          `json:"bank_name"`
	AccountTitle  string          `json:"account_title"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toBankAccountDTO(b *coding.BankAccount) *BankAccountDTO {
	return &BankAccountDTO{
		ID:            b.ID,
		CompanyCode:   b.CompanyCode,
		LocationCode:  b.LocationCode,
		YearCode:      b.YearCode,
		BankName:      b.BankName,
		AccountTitle:  b.AccountTitle,
		AccountNumber: b.AccountNumber,
		Balance:       b.Balance,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// CashAccountDTO represents a cash account
type CashAccountDTO struct {
	ID           string          `json:"id"`
	CompanyCode  string          `json:"company_code"`
	LocationCode string          `json:"location_code"`
	YearCode     string          `json:"year_code"`
	Title        string          `json:"title"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toCashAccountDTO(c *coding.CashAccount) *CashAccountDTO {
	return &CashAccountDTO{
		ID:           c.ID,
		CompanyCode:  c.CompanyCode,
		LocationCode: c.LocationCode,
		YearCode:     c.YearCode,
		Title:        c.Title,
		Balance:      c.Balance,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// SalesVoucherDTO represents a sales voucher
type SalesVoucherDTO struct {
	ID           string          `json:"id"`
	CompanyCode  string          `json:"company_code"`
	LocationCode string          `json:"location_code"`
	YearCode     string          `json:"year_code"`
	VoucherNo    string          `json:"voucher_no"`
	VoucherDate  time.Time       `json:"voucher_date"`
	CustomerName string          `json:"customer_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toSalesVoucherDTO(v *coding.SalesVoucher) *SalesVoucherDTO {
	return &SalesVoucherDTO{
		ID:           v.ID,
		CompanyCode:  v.CompanyCode,
		LocationCode: v.LocationCode,
		YearCode:     v.YearCode,
		VoucherNo:    v.VoucherNo,
		VoucherDate:  v.VoucherDate,
		CustomerName: v.CustomerName,
		Amount:       v.Amount,
		CreatedAt:    v.CreatedAt,
	}
}

// PurchaseOrderLineDTO represents one line of a purchase order
type PurchaseOrderLineDTO struct {
	HSCode      string          `json:"hs_code"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseOrderDTO represents a purchase order with its lines
type PurchaseOrderDTO struct {
	ID           string                 `json:"id"`
	CompanyCode  string                 `json:"company_code"`
	LocationCode string                 `json:"location_code"`
	YearCode     string                 `json:"year_code"`
	OrderNo      string                 `json:"order_no"`
	OrderDate    time.Time              `json:"order_date"`
	SupplierName string                 `json:"supplier_name"`
	Status       string                 `json:"status"`
	Lines        []PurchaseOrderLineDTO `json:"lines"`
	Total        decimal.Decimal        `json:"total"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func toPurchaseOrderDTO(po *coding.PurchaseOrder) *PurchaseOrderDTO {
	lines := make([]PurchaseOrderLineDTO, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = PurchaseOrderLineDTO{
			HSCode:      l.HSCode,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total(),
		}
	}
	return &PurchaseOrderDTO{
		ID:           po.ID,
		CompanyCode:  po.CompanyCode,
		LocationCode: po.LocationCode,
		YearCode:     po.YearCode,
		OrderNo:      po.OrderNo,
		OrderDate:    po.OrderDate,
		SupplierName: po.SupplierName,
		Status:       string(po.Status),
		Lines:        lines,
		Total:        po.Total(),
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
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
