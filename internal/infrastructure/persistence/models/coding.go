package models

import (
	"time"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/shopspring/decimal"
)

// ItemDescriptionCodeModel is the persistence model for HS item codes.
// (company_code, hs_code) carries the compound unique index.
type ItemDescriptionCodeModel struct {
	BaseModel
	CompanyCode string `gorm:"type:varchar(10);not null;uniqueIndex:idx_item_codes_company_hs"`
	HSCode      string `gorm:"type:varchar(20);not null;uniqueIndex:idx_item_codes_company_hs"`
	Description string `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (ItemDescriptionCodeModel) TableName() string {
	return "item_description_codes"
}

// ToDomain converts the persistence model to a domain entity.
func (m *ItemDescriptionCodeModel) ToDomain() *coding.ItemDescriptionCode {
	return &coding.ItemDescriptionCode{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyCode: m.CompanyCode,
		HSCode:      m.HSCode,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *ItemDescriptionCodeModel) FromDomain(i *coding.ItemDescriptionCode) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.CompanyCode = i.CompanyCode
	m.HSCode = i.HSCode
	m.Description = i.Description
}

// ItemDescriptionCodeModelFromDomain creates a new persistence model from a domain entity.
func ItemDescriptionCodeModelFromDomain(i *coding.ItemDescriptionCode) *ItemDescriptionCodeModel {
	m := &ItemDescriptionCodeModel{}
	m.FromDomain(i)
	return m
}

// DiscountRateModel is the persistence model for discount rates.
type DiscountRateModel struct {
	BaseModel
	CompanyCode  string          `gorm:"type:varchar(10);not null;index:idx_discount_rates_scope"`
	LocationCode string          `gorm:"type:varchar(10);not null;index:idx_discount_rates_scope"`
	YearCode     string          `gorm:"type:varchar(10);not null;index:idx_discount_rates_scope"`
	HSCode       string          `gorm:"type:varchar(20);not null"`
	Rate         decimal.Decimal `gorm:"type:decimal(7,4);not null"`
}

// TableName returns the table name for GORM
func (DiscountRateModel) TableName() string {
	return "discount_rates"
}

// ToDomain converts the persistence model to a domain entity.
func (m *DiscountRateModel) ToDomain() *coding.DiscountRate {
	return &coding.DiscountRate{
		BaseEntity: m.BaseModel.ToDomain(),
		RateScope: coding.RateScope{
			CompanyCode:  m.CompanyCode,
			LocationCode: m.LocationCode,
			YearCode:     m.YearCode,
		},
		HSCode: m.HSCode,
		Rate:   m.Rate,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *DiscountRateModel) FromDomain(d *coding.DiscountRate) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.CompanyCode = d.CompanyCode
	m.LocationCode = d.LocationCode
	m.YearCode = d.YearCode
	m.HSCode = d.HSCode
	m.Rate = d.Rate
}

// DiscountRateModelFromDomain creates a new persistence model from a domain entity.
func DiscountRateModelFromDomain(d *coding.DiscountRate) *DiscountRateModel {
	m := &DiscountRateModel{}
	m.FromDomain(d)
	return m
}

// TaxRateModel is the persistence model for tax rates.
type TaxRateModel struct {
	BaseModel
	CompanyCode  string          `gorm:"type:varchar(10);not null;index:idx_tax_rates_scope"`
	LocationCode string          `gorm:"type:varchar(10);not null;index:idx_tax_rates_scope"`
	YearCode     string          `gorm:"type:varchar(10);not null;index:idx_tax_rates_scope"`
	HSCode       string          `gorm:"type:varchar(20);not null"`
	Rate         decimal.Decimal `gorm:"type:decimal(7,4);not null"`
}

// TableName returns the table name for GORM
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// ToDomain converts the persistence model to a domain entity.
func (m *TaxRateModel) ToDomain() *coding.TaxRate {
	return &coding.TaxRate{
		BaseEntity: m.BaseModel.ToDomain(),
		RateScope: coding.RateScope{
			CompanyCode:  m.CompanyCode,
			LocationCode: m.LocationCode,
			YearCode:     m.YearCode,
		},
		HSCode: m.HSCode,
		Rate:   m.Rate,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *TaxRateModel) FromDomain(t *coding.TaxRate) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.CompanyCode = t.CompanyCode
	m.LocationCode = t.LocationCode
	m.YearCode = t.YearCode
	m.HSCode = t.HSCode
	m.Rate = t.Rate
}

// TaxRateModelFromDomain creates a new persistence model from a domain entity.
func TaxRateModelFromDomain(t *coding.TaxRate) *TaxRateModel {
	m := &TaxRateModel{}
	m.FromDomain(t)
	return m
}

// AccountModel is the persistence model for chart-of-accounts nodes.
// All four account levels share one table, discriminated by level.
type AccountModel struct {
	BaseModel
	CompanyCode string `gorm:"type:varchar(10);not null;uniqueIndex:idx_accounts_scope_code"`
	YearCode    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_accounts_scope_code"`
	Level       int    `gorm:"not null;index;uniqueIndex:idx_accounts_scope_code"`
	Code        string `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_scope_code"`
	ParentCode  string `gorm:"type:varchar(20)"`
	Title       string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain entity.
func (m *AccountModel) ToDomain() *coding.Account {
	return &coding.Account{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyCode: m.CompanyCode,
		YearCode:    m.YearCode,
		Level:       m.Level,
		Code:        m.Code,
		ParentCode:  m.ParentCode,
		Title:       m.Title,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *AccountModel) FromDomain(a *coding.Account) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CompanyCode = a.CompanyCode
	m.YearCode = a.YearCode
	m.Level = a.Level
	m.Code = a.Code
	m.ParentCode = a.ParentCode
	m.Title = a.Title
}

// AccountModelFromDomain creates a new persistence model from a domain entity.
func AccountModelFromDomain(a *coding.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// BankAccountModel is the persistence model for bank accounts.
type BankAccountModel struct {
	BaseModel
	CompanyCode   string          `gorm:"type:varchar(10);not null;index:idx_bank_accounts_scope"`
	LocationCode  string          `gorm:"type:varchar(10);not null;index:idx_bank_accounts_scope"`
	YearCode      string          `gorm:"type:varchar(10);not null;index:idx_bank_accounts_scope"`
	BankName      string          `gorm:"type:varchar(200);not null"`
	AccountTitle  string          `gorm:"type:varchar(200);not null"`
	AccountNumber string          `gorm:"type:varchar(50);not null"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToDomain converts the persistence model to a domain entity.
func (m *BankAccountModel) ToDomain() *coding.BankAccount {
	return &coding.BankAccount{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyCode:   m.CompanyCode,
		LocationCode:  m.LocationCode,
		YearCode:      m.YearCode,
		BankName:      m.BankName,
		AccountTitle:  m.AccountTitle,
		AccountNumber: m.AccountNumber,
		Balance:       m.Balance,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *BankAccountModel) FromDomain(b *coding.BankAccount) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.CompanyCode = b.CompanyCode
	m.LocationCode = b.LocationCode
	m.YearCode = b.YearCode
	m.BankName = b.BankName
	m.AccountTitle = b.AccountTitle
	m.AccountNumber = b.AccountNumber
	m.Balance = b.Balance
}

// BankAccountModelFromDomain creates a new persistence model from a domain entity.
func BankAccountModelFromDomain(b *coding.BankAccount) *BankAccountModel {
	m := &BankAccountModel{}
	m.FromDomain(b)
	return m
}

// CashAccountModel is the persistence model for cash accounts.
type CashAccountModel struct {
	BaseModel
	CompanyCode  string          `gorm:"type:varchar(10);not null;index:idx_cash_accounts_scope"`
	LocationCode string          `gorm:"type:varchar(10);not null;index:idx_cash_accounts_scope"`
	YearCode     string          `gorm:"type:varchar(10);not null;index:idx_cash_accounts_scope"`
	Title        string          `gorm:"type:varchar(200);not null"`
	Balance      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (CashAccountModel) TableName() string {
	return "cash_accounts"
}

// ToDomain converts the persistence model to a domain entity.
func (m *CashAccountModel) ToDomain() *coding.CashAccount {
	return &coding.CashAccount{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyCode:  m.CompanyCode,
		LocationCode: m.LocationCode,
		YearCode:     m.YearCode,
		Title:        m.Title,
		Balance:      m.Balance,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *CashAccountModel) FromDomain(c *coding.CashAccount) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CompanyCode = c.CompanyCode
	m.LocationCode = c.LocationCode
	m.YearCode = c.YearCode
	m.Title = c.Title
	m.Balance = c.Balance
}

// CashAccountModelFromDomain creates a new persistence model from a domain entity.
func CashAccountModelFromDomain(c *coding.CashAccount) *CashAccountModel {
	m := &CashAccountModel{}
	m.FromDomain(c)
	return m
}

// SalesVoucherModel is the persistence model for sales vouchers.
type SalesVoucherModel struct {
	BaseModel
	CompanyCode  string          `gorm:"type:varchar(10);not null;index:idx_sales_vouchers_scope"`
	LocationCode string          `gorm:"type:varchar(10);not null;index:idx_sales_vouchers_scope"`
	YearCode     string          `gorm:"type:varchar(10);not null;index:idx_sales_vouchers_scope"`
	VoucherNo    string          `gorm:"type:varchar(50);not null"`
	VoucherDate  time.Time       `gorm:"not null"`
	CustomerName string          `gorm:"type:varchar(200)"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SalesVoucherModel) TableName() string {
	return "sales_vouchers"
}

// ToDomain converts the persistence model to a domain entity.
func (m *SalesVoucherModel) ToDomain() *coding.SalesVoucher {
	return &coding.SalesVoucher{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyCode:  m.CompanyCode,
		LocationCode: m.LocationCode,
		YearCode:     m.YearCode,
		VoucherNo:    m.VoucherNo,
		VoucherDate:  m.VoucherDate,
		CustomerName: m.CustomerName,
		Amount:       m.Amount,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *SalesVoucherModel) FromDomain(v *coding.SalesVoucher) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.CompanyCode = v.CompanyCode
	m.LocationCode = v.LocationCode
	m.YearCode = v.YearCode
	m.VoucherNo = v.VoucherNo
	m.VoucherDate = v.VoucherDate
	m.CustomerName = v.CustomerName
	m.Amount = v.Amount
}

// SalesVoucherModelFromDomain creates a new persistence model from a domain entity.
func SalesVoucherModelFromDomain(v *coding.SalesVoucher) *SalesVoucherModel {
	m := &SalesVoucherModel{}
	m.FromDomain(v)
	return m
}

// PurchaseOrderModel is the persistence model for purchase orders.
type PurchaseOrderModel struct {
	BaseModel
	CompanyCode  string                   `gorm:"type:varchar(10);not null;index:idx_purchase_orders_scope"`
	LocationCode string                   `gorm:"type:varchar(10);not null;index:idx_purchase_orders_scope"`
	YearCode     string                   `gorm:"type:varchar(10);not null;index:idx_purchase_orders_scope"`
	OrderNo      string                   `gorm:"type:varchar(50);not null"`
	OrderDate    time.Time                `gorm:"not null"`
	SupplierName string                   `gorm:"type:varchar(200);not null"`
	Status       string                   `gorm:"type:varchar(20);not null;default:'draft'"`
	Lines        []PurchaseOrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLineModel is one item line of a purchase order.
type PurchaseOrderLineModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     string          `gorm:"type:uuid;not null;index"`
	HSCode      string          `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// ToDomain converts the persistence model to a domain entity.
func (m *PurchaseOrderModel) ToDomain() *coding.PurchaseOrder {
	lines := make([]coding.PurchaseOrderLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, coding.PurchaseOrderLine{
			HSCode:      l.HSCode,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return &coding.PurchaseOrder{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyCode:  m.CompanyCode,
		LocationCode: m.LocationCode,
		YearCode:     m.YearCode,
		OrderNo:      m.OrderNo,
		OrderDate:    m.OrderDate,
		SupplierName: m.SupplierName,
		Status:       coding.PurchaseOrderStatus(m.Status),
		Lines:        lines,
	}
}

// FromDomain populates the persistence model from a domain entity.
func (m *PurchaseOrderModel) FromDomain(po *coding.PurchaseOrder) {
	m.FromDomainBaseEntity(po.BaseEntity)
	m.CompanyCode = po.CompanyCode
	m.LocationCode = po.LocationCode
	m.YearCode = po.YearCode
	m.OrderNo = po.OrderNo
	m.OrderDate = po.OrderDate
	m.SupplierName = po.SupplierName
	m.Status = string(po.Status)

	m.Lines = make([]PurchaseOrderLineModel, 0, len(po.Lines))
	for _, l := range po.Lines {
		m.Lines = append(m.Lines, PurchaseOrderLineModel{
			OrderID:     po.ID,
			HSCode:      l.HSCode,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain entity.
func PurchaseOrderModelFromDomain(po *coding.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}
