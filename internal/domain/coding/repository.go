package coding

import (
	"context"

	"github.com/finbooks/backend/internal/domain/shared"
)

// ItemDescriptionCodeRepository defines the interface for HS code persistence
type ItemDescriptionCodeRepository interface {
	Create(ctx context.Context, item *ItemDescriptionCode) error
	Update(ctx context.Context, item *ItemDescriptionCode) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*ItemDescriptionCode, error)
	FindByHSCode(ctx context.Context, companyCode, hsCode string) (*ItemDescriptionCode, error)
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*ItemDescriptionCode, int64, error)
	ExistsByHSCode(ctx context.Context, companyCode, hsCode string) (bool, error)
}

// DiscountRateRepository defines the interface for discount rate persistence
type DiscountRateRepository interface {
	Create(ctx context.Context, rate *DiscountRate) error
	Update(ctx context.Context, rate *DiscountRate) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*DiscountRate, error)
	FindByScope(ctx context.Context, scope RateScope, filter shared.Filter) ([]*DiscountRate, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}

// TaxRateRepository defines the interface for tax rate persistence
type TaxRateRepository interface {
	Create(ctx context.Context, rate *TaxRate) error
	Update(ctx context.Context, rate *TaxRate) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*TaxRate, error)
	FindByScope(ctx context.Context, scope RateScope, filter shared.Filter) ([]*TaxRate, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}

// AccountRepository defines the interface for chart-of-accounts persistence
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByLevel(ctx context.Context, companyCode, yearCode string, level int, filter shared.Filter) ([]*Account, int64, error)
	FindChildren(ctx context.Context, companyCode, yearCode, parentCode string) ([]*Account, error)
	CountByLevelAndFinancialYear(ctx context.Context, level int, companyCode, yearCode string) (int64, error)
	CountByLevelAndCompany(ctx context.Context, level int, companyCode string) (int64, error)
}

// BankAccountRepository defines the interface for bank account persistence
type BankAccountRepository interface {
	Create(ctx context.Context, account *BankAccount) error
	Update(ctx context.Context, account *BankAccount) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*BankAccount, error)
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*BankAccount, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}

// CashAccountRepository defines the interface for cash account persistence
type CashAccountRepository interface {
	Create(ctx context.Context, account *CashAccount) error
	Update(ctx context.Context, account *CashAccount) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*CashAccount, error)
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*CashAccount, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}

// SalesVoucherRepository defines the interface for sales voucher persistence
type SalesVoucherRepository interface {
	Create(ctx context.Context, voucher *SalesVoucher) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*SalesVoucher, error)
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*SalesVoucher, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *PurchaseOrder) error
	Update(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*PurchaseOrder, error)
	FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*PurchaseOrder, int64, error)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}
