package persistence

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// RegisterDependents populates the reference guard catalogue with every
// dependent kind the schema knows about. Called once at startup, after
// the repositories exist. Each closure filters on the full natural key
// of its parent; a location-scoped count that ignored location_code
// would block deletes of unrelated sibling locations.
func RegisterDependents(reg *refguard.Registry, deps Dependents) {
	registerCompanyDependents(reg, deps)
	registerLocationDependents(reg, deps)
	registerFinancialYearDependents(reg, deps)
}

// Dependents bundles the repositories whose records reference the
// tenancy hierarchy.
type Dependents struct {
	DB             *Database
	Users          identity.UserRepository
	DiscountRates  coding.DiscountRateRepository
	TaxRates       coding.TaxRateRepository
	Accounts       coding.AccountRepository
	BankAccounts   coding.BankAccountRepository
	CashAccounts   coding.CashAccountRepository
	SalesVouchers  coding.SalesVoucherRepository
	PurchaseOrders coding.PurchaseOrderRepository
}

func registerCompanyDependents(reg *refguard.Registry, deps Dependents) {
	// Child tenancy records block company deletion before anything else.
	reg.Register(refguard.ParentCompany, "locations", func(ctx context.Context, key refguard.Key) (int64, error) {
		return countScoped(ctx, deps.DB, &models.LocationModel{}, "company_code = ?", key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "financial_years", func(ctx context.Context, key refguard.Key) (int64, error) {
		return countScoped(ctx, deps.DB, &models.FinancialYearModel{}, "company_code = ?", key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "item_description_codes", func(ctx context.Context, key refguard.Key) (int64, error) {
		return countScoped(ctx, deps.DB, &models.ItemDescriptionCodeModel{}, "company_code = ?", key.CompanyCode)
	})

	reg.Register(refguard.ParentCompany, "users", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.Users.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "discount_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.DiscountRates.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "tax_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.TaxRates.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "bank_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.BankAccounts.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "cash_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.CashAccounts.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "sales_vouchers", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.SalesVouchers.CountByCompany(ctx, key.CompanyCode)
	})
	reg.Register(refguard.ParentCompany, "purchase_orders", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.PurchaseOrders.CountByCompany(ctx, key.CompanyCode)
	})

	for level := 1; level <= coding.MaxAccountLevel; level++ {
		level := level
		kind := fmt.Sprintf("account_level_%d", level)
		reg.Register(refguard.ParentCompany, kind, func(ctx context.Context, key refguard.Key) (int64, error) {
			return deps.Accounts.CountByLevelAndCompany(ctx, level, key.CompanyCode)
		})
	}
}

func registerLocationDependents(reg *refguard.Registry, deps Dependents) {
	reg.Register(refguard.ParentLocation, "users", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.Users.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "discount_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.DiscountRates.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "tax_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.TaxRates.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "bank_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.BankAccounts.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "cash_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.CashAccounts.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "sales_vouchers", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.SalesVouchers.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
	reg.Register(refguard.ParentLocation, "purchase_orders", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.PurchaseOrders.CountByLocation(ctx, key.CompanyCode, key.LocationCode)
	})
}

func registerFinancialYearDependents(reg *refguard.Registry, deps Dependents) {
	reg.Register(refguard.ParentFinancialYear, "users", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.Users.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "discount_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.DiscountRates.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "tax_rates", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.TaxRates.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "bank_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.BankAccounts.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "cash_accounts", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.CashAccounts.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "sales_vouchers", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.SalesVouchers.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})
	reg.Register(refguard.ParentFinancialYear, "purchase_orders", func(ctx context.Context, key refguard.Key) (int64, error) {
		return deps.PurchaseOrders.CountByFinancialYear(ctx, key.CompanyCode, key.YearCode)
	})

	for level := 1; level <= coding.MaxAccountLevel; level++ {
		level := level
		kind := fmt.Sprintf("account_level_%d", level)
		reg.Register(refguard.ParentFinancialYear, kind, func(ctx context.Context, key refguard.Key) (int64, error) {
			return deps.Accounts.CountByLevelAndFinancialYear(ctx, level, key.CompanyCode, key.YearCode)
		})
	}
}
