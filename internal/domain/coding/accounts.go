package coding

import (
	"strings"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxAccountLevel is the depth of the chart of accounts hierarchy.
const MaxAccountLevel = 4

// Account is one node of the hierarchical chart of accounts. Level 1
// accounts are control heads; each deeper level narrows under a parent
// code. Accounts are scoped to a company and financial year.
type Account struct {
	shared.BaseEntity
	CompanyCode string
	YearCode    string
	Level       int
	Code        string
	ParentCode  string
	Title       string
}

// NewAccount creates a chart-of-accounts node. Levels deeper than 1
// require the parent account's code.
func NewAccount(companyCode, yearCode string, level int, code, parentCode, title string) (*Account, error) {
	if companyCode == "" || yearCode == "" {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Company and financial year codes are required")
	}
	if level < 1 || level > MaxAccountLevel {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_LEVEL", "Account level must be between 1 and 4")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Account code cannot be empty")
	}
	parentCode = strings.TrimSpace(parentCode)
	if level > 1 && parentCode == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Parent account code is required below level 1")
	}
	if level == 1 && parentCode != "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Level 1 accounts cannot have a parent")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TITLE", "Account title cannot be empty")
	}

	return &Account{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyCode: companyCode,
		YearCode:    yearCode,
		Level:       level,
		Code:        code,
		ParentCode:  parentCode,
		Title:       title,
	}, nil
}

// Retitle changes the account title.
func (a *Account) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_TITLE", "Account title cannot be empty")
	}
	a.Title = title
	return nil
}

// BankAccount is a bank ledger account within a tenancy scope.
type BankAccount struct {
	shared.BaseEntity
	CompanyCode   string
	LocationCode  string
	YearCode      string
	BankName      string
	AccountTitle  string
	AccountNumber string
	Balance       decimal.Decimal
}

// NewBankAccount creates a bank account.
func NewBankAccount(companyCode, locationCode, yearCode, bankName, accountTitle, accountNumber string) (*BankAccount, error) {
	if companyCode == "" || locationCode == "" || yearCode == "" {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Company, location and financial year codes are required")
	}
	bankName = strings.TrimSpace(bankName)
	accountTitle = strings.TrimSpace(accountTitle)
	accountNumber = strings.TrimSpace(accountNumber)
	if bankName == "" || accountTitle == "" || accountNumber == "" {
		return nil, shared.NewDomainError("INVALID_BANK_ACCOUNT", "Bank name, account title and account number are required")
	}

	return &BankAccount{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyCode:   companyCode,
		LocationCode:  locationCode,
		YearCode:      yearCode,
		BankName:      bankName,
		AccountTitle:  accountTitle,
		AccountNumber: accountNumber,
		Balance:       decimal.Zero,
	}, nil
}

// CashAccount is a cash-in-hand ledger account within a tenancy scope.
type CashAccount struct {
	shared.BaseEntity
	CompanyCode  string
	LocationCode string
	YearCode     string
	Title        string
	Balance      decimal.Decimal
}

// NewCashAccount creates a cash account.
func NewCashAccount(companyCode, locationCode, yearCode, title string) (*CashAccount, error) {
	if companyCode == "" || locationCode == "" || yearCode == "" {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Company, location and financial year codes are required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_CASH_ACCOUNT", "Cash account title is required")
	}

	return &CashAccount{
		BaseEntity:   shared.NewBaseEntity(),
		CompanyCode:  companyCode,
		LocationCode: locationCode,
		YearCode:     yearCode,
		Title:        title,
		Balance:      decimal.Zero,
	}, nil
}

// SalesVoucher records one posted sale within a tenancy scope.
type SalesVoucher struct {
	shared.BaseEntity
	CompanyCode  string
	LocationCode string
	YearCode     string
	VoucherNo    string
	VoucherDate  time.Time
	CustomerName string
	Amount       decimal.Decimal
}

// NewSalesVoucher creates a sales voucher.
func NewSalesVoucher(companyCode, locationCode, yearCode, voucherNo string, voucherDate time.Time, customerName string, amount decimal.Decimal) (*SalesVoucher, error) {
	if companyCode == "" || locationCode == "" || yearCode == "" {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Company, location and financial year codes are required")
	}
	voucherNo = strings.TrimSpace(voucherNo)
	if voucherNo == "" {
		return nil, shared.NewDomainError("INVALID_VOUCHER", "Voucher number is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VOUCHER", "Voucher amount cannot be negative")
	}

	return &SalesVoucher{
		BaseEntity:   shared.NewBaseEntity(),
		CompanyCode:  companyCode,
		LocationCode: locationCode,
		YearCode:     yearCode,
		VoucherNo:    voucherNo,
		VoucherDate:  voucherDate,
		CustomerName: strings.TrimSpace(customerName),
		Amount:       amount,
	}, nil
}
