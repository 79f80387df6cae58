package coding

import (
	"context"

	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
)

// AccountService handles the chart of accounts plus bank and cash
// accounts
type AccountService struct {
	accountRepo coding.AccountRepository
	bankRepo    coding.BankAccountRepository
	cashRepo    coding.CashAccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo coding.AccountRepository,
	bankRepo coding.BankAccountRepository,
	cashRepo coding.CashAccountRepository,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		bankRepo:    bankRepo,
		cashRepo:    cashRepo,
		logger:      logger,
	}
}

// CreateAccountInput contains input for creating a chart-of-accounts node
type CreateAccountInput struct {
	CompanyCode string
	YearCode    string
	Level       int
	Code        string
	ParentCode  string
	Title       string
}

// CreateAccount creates a new chart-of-accounts node. Levels above the
// first must name an existing parent one level up.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*AccountDTO, error) {
	account, err := coding.NewAccount(input.CompanyCode, input.YearCode, input.Level, input.Code, input.ParentCode, input.Title)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.Error("failed to create account",
			zap.String("code", input.Code),
			zap.Int("level", input.Level), zap.Error(err))
		return nil, err
	}
	return toAccountDTO(account), nil
}

// RetitleAccount changes an account's title
func (s *AccountService) RetitleAccount(ctx context.Context, id, title string) (*AccountDTO, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := account.Retitle(title); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return toAccountDTO(account), nil
}

// ListAccounts returns one hierarchy level's accounts with pagination
func (s *AccountService) ListAccounts(ctx context.Context, companyCode, yearCode string, level int, filter shared.Filter) (*ListResult[*AccountDTO], error) {
	filter.Normalize()
	accounts, total, err := s.accountRepo.FindByLevel(ctx, companyCode, yearCode, level, filter)
	if err != nil {
		s.logger.Error("failed to list accounts", zap.Int("level", level), zap.Error(err))
		return nil, err
	}

	dtos := make([]*AccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// ListChildren returns the direct children of a parent account code
func (s *AccountService) ListChildren(ctx context.Context, companyCode, yearCode, parentCode string) ([]*AccountDTO, error) {
	accounts, err := s.accountRepo.FindChildren(ctx, companyCode, yearCode, parentCode)
	if err != nil {
		return nil, err
	}

	dtos := make([]*AccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	return dtos, nil
}

// DeleteAccount deletes an account unless children still reference it
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.accountRepo.FindChildren(ctx, account.CompanyCode, account.YearCode, account.Code)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return shared.NewDomainError("ACCOUNT_HAS_CHILDREN", "Account still has child accounts")
	}

	return s.accountRepo.Delete(ctx, id)
}

// CreateBankAccountInput contains input for creating a bank account
type CreateBankAccountInput struct {
	CompanyCode   string
	LocationCode  string
	YearCode      string
	BankName      string
	AccountTitle  string
	AccountNumber string
}

// CreateBankAccount creates a new bank account
func (s *AccountService) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*BankAccountDTO, error) {
	account, err := coding.NewBankAccount(input.CompanyCode, input.LocationCode, input.YearCode,
		input.BankName, input.AccountTitle, input.AccountNumber)
	if err != nil {
		return nil, err
	}

	if err := s.bankRepo.Create(ctx, account); err != nil {
		s.logger.Error("failed to create bank account",
			zap.String("bank_name", input.BankName), zap.Error(err))
		return nil, err
	}
	return toBankAccountDTO(account), nil
}

// ListBankAccounts returns the company's bank accounts with pagination
func (s *AccountService) ListBankAccounts(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*BankAccountDTO], error) {
	filter.Normalize()
	accounts, total, err := s.bankRepo.FindByCompany(ctx, companyCode, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]*BankAccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toBankAccountDTO(a)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// DeleteBankAccount deletes a bank account by ID
func (s *AccountService) DeleteBankAccount(ctx context.Context, id string) error {
	return s.bankRepo.Delete(ctx, id)
}

// CreateCashAccountInput contains input for creating a cash account
type CreateCashAccountInput struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
	Title        string
}

// CreateCashAccount creates a new cash account
func (s *AccountService) CreateCashAccount(ctx context.Context, input CreateCashAccountInput) (*CashAccountDTO, error) {
	account, err := coding.NewCashAccount(input.CompanyCode, input.LocationCode, input.YearCode, input.Title)
	if err != nil {
		return nil, err
	}

	if err := s.cashRepo.Create(ctx, account); err != nil {
		s.logger.Error("failed to create cash account",
			zap.String("title", input.Title), zap.Error(err))
		return nil, err
	}
	return toCashAccountDTO(account), nil
}

// ListCashAccounts returns the company's cash accounts with pagination
func (s *AccountService) ListCashAccounts(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*CashAccountDTO], error) {
	filter.Normalize()
	accounts, total, err := s.cashRepo.FindByCompany(ctx, companyCode, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]*CashAccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toCashAccountDTO(a)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// DeleteCashAccount deletes a cash account by ID
func (s *AccountService) DeleteCashAccount(ctx context.Context, id string) error {
	return s.cashRepo.Delete(ctx, id)
}
