package company

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/domain/shared"
)

// MockFinancialYearRepository is a mock implementation of company.FinancialYearRepository
type MockFinancialYearRepository struct {
	mock.Mock
}

func (m *MockFinancialYearRepository) Create(ctx context.Context, fy *company.FinancialYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

func (m *MockFinancialYearRepository) Update(ctx context.Context, fy *company.FinancialYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

func (m *MockFinancialYearRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFinancialYearRepository) FindByID(ctx context.Context, id string) (*company.FinancialYear, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) FindByCode(ctx context.Context, companyCode, code string) (*company.FinancialYear, error) {
	args := m.Called(ctx, companyCode, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) FindByCompany(ctx context.Context, companyCode string, filter shared.Filter) ([]*company.FinancialYear, int64, error) {
	args := m.Called(ctx, companyCode, filter)
	return args.Get(0).([]*company.FinancialYear), args.Get(1).(int64), args.Error(2)
}

func (m *MockFinancialYearRepository) FindDefault(ctx context.Context, companyCode string) (*company.FinancialYear, error) {
	args := m.Called(ctx, companyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearRepository) ListCodes(ctx context.Context, companyCode string) ([]string, error) {
	args := m.Called(ctx, companyCode)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFinancialYearRepository) ExistsByCode(ctx context.Context, companyCode, code string) (bool, error) {
	args := m.Called(ctx, companyCode, code)
	return args.Bool(0), args.Error(1)
}

func newYearFixture(t *testing.T) (*FinancialYearService, *MockFinancialYearRepository, *MockCompanyRepository) {
	t.Helper()
	yearRepo := new(MockFinancialYearRepository)
	companyRepo := new(MockCompanyRepository)
	svc := NewFinancialYearService(yearRepo, companyRepo, refguard.NewRegistry(), zap.NewNop())
	return svc, yearRepo, companyRepo
}

func TestFinancialYearService_Create(t *testing.T) {
	ctx := context.Background()

	parent, err := company.NewCompany("01", "Acme Traders")
	require.NoError(t, err)

	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	t.Run("first year becomes the default automatically", func(t *testing.T) {
		svc, yearRepo, companyRepo := newYearFixture(t)
		companyRepo.On("FindByCode", ctx, "01").Return(parent, nil)
		yearRepo.On("ListCodes", ctx, "01").Return([]string{}, nil)
		yearRepo.On("ExistsByCode", ctx, "01", "01").Return(false, nil)
		yearRepo.On("Create", ctx, mock.AnythingOfType("*company.FinancialYear")).Return(nil)

		dto, err := svc.Create(ctx, CreateFinancialYearInput{
			CompanyCode: "01",
			Title:       "FY 2024-25",
			StartDate:   start,
			EndDate:     end,
		})
		require.NoError(t, err)
		assert.Equal(t, "01", dto.Code)
		assert.True(t, dto.IsDefault)
		assert.Equal(t, "2024-07-01 to 2025-06-30", dto.Period)
	})

	t.Run("later years are not default unless asked", func(t *testing.T) {
		svc, yearRepo, companyRepo := newYearFixture(t)
		companyRepo.On("FindByCode", ctx, "01").Return(parent, nil)
		yearRepo.On("ListCodes", ctx, "01").Return([]string{"01"}, nil)
		yearRepo.On("ExistsByCode", ctx, "01", "02").Return(false, nil)
		yearRepo.On("Create", ctx, mock.AnythingOfType("*company.FinancialYear")).Return(nil)

		dto, err := svc.Create(ctx, CreateFinancialYearInput{
			CompanyCode: "01",
			Title:       "FY 2025-26",
			StartDate:   start.AddDate(1, 0, 0),
			EndDate:     end.AddDate(1, 0, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, "02", dto.Code)
		assert.False(t, dto.IsDefault)
	})

	t.Run("unknown company fails before any year work", func(t *testing.T) {
		svc, yearRepo, companyRepo := newYearFixture(t)
		companyRepo.On("FindByCode", ctx, "99").Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateFinancialYearInput{
			CompanyCode: "99",
			Title:       "FY 2024-25",
			StartDate:   start,
			EndDate:     end,
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		yearRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a span shorter than a month", func(t *testing.T) {
		svc, yearRepo, companyRepo := newYearFixture(t)
		companyRepo.On("FindByCode", ctx, "01").Return(parent, nil)
		yearRepo.On("ListCodes", ctx, "01").Return([]string{}, nil)
		yearRepo.On("ExistsByCode", ctx, "01", "01").Return(false, nil)

		_, err := svc.Create(ctx, CreateFinancialYearInput{
			CompanyCode: "01",
			Title:       "Too short",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 10),
		})
		require.Error(t, err)
		yearRepo.AssertNotCalled(t, "Create")
	})
}

func TestFinancialYearService_SetDefault(t *testing.T) {
	ctx := context.Background()
	svc, yearRepo, _ := newYearFixture(t)

	fy, err := company.NewFinancialYear("01", "02", "FY 2025-26",
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	yearRepo.On("FindByID", ctx, fy.ID).Return(fy, nil)
	yearRepo.On("Update", ctx, mock.MatchedBy(func(updated *company.FinancialYear) bool {
		return updated.IsDefault
	})).Return(nil)

	dto, err := svc.SetDefault(ctx, fy.ID)
	require.NoError(t, err)
	assert.True(t, dto.IsDefault)
	yearRepo.AssertExpectations(t)
}
