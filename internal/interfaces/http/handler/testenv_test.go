package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appcoding "github.com/finbooks/backend/internal/application/coding"
	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/finbooks/backend/internal/application/identity"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/finbooks/backend/internal/infrastructure/persistence"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/finbooks/backend/internal/interfaces/http/router"
)

// testEnv wires the full stack against an in-memory sqlite database,
// so handler tests go through the real router, middleware, services
// and repositories.
type testEnv struct {
	engine *gin.Engine
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.CompanyModel{},
		&models.LocationModel{},
		&models.FinancialYearModel{},
		&models.UserModel{},
		&models.ItemDescriptionCodeModel{},
		&models.DiscountRateModel{},
		&models.TaxRateModel{},
		&models.AccountModel{},
		&models.BankAccountModel{},
		&models.CashAccountModel{},
		&models.SalesVoucherModel{},
		&models.PurchaseOrderModel{},
		&models.PurchaseOrderLineModel{},
	))

	database := &persistence.Database{DB: db}
	t.Cleanup(func() { _ = database.Close() })

	companyRepo := persistence.NewGormCompanyRepository(database)
	locationRepo := persistence.NewGormLocationRepository(database)
	yearRepo := persistence.NewGormFinancialYearRepository(database)
	userRepo := persistence.NewGormUserRepository(database)
	itemRepo := persistence.NewGormItemCodeRepository(database)
	discountRepo := persistence.NewGormDiscountRateRepository(database)
	taxRepo := persistence.NewGormTaxRateRepository(database)
	accountRepo := persistence.NewGormAccountRepository(database)
	bankRepo := persistence.NewGormBankAccountRepository(database)
	cashRepo := persistence.NewGormCashAccountRepository(database)
	voucherRepo := persistence.NewGormSalesVoucherRepository(database)
	orderRepo := persistence.NewGormPurchaseOrderRepository(database)

	guard := refguard.NewRegistry()
	persistence.RegisterDependents(guard, persistence.Dependents{
		DB:             database,
		Users:          userRepo,
		DiscountRates:  discountRepo,
		TaxRates:       taxRepo,
		Accounts:       accountRepo,
		BankAccounts:   bankRepo,
		CashAccounts:   cashRepo,
		SalesVouchers:  voucherRepo,
		PurchaseOrders: orderRepo,
	})

	logger := zap.NewNop()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "finbooks-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	companyService := appcompany.NewCompanyService(companyRepo, guard, logger)
	locationService := appcompany.NewLocationService(locationRepo, companyRepo, guard, logger)
	yearService := appcompany.NewFinancialYearService(yearRepo, companyRepo, guard, logger)
	userService := identity.NewUserService(userRepo, logger)
	authService := identity.NewAuthService(userRepo, jwtService, blacklist, logger)
	itemService := appcoding.NewItemCodeService(itemRepo, logger)
	rateService := appcoding.NewRateService(discountRepo, taxRepo, logger)
	accountService := appcoding.NewAccountService(accountRepo, bankRepo, cashRepo, logger)
	voucherService := appcoding.NewVoucherService(voucherRepo, orderRepo, logger)

	engine := router.New(router.Config{
		HTTP:       config.HTTPConfig{},
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     logger,
	},
		NewHealthHandler(database),
		NewAuthHandler(authService, userService, companyService),
		NewCompanyHandler(companyService),
		NewLocationHandler(locationService),
		NewFinancialYearHandler(yearService),
		NewUserHandler(userService),
		NewItemCodeHandler(itemService),
		NewRateHandler(rateService),
		NewAccountHandler(accountService),
		NewVoucherHandler(voucherService),
	)

	// Seed an admin and log in through the real endpoint so every
	// test request carries a valid token.
	_, err = userService.Create(context.Background(), identity.CreateUserInput{
		Username: "admin",
		Password: "admin-secret",
		FullName: "Administrator",
		Role:     "admin",
	})
	require.NoError(t, err)

	env := &testEnv{engine: engine}
	w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": "admin",
		"password": "admin-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.AccessToken)
	env.token = login.Data.AccessToken

	return env
}

// do issues a JSON request through the full middleware chain. The
// admin token is attached when one has been issued.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeError unmarshals the error field of a failure envelope.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code string, details json.RawMessage) {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string          `json:"code"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	return envelope.Error.Code, envelope.Error.Details
}
