package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appcoding "github.com/finbooks/backend/internal/application/coding"
	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/finbooks/backend/internal/application/identity"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/finbooks/backend/internal/infrastructure/logger"
	"github.com/finbooks/backend/internal/infrastructure/persistence"
	"github.com/finbooks/backend/internal/interfaces/http/handler"
	"github.com/finbooks/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FinBooks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		_ = blacklist.Close()
	}()
	log.Info("Redis connected")

	jwtService := auth.NewJWTService(cfg.JWT)

	companyRepo := persistence.NewGormCompanyRepository(db)
	locationRepo := persistence.NewGormLocationRepository(db)
	yearRepo := persistence.NewGormFinancialYearRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	itemRepo := persistence.NewGormItemCodeRepository(db)
	discountRepo := persistence.NewGormDiscountRateRepository(db)
	taxRepo := persistence.NewGormTaxRateRepository(db)
	accountRepo := persistence.NewGormAccountRepository(db)
	bankRepo := persistence.NewGormBankAccountRepository(db)
	cashRepo := persistence.NewGormCashAccountRepository(db)
	voucherRepo := persistence.NewGormSalesVoucherRepository(db)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db)

	guard := refguard.NewRegistry()
	persistence.RegisterDependents(guard, persistence.Dependents{
		DB:             db,
		Users:          userRepo,
		DiscountRates:  discountRepo,
		TaxRates:       taxRepo,
		Accounts:       accountRepo,
		BankAccounts:   bankRepo,
		CashAccounts:   cashRepo,
		SalesVouchers:  voucherRepo,
		PurchaseOrders: orderRepo,
	})

	companyService := appcompany.NewCompanyService(companyRepo, guard, log)
	locationService := appcompany.NewLocationService(locationRepo, companyRepo, guard, log)
	yearService := appcompany.NewFinancialYearService(yearRepo, companyRepo, guard, log)
	userService := identity.NewUserService(userRepo, log)
	authService := identity.NewAuthService(userRepo, jwtService, blacklist, log)
	itemService := appcoding.NewItemCodeService(itemRepo, log)
	rateService := appcoding.NewRateService(discountRepo, taxRepo, log)
	accountService := appcoding.NewAccountService(accountRepo, bankRepo, cashRepo, log)
	voucherService := appcoding.NewVoucherService(voucherRepo, orderRepo, log)

	engine := router.New(router.Config{
		HTTP:       cfg.HTTP,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     log,
	},
		handler.NewHealthHandler(db),
		handler.NewAuthHandler(authService, userService, companyService),
		handler.NewCompanyHandler(companyService),
		handler.NewLocationHandler(locationService),
		handler.NewFinancialYearHandler(yearService),
		handler.NewUserHandler(userService),
		handler.NewItemCodeHandler(itemService),
		handler.NewRateHandler(rateService),
		handler.NewAccountHandler(accountService),
		handler.NewVoucherHandler(voucherService),
	)

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
