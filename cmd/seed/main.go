package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/finbooks/backend/internal/application/identity"
	domaincompany "github.com/finbooks/backend/internal/domain/company"
	domainidentity "github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/refguard"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/config"
	"github.com/finbooks/backend/internal/infrastructure/logger"
	"github.com/finbooks/backend/internal/infrastructure/persistence"
)

// Bootstrap fixtures: one company, its head office, a default
// financial year and an admin login. Every step checks before it
// creates, so reruns are no-ops.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	companyRepo := persistence.NewGormCompanyRepository(db)
	locationRepo := persistence.NewGormLocationRepository(db)
	yearRepo := persistence.NewGormFinancialYearRepository(db)
	userRepo := persistence.NewGormUserRepository(db)

	guard := refguard.NewRegistry()
	companyService := appcompany.NewCompanyService(companyRepo, guard, log)
	locationService := appcompany.NewLocationService(locationRepo, companyRepo, guard, log)
	yearService := appcompany.NewFinancialYearService(yearRepo, companyRepo, guard, log)
	userService := identity.NewUserService(userRepo, log)

	ctx := context.Background()

	if err := seedCompany(ctx, companyService); err != nil {
		log.Fatal("Failed to seed company", zap.Error(err))
	}
	if err := seedHeadOffice(ctx, locationRepo, locationService); err != nil {
		log.Fatal("Failed to seed head office", zap.Error(err))
	}
	if err := seedFinancialYear(ctx, yearService); err != nil {
		log.Fatal("Failed to seed financial year", zap.Error(err))
	}
	if err := seedAdmin(ctx, userRepo, userService); err != nil {
		log.Fatal("Failed to seed admin user", zap.Error(err))
	}

	log.Info("Seed complete")
}

func seedCompany(ctx context.Context, service *appcompany.CompanyService) error {
	_, err := service.GetByCode(ctx, "01")
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	_, err = service.Create(ctx, appcompany.CreateCompanyInput{
		Code: "01",
		Name: "Default Company",
	})
	return err
}

func seedHeadOffice(ctx context.Context, repo domaincompany.LocationRepository, service *appcompany.LocationService) error {
	_, err := repo.FindByCode(ctx, "01", "01")
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	_, err = service.Create(ctx, appcompany.CreateLocationInput{
		CompanyCode:  "01",
		Code:         "01",
		Name:         "Head Office",
		IsHeadOffice: true,
	})
	return err
}

func seedFinancialYear(ctx context.Context, service *appcompany.FinancialYearService) error {
	_, err := service.GetDefault(ctx, "01")
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	// July to June, the fiscal year in force at seed time.
	now := time.Now()
	start := time.Date(now.Year(), time.July, 1, 0, 0, 0, 0, time.UTC)
	if now.Month() < time.July {
		start = start.AddDate(-1, 0, 0)
	}
	end := start.AddDate(1, 0, -1)

	_, err = service.Create(ctx, appcompany.CreateFinancialYearInput{
		CompanyCode: "01",
		Code:        "01",
		Title:       start.Format("2006") + "-" + end.Format("06"),
		StartDate:   start,
		EndDate:     end,
		IsDefault:   true,
	})
	return err
}

func seedAdmin(ctx context.Context, repo domainidentity.UserRepository, service *identity.UserService) error {
	exists, err := repo.ExistsByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = service.Create(ctx, identity.CreateUserInput{
		Username:     "admin",
		Password:     "admin",
		FullName:     "Administrator",
		Role:         "admin",
		CompanyCode:  "01",
		LocationCode: "01",
		YearCode:     "01",
	})
	return err
}
