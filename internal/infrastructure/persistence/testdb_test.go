package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
)

// newTestDatabase opens an in-memory sqlite database with the full
// schema migrated. TranslateError is on so duplicate-key violations
// surface as gorm.ErrDuplicatedKey, same as the postgres runtime.
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)

	database := &Database{DB: db}
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}
