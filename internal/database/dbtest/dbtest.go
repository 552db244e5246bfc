// Package dbtest opens migrated, throwaway SQLite databases for tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/config"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a private in-memory database with every table migrated. It is
// closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := database.Open(config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// Config returns settings suitable for tests: a fixed JWT secret and the
// cheapest bcrypt cost.
func Config() *config.Config {
	return &config.Config{
		DBDriver:         config.DriverSQLite,
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		BcryptCost:       4,
		AuthRequired:     true,
		RateLimitPerMin:  1000,
		CORSOrigins:      "*",
	}
}
