package services_test

import (
	"testing"
	"time"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database per test. A single
// connection keeps every session on the same in-memory store, and the
// foreign_keys pragma arms the restrict constraints the code under test
// relies on.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Trainer{},
	))

	return db
}

// createUser inserts a user row directly, bypassing the registration flow.
func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("Str0ng!Pass")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		PhoneNumber:  "0740123456",
		Role:         role,
		DateOfBirth:  time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTokenService(t *testing.T) *auth.TokenService {
	t.Helper()

	tokens, err := auth.NewTokenService("test-secret", "gymfit-test", "gymfit-spa", 60)
	require.NoError(t, err)
	return tokens
}
