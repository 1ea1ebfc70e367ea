package handlers

import (
	"testing"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Service{},
		&models.Reservation{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, verified bool) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsVerified:   verified,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
