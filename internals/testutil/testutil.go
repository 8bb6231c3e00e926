// Package testutil menyediakan database in-memory dan helper auth untuk test.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/configs"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

const TestJWTSecret = "test-secret"

// OpenTestDB membuka sqlite in-memory dan memigrasi model yang diberikan.
func OpenTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// CreateTestUser menyimpan user aktif dengan password ter-hash.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password, role string) userModel.UserModel {
	t.Helper()

	hashed, err := helper.HashPassword(password)
	require.NoError(t, err)

	user := userModel.UserModel{
		Name:     "Test " + username,
		Email:    username + "@sekolahku.sch.id",
		Username: username,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// AuthToken menerbitkan token valid untuk user test.
func AuthToken(t *testing.T, user userModel.UserModel) string {
	t.Helper()

	configs.JWTSecret = TestJWTSecret
	token, err := authService.SignToken(user, time.Hour)
	require.NoError(t, err)
	return token
}
