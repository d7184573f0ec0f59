package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"learnhub_backend/internals/constants"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&UserModel{}))
	return db
}

func TestUserCreateFillsDefaults(t *testing.T) {
	db := openTestDB(t)

	user := UserModel{
		UserName: "aisyah",
		Email:    "aisyah@example.com",
	}
	require.NoError(t, user.SetPassword("rahasia-banget"))
	require.NoError(t, db.Create(&user).Error)

	// ID dari hook BeforeCreate, bukan default DB
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, constants.RoleStudent, user.Role)
}

func TestUserPasswordRoundTrip(t *testing.T) {
	var user UserModel
	require.NoError(t, user.SetPassword("rahasia-banget"))

	assert.NotEqual(t, "rahasia-banget", user.Password) // tersimpan sebagai hash
	assert.True(t, user.CheckPassword("rahasia-banget"))
	assert.False(t, user.CheckPassword("salah"))
}

func TestUserDisplayNameFallback(t *testing.T) {
	u := UserModel{FullName: "Aisyah Rahman", UserName: "aisyah"}
	assert.Equal(t, "Aisyah Rahman", u.DisplayName())

	u.FullName = ""
	assert.Equal(t, "aisyah", u.DisplayName())

	u.UserName = ""
	assert.Equal(t, "Unknown user", u.DisplayName())
}
