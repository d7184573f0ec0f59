package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"learnhub_backend/internals/features/lms/certificates/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.CertificateModel{}))
	return db
}

func TestIssueIfMissingCreatesOnce(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()

	first, err := IssueIfMissing(db, userID, courseID, nil, 100)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.CertificateSerial, "CERT-"))
	assert.Equal(t, model.CertificateStatusValid, first.CertificateStatus)
	assert.Equal(t, 100.0, first.CertificateProgressSnapshot)

	// Pemanggilan kedua mengembalikan baris yang sama, bukan duplikat
	second, err := IssueIfMissing(db, userID, courseID, nil, 100)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateID, second.CertificateID)
	assert.Equal(t, first.CertificateSerial, second.CertificateSerial)

	var count int64
	require.NoError(t, db.Model(&model.CertificateModel{}).
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssueIfMissingReturnsExisting(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()

	existing := model.CertificateModel{
		CertificateID:               uuid.New(),
		CertificateUserID:           userID,
		CertificateCourseID:         courseID,
		CertificateSerial:           "CERT-MANUAL-001",
		CertificateProgressSnapshot: 100,
		CertificateStatus:           model.CertificateStatusValid,
		CertificateIssuedAt:         time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, db.Create(&existing).Error)

	got, err := IssueIfMissing(db, userID, courseID, nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "CERT-MANUAL-001", got.CertificateSerial)
	assert.Equal(t, existing.CertificateID, got.CertificateID)
}

func TestIssueIfMissingPerCoursePair(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.New()
	courseA, courseB := uuid.New(), uuid.New()

	issuedBy := uuid.New()
	a, err := IssueIfMissing(db, userID, courseA, &issuedBy, 100)
	require.NoError(t, err)
	b, err := IssueIfMissing(db, userID, courseB, &issuedBy, 100)
	require.NoError(t, err)

	// User sama, course beda → dua sertifikat berbeda
	assert.NotEqual(t, a.CertificateID, b.CertificateID)
	require.NotNil(t, a.CertificateIssuedBy)
	assert.Equal(t, issuedBy, *a.CertificateIssuedBy)
}

func TestIssueIfMissingRoundsSnapshot(t *testing.T) {
	db := openTestDB(t)

	got, err := IssueIfMissing(db, uuid.New(), uuid.New(), nil, 99.999)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.CertificateProgressSnapshot)
}
