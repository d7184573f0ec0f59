package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	activityModel "learnhub_backend/internals/features/admin_tools/activity_logs/model"
	enrollModel "learnhub_backend/internals/features/lms/enrollments/model"
	"learnhub_backend/internals/features/lms/payments/model"
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

	require.NoError(t, db.AutoMigrate(
		&model.PaymentModel{},
		&enrollModel.EnrollmentModel{},
		&activityModel.ActivityLogModel{},
		&activityModel.AdminActionLogModel{},
	))
	return db
}

func submitPending(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID) *model.PaymentModel {
	t.Helper()

	payment := &model.PaymentModel{
		PaymentUserID:       userID,
		PaymentCourseID:     courseID,
		PaymentAmount:       1500,
		PaymentProvider:     model.PaymentProviderBkash,
		PaymentProviderTxID: "TRX-" + uuid.NewString()[:8],
	}
	require.NoError(t, SubmitPayment(db, payment))
	return payment
}

func fetchEnrollment(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID) *enrollModel.EnrollmentModel {
	t.Helper()
	var enrollment enrollModel.EnrollmentModel
	err := db.
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	require.NoError(t, err)
	return &enrollment
}

/* =======================================================
   SUBMIT
======================================================= */

func TestSubmitPaymentBlocksDuplicatePending(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()

	submitPending(t, db, userID, courseID)

	dupe := &model.PaymentModel{
		PaymentUserID:       userID,
		PaymentCourseID:     courseID,
		PaymentAmount:       1500,
		PaymentProvider:     model.PaymentProviderNagad,
		PaymentProviderTxID: "TRX-LAIN",
	}
	assert.ErrorIs(t, SubmitPayment(db, dupe), ErrDuplicatePending)

	// Course lain tetap boleh
	other := &model.PaymentModel{
		PaymentUserID:       userID,
		PaymentCourseID:     uuid.New(),
		PaymentAmount:       900,
		PaymentProvider:     model.PaymentProviderBank,
		PaymentProviderTxID: "TRX-COURSE-LAIN",
	}
	assert.NoError(t, SubmitPayment(db, other))
}

func TestSubmitAllowedAfterRejection(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	first := submitPending(t, db, userID, courseID)
	_, err := RejectPayment(db, first.PaymentID, adminID, "bukti transfer tidak cocok")
	require.NoError(t, err)

	// Klaim sebelumnya sudah terminal → klaim baru diterima
	second := submitPending(t, db, userID, courseID)
	assert.Equal(t, model.PaymentStatusPending, second.PaymentStatus)
}

/* =======================================================
   APPROVE
======================================================= */

func TestApprovePaymentActivatesEnrollment(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)

	approved, err := ApprovePayment(db, payment.PaymentID, adminID)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusCompleted, approved.PaymentStatus)
	require.NotNil(t, approved.PaymentApprovedBy)
	assert.Equal(t, adminID, *approved.PaymentApprovedBy)
	assert.NotNil(t, approved.PaymentApprovedAt)

	enrollment := fetchEnrollment(t, db, userID, courseID)
	require.NotNil(t, enrollment)
	assert.True(t, enrollment.EnrollmentIsActive)

	var rows int64
	require.NoError(t, db.Model(&enrollModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestApproveReactivatesExistingEnrollment(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	existing := enrollModel.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
		EnrollmentIsActive: false,
	}
	require.NoError(t, db.Create(&existing).Error)

	// Pastikan false-nya memang tersimpan sebelum approve
	preApprove := fetchEnrollment(t, db, userID, courseID)
	require.NotNil(t, preApprove)
	require.False(t, preApprove.EnrollmentIsActive)

	payment := submitPending(t, db, userID, courseID)
	_, err := ApprovePayment(db, payment.PaymentID, adminID)
	require.NoError(t, err)

	enrollment := fetchEnrollment(t, db, userID, courseID)
	require.NotNil(t, enrollment)
	assert.Equal(t, existing.EnrollmentID, enrollment.EnrollmentID) // baris lama dipakai ulang
	assert.True(t, enrollment.EnrollmentIsActive)
}

func TestApproveRequiresPending(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)
	_, err := ApprovePayment(db, payment.PaymentID, adminID)
	require.NoError(t, err)

	_, err = ApprovePayment(db, payment.PaymentID, adminID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApproveMissingPayment(t *testing.T) {
	db := openTestDB(t)
	_, err := ApprovePayment(db, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

/* =======================================================
   REJECT
======================================================= */

func TestRejectPayment(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)

	rejected, err := RejectPayment(db, payment.PaymentID, adminID, "nominal tidak sesuai")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusRejected, rejected.PaymentStatus)
	require.NotNil(t, rejected.PaymentNote)
	assert.Equal(t, "nominal tidak sesuai", *rejected.PaymentNote)

	// Reject tidak membuat enrollment
	assert.Nil(t, fetchEnrollment(t, db, userID, courseID))
}

func TestRejectRequiresPending(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)
	_, err := ApprovePayment(db, payment.PaymentID, adminID)
	require.NoError(t, err)

	_, err = RejectPayment(db, payment.PaymentID, adminID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// State tidak berubah setelah transisi gagal
	var got model.PaymentModel
	require.NoError(t, db.First(&got, "payment_id = ?", payment.PaymentID).Error)
	assert.Equal(t, model.PaymentStatusCompleted, got.PaymentStatus)
}

/* =======================================================
   REFUND
======================================================= */

func TestRefundAfterApproveDeactivatesEnrollment(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)
	_, err := ApprovePayment(db, payment.PaymentID, adminID)
	require.NoError(t, err)

	refunded, err := RefundPayment(db, payment.PaymentID, adminID, "dibatalkan siswa")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusRefunded, refunded.PaymentStatus)
	assert.NotNil(t, refunded.PaymentRefundedAt)

	// Enrollment dinonaktifkan, barisnya tetap ada
	enrollment := fetchEnrollment(t, db, userID, courseID)
	require.NotNil(t, enrollment)
	assert.False(t, enrollment.EnrollmentIsActive)

	// Approve ulang payment yang sudah refund harus ditolak
	_, err = ApprovePayment(db, payment.PaymentID, adminID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRefundRejectedPayment(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)
	_, err := RejectPayment(db, payment.PaymentID, adminID, "")
	require.NoError(t, err)

	refunded, err := RefundPayment(db, payment.PaymentID, adminID, "uang dikembalikan manual")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRefunded, refunded.PaymentStatus)
}

func TestRefundRequiresCompletedOrRejected(t *testing.T) {
	db := openTestDB(t)
	userID, courseID := uuid.New(), uuid.New()
	adminID := uuid.New()

	payment := submitPending(t, db, userID, courseID)

	_, err := RefundPayment(db, payment.PaymentID, adminID, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var got model.PaymentModel
	require.NoError(t, db.First(&got, "payment_id = ?", payment.PaymentID).Error)
	assert.Equal(t, model.PaymentStatusPending, got.PaymentStatus)
	assert.Nil(t, got.PaymentRefundedAt)
}
