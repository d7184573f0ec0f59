package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityService "learnhub_backend/internals/features/admin_tools/activity_logs/service"
	enrollModel "learnhub_backend/internals/features/lms/enrollments/model"
	"learnhub_backend/internals/features/lms/payments/model"
)

// ErrInvalidTransition: payment tidak berada di status asal yang
// disyaratkan. Diteruskan apa adanya ke pemanggil untuk pesan user —
// tanpa retry, tanpa perubahan state parsial.
var ErrInvalidTransition = errors.New("transisi status pembayaran tidak valid")

// ErrDuplicatePending: sudah ada klaim pending untuk (user, course) —
// dijaga index unik parsial di storage, bukan cuma pre-check.
var ErrDuplicatePending = errors.New("masih ada pembayaran pending untuk course ini")

/* =======================================================
   SUBMIT (klaim transaksi manual)
======================================================= */

// SubmitPayment mencatat klaim transaksi manual berstatus pending.
func SubmitPayment(db *gorm.DB, payment *model.PaymentModel) error {
	payment.PaymentStatus = model.PaymentStatusPending

	// Pre-check untuk 409 yang ramah; constraint parsial tetap jadi
	// penjaga terakhir saat submit balapan.
	var pending int64
	if err := db.Model(&model.PaymentModel{}).
		Where("payment_user_id = ? AND payment_course_id = ? AND payment_status = ?",
			payment.PaymentUserID, payment.PaymentCourseID, model.PaymentStatusPending).
		Count(&pending).Error; err != nil {
		return err
	}
	if pending > 0 {
		return ErrDuplicatePending
	}

	if err := db.Create(payment).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicatePending
		}
		return err
	}

	activityService.LogActivity(db, payment.PaymentUserID,
		fmt.Sprintf("Pembayaran diajukan untuk course %s - Tx: %s (status: %s)",
			payment.PaymentCourseID, payment.PaymentProviderTxID, payment.PaymentStatus))
	return nil
}

/* =======================================================
   STATE MACHINE: pending → {completed, rejected} → refunded
======================================================= */

// ApprovePayment: hanya dari pending. Satu unit atomik: set status,
// approver, approved_at, dan get-or-create Enrollment aktif untuk
// (payment.user, payment.course) — enrollment nonaktif diaktifkan lagi.
func ApprovePayment(db *gorm.DB, paymentID, adminID uuid.UUID) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockPayment(tx, paymentID, &payment); err != nil {
			return err
		}
		if payment.PaymentStatus != model.PaymentStatusPending {
			return ErrInvalidTransition
		}

		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusCompleted
		payment.PaymentApprovedBy = &adminID
		payment.PaymentApprovedAt = &now
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(map[string]interface{}{
				"payment_status":      payment.PaymentStatus,
				"payment_approved_by": adminID,
				"payment_approved_at": now,
			}).Error; err != nil {
			return err
		}

		return ensureActiveEnrollment(tx, payment.PaymentUserID, payment.PaymentCourseID)
	})
	if err != nil {
		return nil, err
	}

	// Audit setelah commit — kegagalan log tidak me-rollback transisi.
	activityService.LogAdminAction(db, adminID,
		"Approved Payment",
		fmt.Sprintf("Payment #%s", payment.PaymentID),
		fmt.Sprintf("User=%s, Course=%s", payment.PaymentUserID, payment.PaymentCourseID))

	return &payment, nil
}

// RejectPayment: hanya dari pending. Set status, approver, dan catatan.
func RejectPayment(db *gorm.DB, paymentID, adminID uuid.UUID, note string) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockPayment(tx, paymentID, &payment); err != nil {
			return err
		}
		if payment.PaymentStatus != model.PaymentStatusPending {
			return ErrInvalidTransition
		}

		payment.PaymentStatus = model.PaymentStatusRejected
		payment.PaymentApprovedBy = &adminID
		if note != "" {
			payment.PaymentNote = &note
		}
		return tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(map[string]interface{}{
				"payment_status":      payment.PaymentStatus,
				"payment_approved_by": adminID,
				"payment_note":        payment.PaymentNote,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	activityService.LogAdminAction(db, adminID,
		"Rejected Payment",
		fmt.Sprintf("Payment #%s", payment.PaymentID),
		fmt.Sprintf("User=%s, Course=%s, Note=%s", payment.PaymentUserID, payment.PaymentCourseID, note))

	return &payment, nil
}

// RefundPayment: hanya dari completed atau rejected. Set status +
// refunded_at + catatan, dan NONAKTIFKAN enrollment terkait (baris
// enrollment tidak pernah dihapus).
func RefundPayment(db *gorm.DB, paymentID, adminID uuid.UUID, note string) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockPayment(tx, paymentID, &payment); err != nil {
			return err
		}
		if payment.PaymentStatus != model.PaymentStatusCompleted &&
			payment.PaymentStatus != model.PaymentStatusRejected {
			return ErrInvalidTransition
		}

		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusRefunded
		payment.PaymentRefundedAt = &now
		if note != "" {
			payment.PaymentNote = &note
		}
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(map[string]interface{}{
				"payment_status":      payment.PaymentStatus,
				"payment_refunded_at": now,
				"payment_note":        payment.PaymentNote,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&enrollModel.EnrollmentModel{}).
			Where("enrollment_user_id = ? AND enrollment_course_id = ?",
				payment.PaymentUserID, payment.PaymentCourseID).
			Update("enrollment_is_active", false).Error
	})
	if err != nil {
		return nil, err
	}

	activityService.LogAdminAction(db, adminID,
		"Refunded Payment",
		fmt.Sprintf("Payment #%s", payment.PaymentID),
		fmt.Sprintf("User=%s, Course=%s, Note=%s", payment.PaymentUserID, payment.PaymentCourseID, note))

	return &payment, nil
}

/* =======================================================
   Internal
======================================================= */

// lockPayment mengambil baris payment dengan lock eksklusif — disiplin
// read-modify-write yang sama dengan reorder section, supaya dua admin
// yang menekan approve bersamaan tidak saling menimpa.
// sqlite (dipakai di test) tidak mengenal FOR UPDATE.
func lockPayment(tx *gorm.DB, paymentID uuid.UUID, out *model.PaymentModel) error {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.First(out, "payment_id = ?", paymentID).Error
}

// ensureActiveEnrollment: get-or-create + reaktivasi, dalam transaksi
// pemanggil. Insert ON CONFLICT DO NOTHING terhadap constraint unik
// (user, course) — menangkap error duplicate akan meng-abort seluruh
// transaksi di postgres, jadi konflik tidak boleh sampai jadi error.
// Baris yang sudah ada (baru menang konflik ataupun lama nonaktif)
// diaktifkan lewat update lanjutan.
func ensureActiveEnrollment(tx *gorm.DB, userID, courseID uuid.UUID) error {
	enrollment := enrollModel.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
		EnrollmentIsActive: true,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_user_id"}, {Name: "enrollment_course_id"}},
		DoNothing: true,
	}).Create(&enrollment).Error; err != nil {
		return err
	}

	return tx.Model(&enrollModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		Update("enrollment_is_active", true).Error
}
