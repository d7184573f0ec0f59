package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnhub_backend/internals/features/lms/certificates/model"
)

// IssueIfMissing mengembalikan sertifikat (user, course) yang sudah ada,
// atau menerbitkan yang baru. Aman dipanggil bersamaan dari dua jalur
// (recalc progres & hook perubahan enrollment) yang tidak berbagi lock:
// insert ON CONFLICT DO NOTHING terhadap constraint unik komposit, lalu
// re-fetch baris yang menang. Pelanggaran constraint tidak pernah
// dilaporkan sebagai kegagalan ke pemanggil.
func IssueIfMissing(db *gorm.DB, userID, courseID uuid.UUID, issuedBy *uuid.UUID, progressSnapshot float64) (*model.CertificateModel, error) {
	var existing model.CertificateModel
	err := db.
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cert := model.CertificateModel{
		CertificateID:               uuid.New(),
		CertificateUserID:           userID,
		CertificateCourseID:         courseID,
		CertificateSerial:           generateSerial(courseID, userID),
		CertificateProgressSnapshot: roundTo2(progressSnapshot),
		CertificateStatus:           model.CertificateStatusValid,
		CertificateIssuedBy:         issuedBy,
		CertificateIssuedAt:         time.Now(),
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "certificate_user_id"}, {Name: "certificate_course_id"}},
		DoNothing: true,
	}).Create(&cert)
	if res.Error != nil {
		// fallback: beberapa driver tetap melempar duplicate — pulihkan via re-fetch
		msg := strings.ToLower(res.Error.Error())
		if !strings.Contains(msg, "duplicate") && !strings.Contains(msg, "unique") {
			return nil, res.Error
		}
	}

	// Re-fetch: baik insert kita yang menang maupun kalah konflik,
	// baris yang bertahan adalah hasilnya.
	var winner model.CertificateModel
	if err := db.
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
		First(&winner).Error; err != nil {
		return nil, err
	}
	return &winner, nil
}

// Serial dibuat cukup deterministik supaya bisa ditelusuri manusia:
// course id + user id + timestamp penerbitan.
func generateSerial(courseID, userID uuid.UUID) string {
	return fmt.Sprintf("CERT-%s-%s-%d",
		strings.Split(courseID.String(), "-")[0],
		strings.Split(userID.String(), "-")[0],
		time.Now().Unix(),
	)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
