package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	CertificateStatusValid   = "valid"
	CertificateStatusRevoked = "revoked"
)

/* ===================== Model ===================== */

// CertificateModel: satu sertifikat per (user, course), dijaga oleh
// constraint unik komposit — bukan sekadar konvensi — karena penerbitan
// bisa dipicu dari lebih dari satu jalur kode secara bersamaan.
type CertificateModel struct {
	CertificateID       uuid.UUID `gorm:"column:certificate_id;type:uuid;primaryKey" json:"certificate_id"`
	CertificateUserID   uuid.UUID `gorm:"column:certificate_user_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course" json:"certificate_user_id"`
	CertificateCourseID uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course" json:"certificate_course_id"`

	CertificateSerial           string  `gorm:"column:certificate_serial;size:120;unique;not null" json:"certificate_serial"`
	CertificateTemplateName     string  `gorm:"column:certificate_template_name;size:120" json:"certificate_template_name"`
	CertificateProgressSnapshot float64 `gorm:"column:certificate_progress_snapshot;type:numeric(5,2);not null;default:100" json:"certificate_progress_snapshot"`
	CertificateStatus           string  `gorm:"column:certificate_status;type:varchar(20);not null;default:'valid'" json:"certificate_status"`
	CertificateDownloadURL      *string `gorm:"column:certificate_download_url;size:255" json:"certificate_download_url,omitempty"`

	CertificateIssuedBy *uuid.UUID        `gorm:"column:certificate_issued_by;type:uuid" json:"certificate_issued_by,omitempty"`
	CertificateIssuedAt time.Time         `gorm:"column:certificate_issued_at;autoCreateTime" json:"certificate_issued_at"`
	CertificateMeta     datatypes.JSONMap `gorm:"column:certificate_meta;type:jsonb" json:"certificate_meta,omitempty"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	return nil
}
