package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/lms/certificates/model"
)

type CertificateResponse struct {
	CertificateID               uuid.UUID  `json:"certificate_id"`
	CertificateUserID           uuid.UUID  `json:"certificate_user_id"`
	CertificateCourseID         uuid.UUID  `json:"certificate_course_id"`
	CertificateSerial           string     `json:"certificate_serial"`
	CertificateProgressSnapshot float64    `json:"certificate_progress_snapshot"`
	CertificateStatus           string     `json:"certificate_status"`
	CertificateIssuedBy         *uuid.UUID `json:"certificate_issued_by,omitempty"`
	CertificateIssuedAt         time.Time  `json:"certificate_issued_at"`
}

func FromCertificateModel(m model.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateID:               m.CertificateID,
		CertificateUserID:           m.CertificateUserID,
		CertificateCourseID:         m.CertificateCourseID,
		CertificateSerial:           m.CertificateSerial,
		CertificateProgressSnapshot: m.CertificateProgressSnapshot,
		CertificateStatus:           m.CertificateStatus,
		CertificateIssuedBy:         m.CertificateIssuedBy,
		CertificateIssuedAt:         m.CertificateIssuedAt,
	}
}

func FromCertificateModels(ms []model.CertificateModel) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCertificateModel(m))
	}
	return out
}
