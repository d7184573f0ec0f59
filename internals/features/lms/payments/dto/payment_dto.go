package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/lms/payments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// SubmitPaymentRequest: klaim transaksi manual dari siswa
type SubmitPaymentRequest struct {
	PaymentCourseID     uuid.UUID `json:"payment_course_id" validate:"required"`
	PaymentAmount       float64   `json:"payment_amount" validate:"required,gt=0"`
	PaymentProvider     string    `json:"payment_provider" validate:"required,oneof=bkash nagad rocket bank other"`
	PaymentProviderTxID string    `json:"payment_provider_tx_id" validate:"required,max=255"`
	PaymentNote         *string   `json:"payment_note,omitempty"`
}

func (r SubmitPaymentRequest) ToModel(userID uuid.UUID) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentUserID:       userID,
		PaymentCourseID:     r.PaymentCourseID,
		PaymentAmount:       r.PaymentAmount,
		PaymentProvider:     model.PaymentProvider(r.PaymentProvider),
		PaymentProviderTxID: r.PaymentProviderTxID,
		PaymentNote:         r.PaymentNote,
		PaymentStatus:       model.PaymentStatusPending,
	}
}

// PaymentDecisionRequest: catatan admin saat reject/refund
type PaymentDecisionRequest struct {
	Note string `json:"note" validate:"omitempty,max=2000"`
}

// ListPaymentsQuery: filter admin GET /payments
type ListPaymentsQuery struct {
	PaymentStatus   *string    `query:"payment_status" validate:"omitempty,oneof=pending completed failed rejected refunded"`
	PaymentProvider *string    `query:"payment_provider" validate:"omitempty,oneof=bkash nagad rocket bank other"`
	PaymentUserID   *uuid.UUID `query:"payment_user_id"`
	PaymentCourseID *uuid.UUID `query:"payment_course_id"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type PaymentResponse struct {
	PaymentID           uuid.UUID  `json:"payment_id"`
	PaymentUserID       uuid.UUID  `json:"payment_user_id"`
	PaymentCourseID     uuid.UUID  `json:"payment_course_id"`
	PaymentAmount       float64    `json:"payment_amount"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentProvider     string     `json:"payment_provider"`
	PaymentProviderTxID string     `json:"payment_provider_tx_id"`
	PaymentApprovedBy   *uuid.UUID `json:"payment_approved_by,omitempty"`
	PaymentApprovedAt   *time.Time `json:"payment_approved_at,omitempty"`
	PaymentRefundedAt   *time.Time `json:"payment_refunded_at,omitempty"`
	PaymentNote         *string    `json:"payment_note,omitempty"`
	PaymentCreatedAt    time.Time  `json:"payment_created_at"`
}

func FromPaymentModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentUserID:       m.PaymentUserID,
		PaymentCourseID:     m.PaymentCourseID,
		PaymentAmount:       m.PaymentAmount,
		PaymentStatus:       string(m.PaymentStatus),
		PaymentProvider:     string(m.PaymentProvider),
		PaymentProviderTxID: m.PaymentProviderTxID,
		PaymentApprovedBy:   m.PaymentApprovedBy,
		PaymentApprovedAt:   m.PaymentApprovedAt,
		PaymentRefundedAt:   m.PaymentRefundedAt,
		PaymentNote:         m.PaymentNote,
		PaymentCreatedAt:    m.CreatedAt,
	}
}

func FromPaymentModels(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPaymentModel(m))
	}
	return out
}
