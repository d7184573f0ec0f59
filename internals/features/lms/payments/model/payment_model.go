package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel mencatat klaim transaksi manual (transfer + transaction id),
// bukan integrasi gateway. Index unik parsial (user, course) WHERE
// status='pending' memblokir klaim pending ganda di level storage,
// bukan sekadar pre-check di handler.
type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentUserID   uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index;uniqueIndex:uq_payments_user_course_pending,where:payment_status = 'pending'" json:"payment_user_id"`
	PaymentCourseID uuid.UUID `gorm:"column:payment_course_id;type:uuid;not null;index;uniqueIndex:uq_payments_user_course_pending,where:payment_status = 'pending'" json:"payment_course_id"`

	PaymentAmount          float64  `gorm:"column:payment_amount;type:numeric(10,2);not null" json:"payment_amount"`
	PaymentDiscountApplied *float64 `gorm:"column:payment_discount_applied;type:numeric(10,2)" json:"payment_discount_applied,omitempty"`

	PaymentStatus       PaymentStatus   `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentProvider     PaymentProvider `gorm:"column:payment_provider;type:varchar(50);not null;index" json:"payment_provider"`
	PaymentProviderTxID string          `gorm:"column:payment_provider_tx_id;size:255;not null;index" json:"payment_provider_tx_id"`

	PaymentApprovedBy *uuid.UUID `gorm:"column:payment_approved_by;type:uuid" json:"payment_approved_by,omitempty"`
	PaymentApprovedAt *time.Time `gorm:"column:payment_approved_at" json:"payment_approved_at,omitempty"`
	PaymentRefundedAt *time.Time `gorm:"column:payment_refunded_at" json:"payment_refunded_at,omitempty"`
	PaymentNote       *string    `gorm:"column:payment_note" json:"payment_note,omitempty"`

	CreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	return nil
}
