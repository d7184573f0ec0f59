package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogModel: log aktivitas ringan (append-only).
type ActivityLogModel struct {
	ActivityLogID      uuid.UUID `gorm:"column:activity_log_id;type:uuid;primaryKey" json:"activity_log_id"`
	ActivityLogUserID  uuid.UUID `gorm:"column:activity_log_user_id;type:uuid;not null;index" json:"activity_log_user_id"`
	ActivityLogMessage string    `gorm:"column:activity_log_message;not null" json:"activity_log_message"`
	CreatedAt          time.Time `gorm:"column:activity_log_created_at;autoCreateTime;index" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityLogID == uuid.Nil {
		m.ActivityLogID = uuid.New()
	}
	return nil
}

// AdminActionLogModel: log terstruktur untuk aksi admin
// (approve payment, refund, recalc massal, dsb).
type AdminActionLogModel struct {
	AdminActionLogID           uuid.UUID `gorm:"column:admin_action_log_id;type:uuid;primaryKey" json:"admin_action_log_id"`
	AdminActionLogAdminID      uuid.UUID `gorm:"column:admin_action_log_admin_id;type:uuid;not null;index" json:"admin_action_log_admin_id"`
	AdminActionLogActionType   string    `gorm:"column:admin_action_log_action_type;size:100;not null" json:"admin_action_log_action_type"`
	AdminActionLogTargetObject string    `gorm:"column:admin_action_log_target_object;size:255;not null" json:"admin_action_log_target_object"`
	AdminActionLogDetails      string    `gorm:"column:admin_action_log_details" json:"admin_action_log_details"`
	CreatedAt                  time.Time `gorm:"column:admin_action_log_created_at;autoCreateTime;index" json:"admin_action_log_created_at"`
}

func (AdminActionLogModel) TableName() string {
	return "admin_action_logs"
}

func (m *AdminActionLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminActionLogID == uuid.Nil {
		m.AdminActionLogID = uuid.New()
	}
	return nil
}
