package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admin_tools/activity_logs/model"
)

// LogActivity menulis log aktivitas ringan. Best-effort: dipanggil SETELAH
// transaksi bisnis commit, dan error di sini tidak boleh menggagalkan /
// me-rollback transisi utamanya.
func LogActivity(db *gorm.DB, userID uuid.UUID, message string) {
	if userID == uuid.Nil || message == "" {
		return
	}
	entry := model.ActivityLogModel{
		ActivityLogUserID:  userID,
		ActivityLogMessage: message,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] Gagal tulis activity log: %v", err)
	}
}

// LogAdminAction menulis log terstruktur untuk aksi admin eksplisit.
// Sama seperti LogActivity: best-effort, setelah commit.
func LogAdminAction(db *gorm.DB, adminID uuid.UUID, actionType, targetObject, details string) {
	if adminID == uuid.Nil {
		return
	}
	entry := model.AdminActionLogModel{
		AdminActionLogAdminID:      adminID,
		AdminActionLogActionType:   actionType,
		AdminActionLogTargetObject: targetObject,
		AdminActionLogDetails:      details,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] Gagal tulis admin action log: %v", err)
	}
}
