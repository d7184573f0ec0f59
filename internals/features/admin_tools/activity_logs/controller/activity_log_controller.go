// file: internals/features/admin_tools/activity_logs/controller/activity_log_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "learnhub_backend/internals/features/admin_tools/activity_logs/model"
	helper "learnhub_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

/* ==============================
   Handlers
============================== */

// GET /api/a/activity-logs?user_id=
func (ctrl *ActivityLogController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.ActivityLogModel{})
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		q = q.Where("activity_log_user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log aktivitas")
	}

	var logs []model.ActivityLogModel
	if err := q.
		Order("activity_log_created_at DESC, activity_log_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log aktivitas")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Log aktivitas", logs, &pagination)
}

// GET /api/a/admin-action-logs?admin_id=&action_type=
func (ctrl *ActivityLogController) ListAdminActions(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AdminActionLogModel{})
	if raw := c.Query("admin_id"); raw != "" {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "admin_id tidak valid")
		}
		q = q.Where("admin_action_log_admin_id = ?", adminID)
	}
	if actionType := c.Query("action_type"); actionType != "" {
		q = q.Where("admin_action_log_action_type = ?", actionType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log aksi admin")
	}

	var logs []model.AdminActionLogModel
	if err := q.
		Order("admin_action_log_created_at DESC, admin_action_log_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log aksi admin")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Log aksi admin", logs, &pagination)
}
