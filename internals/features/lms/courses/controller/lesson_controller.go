// file: internals/features/lms/courses/controller/lesson_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/courses/dto"
	model "learnhub_backend/internals/features/lms/courses/model"
	progressService "learnhub_backend/internals/features/lms/enrollments/service"
	helper "learnhub_backend/internals/helpers"
)

type LessonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Handlers
============================== */

// POST /api/a/lessons
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sectionCount int64
	if err := ctrl.DB.Model(&model.SectionModel{}).
		Where("section_id = ?", req.LessonSectionID).
		Count(&sectionCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa section")
	}
	if sectionCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}

	lesson := req.ToModel()
	if err := ctrl.DB.Create(lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lesson")
	}

	return helper.JsonCreated(c, "Lesson berhasil dibuat", dto.FromLessonModel(*lesson))
}

// GET /api/a/sections/:id/lessons
func (ctrl *LessonController) ListBySection(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Section ID tidak valid")
	}

	var lessons []model.LessonModel
	if err := ctrl.DB.
		Where("lesson_section_id = ?", sectionID).
		Order("lesson_order ASC, lesson_id ASC").
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}

	return helper.JsonOK(c, "Daftar lesson", dto.FromLessonModels(lessons))
}

// PATCH /api/a/lessons/:id/completion
// Toggle penanda selesai global; di-cascade ke semua enrollment aktif
// course pemilik lesson dan progres tiap enrollment dihitung ulang.
func (ctrl *LessonController) SetGlobalCompletion(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lesson ID tidak valid")
	}

	var req dto.SetLessonGlobalCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	processed, err := progressService.CascadeGlobalLessonCompletion(
		ctrl.DB, lessonID, *req.Completed, &actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerapkan penanda selesai global")
	}

	return helper.JsonUpdated(c, "Penanda selesai global diterapkan", fiber.Map{
		"lesson_id":             lessonID,
		"completed":             *req.Completed,
		"enrollments_processed": processed,
	})
}
