// file: internals/features/lms/enrollments/controller/enrollment_user_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/enrollments/dto"
	model "learnhub_backend/internals/features/lms/enrollments/model"
	service "learnhub_backend/internals/features/lms/enrollments/service"
	helper "learnhub_backend/internals/helpers"
)

type EnrollmentUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentUserController(db *gorm.DB) *EnrollmentUserController {
	return &EnrollmentUserController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Handlers
============================== */

// GET /api/u/enrollments
func (ctrl *EnrollmentUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung enrollment")
	}

	var enrollments []model.EnrollmentModel
	if err := q.
		Order("enrollment_enrolled_at DESC, enrollment_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar enrollment", dto.FromEnrollmentModels(enrollments), &pagination)
}

// GET /api/u/enrollments/:id
func (ctrl *EnrollmentUserController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enrollment ID tidak valid")
	}

	var enrollment model.EnrollmentModel
	if err := ctrl.DB.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}
	if enrollment.EnrollmentUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Enrollment ini bukan milik Anda")
	}

	return helper.JsonOK(c, "Detail enrollment", dto.FromEnrollmentModel(enrollment))
}

// POST /api/u/enrollments/:id/lessons/:lesson_id/completion
// Siswa menandai lesson selesai / belum; progres enrollment dihitung
// ulang di transaksi yang sama dan hasil akhirnya dikembalikan.
func (ctrl *EnrollmentUserController) SetLessonCompletion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enrollment ID tidak valid")
	}
	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lesson ID tidak valid")
	}

	var req dto.SetLessonCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Kepemilikan dicek sebelum menyentuh progres
	var owned model.EnrollmentModel
	if err := ctrl.DB.First(&owned, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}
	if owned.EnrollmentUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Enrollment ini bukan milik Anda")
	}
	if !owned.EnrollmentIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Enrollment sudah tidak aktif")
	}

	enrollment, err := service.SetLessonCompletion(ctrl.DB, enrollmentID, lessonID, *req.Completed, &userID)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotInCourse) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Lesson bukan bagian dari course enrollment ini")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui progres lesson")
	}

	return helper.JsonUpdated(c, "Progres lesson diperbarui", dto.FromEnrollmentModel(*enrollment))
}
