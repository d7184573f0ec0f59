// file: internals/features/lms/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/courses/dto"
	model "learnhub_backend/internals/features/lms/courses/model"
	helper "learnhub_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

/* ==============================
   Handlers
============================== */

// POST /api/a/courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "courses", "course_slug",
		helper.GenerateSlug(req.CourseTitle))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug course")
	}

	course := req.ToModel(instructorID, slug)
	if err := ctrl.DB.Create(course).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug course sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", dto.FromCourseModel(*course))
}

// GET /api/a/courses?page=&per_page=&course_status=
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{})
	if status := strings.TrimSpace(c.Query("course_status")); status != "" {
		q = q.Where("course_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var courses []model.CourseModel
	if err := q.
		Order("course_created_at DESC, course_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar course", dto.FromCourseModels(courses), &pagination)
}

// GET /api/a/courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	return helper.JsonOK(c, "Detail course", dto.FromCourseModel(course))
}

// PATCH /api/a/courses/:id/status
func (ctrl *CourseController) UpdateStatus(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var req dto.UpdateCourseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"course_status":      req.CourseStatus,
		"course_status_note": req.CourseStatusNote,
	}
	switch req.CourseStatus {
	case model.CourseStatusApproved:
		updates["course_approved_at"] = now
		updates["course_approved_by"] = adminID
	case model.CourseStatusPublished:
		if course.CoursePublishedAt == nil {
			updates["course_published_at"] = now
		}
	}

	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", courseID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status course")
	}

	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}
	return helper.JsonUpdated(c, "Status course diperbarui", dto.FromCourseModel(course))
}
