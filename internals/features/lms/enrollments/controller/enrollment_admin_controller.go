// file: internals/features/lms/enrollments/controller/enrollment_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/enrollments/dto"
	service "learnhub_backend/internals/features/lms/enrollments/service"
	helper "learnhub_backend/internals/helpers"
)

type EnrollmentAdminController struct {
	DB *gorm.DB
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

/* ==============================
   Handlers
============================== */

// POST /api/a/enrollments/:id/recalc
// Rekalkulasi manual satu enrollment (idempotent; aman diulang).
func (ctrl *EnrollmentAdminController) RecalcEnrollment(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enrollment ID tidak valid")
	}

	enrollment, err := service.RecalcEnrollmentProgressByID(ctrl.DB, enrollmentID, &adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merekalkulasi progres")
	}

	return helper.JsonUpdated(c, "Progres enrollment dihitung ulang", dto.FromEnrollmentModel(*enrollment))
}

// POST /api/a/courses/:id/recalc
// Rekalkulasi massal seluruh enrollment aktif satu course.
func (ctrl *EnrollmentAdminController) RecalcCourse(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	processed, err := service.RecalcCourseProgress(ctrl.DB, courseID, &adminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merekalkulasi progres course")
	}

	return helper.JsonOK(c, "Progres course dihitung ulang", fiber.Map{
		"course_id":             courseID,
		"enrollments_processed": processed,
	})
}
