// file: internals/features/lms/courses/controller/section_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "learnhub_backend/internals/features/lms/courses/dto"
	model "learnhub_backend/internals/features/lms/courses/model"
	helper "learnhub_backend/internals/helpers"
)

type SectionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Handlers
============================== */

// POST /api/a/sections
func (ctrl *SectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var courseCount int64
	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", req.SectionCourseID).
		Count(&courseCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa course")
	}
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	section := req.ToModel()
	if req.SectionOrder < 1 {
		// Default di ekor: order tertinggi + 1
		var maxOrder int
		ctrl.DB.Model(&model.SectionModel{}).
			Where("section_course_id = ?", req.SectionCourseID).
			Select("COALESCE(MAX(section_order), 0)").Scan(&maxOrder)
		section.SectionOrder = maxOrder + 1
	}

	if err := ctrl.DB.Create(section).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Urutan section sudah dipakai di course ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}

	return helper.JsonCreated(c, "Section berhasil dibuat", dto.FromSectionModel(*section))
}

// GET /api/a/courses/:id/sections
func (ctrl *SectionController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var sections []model.SectionModel
	if err := ctrl.DB.
		Where("section_course_id = ?", courseID).
		Order("section_order ASC, section_id ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}

	return helper.JsonOK(c, "Daftar section", dto.FromSectionModels(sections))
}

// POST /api/a/sections/reorder
// Tukar urutan dua section dalam satu course. Satu transaksi dengan lock
// eksklusif di kedua baris; lewat nilai sementara supaya tidak menabrak
// constraint unik (course_id, order) di tengah jalan.
func (ctrl *SectionController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.SectionIDA == req.SectionIDB {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kedua section harus berbeda")
	}

	var a, b model.SectionModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&a, "section_id = ?", req.SectionIDA).Error; err != nil {
			return err
		}
		if err := q.First(&b, "section_id = ?", req.SectionIDB).Error; err != nil {
			return err
		}
		if a.SectionCourseID != b.SectionCourseID {
			return fiber.NewError(fiber.StatusBadRequest, "Section berada di course yang berbeda")
		}

		if err := tx.Model(&model.SectionModel{}).
			Where("section_id = ?", a.SectionID).
			Update("section_order", -a.SectionOrder).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.SectionModel{}).
			Where("section_id = ?", b.SectionID).
			Update("section_order", a.SectionOrder).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.SectionModel{}).
			Where("section_id = ?", a.SectionID).
			Update("section_order", b.SectionOrder).Error; err != nil {
			return err
		}

		a.SectionOrder, b.SectionOrder = b.SectionOrder, a.SectionOrder
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menukar urutan section")
	}

	return helper.JsonUpdated(c, "Urutan section ditukar",
		dto.FromSectionModels([]model.SectionModel{a, b}))
}
