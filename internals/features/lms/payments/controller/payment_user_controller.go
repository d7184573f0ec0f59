// file: internals/features/lms/payments/controller/payment_user_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "learnhub_backend/internals/features/lms/courses/model"
	dto "learnhub_backend/internals/features/lms/payments/dto"
	model "learnhub_backend/internals/features/lms/payments/model"
	service "learnhub_backend/internals/features/lms/payments/service"
	helper "learnhub_backend/internals/helpers"
)

type PaymentUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentUserController(db *gorm.DB) *PaymentUserController {
	return &PaymentUserController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Handlers
============================== */

// POST /api/u/payments
// Siswa mengajukan klaim transaksi manual (trx id dari provider).
func (ctrl *PaymentUserController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.PaymentCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa course")
	}
	if !course.IsPublished() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course belum dipublikasikan")
	}

	payment := req.ToModel(userID)
	if err := service.SubmitPayment(ctrl.DB, payment); err != nil {
		if errors.Is(err, service.ErrDuplicatePending) {
			return helper.JsonError(c, fiber.StatusConflict, "Masih ada pembayaran pending untuk course ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengajukan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran diajukan, menunggu verifikasi admin",
		dto.FromPaymentModel(*payment))
}

// GET /api/u/payments
func (ctrl *PaymentUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.
		Order("payment_created_at DESC, payment_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Riwayat pembayaran", dto.FromPaymentModels(payments), &pagination)
}
