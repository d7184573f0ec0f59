// file: internals/features/lms/payments/controller/payment_admin_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/payments/dto"
	model "learnhub_backend/internals/features/lms/payments/model"
	service "learnhub_backend/internals/features/lms/payments/service"
	helper "learnhub_backend/internals/helpers"
)

type PaymentAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentAdminController(db *gorm.DB) *PaymentAdminController {
	return &PaymentAdminController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Handlers
============================== */

// GET /api/a/payments?payment_status=&payment_provider=&payment_user_id=&payment_course_id=
func (ctrl *PaymentAdminController) List(c *fiber.Ctx) error {
	var query dto.ListPaymentsQuery
	if err := c.QueryParser(&query); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctrl.Validator.Struct(query); err != nil {
		return helper.ValidationError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{})
	if query.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *query.PaymentStatus)
	}
	if query.PaymentProvider != nil {
		q = q.Where("payment_provider = ?", *query.PaymentProvider)
	}
	if query.PaymentUserID != nil {
		q = q.Where("payment_user_id = ?", *query.PaymentUserID)
	}
	if query.PaymentCourseID != nil {
		q = q.Where("payment_course_id = ?", *query.PaymentCourseID)
	}

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
	return helper.JsonList(c, "Daftar pembayaran", dto.FromPaymentModels(payments), &pagination)
}

// POST /api/a/payments/:id/approve
func (ctrl *PaymentAdminController) Approve(c *fiber.Ctx) error {
	adminID, paymentID, err := ctrl.adminAndPaymentID(c)
	if err != nil {
		return err
	}

	payment, err := service.ApprovePayment(ctrl.DB, paymentID, adminID)
	if err != nil {
		return ctrl.transitionError(c, err, "menyetujui")
	}

	return helper.JsonUpdated(c, "Pembayaran disetujui, enrollment diaktifkan",
		dto.FromPaymentModel(*payment))
}

// POST /api/a/payments/:id/reject
func (ctrl *PaymentAdminController) Reject(c *fiber.Ctx) error {
	adminID, paymentID, err := ctrl.adminAndPaymentID(c)
	if err != nil {
		return err
	}

	var req dto.PaymentDecisionRequest
	_ = c.BodyParser(&req) // catatan opsional
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := service.RejectPayment(ctrl.DB, paymentID, adminID, req.Note)
	if err != nil {
		return ctrl.transitionError(c, err, "menolak")
	}

	return helper.JsonUpdated(c, "Pembayaran ditolak", dto.FromPaymentModel(*payment))
}

// POST /api/a/payments/:id/refund
func (ctrl *PaymentAdminController) Refund(c *fiber.Ctx) error {
	adminID, paymentID, err := ctrl.adminAndPaymentID(c)
	if err != nil {
		return err
	}

	var req dto.PaymentDecisionRequest
	_ = c.BodyParser(&req) // catatan opsional
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := service.RefundPayment(ctrl.DB, paymentID, adminID, req.Note)
	if err != nil {
		return ctrl.transitionError(c, err, "me-refund")
	}

	return helper.JsonUpdated(c, "Pembayaran di-refund, enrollment dinonaktifkan",
		dto.FromPaymentModel(*payment))
}

/* ==============================
   Internal
============================== */

func (ctrl *PaymentAdminController) adminAndPaymentID(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Payment ID tidak valid")
	}
	return adminID, paymentID, nil
}

func (ctrl *PaymentAdminController) transitionError(c *fiber.Ctx, err error, verb string) error {
	if errors.Is(err, service.ErrInvalidTransition) {
		return helper.JsonError(c, fiber.StatusConflict,
			"Status pembayaran tidak memungkinkan untuk "+verb)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal "+verb+" pembayaran")
}
