// file: internals/features/lms/certificates/controller/certificate_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/certificates/dto"
	model "learnhub_backend/internals/features/lms/certificates/model"
	helper "learnhub_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

/* ==============================
   Handlers
============================== */

// GET /api/u/certificates
func (ctrl *CertificateController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var certificates []model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certificates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	return helper.JsonOK(c, "Daftar sertifikat", dto.FromCertificateModels(certificates))
}

// GET /api/certificates/:serial
// Verifikasi publik berdasarkan nomor seri, tanpa login.
func (ctrl *CertificateController) GetBySerial(c *fiber.Ctx) error {
	serial := strings.TrimSpace(c.Params("serial"))
	if serial == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor seri wajib diisi")
	}

	var certificate model.CertificateModel
	if err := ctrl.DB.First(&certificate, "certificate_serial = ?", serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	return helper.JsonOK(c, "Detail sertifikat", dto.FromCertificateModel(certificate))
}
