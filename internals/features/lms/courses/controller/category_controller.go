// file: internals/features/lms/courses/controller/category_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "learnhub_backend/internals/features/lms/courses/model"
	helper "learnhub_backend/internals/helpers"
)

type CategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:        db,
		Validator: validator.New(),
	}
}

type createCategoryRequest struct {
	CategoryName        string `json:"category_name" validate:"required,max=150"`
	CategoryDescription string `json:"category_description"`
}

// POST /api/a/categories
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "course_categories", "category_slug",
		helper.GenerateSlug(req.CategoryName))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug kategori")
	}

	category := model.CategoryModel{
		CategoryName:        req.CategoryName,
		CategorySlug:        slug,
		CategoryDescription: req.CategoryDescription,
		CategoryIsActive:    true,
	}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kategori sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}

	return helper.JsonCreated(c, "Kategori berhasil dibuat", category)
}

// GET /api/a/categories
func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.
		Where("category_is_active = ?", true).
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "Daftar kategori", categories)
}
