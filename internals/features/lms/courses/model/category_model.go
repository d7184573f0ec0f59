package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryName        string    `gorm:"column:category_name;size:150;unique;not null" json:"category_name" validate:"required,max=150"`
	CategorySlug        string    `gorm:"column:category_slug;size:160;unique;not null" json:"category_slug"`
	CategoryDescription string    `gorm:"column:category_description" json:"category_description"`
	CategoryIsActive    bool      `gorm:"column:category_is_active;not null;default:true" json:"category_is_active"`
	CreatedAt           time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	UpdatedAt           time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
}

func (CategoryModel) TableName() string {
	return "course_categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
