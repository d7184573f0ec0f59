package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	CourseStatusDraft     = "draft"
	CourseStatusPending   = "pending"
	CourseStatusApproved  = "approved"
	CourseStatusRejected  = "rejected"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

/* ===================== Model ===================== */

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`

	CourseTitle            string     `gorm:"column:course_title;size:255;not null" json:"course_title" validate:"required,max=255"`
	CourseSlug             string     `gorm:"column:course_slug;size:270;unique;not null" json:"course_slug"`
	CourseShortDescription string     `gorm:"column:course_short_description;size:300" json:"course_short_description"`
	CourseDescription      string     `gorm:"column:course_description" json:"course_description"`
	CourseLanguage         string     `gorm:"column:course_language;size:50;not null;default:'en'" json:"course_language"`
	CourseLevel            string     `gorm:"column:course_level;type:varchar(20);not null;default:'beginner'" json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseInstructorID     uuid.UUID  `gorm:"column:course_instructor_id;type:uuid;not null;index" json:"course_instructor_id"`
	CourseCategoryID       *uuid.UUID `gorm:"column:course_category_id;type:uuid" json:"course_category_id,omitempty"`

	CoursePrice         float64  `gorm:"column:course_price;type:numeric(10,2);not null;default:0" json:"course_price"`
	CourseDiscountPrice *float64 `gorm:"column:course_discount_price;type:numeric(10,2)" json:"course_discount_price,omitempty"`

	CourseStatus      string     `gorm:"column:course_status;type:varchar(20);not null;default:'draft';index" json:"course_status"`
	CourseStatusNote  string     `gorm:"column:course_status_note" json:"course_status_note"`
	CourseApprovedAt  *time.Time `gorm:"column:course_approved_at" json:"course_approved_at,omitempty"`
	CourseApprovedBy  *uuid.UUID `gorm:"column:course_approved_by;type:uuid" json:"course_approved_by,omitempty"`
	CoursePublishedAt *time.Time `gorm:"column:course_published_at" json:"course_published_at,omitempty"`

	CreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	UpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

func (m *CourseModel) IsPublished() bool {
	return m.CourseStatus == CourseStatusPublished
}
