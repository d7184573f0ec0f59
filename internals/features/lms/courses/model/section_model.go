package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionModel struct {
	SectionID          uuid.UUID `gorm:"column:section_id;type:uuid;primaryKey" json:"section_id"`
	SectionCourseID    uuid.UUID `gorm:"column:section_course_id;type:uuid;not null;index;uniqueIndex:uq_sections_course_order" json:"section_course_id" validate:"required"`
	SectionTitle       string    `gorm:"column:section_title;size:200;not null" json:"section_title" validate:"required,max=200"`
	SectionDescription *string   `gorm:"column:section_description" json:"section_description,omitempty"`
	SectionOrder       int       `gorm:"column:section_order;not null;default:1;uniqueIndex:uq_sections_course_order" json:"section_order"`
	CreatedAt          time.Time `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	UpdatedAt          time.Time `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at"`
}

func (SectionModel) TableName() string {
	return "course_sections"
}

func (m *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SectionID == uuid.Nil {
		m.SectionID = uuid.New()
	}
	return nil
}
