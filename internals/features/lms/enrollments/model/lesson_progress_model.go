package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonProgressModel: status penyelesaian satu lesson untuk satu enrollment.
// Baris dibuat lazy — tidak ada baris artinya belum selesai.
type LessonProgressModel struct {
	LessonProgressID           uuid.UUID `gorm:"column:lesson_progress_id;type:uuid;primaryKey" json:"lesson_progress_id"`
	LessonProgressEnrollmentID uuid.UUID `gorm:"column:lesson_progress_enrollment_id;type:uuid;not null;uniqueIndex:uq_lesson_progress_enrollment_lesson;index" json:"lesson_progress_enrollment_id"`
	LessonProgressLessonID     uuid.UUID `gorm:"column:lesson_progress_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_progress_enrollment_lesson" json:"lesson_progress_lesson_id"`

	LessonProgressIsCompleted bool       `gorm:"column:lesson_progress_is_completed;not null;default:false" json:"lesson_progress_is_completed"`
	LessonProgressCompletedAt *time.Time `gorm:"column:lesson_progress_completed_at" json:"lesson_progress_completed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:lesson_progress_created_at;autoCreateTime" json:"lesson_progress_created_at"`
	UpdatedAt time.Time `gorm:"column:lesson_progress_updated_at;autoUpdateTime" json:"lesson_progress_updated_at"`
}

func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}

func (m *LessonProgressModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonProgressID == uuid.Nil {
		m.LessonProgressID = uuid.New()
	}
	return nil
}
