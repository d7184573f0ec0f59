package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	LessonTypeLive       = "live"
	LessonTypeLecture    = "lecture"
	LessonTypeAssignment = "assignment"
	LessonTypeQuiz       = "quiz"
)

/* ===================== Model ===================== */

type LessonModel struct {
	LessonID        uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey" json:"lesson_id"`
	LessonSectionID uuid.UUID `gorm:"column:lesson_section_id;type:uuid;not null;index" json:"lesson_section_id" validate:"required"`

	LessonTitle   string  `gorm:"column:lesson_title;size:200;not null" json:"lesson_title" validate:"required,max=200"`
	LessonContent *string `gorm:"column:lesson_content" json:"lesson_content,omitempty"`
	LessonOrder   int     `gorm:"column:lesson_order;not null;default:0" json:"lesson_order"`
	LessonType    string  `gorm:"column:lesson_type;type:varchar(20);not null;default:'lecture'" json:"lesson_type" validate:"omitempty,oneof=live lecture assignment quiz"`

	LessonJoinLink        *string        `gorm:"column:lesson_join_link" json:"lesson_join_link,omitempty"`
	LessonScheduledAt     *time.Time     `gorm:"column:lesson_scheduled_at" json:"lesson_scheduled_at,omitempty"`
	LessonDurationMinutes *int           `gorm:"column:lesson_duration_minutes" json:"lesson_duration_minutes,omitempty"`
	LessonResourceLinks   pq.StringArray `gorm:"column:lesson_resource_links;type:text[]" json:"lesson_resource_links,omitempty"`

	LessonIsPublished bool `gorm:"column:lesson_is_published;not null;default:false" json:"lesson_is_published"`
	LessonIsPreview   bool `gorm:"column:lesson_is_preview;not null;default:false" json:"lesson_is_preview"`

	// Flag global dari instructor/admin — bukan progres per siswa.
	// Dipakai sebagai pemicu cascade ke seluruh enrollment aktif.
	LessonIsCompleted bool `gorm:"column:lesson_is_completed;not null;default:false" json:"lesson_is_completed"`

	CreatedAt time.Time `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	UpdatedAt time.Time `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
