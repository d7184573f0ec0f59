package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"learnhub_backend/internals/features/lms/courses/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateLessonRequest struct {
	LessonSectionID       uuid.UUID  `json:"lesson_section_id" validate:"required"`
	LessonTitle           string     `json:"lesson_title" validate:"required,max=200"`
	LessonContent         *string    `json:"lesson_content,omitempty"`
	LessonOrder           int        `json:"lesson_order" validate:"omitempty,gte=0"`
	LessonType            string     `json:"lesson_type" validate:"omitempty,oneof=live lecture assignment quiz"`
	LessonJoinLink        *string    `json:"lesson_join_link,omitempty" validate:"omitempty,url"`
	LessonScheduledAt     *time.Time `json:"lesson_scheduled_at,omitempty"`
	LessonDurationMinutes *int       `json:"lesson_duration_minutes,omitempty" validate:"omitempty,gt=0"`
	LessonResourceLinks   []string   `json:"lesson_resource_links,omitempty" validate:"omitempty,dive,url"`
	LessonIsPublished     bool       `json:"lesson_is_published"`
	LessonIsPreview       bool       `json:"lesson_is_preview"`
}

func (r CreateLessonRequest) ToModel() *model.LessonModel {
	lessonType := r.LessonType
	if lessonType == "" {
		lessonType = model.LessonTypeLecture
	}
	return &model.LessonModel{
		LessonSectionID:       r.LessonSectionID,
		LessonTitle:           r.LessonTitle,
		LessonContent:         r.LessonContent,
		LessonOrder:           r.LessonOrder,
		LessonType:            lessonType,
		LessonJoinLink:        r.LessonJoinLink,
		LessonScheduledAt:     r.LessonScheduledAt,
		LessonDurationMinutes: r.LessonDurationMinutes,
		LessonResourceLinks:   pq.StringArray(r.LessonResourceLinks),
		LessonIsPublished:     r.LessonIsPublished,
		LessonIsPreview:       r.LessonIsPreview,
	}
}

// SetLessonGlobalCompletionRequest: toggle instructor/admin yang
// di-cascade ke seluruh enrollment aktif.
type SetLessonGlobalCompletionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type LessonResponse struct {
	LessonID            uuid.UUID `json:"lesson_id"`
	LessonSectionID     uuid.UUID `json:"lesson_section_id"`
	LessonTitle         string    `json:"lesson_title"`
	LessonOrder         int       `json:"lesson_order"`
	LessonType          string    `json:"lesson_type"`
	LessonResourceLinks []string  `json:"lesson_resource_links,omitempty"`
	LessonIsPublished   bool      `json:"lesson_is_published"`
	LessonIsPreview     bool      `json:"lesson_is_preview"`
	LessonIsCompleted   bool      `json:"lesson_is_completed"`
}

func FromLessonModel(m model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:            m.LessonID,
		LessonSectionID:     m.LessonSectionID,
		LessonTitle:         m.LessonTitle,
		LessonOrder:         m.LessonOrder,
		LessonType:          m.LessonType,
		LessonResourceLinks: []string(m.LessonResourceLinks),
		LessonIsPublished:   m.LessonIsPublished,
		LessonIsPreview:     m.LessonIsPreview,
		LessonIsCompleted:   m.LessonIsCompleted,
	}
}

func FromLessonModels(ms []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromLessonModel(m))
	}
	return out
}
