package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/lms/courses/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateCourseRequest struct {
	CourseTitle            string     `json:"course_title" validate:"required,max=255"`
	CourseShortDescription string     `json:"course_short_description" validate:"omitempty,max=300"`
	CourseDescription      string     `json:"course_description"`
	CourseLanguage         string     `json:"course_language" validate:"omitempty,max=50"`
	CourseLevel            string     `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseCategoryID       *uuid.UUID `json:"course_category_id,omitempty"`
	CoursePrice            float64    `json:"course_price" validate:"omitempty,gte=0"`
	CourseDiscountPrice    *float64   `json:"course_discount_price,omitempty" validate:"omitempty,gte=0"`
}

func (r CreateCourseRequest) ToModel(instructorID uuid.UUID, slug string) *model.CourseModel {
	language := r.CourseLanguage
	if language == "" {
		language = "en"
	}
	level := r.CourseLevel
	if level == "" {
		level = model.CourseLevelBeginner
	}
	return &model.CourseModel{
		CourseTitle:            r.CourseTitle,
		CourseSlug:             slug,
		CourseShortDescription: r.CourseShortDescription,
		CourseDescription:      r.CourseDescription,
		CourseLanguage:         language,
		CourseLevel:            level,
		CourseInstructorID:     instructorID,
		CourseCategoryID:       r.CourseCategoryID,
		CoursePrice:            r.CoursePrice,
		CourseDiscountPrice:    r.CourseDiscountPrice,
		CourseStatus:           model.CourseStatusDraft,
	}
}

type UpdateCourseStatusRequest struct {
	CourseStatus     string `json:"course_status" validate:"required,oneof=draft pending approved rejected published archived"`
	CourseStatusNote string `json:"course_status_note" validate:"omitempty,max=2000"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CourseResponse struct {
	CourseID               uuid.UUID  `json:"course_id"`
	CourseTitle            string     `json:"course_title"`
	CourseSlug             string     `json:"course_slug"`
	CourseShortDescription string     `json:"course_short_description"`
	CourseLanguage         string     `json:"course_language"`
	CourseLevel            string     `json:"course_level"`
	CourseInstructorID     uuid.UUID  `json:"course_instructor_id"`
	CourseCategoryID       *uuid.UUID `json:"course_category_id,omitempty"`
	CoursePrice            float64    `json:"course_price"`
	CourseDiscountPrice    *float64   `json:"course_discount_price,omitempty"`
	CourseStatus           string     `json:"course_status"`
	CoursePublishedAt      *time.Time `json:"course_published_at,omitempty"`
	CourseCreatedAt        time.Time  `json:"course_created_at"`
}

func FromCourseModel(m model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:               m.CourseID,
		CourseTitle:            m.CourseTitle,
		CourseSlug:             m.CourseSlug,
		CourseShortDescription: m.CourseShortDescription,
		CourseLanguage:         m.CourseLanguage,
		CourseLevel:            m.CourseLevel,
		CourseInstructorID:     m.CourseInstructorID,
		CourseCategoryID:       m.CourseCategoryID,
		CoursePrice:            m.CoursePrice,
		CourseDiscountPrice:    m.CourseDiscountPrice,
		CourseStatus:           m.CourseStatus,
		CoursePublishedAt:      m.CoursePublishedAt,
		CourseCreatedAt:        m.CreatedAt,
	}
}

func FromCourseModels(ms []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCourseModel(m))
	}
	return out
}
