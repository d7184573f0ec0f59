package dto

import (
	"github.com/google/uuid"

	"learnhub_backend/internals/features/lms/courses/model"
)

type CreateSectionRequest struct {
	SectionCourseID    uuid.UUID `json:"section_course_id" validate:"required"`
	SectionTitle       string    `json:"section_title" validate:"required,max=200"`
	SectionDescription *string   `json:"section_description,omitempty"`
	SectionOrder       int       `json:"section_order" validate:"omitempty,gte=1"`
}

func (r CreateSectionRequest) ToModel() *model.SectionModel {
	order := r.SectionOrder
	if order < 1 {
		order = 1
	}
	return &model.SectionModel{
		SectionCourseID:    r.SectionCourseID,
		SectionTitle:       r.SectionTitle,
		SectionDescription: r.SectionDescription,
		SectionOrder:       order,
	}
}

// ReorderSectionRequest: tukar urutan dua section dalam satu course.
type ReorderSectionRequest struct {
	SectionIDA uuid.UUID `json:"section_id_a" validate:"required"`
	SectionIDB uuid.UUID `json:"section_id_b" validate:"required"`
}

type SectionResponse struct {
	SectionID       uuid.UUID `json:"section_id"`
	SectionCourseID uuid.UUID `json:"section_course_id"`
	SectionTitle    string    `json:"section_title"`
	SectionOrder    int       `json:"section_order"`
}

func FromSectionModel(m model.SectionModel) SectionResponse {
	return SectionResponse{
		SectionID:       m.SectionID,
		SectionCourseID: m.SectionCourseID,
		SectionTitle:    m.SectionTitle,
		SectionOrder:    m.SectionOrder,
	}
}

func FromSectionModels(ms []model.SectionModel) []SectionResponse {
	out := make([]SectionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSectionModel(m))
	}
	return out
}
