package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/lms/enrollments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// SetLessonCompletionRequest: siswa menandai lesson selesai/belum
type SetLessonCompletionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type EnrollmentResponse struct {
	EnrollmentID           uuid.UUID  `json:"enrollment_id"`
	EnrollmentUserID       uuid.UUID  `json:"enrollment_user_id"`
	EnrollmentCourseID     uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentIsActive     bool       `json:"enrollment_is_active"`
	EnrollmentProgress     float64    `json:"enrollment_progress"`
	EnrollmentIsCompleted  bool       `json:"enrollment_is_completed"`
	EnrollmentCompletedAt  *time.Time `json:"enrollment_completed_at,omitempty"`
	EnrollmentLastAccessed *time.Time `json:"enrollment_last_accessed,omitempty"`
	EnrollmentEnrolledAt   time.Time  `json:"enrollment_enrolled_at"`
}

func FromEnrollmentModel(m model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:           m.EnrollmentID,
		EnrollmentUserID:       m.EnrollmentUserID,
		EnrollmentCourseID:     m.EnrollmentCourseID,
		EnrollmentIsActive:     m.EnrollmentIsActive,
		EnrollmentProgress:     m.EnrollmentProgress,
		EnrollmentIsCompleted:  m.EnrollmentIsCompleted,
		EnrollmentCompletedAt:  m.EnrollmentCompletedAt,
		EnrollmentLastAccessed: m.EnrollmentLastAccessed,
		EnrollmentEnrolledAt:   m.EnrollmentEnrolledAt,
	}
}

func FromEnrollmentModels(ms []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEnrollmentModel(m))
	}
	return out
}
