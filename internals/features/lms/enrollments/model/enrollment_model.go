package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel mengikat satu user ke satu course dan menyimpan
// agregat progres. Maksimal satu baris per (user, course); baris tidak
// pernah dihapus, hanya dinonaktifkan.
type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course;index" json:"enrollment_course_id"`

	// Tanpa default DB: nilai false ikut zero-value GORM dan akan
	// tertimpa default kolom saat Create. Pembuat baris wajib mengisi
	// eksplisit (lihat ensureActiveEnrollment).
	EnrollmentIsActive bool    `gorm:"column:enrollment_is_active;not null;index" json:"enrollment_is_active"`
	EnrollmentProgress float64 `gorm:"column:enrollment_progress;type:numeric(5,2);not null;default:0" json:"enrollment_progress"`

	// completed_at diisi sekali saja pada transisi pertama ke 100%
	// dan tidak pernah diubah oleh rekalkulasi berikutnya.
	EnrollmentIsCompleted  bool       `gorm:"column:enrollment_is_completed;not null;default:false" json:"enrollment_is_completed"`
	EnrollmentCompletedAt  *time.Time `gorm:"column:enrollment_completed_at" json:"enrollment_completed_at,omitempty"`
	EnrollmentLastAccessed *time.Time `gorm:"column:enrollment_last_accessed" json:"enrollment_last_accessed,omitempty"`
	EnrollmentEnrolledAt   time.Time  `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`

	UpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
