package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	activityModel "learnhub_backend/internals/features/admin_tools/activity_logs/model"
	certModel "learnhub_backend/internals/features/lms/certificates/model"
	courseModel "learnhub_backend/internals/features/lms/courses/model"
	"learnhub_backend/internals/features/lms/enrollments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&courseModel.CourseModel{},
		&courseModel.SectionModel{},
		&courseModel.LessonModel{},
		&model.EnrollmentModel{},
		&model.LessonProgressModel{},
		&certModel.CertificateModel{},
		&activityModel.ActivityLogModel{},
		&activityModel.AdminActionLogModel{},
	))
	return db
}

// seedCourse membuat course + satu section + n lesson, return course & lesson IDs.
func seedCourse(t *testing.T, db *gorm.DB, lessonCount int) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	course := courseModel.CourseModel{
		CourseTitle:        "Go untuk Backend",
		CourseSlug:         "go-untuk-backend-" + uuid.NewString()[:8],
		CourseInstructorID: uuid.New(),
		CourseStatus:       courseModel.CourseStatusPublished,
	}
	require.NoError(t, db.Create(&course).Error)

	section := courseModel.SectionModel{
		SectionCourseID: course.CourseID,
		SectionTitle:    "Dasar",
		SectionOrder:    1,
	}
	require.NoError(t, db.Create(&section).Error)

	lessonIDs := make([]uuid.UUID, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModel.LessonModel{
			LessonSectionID: section.SectionID,
			LessonTitle:     fmt.Sprintf("Lesson %d", i+1),
			LessonOrder:     i + 1,
			LessonType:      courseModel.LessonTypeLecture,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessonIDs = append(lessonIDs, lesson.LessonID)
	}
	return course.CourseID, lessonIDs
}

func seedEnrollment(t *testing.T, db *gorm.DB, courseID uuid.UUID) model.EnrollmentModel {
	t.Helper()

	enrollment := model.EnrollmentModel{
		EnrollmentUserID:   uuid.New(),
		EnrollmentCourseID: courseID,
		EnrollmentIsActive: true,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

func certificateCount(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&certModel.CertificateModel{}).
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
		Count(&n).Error)
	return n
}

func TestSetLessonCompletionPartialProgress(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 4)
	enrollment := seedEnrollment(t, db, courseID)

	for _, lessonID := range lessons[:2] {
		_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessonID, true, nil)
		require.NoError(t, err)
	}

	var got model.EnrollmentModel
	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)

	assert.Equal(t, 50.0, got.EnrollmentProgress)
	assert.False(t, got.EnrollmentIsCompleted)
	assert.Nil(t, got.EnrollmentCompletedAt)
	assert.NotNil(t, got.EnrollmentLastAccessed)
	assert.Equal(t, int64(0), certificateCount(t, db, got.EnrollmentUserID, courseID))
}

func TestSetLessonCompletionFullCourseIssuesCertificate(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 4)
	enrollment := seedEnrollment(t, db, courseID)

	for _, lessonID := range lessons {
		_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessonID, true, nil)
		require.NoError(t, err)
	}

	var got model.EnrollmentModel
	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)

	assert.Equal(t, 100.0, got.EnrollmentProgress)
	assert.True(t, got.EnrollmentIsCompleted)
	require.NotNil(t, got.EnrollmentCompletedAt)
	assert.Equal(t, int64(1), certificateCount(t, db, got.EnrollmentUserID, courseID))

	// Rekalkulasi ulang tidak menggeser completed_at dan tidak
	// menerbitkan sertifikat kedua.
	firstCompletedAt := *got.EnrollmentCompletedAt
	_, err := RecalcEnrollmentProgressByID(db, enrollment.EnrollmentID, nil)
	require.NoError(t, err)

	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)
	require.NotNil(t, got.EnrollmentCompletedAt)
	assert.True(t, firstCompletedAt.Equal(*got.EnrollmentCompletedAt))
	assert.Equal(t, int64(1), certificateCount(t, db, got.EnrollmentUserID, courseID))
}

func TestSetLessonCompletionIdempotent(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 2)
	enrollment := seedEnrollment(t, db, courseID)

	_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessons[0], true, nil)
	require.NoError(t, err)

	var lp model.LessonProgressModel
	require.NoError(t, db.First(&lp,
		"lesson_progress_enrollment_id = ? AND lesson_progress_lesson_id = ?",
		enrollment.EnrollmentID, lessons[0]).Error)
	require.NotNil(t, lp.LessonProgressCompletedAt)
	firstCompletedAt := *lp.LessonProgressCompletedAt

	// Nilai sama → completed_at tidak boleh bergeser
	_, err = SetLessonCompletion(db, enrollment.EnrollmentID, lessons[0], true, nil)
	require.NoError(t, err)

	require.NoError(t, db.First(&lp, "lesson_progress_id = ?", lp.LessonProgressID).Error)
	require.NotNil(t, lp.LessonProgressCompletedAt)
	assert.True(t, firstCompletedAt.Equal(*lp.LessonProgressCompletedAt))

	var count int64
	require.NoError(t, db.Model(&model.LessonProgressModel{}).
		Where("lesson_progress_enrollment_id = ?", enrollment.EnrollmentID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetLessonCompletionRejectsForeignLesson(t *testing.T) {
	db := openTestDB(t)
	courseID, _ := seedCourse(t, db, 2)
	_, otherLessons := seedCourse(t, db, 1)
	enrollment := seedEnrollment(t, db, courseID)

	_, err := SetLessonCompletion(db, enrollment.EnrollmentID, otherLessons[0], true, nil)
	assert.ErrorIs(t, err, ErrLessonNotInCourse)

	// Tidak ada baris progres yang nyangkut
	var count int64
	require.NoError(t, db.Model(&model.LessonProgressModel{}).
		Where("lesson_progress_enrollment_id = ?", enrollment.EnrollmentID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCompletedAtSurvivesRegression(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 4)
	enrollment := seedEnrollment(t, db, courseID)

	for _, lessonID := range lessons {
		_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessonID, true, nil)
		require.NoError(t, err)
	}

	var got model.EnrollmentModel
	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)
	require.NotNil(t, got.EnrollmentCompletedAt)
	completedAt := *got.EnrollmentCompletedAt

	// Satu lesson dibatalkan → progres turun, is_completed false,
	// tapi completed_at historis tetap.
	_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessons[0], false, nil)
	require.NoError(t, err)

	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)
	assert.Equal(t, 75.0, got.EnrollmentProgress)
	assert.False(t, got.EnrollmentIsCompleted)
	require.NotNil(t, got.EnrollmentCompletedAt)
	assert.True(t, completedAt.Equal(*got.EnrollmentCompletedAt))
}

func TestCascadeGlobalLessonCompletion(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 2)

	enrollments := make([]model.EnrollmentModel, 0, 10)
	for i := 0; i < 10; i++ {
		enrollments = append(enrollments, seedEnrollment(t, db, courseID))
	}

	// Enrollment nonaktif tidak boleh ikut
	inactive := model.EnrollmentModel{
		EnrollmentUserID:   uuid.New(),
		EnrollmentCourseID: courseID,
		EnrollmentIsActive: false,
	}
	require.NoError(t, db.Create(&inactive).Error)

	processed, err := CascadeGlobalLessonCompletion(db, lessons[0], true, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, processed)

	var lesson courseModel.LessonModel
	require.NoError(t, db.First(&lesson, "lesson_id = ?", lessons[0]).Error)
	assert.True(t, lesson.LessonIsCompleted)

	for _, enr := range enrollments {
		var got model.EnrollmentModel
		require.NoError(t, db.First(&got, "enrollment_id = ?", enr.EnrollmentID).Error)
		assert.Equal(t, 50.0, got.EnrollmentProgress)
		assert.False(t, got.EnrollmentIsCompleted)
	}

	// Baris nonaktif tetap nonaktif dan tidak dapat progres — false
	// harus benar-benar tersimpan saat create, bukan tertimpa default.
	var untouched model.EnrollmentModel
	require.NoError(t, db.First(&untouched, "enrollment_id = ?", inactive.EnrollmentID).Error)
	assert.False(t, untouched.EnrollmentIsActive)
	assert.Equal(t, 0.0, untouched.EnrollmentProgress)
}

func TestCreateInactiveEnrollmentStaysInactive(t *testing.T) {
	db := openTestDB(t)
	courseID, _ := seedCourse(t, db, 1)

	enrollment := model.EnrollmentModel{
		EnrollmentUserID:   uuid.New(),
		EnrollmentCourseID: courseID,
		EnrollmentIsActive: false,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	var got model.EnrollmentModel
	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)
	assert.False(t, got.EnrollmentIsActive)
}

func TestRecalcSelfHealsFromGlobalFlag(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 2)
	enrollment := seedEnrollment(t, db, courseID)

	// Flag global diset langsung tanpa cascade — mensimulasikan cascade
	// yang terlewat / balapan.
	require.NoError(t, db.Model(&courseModel.LessonModel{}).
		Where("lesson_id = ?", lessons[0]).
		Update("lesson_is_completed", true).Error)

	got, err := RecalcEnrollmentProgressByID(db, enrollment.EnrollmentID, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.EnrollmentProgress)

	// Baris per-siswa ikut tersembuhkan
	var lp model.LessonProgressModel
	require.NoError(t, db.First(&lp,
		"lesson_progress_enrollment_id = ? AND lesson_progress_lesson_id = ?",
		enrollment.EnrollmentID, lessons[0]).Error)
	assert.True(t, lp.LessonProgressIsCompleted)
}

func TestRecalcEmptyCourse(t *testing.T) {
	db := openTestDB(t)

	course := courseModel.CourseModel{
		CourseTitle:        "Course Kosong",
		CourseSlug:         "course-kosong",
		CourseInstructorID: uuid.New(),
		CourseStatus:       courseModel.CourseStatusPublished,
	}
	require.NoError(t, db.Create(&course).Error)
	enrollment := seedEnrollment(t, db, course.CourseID)

	got, err := RecalcEnrollmentProgressByID(db, enrollment.EnrollmentID, nil)
	require.NoError(t, err)

	// Nol lesson = progres 0, bukan selesai, bukan division-by-zero
	assert.Equal(t, 0.0, got.EnrollmentProgress)
	assert.False(t, got.EnrollmentIsCompleted)
	assert.Equal(t, int64(0), certificateCount(t, db, got.EnrollmentUserID, course.CourseID))
}

func TestRecalcCourseProgress(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 2)

	first := seedEnrollment(t, db, courseID)
	second := seedEnrollment(t, db, courseID)

	require.NoError(t, db.Model(&courseModel.LessonModel{}).
		Where("lesson_id IN ?", []uuid.UUID{lessons[0], lessons[1]}).
		Update("lesson_is_completed", true).Error)

	processed, err := RecalcCourseProgress(db, courseID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	for _, id := range []uuid.UUID{first.EnrollmentID, second.EnrollmentID} {
		var got model.EnrollmentModel
		require.NoError(t, db.First(&got, "enrollment_id = ?", id).Error)
		assert.Equal(t, 100.0, got.EnrollmentProgress)
		assert.True(t, got.EnrollmentIsCompleted)
		assert.Equal(t, int64(1), certificateCount(t, db, got.EnrollmentUserID, courseID))
	}
}

func TestProgressRoundsToTwoDecimals(t *testing.T) {
	db := openTestDB(t)
	courseID, lessons := seedCourse(t, db, 3)
	enrollment := seedEnrollment(t, db, courseID)

	_, err := SetLessonCompletion(db, enrollment.EnrollmentID, lessons[0], true, nil)
	require.NoError(t, err)

	var got model.EnrollmentModel
	require.NoError(t, db.First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error)

	// 1/3 → 33.33, bukan 33.333333
	assert.Equal(t, 33.33, got.EnrollmentProgress)
}
