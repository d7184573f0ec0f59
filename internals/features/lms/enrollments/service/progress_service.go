package service

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "learnhub_backend/internals/features/admin_tools/activity_logs/service"
	certService "learnhub_backend/internals/features/lms/certificates/service"
	courseModel "learnhub_backend/internals/features/lms/courses/model"
	"learnhub_backend/internals/features/lms/enrollments/model"
)

// Ukuran halaman untuk cascade & recalc massal — membatasi durasi per
// iterasi; operasi idempotent jadi aman diulang kalau putus di tengah.
const recalcPageSize = 200

var ErrLessonNotInCourse = errors.New("lesson bukan bagian dari course enrollment ini")

/* =======================================================
   LESSON COMPLETION (per enrollment)
======================================================= */

// SetLessonCompletion meng-upsert baris lesson_progress (enrollment, lesson)
// lalu merekalkulasi progres enrollment DI DALAM transaksi yang sama —
// recompute selesai sebelum panggilan dianggap beres.
// Idempotent terhadap timestamp: completed_at hanya diisi pada transisi
// false→true dan dikosongkan pada true→false; nilai sama = no-op.
func SetLessonCompletion(db *gorm.DB, enrollmentID, lessonID uuid.UUID, completed bool, actorID *uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}

		// Pastikan lesson memang milik course enrollment ini
		var count int64
		if err := tx.Table("lessons").
			Joins("JOIN course_sections ON course_sections.section_id = lessons.lesson_section_id").
			Where("lessons.lesson_id = ? AND course_sections.section_course_id = ?", lessonID, enrollment.EnrollmentCourseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrLessonNotInCourse
		}

		if err := upsertLessonProgress(tx, enrollment.EnrollmentID, lessonID, completed); err != nil {
			return err
		}

		return RecalcEnrollmentProgress(tx, &enrollment, actorID)
	})
	if err != nil {
		return nil, err
	}

	// Audit setelah commit — best-effort, tidak menggagalkan transisi.
	if actorID != nil {
		state := "selesai"
		if !completed {
			state = "belum selesai"
		}
		activityService.LogActivity(db, *actorID,
			fmt.Sprintf("Lesson %s ditandai %s untuk enrollment %s", lessonID, state, enrollment.EnrollmentID))
	}

	return &enrollment, nil
}

// upsertLessonProgress: create-or-update satu baris progres lesson.
func upsertLessonProgress(tx *gorm.DB, enrollmentID, lessonID uuid.UUID, completed bool) error {
	var lp model.LessonProgressModel
	err := tx.
		Where("lesson_progress_enrollment_id = ? AND lesson_progress_lesson_id = ?", enrollmentID, lessonID).
		First(&lp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		lp = model.LessonProgressModel{
			LessonProgressEnrollmentID: enrollmentID,
			LessonProgressLessonID:     lessonID,
			LessonProgressIsCompleted:  completed,
		}
		if completed {
			now := time.Now()
			lp.LessonProgressCompletedAt = &now
		}
		return tx.Create(&lp).Error
	}
	if err != nil {
		return err
	}

	// Nilai sama → jangan sentuh completed_at (idempotent)
	if lp.LessonProgressIsCompleted == completed {
		return nil
	}

	updates := map[string]interface{}{
		"lesson_progress_is_completed": completed,
	}
	if completed {
		updates["lesson_progress_completed_at"] = time.Now()
	} else {
		updates["lesson_progress_completed_at"] = nil
	}
	return tx.Model(&model.LessonProgressModel{}).
		Where("lesson_progress_id = ?", lp.LessonProgressID).
		Updates(updates).Error
}

/* =======================================================
   CASCADE GLOBAL (instructor/admin toggle)
======================================================= */

// CascadeGlobalLessonCompletion menyetel flag global lesson lalu
// menerapkan SetLessonCompletion ke setiap enrollment aktif dari course
// pemilik lesson. Satu transaksi per enrollment: best-effort terhadap
// himpunan enrollment yang berubah di tengah jalan (enrollment baru
// tidak wajib ikut), dan kegagalan satu baris tidak menghentikan sisanya.
func CascadeGlobalLessonCompletion(db *gorm.DB, lessonID uuid.UUID, completed bool, actorID *uuid.UUID) (int, error) {
	var lesson courseModel.LessonModel
	if err := db.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return 0, err
	}

	var section courseModel.SectionModel
	if err := db.First(&section, "section_id = ?", lesson.LessonSectionID).Error; err != nil {
		return 0, err
	}
	courseID := section.SectionCourseID

	// Flag global dulu — supaya recalc yang balapan dengan cascade
	// tetap bisa self-heal dari flag ini.
	if err := db.Model(&courseModel.LessonModel{}).
		Where("lesson_id = ?", lessonID).
		Update("lesson_is_completed", completed).Error; err != nil {
		return 0, err
	}

	processed := 0
	offset := 0
	for {
		var page []model.EnrollmentModel
		if err := db.
			Where("enrollment_course_id = ? AND enrollment_is_active = ?", courseID, true).
			Order("enrollment_enrolled_at ASC, enrollment_id ASC").
			Limit(recalcPageSize).Offset(offset).
			Find(&page).Error; err != nil {
			return processed, err
		}
		if len(page) == 0 {
			break
		}

		for _, enr := range page {
			if _, err := SetLessonCompletion(db, enr.EnrollmentID, lessonID, completed, nil); err != nil {
				log.Printf("[WARN] Cascade lesson %s gagal untuk enrollment %s: %v", lessonID, enr.EnrollmentID, err)
				continue
			}
			processed++
		}

		if len(page) < recalcPageSize {
			break
		}
		offset += recalcPageSize
	}

	if actorID != nil {
		state := "selesai"
		if !completed {
			state = "belum selesai"
		}
		activityService.LogActivity(db, *actorID,
			fmt.Sprintf("Lesson '%s' ditandai %s (global) untuk %d enrollment", lesson.LessonTitle, state, processed))
	}

	return processed, nil
}

/* =======================================================
   PROGRESS RECALC (proyeksi konvergen)
======================================================= */

// RecalcEnrollmentProgress merekalkulasi progres satu enrollment dari
// baris lesson_progress. Proyeksi deterministik & konvergen: invokasi
// berulang/bersamaan di atas data yang sama selalu menuju hasil yang
// sama, jadi tidak butuh locking untuk nilai hitungannya sendiri.
//
// Langkah: enumerasi lesson course → self-heal baris untuk lesson yang
// ditandai selesai global → hitung → simpan → terbitkan sertifikat
// saat 100%. completed_at enrollment hanya diisi pada transisi pertama
// ke selesai dan tidak pernah diubah lagi oleh rekalkulasi berikutnya.
func RecalcEnrollmentProgress(tx *gorm.DB, enrollment *model.EnrollmentModel, issuedBy *uuid.UUID) error {
	var lessons []courseModel.LessonModel
	if err := tx.
		Joins("JOIN course_sections ON course_sections.section_id = lessons.lesson_section_id").
		Where("course_sections.section_course_id = ?", enrollment.EnrollmentCourseID).
		Find(&lessons).Error; err != nil {
		return err
	}

	var rows []model.LessonProgressModel
	if err := tx.
		Where("lesson_progress_enrollment_id = ?", enrollment.EnrollmentID).
		Find(&rows).Error; err != nil {
		return err
	}
	progressByLesson := make(map[uuid.UUID]*model.LessonProgressModel, len(rows))
	for i := range rows {
		progressByLesson[rows[i].LessonProgressLessonID] = &rows[i]
	}

	// Self-heal: flag global instructor → baris per siswa, walau cascade
	// terlewat atau balapan.
	completed := 0
	for _, lesson := range lessons {
		lp := progressByLesson[lesson.LessonID]
		if lesson.LessonIsCompleted && (lp == nil || !lp.LessonProgressIsCompleted) {
			if err := upsertLessonProgress(tx, enrollment.EnrollmentID, lesson.LessonID, true); err != nil {
				return err
			}
			completed++
			continue
		}
		if lp != nil && lp.LessonProgressIsCompleted {
			completed++
		}
	}

	total := len(lessons)
	progress := 0.0
	if total > 0 {
		progress = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	wasCompleted := enrollment.EnrollmentIsCompleted
	now := time.Now()

	enrollment.EnrollmentProgress = progress
	enrollment.EnrollmentIsCompleted = progress >= 100
	enrollment.EnrollmentLastAccessed = &now

	updates := map[string]interface{}{
		"enrollment_progress":      enrollment.EnrollmentProgress,
		"enrollment_is_completed":  enrollment.EnrollmentIsCompleted,
		"enrollment_last_accessed": now,
	}
	if enrollment.EnrollmentIsCompleted && !wasCompleted {
		enrollment.EnrollmentCompletedAt = &now
		updates["enrollment_completed_at"] = now
	}
	if err := tx.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollment.EnrollmentID).
		Updates(updates).Error; err != nil {
		return err
	}

	if enrollment.EnrollmentIsCompleted {
		if _, err := certService.IssueIfMissing(tx,
			enrollment.EnrollmentUserID, enrollment.EnrollmentCourseID,
			issuedBy, progress); err != nil {
			return err
		}
	}

	return nil
}

// RecalcEnrollmentProgressByID: varian untuk pemanggil yang hanya punya ID.
func RecalcEnrollmentProgressByID(db *gorm.DB, enrollmentID uuid.UUID, issuedBy *uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		return RecalcEnrollmentProgress(tx, &enrollment, issuedBy)
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// RecalcCourseProgress menyinkronkan ulang seluruh enrollment aktif satu
// course (dipakai setelah perubahan katalog massal: lesson dihapus /
// toggle global). Per halaman, satu transaksi per enrollment — progres
// parsial saat gagal tidak apa-apa karena operasi ini idempotent dan
// aman dijalankan ulang.
func RecalcCourseProgress(db *gorm.DB, courseID uuid.UUID, issuedBy *uuid.UUID) (int, error) {
	processed := 0
	offset := 0
	for {
		var page []model.EnrollmentModel
		if err := db.
			Where("enrollment_course_id = ? AND enrollment_is_active = ?", courseID, true).
			Order("enrollment_enrolled_at ASC, enrollment_id ASC").
			Limit(recalcPageSize).Offset(offset).
			Find(&page).Error; err != nil {
			return processed, err
		}
		if len(page) == 0 {
			break
		}

		for i := range page {
			enr := page[i]
			err := db.Transaction(func(tx *gorm.DB) error {
				return RecalcEnrollmentProgress(tx, &enr, issuedBy)
			})
			if err != nil {
				log.Printf("[WARN] Recalc course %s gagal untuk enrollment %s: %v", courseID, enr.EnrollmentID, err)
				continue
			}
			processed++
		}

		if len(page) < recalcPageSize {
			break
		}
		offset += recalcPageSize
	}

	if issuedBy != nil {
		activityService.LogAdminAction(db, *issuedBy,
			"Recalc Course Progress",
			fmt.Sprintf("Course #%s", courseID),
			fmt.Sprintf("%d enrollment diproses", processed))
	}

	return processed, nil
}
