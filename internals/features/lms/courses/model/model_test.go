package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&CategoryModel{},
		&CourseModel{},
		&SectionModel{},
		&LessonModel{},
	))
	return db
}

// Seluruh model katalog harus bisa dibuat tanpa default DB: ID datang
// dari hook BeforeCreate, jadi store sqlite (test) dan postgres
// berperilaku sama.
func TestCatalogCreateGeneratesIDs(t *testing.T) {
	db := openTestDB(t)

	category := CategoryModel{CategoryName: "Pemrograman", CategorySlug: "pemrograman", CategoryIsActive: true}
	require.NoError(t, db.Create(&category).Error)
	assert.NotEqual(t, uuid.Nil, category.CategoryID)

	course := CourseModel{
		CourseTitle:        "Go Dasar",
		CourseSlug:         "go-dasar",
		CourseInstructorID: uuid.New(),
		CourseCategoryID:   &category.CategoryID,
		CourseStatus:       CourseStatusDraft,
	}
	require.NoError(t, db.Create(&course).Error)
	assert.NotEqual(t, uuid.Nil, course.CourseID)

	section := SectionModel{SectionCourseID: course.CourseID, SectionTitle: "Intro", SectionOrder: 1}
	require.NoError(t, db.Create(&section).Error)
	assert.NotEqual(t, uuid.Nil, section.SectionID)

	lesson := LessonModel{LessonSectionID: section.SectionID, LessonTitle: "Hello", LessonType: LessonTypeLecture}
	require.NoError(t, db.Create(&lesson).Error)
	assert.NotEqual(t, uuid.Nil, lesson.LessonID)
}

func TestSectionOrderUniquePerCourse(t *testing.T) {
	db := openTestDB(t)
	courseID := uuid.New()

	first := SectionModel{SectionCourseID: courseID, SectionTitle: "A", SectionOrder: 1}
	require.NoError(t, db.Create(&first).Error)

	dupe := SectionModel{SectionCourseID: courseID, SectionTitle: "B", SectionOrder: 1}
	assert.Error(t, db.Create(&dupe).Error)

	// Course lain boleh pakai order yang sama
	other := SectionModel{SectionCourseID: uuid.New(), SectionTitle: "C", SectionOrder: 1}
	assert.NoError(t, db.Create(&other).Error)
}
