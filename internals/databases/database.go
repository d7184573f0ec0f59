package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	activityModel "learnhub_backend/internals/features/admin_tools/activity_logs/model"
	certModel "learnhub_backend/internals/features/lms/certificates/model"
	courseModel "learnhub_backend/internals/features/lms/courses/model"
	enrollModel "learnhub_backend/internals/features/lms/enrollments/model"
	paymentModel "learnhub_backend/internals/features/lms/payments/model"
	userModel "learnhub_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, arahkan ke port pooler dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=learnhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate menyelaraskan skema inti LMS.
// Urutan penting: tabel induk (users, courses) dulu sebelum anak.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CategoryModel{},
		&courseModel.CourseModel{},
		&courseModel.SectionModel{},
		&courseModel.LessonModel{},
		&enrollModel.EnrollmentModel{},
		&enrollModel.LessonProgressModel{},
		&certModel.CertificateModel{},
		&paymentModel.PaymentModel{},
		&activityModel.ActivityLogModel{},
		&activityModel.AdminActionLogModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
