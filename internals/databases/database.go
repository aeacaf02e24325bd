package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	submissionModel "skripsiku_backend/internals/features/academic/submissions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=skripsiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	// DB container bisa naik lebih lambat dari service; retry dulu sebelum fatal.
	const maxRetries = 30
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), &gorm.Config{
			TranslateError: true, // unique violation → gorm.ErrDuplicatedKey
		})
		if err == nil {
			break
		}
		log.Printf("⚠️ Gagal konek DB (attempt %d/%d): %v", attempt, maxRetries, err)
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatalf("❌ Gagal konek DB setelah %d percobaan: %v", maxRetries, err)
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

// Migrate membuat tabel submissions & milestones bila belum ada.
func Migrate() {
	if err := DB.AutoMigrate(
		&submissionModel.SubmissionModel{},
		&submissionModel.MilestoneModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Database migration completed")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
