package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"skripsiku_backend/internals/constants"
	model "skripsiku_backend/internals/features/academic/submissions/model"
	repo "skripsiku_backend/internals/features/academic/submissions/repository"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// :memory: per koneksi → pool harus 1 koneksi supaya semua query
	// melihat database yang sama.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.SubmissionModel{}, &model.MilestoneModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*gorm.DB, *SubmissionService, *MilestoneService) {
	t.Helper()
	db := newTestDB(t)
	r := repo.NewSubmissionRepository(db)
	return db, NewSubmissionService(r), NewMilestoneService(r)
}

func student(identityNumber string) helperAuth.Identity {
	return helperAuth.Identity{UserID: 1, IdentityNumber: identityNumber, Role: constants.RoleMahasiswa}
}

func lecturer() helperAuth.Identity {
	return helperAuth.Identity{UserID: 2, IdentityNumber: "D001", Role: constants.RoleDosen}
}

func chair() helperAuth.Identity {
	return helperAuth.Identity{UserID: 3, IdentityNumber: "K001", Role: constants.RoleKaprodi}
}

func countRows(t *testing.T, db *gorm.DB, v any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(v).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func strPtr(s string) *string { return &s }
