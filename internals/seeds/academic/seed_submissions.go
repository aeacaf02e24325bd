package academic

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	repository "skripsiku_backend/internals/features/academic/submissions/repository"
)

// Struktur data seed untuk lingkungan development
type SubmissionSeed struct {
	IdentityNumber string  `json:"identity_number"`
	Title          string  `json:"title"`
	Abstract       *string `json:"abstract"`
}

// SeedSubmissionsFromJSON membuat submission demo lengkap dengan 7 milestone
// standar, lewat jalur transaksi yang sama dengan jalur produksi.
func SeedSubmissionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seedData []SubmissionSeed
	if err := json.Unmarshal(file, &seedData); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	repo := repository.NewSubmissionRepository(db)
	for _, s := range seedData {
		var existing int64
		db.Table("submissions").
			Where("identity_number = ? AND title = ?", s.IdentityNumber, s.Title).
			Count(&existing)
		if existing > 0 {
			log.Printf("⏭️ skip: submission %q milik %s sudah ada", s.Title, s.IdentityNumber)
			continue
		}

		sub, err := repo.CreateWithMilestones(context.Background(), s.IdentityNumber, s.Title, s.Abstract)
		if err != nil {
			log.Fatalf("❌ Gagal seed submission %q: %v", s.Title, err)
		}
		log.Printf("✅ Seeded submission %s (%s)", sub.TicketNumber, s.IdentityNumber)
	}
}
