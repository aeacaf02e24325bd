package seeds

import (
	"gorm.io/gorm"

	academic "skripsiku_backend/internals/seeds/academic"
)

// RunAllSeeds mengisi data demo untuk development. Jalankan dengan
// RUN_SEEDS=true; data yang sudah ada tidak diduplikasi.
func RunAllSeeds(db *gorm.DB) {
	academic.SeedSubmissionsFromJSON(db, "internals/seeds/academic/data_submissions.json")
}
