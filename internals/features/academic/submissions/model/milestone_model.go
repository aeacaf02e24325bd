// file: internals/features/academic/submissions/model/milestone_model.go
package model

import (
	"time"
)

type MilestoneStatus string

const (
	MilestoneStatusPending  MilestoneStatus = "pending"
	MilestoneStatusProgress MilestoneStatus = "progress"
	MilestoneStatusAcc      MilestoneStatus = "acc" // satu-satunya status yang dihitung selesai
	MilestoneStatusRevision MilestoneStatus = "revision"
)

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusProgress,
		MilestoneStatusAcc, MilestoneStatusRevision:
		return true
	}
	return false
}

// Daftar milestone standar yang di-seed saat submission dibuat.
// Urutan di sini adalah urutan insert, dan karenanya urutan id.
var SeedMilestoneNames = []string{
	"Proposal Skripsi",
	"Bab 1 - Pendahuluan",
	"Bab 2 - Tinjauan Pustaka",
	"Bab 3 - Metodologi",
	"Bab 4 - Hasil dan Pembahasan",
	"Bab 5 - Kesimpulan",
	"Sidang Skripsi",
}

type MilestoneModel struct {
	ID            uint            `gorm:"primaryKey;column:id" json:"id"`
	SubmissionID  uint            `gorm:"index:idx_submission;not null;column:submission_id" json:"submission_id"`
	MilestoneName string          `gorm:"type:varchar(100);not null;column:milestone_name" json:"milestone_name"`
	Status        MilestoneStatus `gorm:"type:varchar(20);not null;default:'pending';column:status" json:"status"`
	Notes         *string         `gorm:"type:text;column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (MilestoneModel) TableName() string { return "milestones" }
