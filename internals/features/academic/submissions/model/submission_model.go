// file: internals/features/academic/submissions/model/submission_model.go
package model

import (
	"time"
)

// Status workflow skripsi.
// Tidak ada graf transisi yang di-enforce di level DB; lihat service.
type SubmissionStatus string

const (
	SubmissionStatusPengajuan SubmissionStatus = "pengajuan"
	SubmissionStatusBimbingan SubmissionStatus = "bimbingan"
	SubmissionStatusRevisi    SubmissionStatus = "revisi"
	SubmissionStatusSidang    SubmissionStatus = "sidang"
	SubmissionStatusLulus     SubmissionStatus = "lulus"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPengajuan, SubmissionStatusBimbingan,
		SubmissionStatusRevisi, SubmissionStatusSidang, SubmissionStatusLulus:
		return true
	}
	return false
}

type SubmissionModel struct {
	ID             uint             `gorm:"primaryKey;column:id" json:"id"`
	TicketNumber   string           `gorm:"type:varchar(50);uniqueIndex:idx_ticket;not null;column:ticket_number" json:"ticket_number"`
	IdentityNumber string           `gorm:"type:varchar(50);index:idx_identity;not null;column:identity_number" json:"identity_number"`
	Title          string           `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Abstract       *string          `gorm:"type:text;column:abstract" json:"abstract"`
	Status         SubmissionStatus `gorm:"type:varchar(20);not null;default:'pengajuan';column:status" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Milestones []MilestoneModel `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SubmissionModel) TableName() string { return "submissions" }
