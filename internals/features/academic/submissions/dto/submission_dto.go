// file: internals/features/academic/submissions/dto/submission_dto.go
package dto

import (
	"time"

	subModel "skripsiku_backend/internals/features/academic/submissions/model"
)

//
// =========================================================
// CREATE DTO
// =========================================================
//

type CreateSubmissionRequest struct {
	Title    string  `json:"title" validate:"required"`
	Abstract *string `json:"abstract,omitempty"`
}

// SubmissionCreatedResponse: hanya id + nomor tiket, mengikuti kontrak lama.
type SubmissionCreatedResponse struct {
	ID           uint   `json:"id"`
	TicketNumber string `json:"ticket_number"`
}

//
// =========================================================
// UPDATE DTO (partial, field nil berarti tidak diubah)
// =========================================================
//

type UpdateSubmissionRequest struct {
	Title    *string                    `json:"title,omitempty"`
	Abstract *string                    `json:"abstract,omitempty"`
	Status   *subModel.SubmissionStatus `json:"status,omitempty"`
}

// ToUpdates memetakan field terisi ke map untuk gorm Updates.
// Semantik COALESCE: yang nil di-skip, tidak pernah menimpa dengan null.
func (r UpdateSubmissionRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.Title != nil {
		upd["title"] = *r.Title
	}
	if r.Abstract != nil {
		upd["abstract"] = *r.Abstract
	}
	if r.Status != nil {
		upd["status"] = *r.Status
	}
	return upd
}

//
// =========================================================
// RESPONSE DTO (list, dengan progress turunan)
// =========================================================
//

type SubmissionResponse struct {
	ID             uint                      `json:"id"`
	TicketNumber   string                    `json:"ticket_number"`
	IdentityNumber string                    `json:"identity_number"`
	Title          string                    `json:"title"`
	Abstract       *string                   `json:"abstract"`
	Status         subModel.SubmissionStatus `json:"status"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`

	// Turunan dari state milestone, dihitung ulang tiap read.
	TotalMilestones     int `json:"total_milestones"`
	CompletedMilestones int `json:"completed_milestones"`
	TotalProgress       int `json:"total_progress"`
}
