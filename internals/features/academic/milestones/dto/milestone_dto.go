// file: internals/features/academic/milestones/dto/milestone_dto.go
package dto

import (
	subModel "skripsiku_backend/internals/features/academic/submissions/model"
)

// UpdateMilestoneRequest: partial update status/notes oleh dosen/kaprodi.
type UpdateMilestoneRequest struct {
	Status *subModel.MilestoneStatus `json:"status,omitempty"`
	Notes  *string                   `json:"notes,omitempty"`
}

func (r UpdateMilestoneRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.Status != nil {
		upd["status"] = *r.Status
	}
	if r.Notes != nil {
		upd["notes"] = *r.Notes
	}
	return upd
}
