// file: internals/features/academic/submissions/service/milestone_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	mdto "skripsiku_backend/internals/features/academic/milestones/dto"
	model "skripsiku_backend/internals/features/academic/submissions/model"
	repo "skripsiku_backend/internals/features/academic/submissions/repository"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

type MilestoneService struct {
	Repo *repo.SubmissionRepository
}

func NewMilestoneService(r *repo.SubmissionRepository) *MilestoneService {
	return &MilestoneService{Repo: r}
}

// ListForSubmission: mahasiswa harus pemilik submission-nya (gagal cek →
// not found, bukan forbidden); dosen/kaprodi lewat tanpa cek kepemilikan.
func (s *MilestoneService) ListForSubmission(ctx context.Context, ident helperAuth.Identity, submissionID uint) ([]model.MilestoneModel, error) {
	if !ident.IsLecturer() {
		if _, err := s.Repo.FindByIDForOwner(ctx, submissionID, ident.IdentityNumber); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSubmissionNotFound
			}
			return nil, err
		}
	}
	return s.Repo.FindMilestonesBySubmission(ctx, submissionID)
}

// Update: hanya dosen/kaprodi. Tidak ada cek kepemilikan lain karena model
// data belum punya relasi penugasan dosen ke mahasiswa.
func (s *MilestoneService) Update(ctx context.Context, ident helperAuth.Identity, milestoneID uint, req mdto.UpdateMilestoneRequest) error {
	if !ident.IsLecturer() {
		return ErrMilestoneForbidden
	}
	if req.Status != nil && !MilestoneStatusChangeAllowed(*req.Status) {
		return ErrInvalidStatus
	}

	affected, err := s.Repo.UpdateMilestone(ctx, milestoneID, req.ToUpdates())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMilestoneNotFound
	}
	return nil
}
