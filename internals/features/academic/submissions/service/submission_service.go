// file: internals/features/academic/submissions/service/submission_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	dto "skripsiku_backend/internals/features/academic/submissions/dto"
	model "skripsiku_backend/internals/features/academic/submissions/model"
	repo "skripsiku_backend/internals/features/academic/submissions/repository"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

type SubmissionService struct {
	Repo *repo.SubmissionRepository
}

func NewSubmissionService(r *repo.SubmissionRepository) *SubmissionService {
	return &SubmissionService{Repo: r}
}

// Create: semua role boleh membuat submission (request tanpa token sudah
// ditolak middleware). Validasi dulu, baru sentuh store.
func (s *SubmissionService) Create(ctx context.Context, ident helperAuth.Identity, req dto.CreateSubmissionRequest) (*dto.SubmissionCreatedResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	sub, err := s.Repo.CreateWithMilestones(ctx, ident.IdentityNumber, req.Title, req.Abstract)
	if err != nil {
		return nil, err
	}

	return &dto.SubmissionCreatedResponse{
		ID:           sub.ID,
		TicketNumber: sub.TicketNumber,
	}, nil
}

// ListForRequester: dosen/kaprodi melihat semua (pengajuan didahulukan),
// mahasiswa hanya miliknya sendiri.
func (s *SubmissionService) ListForRequester(ctx context.Context, ident helperAuth.Identity) ([]dto.SubmissionResponse, error) {
	var (
		rows []repo.SubmissionWithCounts
		err  error
	)
	if ident.IsLecturer() {
		rows, err = s.Repo.FindAllWithCounts(ctx)
	} else {
		rows, err = s.Repo.FindByOwnerWithCounts(ctx, ident.IdentityNumber)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubmissionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SubmissionResponse{
			ID:                  row.ID,
			TicketNumber:        row.TicketNumber,
			IdentityNumber:      row.IdentityNumber,
			Title:               row.Title,
			Abstract:            row.Abstract,
			Status:              row.Status,
			CreatedAt:           row.CreatedAt,
			UpdatedAt:           row.UpdatedAt,
			TotalMilestones:     row.TotalMilestones,
			CompletedMilestones: row.CompletedMilestones,
			TotalProgress:       Progress(row.TotalMilestones, row.CompletedMilestones),
		})
	}
	return out, nil
}

// GetOne: dosen/kaprodi bebas by id; mahasiswa hanya miliknya.
// Keduanya jatuh ke ErrSubmissionNotFound yang sama.
func (s *SubmissionService) GetOne(ctx context.Context, ident helperAuth.Identity, id uint) (*model.SubmissionModel, error) {
	var (
		sub *model.SubmissionModel
		err error
	)
	if ident.IsLecturer() {
		sub, err = s.Repo.FindByID(ctx, id)
	} else {
		sub, err = s.Repo.FindByIDForOwner(ctx, id, ident.IdentityNumber)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// Update: partial update title/abstract/status. Mahasiswa dibatasi ke baris
// miliknya lewat scope di store; 0 rows affected → not found.
func (s *SubmissionService) Update(ctx context.Context, ident helperAuth.Identity, id uint, req dto.UpdateSubmissionRequest) error {
	if req.Status != nil && !SubmissionStatusChangeAllowed(*req.Status) {
		return ErrInvalidStatus
	}

	var ownerScope *string
	if !ident.IsLecturer() {
		ownerScope = &ident.IdentityNumber
	}

	affected, err := s.Repo.UpdateSubmission(ctx, id, req.ToUpdates(), ownerScope)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
