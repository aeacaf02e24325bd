// file: internals/features/academic/submissions/repository/submission_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	model "skripsiku_backend/internals/features/academic/submissions/model"
	helper "skripsiku_backend/internals/helpers"
)

// SubmissionWithCounts: baris submission + agregat milestone hasil JOIN.
// total_progress TIDAK ada di sini; persentase dihitung di service tiap read.
type SubmissionWithCounts struct {
	model.SubmissionModel
	TotalMilestones     int `gorm:"column:total_milestones"`
	CompletedMilestones int `gorm:"column:completed_milestones"`
}

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreateWithMilestones membuat submission + 7 milestone standar dalam SATU
// transaksi. Gagal di titik manapun (termasuk tabrakan ticket_number) →
// rollback total, tidak ada baris yang tersisa di kedua tabel.
func (r *SubmissionRepository) CreateWithMilestones(ctx context.Context, identityNumber, title string, abstract *string) (*model.SubmissionModel, error) {
	sub := &model.SubmissionModel{
		TicketNumber:   helper.GenerateTicketNumber(time.Now()),
		IdentityNumber: identityNumber,
		Title:          title,
		Abstract:       abstract,
		Status:         model.SubmissionStatusPengajuan,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		milestones := make([]model.MilestoneModel, 0, len(model.SeedMilestoneNames))
		for _, name := range model.SeedMilestoneNames {
			milestones = append(milestones, model.MilestoneModel{
				SubmissionID:  sub.ID,
				MilestoneName: name,
				Status:        model.MilestoneStatusPending,
			})
		}
		return tx.Create(&milestones).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := r.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByIDForOwner: seperti FindByID tapi juga mencocokkan pemilik.
// Bukan milik caller → gorm.ErrRecordNotFound, sama persis dengan id yang
// memang tidak ada (tidak membocorkan keberadaan record mahasiswa lain).
func (r *SubmissionRepository) FindByIDForOwner(ctx context.Context, id uint, identityNumber string) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	err := r.DB.WithContext(ctx).
		First(&sub, "id = ? AND identity_number = ?", id, identityNumber).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) withCountsQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Select("submissions.*, " +
			"COUNT(m.id) AS total_milestones, " +
			"COALESCE(SUM(CASE WHEN m.status = 'acc' THEN 1 ELSE 0 END), 0) AS completed_milestones").
		Joins("LEFT JOIN milestones m ON m.submission_id = submissions.id").
		Group("submissions.id")
}

// FindAllWithCounts: semua submission (view dosen/kaprodi), yang masih
// berstatus pengajuan didahulukan, lalu masing-masing terbaru dulu.
func (r *SubmissionRepository) FindAllWithCounts(ctx context.Context) ([]SubmissionWithCounts, error) {
	var rows []SubmissionWithCounts
	err := r.withCountsQuery(ctx).
		Order("CASE WHEN submissions.status = 'pengajuan' THEN 0 ELSE 1 END").
		Order("submissions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByOwnerWithCounts: submission milik satu mahasiswa, terbaru dulu.
func (r *SubmissionRepository) FindByOwnerWithCounts(ctx context.Context, identityNumber string) ([]SubmissionWithCounts, error) {
	var rows []SubmissionWithCounts
	err := r.withCountsQuery(ctx).
		Where("submissions.identity_number = ?", identityNumber).
		Order("submissions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateSubmission menerapkan partial update. ownerScope non-nil membatasi
// ke baris milik identity tsb: salah pemilik → 0 rows affected.
func (r *SubmissionRepository) UpdateSubmission(ctx context.Context, id uint, updates map[string]any, ownerScope *string) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	q := r.DB.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ?", id)
	if ownerScope != nil {
		q = q.Where("identity_number = ?", *ownerScope)
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("update submission: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// FindMilestonesBySubmission: urut id naik = urutan seed.
func (r *SubmissionRepository) FindMilestonesBySubmission(ctx context.Context, submissionID uint) ([]model.MilestoneModel, error) {
	var rows []model.MilestoneModel
	err := r.DB.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SubmissionRepository) UpdateMilestone(ctx context.Context, id uint, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).
		Model(&model.MilestoneModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("update milestone: %w", res.Error)
	}
	return res.RowsAffected, nil
}
