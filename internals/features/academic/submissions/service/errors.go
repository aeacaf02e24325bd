// file: internals/features/academic/submissions/service/errors.go
package service

import "errors"

// Error yang dikembalikan service; controller yang memetakan ke status HTTP.
// Pesan mengikuti kontrak respons lama supaya klien tidak perlu berubah.
var (
	// 400
	ErrTitleRequired = errors.New("Title is required")
	ErrInvalidStatus = errors.New("Invalid status value")

	// 403
	ErrMilestoneForbidden = errors.New("Only lecturers can update milestone status")

	// 404: sengaja sama untuk "tidak ada" dan "bukan milik caller"
	ErrSubmissionNotFound = errors.New("Submission not found")
	ErrMilestoneNotFound  = errors.New("Milestone not found")
)
