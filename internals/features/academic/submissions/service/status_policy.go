// file: internals/features/academic/submissions/service/status_policy.go
package service

import (
	model "skripsiku_backend/internals/features/academic/submissions/model"
)

// Kebijakan perubahan status terkumpul di dua fungsi ini supaya graf
// transisi bisa ditambahkan nanti tanpa menyentuh repository.
// Saat ini: nilai apapun yang valid boleh di-set oleh role yang berwenang.

func SubmissionStatusChangeAllowed(to model.SubmissionStatus) bool {
	return to.Valid()
}

func MilestoneStatusChangeAllowed(to model.MilestoneStatus) bool {
	return to.Valid()
}
