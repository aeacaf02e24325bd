// file: internals/features/academic/submissions/service/progress.go
package service

import "math"

// Progress: persentase milestone ber-status acc, dibulatkan half-up.
// Fungsi murni; selalu dihitung ulang dari state milestone, tidak pernah
// di-cache atau disimpan sebagai sumber kebenaran.
func Progress(total, completed int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
