package constants

// Role yang dikenal dari token auth-service
const (
	RoleMahasiswa = "mahasiswa"
	RoleDosen     = "dosen"
	RoleKaprodi   = "kaprodi"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMahasiswa,
		RoleDosen,
		RoleKaprodi,
	}

	// Dosen & kaprodi melihat semua submission dan boleh update milestone
	LecturerRoles = []string{
		RoleDosen,
		RoleKaprodi,
	}
)

func IsLecturer(role string) bool {
	for _, r := range LecturerRoles {
		if r == role {
			return true
		}
	}
	return false
}
