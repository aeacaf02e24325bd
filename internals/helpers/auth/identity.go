// file: internals/helpers/auth/identity.go
package helper

import (
	"github.com/gofiber/fiber/v2"

	"skripsiku_backend/internals/constants"
)

// Identity adalah hasil verifikasi token: dipegang sebagai value dan
// dioper eksplisit ke service, bukan disimpan global.
type Identity struct {
	UserID         uint   `json:"user_id"`
	IdentityNumber string `json:"identity_number"`
	Role           string `json:"role"`
}

func (i Identity) IsLecturer() bool {
	return constants.IsLecturer(i.Role)
}

const locIdentity = "identity"

// SetIdentity dipanggil middleware auth setelah token valid (request-scoped).
func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(locIdentity, id)
}

// GetIdentity mengambil identity milik request ini.
// ok=false berarti route lupa dipasang di belakang middleware auth.
func GetIdentity(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(locIdentity).(Identity)
	return id, ok
}
