// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "skripsiku_backend/internals/helpers"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

// Kegagalan verifikasi credential. Semuanya berujung 401.
var (
	ErrTokenMissing   = errors.New("Authorization header required")
	ErrTokenMalformed = errors.New("Invalid authorization format")
	ErrTokenInvalid   = errors.New("Invalid or expired token")
)

// identityClaims mengikuti bentuk klaim yang diterbitkan auth-service.
type identityClaims struct {
	UserID         uint   `json:"user_id"`
	IdentityNumber string `json:"identity_number"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// VerifyCredential memvalidasi isi header Authorization mentah dan
// mengembalikan Identity sebagai value. Tidak ada side effect; caller yang
// meneruskan identity ke service.
func VerifyCredential(authHeader, secret string) (helperAuth.Identity, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return helperAuth.Identity{}, ErrTokenMissing
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helperAuth.Identity{}, ErrTokenMalformed
	}

	claims := &identityClaims{}
	tok, err := jwt.ParseWithClaims(fields[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return helperAuth.Identity{}, ErrTokenInvalid
	}

	return helperAuth.Identity{
		UserID:         claims.UserID,
		IdentityNumber: claims.IdentityNumber,
		Role:           claims.Role,
	}, nil
}

// AuthMiddleware memverifikasi Bearer token lalu menyimpan Identity
// request-scoped via helperAuth.SetIdentity.
func AuthMiddleware(secret string) fiber.Handler {
	if strings.TrimSpace(secret) == "" {
		panic("AuthMiddleware: secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		ident, err := VerifyCredential(c.Get(fiber.HeaderAuthorization), secret)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		helperAuth.SetIdentity(c, ident)
		return c.Next()
	}
}
