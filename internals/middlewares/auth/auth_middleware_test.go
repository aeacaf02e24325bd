package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"skripsiku_backend/internals/constants"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyCredentialValid(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id":         float64(42),
		"identity_number": "S001",
		"role":            constants.RoleMahasiswa,
		"exp":             time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	ident, err := VerifyCredential("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ident.UserID != 42 || ident.IdentityNumber != "S001" || ident.Role != constants.RoleMahasiswa {
		t.Fatalf("unexpected identity %+v", ident)
	}
}

func TestVerifyCredentialMissing(t *testing.T) {
	if _, err := VerifyCredential("", testSecret); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("err = %v, want ErrTokenMissing", err)
	}
	if _, err := VerifyCredential("   ", testSecret); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("err = %v, want ErrTokenMissing", err)
	}
}

func TestVerifyCredentialMalformed(t *testing.T) {
	cases := []string{
		"abc.def.ghi",          // tanpa skema Bearer
		"Basic dXNlcjpwYXNz",   // skema lain
		"Bearer",               // token hilang
		"Bearer satu dua tiga", // terlalu banyak bagian
	}
	for _, header := range cases {
		if _, err := VerifyCredential(header, testSecret); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("header %q: err = %v, want ErrTokenMalformed", header, err)
		}
	}
}

func TestVerifyCredentialInvalid(t *testing.T) {
	// Tanda tangan dengan secret lain.
	wrongKey := signToken(t, jwt.MapClaims{
		"user_id": float64(1),
		"role":    constants.RoleDosen,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, "other-secret")
	if _, err := VerifyCredential("Bearer "+wrongKey, testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong key: err = %v, want ErrTokenInvalid", err)
	}

	// Token kadaluarsa.
	expired := signToken(t, jwt.MapClaims{
		"user_id": float64(1),
		"role":    constants.RoleDosen,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}, testSecret)
	if _, err := VerifyCredential("Bearer "+expired, testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expired: err = %v, want ErrTokenInvalid", err)
	}

	// Bukan JWT sama sekali.
	if _, err := VerifyCredential("Bearer bukan-jwt", testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage: err = %v, want ErrTokenInvalid", err)
	}
}
