package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MintToken creates a signed JWT with the given subject and expiry, for
// seeding session state in tests.
func MintToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
