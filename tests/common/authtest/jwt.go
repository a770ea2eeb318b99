//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campuscoffee/internal/pkg/config"
)

// JWTHelper mints tokens directly for tests that bypass the login flow.
type JWTHelper struct {
	secret []byte
}

func NewJWTHelper(cfg config.Config) *JWTHelper {
	return &JWTHelper{secret: []byte(cfg.JWT.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.generate(t, userID, role, time.Now().Add(15*time.Minute))
}

// CreateExpiredToken returns a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.generate(t, userID, role, time.Now().Add(-time.Hour))
}

func (h *JWTHelper) generate(t *testing.T, userID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()

	claims := jwtlib.MapClaims{
		"user_id":    userID.String(),
		"role":       role,
		"token_type": "access",
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	require.NoError(t, err, "failed to sign test token")
	return signed
}
