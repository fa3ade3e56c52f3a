package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmgr/go-task-api/models"
)

var testUser = models.User{
	ID:       7,
	Username: "somebody",
	Email:    "somebody@example.com",
}

func TestGenerateAndParse(t *testing.T) {
	svc := NewService("secret")

	raw, err := svc.Generate(testUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID != testUser.ID || claims.Username != testUser.Username || claims.Email != testUser.Email {
		t.Errorf("claims do not match the user: %+v", claims)
	}

	// Hạn token phải là 24h kể từ lúc phát hành
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != TokenTTL {
		t.Errorf("got ttl %v, want %v", ttl, TokenTTL)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	svc := NewService("secret")

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := NewService("other-secret").Generate(testUser)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := svc.Parse(raw); err == nil {
			t.Error("token signed with another secret must be rejected")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		raw, err := svc.Generate(testUser)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		parts := strings.Split(raw, ".")
		parts[1] = "eyJpZCI6MX0" // payload khác nhưng chữ ký cũ
		if _, err := svc.Parse(strings.Join(parts, ".")); err == nil {
			t.Error("tampered token must be rejected")
		}
	})

	t.Run("expired", func(t *testing.T) {
		past := jwt.NewNumericDate(time.Now().Add(-time.Hour))
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			ID:       testUser.ID,
			Username: testUser.Username,
			Email:    testUser.Email,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
				ExpiresAt: past,
			},
		})
		raw, err := expired.SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := svc.Parse(raw); err == nil {
			t.Error("expired token must be rejected")
		}
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 1})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := svc.Parse(raw); err == nil {
			t.Error("alg=none token must be rejected")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := svc.Parse("not-a-token"); err == nil {
			t.Error("garbage must be rejected")
		}
	})
}
