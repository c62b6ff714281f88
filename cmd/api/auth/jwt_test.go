package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "issuer-for-test")

	manager, err := NewJWTManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "comment-pilot" {
		t.Fatalf("expected default issuer comment-pilot, got %q", manager.issuer)
	}
	if manager.ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %s", manager.ttl)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign(Identity{UserID: "user-001", AccessToken: "ya29.access-token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a compact JWT, got %q", token)
	}

	identity, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != "user-001" {
		t.Fatalf("expected user id user-001, got %q", identity.UserID)
	}
	if identity.AccessToken != "ya29.access-token" {
		t.Fatalf("expected the embedded access token to round-trip, got %q", identity.AccessToken)
	}
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	managerOne, _ := NewJWTManagerFromEnv()

	token, err := managerOne.Sign(Identity{UserID: "user-001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	managerTwo, _ := NewJWTManagerFromEnv()

	if _, err := managerTwo.Parse(token); err == nil {
		t.Fatalf("expected a token signed under another secret to be rejected")
	}
}

func TestJWTManagerRejectsMissingSub(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager, _ := NewJWTManagerFromEnv()

	claims := jwt.MapClaims{"yat": "token", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(manager.secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected a token without sub to be rejected")
	}
}
