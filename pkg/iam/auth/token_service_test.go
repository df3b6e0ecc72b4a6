package auth

import (
	"testing"
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "jobportal-test")

	token, err := svc.GenerateAccessToken(kernel.NewUserID(42), "ada@example.com", "Employer")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != kernel.NewUserID(42) {
		t.Errorf("user id = %v, want 42", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "Employer" {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.TokenID == "" {
		t.Error("token id must be set for revocation")
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Error("expiry must be in the future")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "jobportal-test")

	token, err := svc.GenerateAccessToken(kernel.NewUserID(42), "ada@example.com", "Employer")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token + "x"); err == nil {
		t.Error("tampered token must be rejected")
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := NewJWTService("key-a", time.Hour, "jobportal-test")
	verifier := NewJWTService("key-b", time.Hour, "jobportal-test")

	token, err := issuer.GenerateAccessToken(kernel.NewUserID(1), "a@example.com", "Admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another key must be rejected")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, "jobportal-test")

	token, err := svc.GenerateAccessToken(kernel.NewUserID(1), "a@example.com", "Admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expired token must be rejected")
	}
}
