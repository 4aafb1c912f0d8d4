package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken("alice@example.com")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	email, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}
	if email != "alice@example.com" {
		t.Errorf("Expected subject 'alice@example.com', got '%s'", email)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, _ := NewToken("alice@example.com")

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".invalid_signature"

	if _, err := VerifyToken(tampered); err == nil {
		t.Error("Expected error for tampered token, got nil")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("Expected error for garbage token, got nil")
	}
}
