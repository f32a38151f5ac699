package auth

import (
	"strings"
	"testing"
	"time"
)

func TestResetToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateResetToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	userID, ok := VerifyResetToken(tok, secret)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestResetToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateResetToken(7, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	if _, ok := VerifyResetToken(tok, secret); ok {
		t.Fatalf("expected expired token to yield no user")
	}
}

func TestResetToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateResetToken(7, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	if _, ok := VerifyResetToken(tok, []byte("wrong-secret")); ok {
		t.Fatalf("expected wrong secret to yield no user")
	}
}

func TestResetToken_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateResetToken(7, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, ok := VerifyResetToken(tampered, secret); ok {
		t.Fatalf("expected tampered token to yield no user")
	}
}

func TestResetToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, ok := VerifyResetToken("not.a.jwt", []byte("k")); ok {
		t.Fatalf("expected malformed token to yield no user")
	}
}
