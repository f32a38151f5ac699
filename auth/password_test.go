package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "" || hash == "correct horse battery staple" {
		t.Fatalf("hash must be non-empty and not the plaintext, got %q", hash)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatalf("expected password to check out against its own hash")
	}
	if CheckPassword(hash, "correct horse battery stapl") {
		t.Fatalf("expected a different password to fail")
	}
	if CheckPassword(hash, "") {
		t.Fatalf("expected empty password to fail")
	}
}

func TestCheckPassword_BadHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("expected malformed hash to fail")
	}
}
