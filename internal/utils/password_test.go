package utils

import "testing"

// Low cost keeps the deliberately-slow hash fast enough for tests while
// still exercising the real algorithm.
const testCost = 4

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Secret123!", testCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Secret123!" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !VerifyPassword(hash, "Secret123!") {
		t.Fatal("correct password should verify")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password", testCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password", testCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext should differ (random salt)")
	}
	if !VerifyPassword(h1, "same-password") || !VerifyPassword(h2, "same-password") {
		t.Fatal("both digests should verify against the plaintext")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct", testCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password must not verify")
	}
	if VerifyPassword("not-a-bcrypt-digest", "correct") {
		t.Fatal("garbage digest must not verify")
	}
}
