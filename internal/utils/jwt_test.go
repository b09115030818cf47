package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("super-secret", 42, "user", 24)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if !tok.Exp.After(time.Now()) {
		t.Fatal("expiry must be strictly in the future")
	}

	id, err := VerifyAccessToken("super-secret", tok.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if id.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", id.UserID)
	}
	if id.Role != "user" {
		t.Fatalf("role mismatch: got %q want %q", id.Role, "user")
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 7, "user", -1) // already expired
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := VerifyAccessToken("secret", tok.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", 7, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := VerifyAccessToken("wrong-secret", tok.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for forged signature, got %v", err)
	}
}

func TestVerifyAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		if _, err := VerifyAccessToken("secret", raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestVerifyAccessToken_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}
	if _, err := VerifyAccessToken("secret", raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestVerifyAccessToken_ZeroSubject(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 0, "user", 1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := VerifyAccessToken("secret", tok.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for zero subject, got %v", err)
	}
}
