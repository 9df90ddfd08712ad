package auth

import (
	"testing"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("hunter2!", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword("hunter2!", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct digests for repeated hashing")
	}
	if !VerifyPassword("same-password", a) || !VerifyPassword("same-password", b) {
		t.Fatalf("expected both digests to verify")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword("battery staple", digest) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("expected malformed digest to fail verification")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("expected empty digest to fail verification")
	}
}

func TestHashPassword_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword("pw", digest) {
		t.Fatalf("expected digest to verify")
	}
}
